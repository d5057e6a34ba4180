package reading

import (
	"encoding/json"
	"testing"
)

func TestAnswer_PreservesStringAndBool(t *testing.T) {
	raw := `[{"type":"multiple_choice","question":"q1","options":["A. x","B. y","C. z","D. w"],"correct_answer":"B"},
		{"type":"true_false","question":"q2","correct_answer":true}]`

	var questions []Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := questions[0].CorrectAnswer.String(); got != "B" {
		t.Fatalf("string answer = %q, want B", got)
	}
	if _, ok := questions[0].CorrectAnswer.Bool(); ok {
		t.Fatal("string answer must not report as boolean")
	}

	v, ok := questions[1].CorrectAnswer.Bool()
	if !ok || !v {
		t.Fatalf("boolean answer = %v/%v, want true/true", v, ok)
	}
	if got := questions[1].CorrectAnswer.String(); got != "true" {
		t.Fatalf("boolean answer renders as %q, want true", got)
	}

	// Round-trip keeps the original JSON types.
	out, err := json.Marshal(questions)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if _, isString := decoded[0]["correct_answer"].(string); !isString {
		t.Error("string answer must round-trip as a JSON string")
	}
	if _, isBool := decoded[1]["correct_answer"].(bool); !isBool {
		t.Error("boolean answer must round-trip as a JSON boolean")
	}
}

func TestAnswerConstructors(t *testing.T) {
	if got := StringAnswer("A").String(); got != "A" {
		t.Fatalf("StringAnswer = %q", got)
	}
	if v, ok := BoolAnswer(false).Bool(); !ok || v {
		t.Fatalf("BoolAnswer = %v/%v, want false/true", v, ok)
	}
}

func TestAnswer_EmptyMarshalsAsEmptyString(t *testing.T) {
	out, err := json.Marshal(Answer{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `""` {
		t.Fatalf("empty answer = %s, want \"\"", out)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"Story", CategoryStory, true},
		{"story", CategoryStory, true},
		{"SCIENCE", CategoryScience, true},
		{"nature", CategoryNature, true},
		{"History", CategoryHistory, true},
		{"poetry", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCategory(%q) = %q/%v, want %q/%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCategoryDescription_UnknownFallsBackToStory(t *testing.T) {
	if Category("Poetry").Description() != CategoryStory.Description() {
		t.Fatal("unknown category must use the story description")
	}
}
