package reading

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/readleaf/readleaf/internal/llm"
)

func sampleQuestions() []Question {
	return []Question{
		{Kind: KindMultipleChoice, Prompt: "What jumps?", Options: []string{"A. fox", "B. dog"}, CorrectAnswer: StringAnswer("A")},
		{Kind: KindFillBlank, Prompt: "The dog is ___.", CorrectAnswer: StringAnswer("lazy")},
		{Kind: KindTrueFalse, Prompt: "The pond is loud.", CorrectAnswer: BoolAnswer(false)},
	}
}

func TestPadAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		n       int
		wantLen int
	}{
		{"shorter", []string{"A"}, 3, 3},
		{"equal", []string{"A", "B", "C"}, 3, 3},
		{"longer kept", []string{"A", "B", "C", "D"}, 3, 4},
		{"nil", nil, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadAnswers(tt.answers, tt.n)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			for i, a := range tt.answers {
				if i < len(got) && got[i] != a {
					t.Fatalf("answer %d = %q, want %q", i, got[i], a)
				}
			}
		})
	}
}

func TestBuildEvaluationPrompt(t *testing.T) {
	prompt := BuildEvaluationPrompt(sampleQuestions(), []string{"A", "", "true"})

	for _, want := range []string{
		"Question 1 (multiple_choice): What jumps?",
		"Options: A. fox | B. dog",
		"Correct Answer: A",
		"Student Answer: A",
		"Question 2 (fill_blank)",
		"Student Answer: (no answer)",
		"Correct Answer: false",
		"Student Answer: true",
		"score from 0 to 100",
		"Return ONLY valid JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestEvaluator_ParsesVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"score": 87,
			"item_analysis": [
				{"correct": true, "feedback": "good"},
				{"correct": false, "feedback": "the dog is lazy"},
				{"correct": true, "feedback": "right"}
			],
			"overall_feedback": "well done",
			"suggestions": "read more"
		}`),
	})

	ev := NewEvaluator(mock, DefaultConfig())
	eval, err := ev.Evaluate(context.Background(), sampleQuestions(), []string{"A", "sleepy", "false"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if eval.Score != 87 {
		t.Errorf("score = %d, want 87", eval.Score)
	}
	if len(eval.ItemAnalysis) != 3 {
		t.Fatalf("expected 3 verdicts, got %d", len(eval.ItemAnalysis))
	}
	if eval.ItemAnalysis[1].Correct {
		t.Error("verdict 2 should be incorrect")
	}
	if eval.OverallFeedback != "well done" {
		t.Errorf("overall feedback = %q", eval.OverallFeedback)
	}
}

func TestEvaluator_PadsMissingAnswers(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 30, "item_analysis": [], "overall_feedback": "", "suggestions": ""}`),
	})

	ev := NewEvaluator(mock, DefaultConfig())
	if _, err := ev.Evaluate(context.Background(), sampleQuestions(), []string{"A"}); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	// All three questions are graded even with one submitted answer.
	prompt := mock.Calls[0].Messages[0].Content
	if strings.Count(prompt, "Student Answer:") != 3 {
		t.Fatal("every question must carry a student answer line")
	}
	if strings.Count(prompt, "Student Answer: (no answer)") != 2 {
		t.Fatal("missing answers must grade as empty submissions")
	}
}

func TestEvaluator_ToleratesShortItemAnalysis(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 60, "item_analysis": [{"correct": true, "feedback": "ok"}], "overall_feedback": "f", "suggestions": "s"}`),
	})

	ev := NewEvaluator(mock, DefaultConfig())
	eval, err := ev.Evaluate(context.Background(), sampleQuestions(), []string{"A", "lazy", "false"})
	if err != nil {
		t.Fatalf("a short item_analysis must not fail: %v", err)
	}
	if len(eval.ItemAnalysis) != 1 {
		t.Fatalf("expected 1 verdict, got %d", len(eval.ItemAnalysis))
	}
}

func TestEvaluator_MissingScoreFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"item_analysis": [], "overall_feedback": "f", "suggestions": "s"}`),
	})

	ev := NewEvaluator(mock, DefaultConfig())
	if _, err := ev.Evaluate(context.Background(), sampleQuestions(), nil); err == nil {
		t.Fatal("expected error for missing score")
	}
}

func TestEvaluator_UsesEvaluationPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 100, "item_analysis": [], "overall_feedback": "", "suggestions": ""}`),
	})

	ev := NewEvaluator(mock, DefaultConfig())
	if _, err := ev.Evaluate(context.Background(), sampleQuestions(), nil); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if mock.Calls[0].Schema != nil {
		t.Error("lenient mode must not attach a schema")
	}
}

func TestEvaluator_StrictAttachesSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 100, "item_analysis": [], "overall_feedback": "", "suggestions": ""}`),
	})

	cfg := DefaultConfig()
	cfg.Strict = true
	ev := NewEvaluator(mock, cfg)
	if _, err := ev.Evaluate(context.Background(), sampleQuestions(), nil); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if mock.Calls[0].Schema != EvaluationSchema {
		t.Fatal("strict mode must attach the evaluation schema")
	}
}
