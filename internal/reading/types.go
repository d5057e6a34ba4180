package reading

import (
	"encoding/json"
	"strconv"
	"strings"
)

// QuestionKind identifies how a question is answered.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindFillBlank      QuestionKind = "fill_blank"
	KindTrueFalse      QuestionKind = "true_false"
)

// Question is one comprehension question as returned by the model.
// The prompt asks for 2 multiple choice, 2 fill-in-the-blank and 1
// true/false question, but nothing here enforces that split: whatever
// the model returns is passed through.
type Question struct {
	Kind    QuestionKind `json:"type"`
	Prompt  string       `json:"question"`
	Options []string     `json:"options,omitempty"`

	// CorrectAnswer is a letter for multiple choice, a string for fill
	// in the blank, and a boolean for true/false.
	CorrectAnswer Answer `json:"correct_answer"`
}

// Answer holds a correct answer that may be a JSON string or boolean.
// The raw value is preserved verbatim so logged attempts round-trip.
type Answer struct {
	raw json.RawMessage
}

// StringAnswer wraps a plain string answer.
func StringAnswer(s string) Answer {
	b, _ := json.Marshal(s)
	return Answer{raw: b}
}

// BoolAnswer wraps a boolean answer.
func BoolAnswer(v bool) Answer {
	return Answer{raw: json.RawMessage(strconv.FormatBool(v))}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	a.raw = append(a.raw[:0], data...)
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a.raw) == 0 {
		return []byte(`""`), nil
	}
	return a.raw, nil
}

// String renders the answer for display and grading prompts:
// strings unquoted, booleans as "true"/"false", anything else raw.
func (a Answer) String() string {
	var s string
	if json.Unmarshal(a.raw, &s) == nil {
		return s
	}
	var b bool
	if json.Unmarshal(a.raw, &b) == nil {
		return strconv.FormatBool(b)
	}
	return strings.TrimSpace(string(a.raw))
}

// Bool reports the answer as a boolean when it is one.
func (a Answer) Bool() (value, ok bool) {
	var b bool
	if json.Unmarshal(a.raw, &b) == nil {
		return b, true
	}
	return false, false
}

// GeneratedContent is one article with its question set. Immutable once
// produced; the caller decides if and when to persist it.
type GeneratedContent struct {
	Article   string     `json:"article"`
	Questions []Question `json:"questions"`
}

// ItemAnalysis is the model's verdict on a single answer.
type ItemAnalysis struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
}

// Evaluation is the graded result for one submitted answer set.
// ItemAnalysis is positionally aligned with the question sequence; the
// model may return fewer entries than questions, in which case later
// indices are simply absent.
type Evaluation struct {
	Score           int            `json:"score"`
	ItemAnalysis    []ItemAnalysis `json:"item_analysis"`
	OverallFeedback string         `json:"overall_feedback"`
	Suggestions     string         `json:"suggestions"`
}

// Category selects the kind of article to generate.
type Category string

const (
	CategoryStory   Category = "Story"
	CategoryScience Category = "Science"
	CategoryNature  Category = "Nature"
	CategoryHistory Category = "History"
)

// Categories returns the supported article categories in display order.
func Categories() []Category {
	return []Category{CategoryStory, CategoryScience, CategoryNature, CategoryHistory}
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

var categoryDescriptions = map[Category]string{
	CategoryStory:   "an engaging narrative story with characters and plot",
	CategoryScience: "a scientific article explaining a concept or phenomenon",
	CategoryNature:  "an article about nature, animals, plants, or environmental topics",
	CategoryHistory: "a historical article about events, people, or periods from the past",
}

// Description returns the prompt text for the category. Unknown
// categories fall back to the story description.
func (c Category) Description() string {
	if d, ok := categoryDescriptions[c]; ok {
		return d
	}
	return categoryDescriptions[CategoryStory]
}
