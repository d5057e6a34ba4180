package reading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/readleaf/readleaf/internal/llm"
)

const evaluationSystemPrompt = `You are a professional English teacher grading a student's reading comprehension test. You must return valid JSON format only.`

// Evaluator grades submitted answers against a question set with a
// second model call.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator creates an Evaluator backed by the given provider.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// Evaluate embeds each question, its correct answer and the submitted
// answer in a grading prompt and parses the model's verdict. A shorter
// answer slice is padded with empty strings so every question is
// graded. Whether an answer counts as a match is entirely the model's
// call; this layer imposes no matching policy of its own.
func (e *Evaluator) Evaluate(ctx context.Context, questions []Question, answers []string) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")

	user := BuildEvaluationPrompt(questions, PadAnswers(answers, len(questions)))

	req := llm.Request{
		System: evaluationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}
	if e.cfg.Strict {
		req.Schema = EvaluationSchema
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("answer evaluation failed: %w", err)
	}

	return decodeEvaluation(resp.Content)
}

// PadAnswers extends answers with empty strings up to n entries. A
// missing answer is graded as an empty submission, never skipped.
func PadAnswers(answers []string, n int) []string {
	if len(answers) >= n {
		return answers
	}
	padded := make([]string, n)
	copy(padded, answers)
	return padded
}

// BuildEvaluationPrompt renders the grading prompt. Questions and
// answers are embedded positionally; callers pad answers first.
func BuildEvaluationPrompt(questions []Question, answers []string) string {
	var b strings.Builder

	b.WriteString("Please grade the student's answers to the following reading comprehension questions:\n")

	for i, q := range questions {
		fmt.Fprintf(&b, "\nQuestion %d (%s): %s\n", i+1, q.Kind, q.Prompt)
		if len(q.Options) > 0 {
			fmt.Fprintf(&b, "Options: %s\n", strings.Join(q.Options, " | "))
		}
		fmt.Fprintf(&b, "Correct Answer: %s\n", q.CorrectAnswer)
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		if answer == "" {
			answer = "(no answer)"
		}
		fmt.Fprintf(&b, "Student Answer: %s\n", answer)
	}

	b.WriteString(`
Grading Requirements:
1. Judge each answer and give one short feedback sentence per question, in order.
2. Give an overall score from 0 to 100.
3. Provide overall feedback on the student's performance and suggestions for improvement.

Please return in JSON format:
{
  "score": 85,
  "item_analysis": [
    {"correct": true, "feedback": "feedback for question 1"},
    {"correct": false, "feedback": "feedback for question 2"}
  ],
  "overall_feedback": "overall feedback here",
  "suggestions": "suggestions here"
}

IMPORTANT: Return ONLY valid JSON, no other text.`)

	return b.String()
}

func decodeEvaluation(raw json.RawMessage) (*Evaluation, error) {
	text, ok := ExtractJSON(string(raw))
	if !ok {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var out struct {
		Score           *int           `json:"score"`
		ItemAnalysis    []ItemAnalysis `json:"item_analysis"`
		OverallFeedback string         `json:"overall_feedback"`
		Suggestions     string         `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("parse evaluation response: %w", err)
	}
	if out.Score == nil {
		return nil, fmt.Errorf("evaluation response missing score")
	}

	// item_analysis may be shorter than the question sequence; later
	// indices are simply absent and display treats them as ungraded.
	return &Evaluation{
		Score:           *out.Score,
		ItemAnalysis:    out.ItemAnalysis,
		OverallFeedback: out.OverallFeedback,
		Suggestions:     out.Suggestions,
	}, nil
}
