package reading

import "github.com/readleaf/readleaf/internal/llm"

// GenerationSchema validates the article/questions contract when strict
// mode is on. Strict structured output constrains correct_answer to a
// string encoding ("true"/"false" for true/false questions); the
// lenient default still accepts a JSON boolean. Every object lists all
// of its properties in required with additionalProperties false, the
// shape vendor strict modes demand. The 2/2/1 type split and the
// five-question count live in descriptions; they stay a prompt-level
// instruction either way.
var GenerationSchema = &llm.Schema{
	Name:        "reading-practice",
	Description: "A reading article with five comprehension questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"article": map[string]any{
				"type":        "string",
				"description": "The article text, 150-250 words",
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "Exactly 5 questions: 2 multiple choice, 2 fill in the blank, 1 true/false",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"multiple_choice", "fill_blank", "true_false"},
						},
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 labeled options for multiple_choice. Empty array for the other types.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The option letter for multiple choice, the missing word for fill blank, \"true\" or \"false\" for true/false",
						},
					},
					"required":             []any{"type", "question", "options", "correct_answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"article", "questions"},
		"additionalProperties": false,
	},
}

// EvaluationSchema validates the grading contract when strict mode is
// on. The alignment of item_analysis with the question sequence is
// positional and not checkable by schema.
var EvaluationSchema = &llm.Schema{
	Name:        "reading-evaluation",
	Description: "A graded answer set with per-item verdicts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"item_analysis": map[string]any{
				"type":        "array",
				"description": "One verdict per question, in question order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"correct":  map[string]any{"type": "boolean"},
						"feedback": map[string]any{"type": "string"},
					},
					"required":             []any{"correct", "feedback"},
					"additionalProperties": false,
				},
			},
			"overall_feedback": map[string]any{"type": "string"},
			"suggestions":      map[string]any{"type": "string"},
		},
		"required":             []any{"score", "item_analysis", "overall_feedback", "suggestions"},
		"additionalProperties": false,
	},
}
