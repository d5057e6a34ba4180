package export

import (
	"fmt"
	"strings"

	"github.com/readleaf/readleaf/internal/store"
)

// Markdown renders a practice attempt as a Markdown document. Completed
// attempts include the submitted answers and the grading verdict;
// generated-only attempts stop after the questions.
func Markdown(a *store.Attempt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Reading Practice (%s)\n\n", a.Category)
	fmt.Fprintf(&b, "Date: %s\n\n", a.CreatedAt.Local().Format("2006-01-02 15:04"))

	b.WriteString("## Article\n\n")
	b.WriteString(strings.TrimSpace(a.Content.Article))
	b.WriteString("\n\n## Questions\n\n")

	for i, q := range a.Content.Questions {
		fmt.Fprintf(&b, "**%d. %s**\n\n", i+1, q.Prompt)
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "- %s\n", opt)
		}
		if len(q.Options) > 0 {
			b.WriteString("\n")
		}

		if a.Status == store.StatusCompleted {
			answer := ""
			if i < len(a.Answers) {
				answer = a.Answers[i]
			}
			if answer == "" {
				answer = "(no answer)"
			}
			fmt.Fprintf(&b, "Your answer: %s\n\n", answer)
			fmt.Fprintf(&b, "Correct answer: %s\n\n", q.CorrectAnswer)

			if a.Evaluation != nil && i < len(a.Evaluation.ItemAnalysis) {
				item := a.Evaluation.ItemAnalysis[i]
				mark := "✗"
				if item.Correct {
					mark = "✓"
				}
				fmt.Fprintf(&b, "%s %s\n\n", mark, item.Feedback)
			}
		}
	}

	if a.Status == store.StatusCompleted && a.Evaluation != nil {
		b.WriteString("## Result\n\n")
		fmt.Fprintf(&b, "Score: %d/100\n\n", a.Evaluation.Score)
		if a.Evaluation.OverallFeedback != "" {
			fmt.Fprintf(&b, "%s\n\n", a.Evaluation.OverallFeedback)
		}
		if a.Evaluation.Suggestions != "" {
			fmt.Fprintf(&b, "Suggestions: %s\n", a.Evaluation.Suggestions)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
