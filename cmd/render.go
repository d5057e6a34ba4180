package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/readleaf/readleaf/internal/reading"
	"github.com/readleaf/readleaf/internal/store"
)

// Color palette — calm, readable on dark terminals
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	articleStyle  = lipgloss.NewStyle().Width(72).PaddingLeft(2)
	questionStyle = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316"))
)

func renderContent(content reading.GeneratedContent, category reading.Category) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("── %s ──", category)))
	b.WriteString("\n\n")
	b.WriteString(articleStyle.Render(strings.TrimSpace(content.Article)))
	b.WriteString("\n\n")

	for i, q := range content.Questions {
		b.WriteString(questionStyle.Render(fmt.Sprintf("%d. %s", i+1, q.Prompt)))
		b.WriteString("\n")
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "   %s\n", opt)
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("   [%s]", q.Kind)))
		b.WriteString("\n\n")
	}

	return b.String()
}

func renderEvaluation(a *store.Attempt) string {
	eval := a.Evaluation
	if eval == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d/100", eval.Score)))
	b.WriteString("\n\n")

	for i, q := range a.Content.Questions {
		answer := ""
		if i < len(a.Answers) {
			answer = a.Answers[i]
		}
		if answer == "" {
			answer = "(no answer)"
		}

		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Prompt)
		fmt.Fprintf(&b, "   Your answer: %s\n", answer)

		if i < len(eval.ItemAnalysis) {
			item := eval.ItemAnalysis[i]
			if item.Correct {
				b.WriteString(goodStyle.Render("   ✓ " + item.Feedback))
			} else {
				b.WriteString(badStyle.Render("   ✗ " + item.Feedback))
				fmt.Fprintf(&b, "\n   Correct answer: %s", q.CorrectAnswer)
			}
		} else {
			b.WriteString(dimStyle.Render("   (not graded)"))
		}
		b.WriteString("\n\n")
	}

	if eval.OverallFeedback != "" {
		fmt.Fprintf(&b, "%s\n", eval.OverallFeedback)
	}
	if eval.Suggestions != "" {
		fmt.Fprintf(&b, "\nSuggestions: %s\n", eval.Suggestions)
	}

	return b.String()
}
