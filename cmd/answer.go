package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/readleaf/readleaf/internal/llm"
	"github.com/readleaf/readleaf/internal/reading"
	"github.com/readleaf/readleaf/internal/store"
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Answer the questions of your latest generated article",
	Long: `Answer the questions of the most recent article still awaiting answers.

Answers are free text: type the option letter for multiple choice, the
missing word for fill in the blank, true/false for true/false questions.
Press Enter on an empty line to skip a question.`,
	RunE: runAnswer,
}

func init() {
	answerCmd.Flags().Bool("strict", false, "Validate the model output against the response schema")
}

func runAnswer(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	name := username(cmd)

	attempt, err := s.Attempts().LatestGenerated(ctx, name)
	if err != nil {
		return err
	}

	user, err := s.Users().GetOrCreate(ctx, name)
	if err != nil {
		return err
	}

	fmt.Print(renderContent(attempt.Content, attempt.Category))

	// Collect one free-text answer per question.
	scanner := bufio.NewScanner(os.Stdin)
	answers := make([]string, 0, len(attempt.Content.Questions))
	for i := range attempt.Content.Questions {
		fmt.Printf("Answer %d: ", i+1)
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answers = append(answers, strings.TrimSpace(scanner.Text()))
	}

	section, pcfg, err := resolveProviderSection(cfg, "", user.Provider)
	if err != nil {
		return err
	}

	catalog := llm.NewCatalog()
	model, err := resolveModel(ctx, catalog, section, pcfg, "", user.Model)
	if err != nil {
		return err
	}

	provider, err := llm.New(ctx, llm.Options{
		Kind:    pcfg.Kind,
		Model:   model,
		APIKey:  pcfg.APIKey,
		BaseURL: pcfg.APIBase,
	})
	if err != nil {
		return err
	}
	provider = store.WithLogging(provider, section, s.Events())

	strict, _ := cmd.Flags().GetBool("strict")
	rcfg := reading.DefaultConfig()
	rcfg.Strict = strict

	fmt.Println("\nGrading your answers...")

	ev := reading.NewEvaluator(provider, rcfg)
	eval, err := ev.Evaluate(ctx, attempt.Content.Questions, answers)
	if err != nil {
		return err
	}

	if err := s.Attempts().Complete(ctx, attempt.ID, answers, eval); err != nil {
		return err
	}

	done, err := s.Attempts().Get(ctx, attempt.ID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(renderEvaluation(done))
	return nil
}
