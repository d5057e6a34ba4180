package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readleaf/readleaf/internal/llm"
	"github.com/readleaf/readleaf/internal/reading"
	"github.com/readleaf/readleaf/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new reading article with questions",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("provider", "p", "", "Configured provider section to use")
	generateCmd.Flags().StringP("model", "m", "", "Model identifier")
	generateCmd.Flags().StringP("category", "c", "Story", "Article category: Story, Science, Nature, History")
	generateCmd.Flags().Bool("strict", false, "Validate the model output against the response schema")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	categoryVal, _ := cmd.Flags().GetString("category")
	category, ok := reading.ParseCategory(categoryVal)
	if !ok {
		return fmt.Errorf("invalid category %q: must be one of %v", categoryVal, reading.Categories())
	}

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

	user, err := s.Users().GetOrCreate(ctx, name)
	if err != nil {
		return err
	}

	words, err := s.Words().List(ctx, name)
	if err != nil {
		return err
	}

	providerFlag, _ := cmd.Flags().GetString("provider")
	modelFlag, _ := cmd.Flags().GetString("model")

	section, pcfg, err := resolveProviderSection(cfg, providerFlag, user.Provider)
	if err != nil {
		return err
	}

	catalog := llm.NewCatalog()
	savedModel := ""
	if section == user.Provider {
		savedModel = user.Model
	}
	model, err := resolveModel(ctx, catalog, section, pcfg, modelFlag, savedModel)
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

	fmt.Printf("Generating a %s article for %s (age %d, lexile %dL)...\n\n",
		category, user.Name, user.Age, user.Lexile)

	gen := reading.NewGenerator(provider, rcfg)
	content, err := gen.Generate(ctx, words, user.Age, user.Lexile, category)
	if err != nil {
		return err
	}

	attempt, err := s.Attempts().SaveGenerated(ctx, name, category, *content)
	if err != nil {
		return err
	}

	if err := s.Users().SetPreferences(ctx, name, section, model); err != nil {
		return err
	}

	fmt.Print(renderContent(*content, category))
	fmt.Printf("Saved as attempt %s. Run `readleaf answer` to answer the questions.\n", attempt.ID)
	return nil
}
