package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readleaf/readleaf/internal/config"
	"github.com/readleaf/readleaf/internal/llm"
	"github.com/readleaf/readleaf/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "readleaf",
	Short: "AI reading practice for kids",
	Long:  "Readleaf — terminal app that generates personalized reading articles with comprehension questions and grades free-text answers.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides READLEAF_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to providers config file (overrides READLEAF_CONFIG env var)")
	rootCmd.PersistentFlags().StringP("user", "u", "default", "Learner profile name")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then READLEAF_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

func username(cmd *cobra.Command) string {
	name, _ := cmd.Flags().GetString("user")
	if name == "" {
		name = "default"
	}
	return name
}

// resolveProviderSection picks the provider section to use: the
// explicit flag, then the user's saved preference, then the only
// configured section if there is exactly one.
func resolveProviderSection(cfg *config.Config, flagValue, saved string) (string, config.ProviderConfig, error) {
	candidates := []string{flagValue, saved}
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if p, ok := cfg.Provider(name); ok {
			return name, p, nil
		}
		if name == flagValue {
			return "", config.ProviderConfig{}, fmt.Errorf("provider %q is not configured (have: %v)", name, cfg.SectionNames())
		}
	}

	names := cfg.SectionNames()
	switch len(names) {
	case 0:
		return "", config.ProviderConfig{}, fmt.Errorf("no providers configured; add one to the providers config file")
	case 1:
		p, _ := cfg.Provider(names[0])
		return names[0], p, nil
	default:
		return "", config.ProviderConfig{}, fmt.Errorf("multiple providers configured (%v); pick one with --provider", names)
	}
}

// resolveModel picks the model: the explicit flag, then the user's
// saved preference, then the first model the section lists or the
// catalog reports.
func resolveModel(ctx context.Context, catalog *llm.Catalog, section string, p config.ProviderConfig, flagValue, saved string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if saved != "" {
		return saved, nil
	}
	if len(p.Models) > 0 {
		return p.Models[0], nil
	}
	models := catalog.Models(ctx, section, p.Kind, p.APIKey, p.APIBase)
	if len(models) == 0 {
		return "", fmt.Errorf("no models available for provider %q; set one with --model", section)
	}
	return models[0], nil
}
