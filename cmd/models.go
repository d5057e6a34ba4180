package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readleaf/readleaf/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models per configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		refresh, _ := cmd.Flags().GetBool("refresh")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		names := cfg.SectionNames()
		if len(names) == 0 {
			fmt.Println("No providers configured.")
			return nil
		}

		ctx := context.Background()
		catalog := llm.NewCatalog()

		for _, name := range names {
			p, _ := cfg.Provider(name)
			fmt.Printf("%s (%s)\n", name, p.Kind)

			if refresh {
				catalog.Refresh(name)
			}

			// Config-listed models take precedence over the catalog.
			models := []string(p.Models)
			if len(models) == 0 {
				models = catalog.Models(ctx, name, p.Kind, p.APIKey, p.APIBase)
			}
			if len(models) == 0 {
				fmt.Println("  (no models available)")
			}
			for _, m := range models {
				fmt.Printf("  %s\n", m)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	modelsCmd.Flags().Bool("refresh", false, "Drop cached model lists and look them up again")
}
