package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		u, err := s.Users().GetOrCreate(context.Background(), username(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Name:     %s\n", u.Name)
		fmt.Printf("Age:      %d\n", u.Age)
		fmt.Printf("Lexile:   %dL\n", u.Lexile)
		if u.Provider != "" {
			fmt.Printf("Provider: %s\n", u.Provider)
		}
		if u.Model != "" {
			fmt.Printf("Model:    %s\n", u.Model)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update age or reading level",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		u, err := s.Users().GetOrCreate(ctx, username(cmd))
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("age") {
			u.Age, _ = cmd.Flags().GetInt("age")
		}
		if cmd.Flags().Changed("lexile") {
			u.Lexile, _ = cmd.Flags().GetInt("lexile")
		}

		if err := s.Users().Save(ctx, u); err != nil {
			return err
		}
		fmt.Printf("Profile updated: age %d, lexile %dL.\n", u.Age, u.Lexile)
		return nil
	},
}

func init() {
	profileSetCmd.Flags().Int("age", 0, "Learner age in years")
	profileSetCmd.Flags().Int("lexile", 0, "Reading level in Lexile (200-1700)")

	profileCmd.AddCommand(profileSetCmd)
}
