package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the learner's word bank",
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the word bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		words, err := s.Words().List(context.Background(), username(cmd))
		if err != nil {
			return err
		}
		if len(words) == 0 {
			fmt.Println("Word bank is empty. Add words with `readleaf words add`.")
			return nil
		}
		for i, w := range words {
			fmt.Printf("%3d. %s\n", i+1, w)
		}
		return nil
	},
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Add words, skipping duplicates",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		added, err := s.Words().Add(context.Background(), username(cmd), splitWords(args))
		if err != nil {
			return err
		}
		if len(added) == 0 {
			fmt.Println("Nothing added (all duplicates).")
			return nil
		}
		fmt.Printf("Added %d: %s\n", len(added), strings.Join(added, ", "))
		return nil
	},
}

var wordsSetCmd = &cobra.Command{
	Use:   "set <word>...",
	Short: "Replace the whole word bank",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		words := splitWords(args)
		if err := s.Words().Set(context.Background(), username(cmd), words); err != nil {
			return err
		}
		fmt.Printf("Word bank set to %d words.\n", len(words))
		return nil
	},
}

var wordsDedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate words, keeping the first occurrence",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := s.Words().Dedupe(context.Background(), username(cmd))
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d duplicate(s).\n", removed)
		return nil
	},
}

// splitWords accepts both space-separated args and comma-separated
// lists within a single arg.
func splitWords(args []string) []string {
	var words []string
	for _, arg := range args {
		for _, w := range strings.Split(arg, ",") {
			if w = strings.TrimSpace(w); w != "" {
				words = append(words, w)
			}
		}
	}
	return words
}

func init() {
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsSetCmd)
	wordsCmd.AddCommand(wordsDedupeCmd)
}
