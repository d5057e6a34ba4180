package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/readleaf/readleaf/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past practice attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := s.Attempts().List(context.Background(), username(cmd), limit)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No practice attempts yet.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-10s  %-9s  %s\n",
			"ID", "Date", "Category", "Status", "Score")
		fmt.Println(strings.Repeat("─", 88))
		for _, a := range attempts {
			score := "-"
			if a.Evaluation != nil {
				score = fmt.Sprintf("%d", a.Evaluation.Score)
			}
			fmt.Printf("%-36s  %-16s  %-10s  %-9s  %s\n",
				a.ID,
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				a.Category,
				a.Status,
				score)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one attempt in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		a, err := s.Attempts().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Print(renderContent(a.Content, a.Category))
		if a.Status == store.StatusCompleted {
			fmt.Print(renderEvaluation(a))
		} else {
			fmt.Println("Not answered yet. Run `readleaf answer` to complete it.")
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")

	historyCmd.AddCommand(historyShowCmd)
}
