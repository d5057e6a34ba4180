package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readleaf/readleaf/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export one attempt as Markdown or HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		a, err := s.Attempts().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		var doc string
		switch format {
		case "md", "markdown":
			doc = export.Markdown(a)
		case "html":
			doc, err = export.HTML(a)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported format %q: use md or html", format)
		}

		if out == "" {
			fmt.Print(doc)
			return nil
		}
		if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Exported to %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "md", "Output format: md or html")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
}
