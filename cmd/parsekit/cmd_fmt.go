package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/parsekit/lambda"
	"github.com/dhamidi/parsekit/parse"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite a λ-term in its canonical form",
		Long: `Parse a λ-term and print its canonical rendering.

If no file is provided, reads the term from stdin. Use -w to
overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if overwrite && len(args) == 0 {
				return fmt.Errorf("-w requires a file argument")
			}

			input, label, err := readInput(args, "")
			if err != nil {
				return err
			}

			term, err := lambda.Parse(input, parse.WithLabel(label))
			if err != nil {
				return reportParseError(cmd, input, label, err)
			}

			if overwrite {
				if err := os.WriteFile(args[0], []byte(term.String()+"\n"), 0o644); err != nil {
					return fmt.Errorf("write file: %w", err)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), term)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "write the result back to the file")

	return cmd
}
