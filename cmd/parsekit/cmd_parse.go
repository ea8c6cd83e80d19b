package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhamidi/parsekit/lambda"
	"github.com/dhamidi/parsekit/parse"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var expr string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a λ-term and dump the result",
		Long: `Parse a λ-term and dump the resulting tree.

Reads the term from a file, from -e, or from stdin. On a parse
failure, prints a diagnostic with the offending line and exits
nonzero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, label, err := readInput(args, expr)
			if err != nil {
				return err
			}

			term, err := lambda.Parse(input, parse.WithLabel(label))
			if err != nil {
				return reportParseError(cmd, input, label, err)
			}

			switch outputFormat {
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), term)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(term); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "parse the given expression instead of a file")

	return cmd
}

func readInput(args []string, expr string) (input, label string, err error) {
	if expr != "" {
		return expr, "<expr>", nil
	}
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}
	return string(data), filepath.Base(args[0]), nil
}

func reportParseError(cmd *cobra.Command, input, label string, err error) error {
	var perr *parse.ParseError
	if !errors.As(err, &perr) {
		return err
	}
	reporter := parse.Reporter{Label: label, Color: true}
	fmt.Fprint(cmd.ErrOrStderr(), reporter.Report(input, perr))
	return fmt.Errorf("parse %s: %w", label, perr)
}
