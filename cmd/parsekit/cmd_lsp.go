package main

import (
	"github.com/dhamidi/parsekit/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity := 0
			if verbose {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)

			server := lsp.NewServer(version)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log protocol traffic to stderr")

	return cmd
}
