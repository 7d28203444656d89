package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0-alpha1"

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "methodgen",
		Short:         "Generate toString, equals and hashCode methods for a class model",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetVersionTemplate("methodgen v{{.Version}}\n")

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "config file (default: search for methodgen.yml upwards)")
	cmd.Flags().BoolVar(&opts.skipToString, "skip-to-string", false, "do not generate toString methods")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log skipped methods to stderr")

	return cmd
}

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
