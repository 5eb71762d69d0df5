package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/conduit/cli/internal/cmd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	opts := &cmd.Options{}
	root := &cobra.Command{
		Use:   "conduit",
		Short: "Conduit - article editor",
		Long:  "Conduit CLI: write new articles and edit published ones against a Conduit API.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.RunEditor(opts, "")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.Bind(root.PersistentFlags())

	root.AddCommand(cmd.NewCmd(opts))
	root.AddCommand(cmd.EditCmd(opts))
	root.AddCommand(cmd.ConfigCmd(opts))
	return root
}
