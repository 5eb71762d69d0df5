package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/conduit/cli/internal/ui"
)

// runProgram runs the TUI. Tests replace it to avoid taking the terminal.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewCmd returns the `conduit new` command.
func NewCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Write a new article",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunEditor(opts, "")
		},
	}
}

// EditCmd returns the `conduit edit <slug>` command.
func EditCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <slug>",
		Short: "Edit an existing article",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			slug := strings.TrimSpace(args[0])
			if slug == "" {
				return fmt.Errorf("slug is required")
			}
			return RunEditor(opts, slug)
		},
	}
}

// RunEditor opens the editor for slug, or for a new article when slug is empty.
func RunEditor(opts *Options, slug string) error {
	sess, err := opts.Resolve()
	if err != nil {
		return err
	}

	closeLog, err := opts.setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.Debug {
		defer logDispatches(sess.Store)()
	}

	app := ui.NewApp(sess.Client, sess.Store, slug, sess.Policy)
	if err := runProgram(app); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
