package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/nebula-notes/internal/cmd"
	"github.com/gravitrone/nebula-notes/internal/ui"
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
	root := &cobra.Command{
		Use:   "notes",
		Short: "Notes - fixed-width terminal notebook",
		Long:  "Notes keeps titled notes in a flat fixed-width file. Run without arguments to browse, add and edit them in the terminal.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTUI(c)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.BindFlags(root.PersistentFlags())

	root.AddCommand(cmd.ListCmd())
	root.AddCommand(cmd.AddCmd())
	root.AddCommand(cmd.EditCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

func runTUI(c *cobra.Command) error {
	env, err := cmd.OpenEnv(c.Flags())
	if err != nil {
		return err
	}
	defer env.Close()

	items, err := env.Store.Load()
	if err != nil {
		return err
	}
	env.Logger.Info("starting tui", "notes", len(items), "file", env.Store.Path())

	app := ui.NewApp(env.Store, items, env.Config, env.Logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
