package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/nebula-notes/internal/notes"
	"github.com/gravitrone/nebula-notes/internal/store"
)

var errTitleRequired = errors.New("title is required")

// ListCmd returns the `notes list` command.
func ListCmd() *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every note",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			env, err := OpenEnv(c.Flags())
			if err != nil {
				return err
			}
			defer env.Close()

			out := c.OutOrStdout()
			if count {
				n, err := env.Store.Count()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, n)
				return nil
			}

			items, err := env.Store.Load()
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(out, "no notes found")
				return nil
			}
			for i, n := range items {
				fmt.Fprintln(out, notes.FormatRow(i, n))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&count, "count", "c", false, "print only the number of notes")
	return cmd
}

// AddCmd returns the `notes add` command.
func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> [body]",
		Short: "Append a note",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			n := notes.Note{Title: args[0]}
			if len(args) == 2 {
				n.Body = args[1]
			}
			if err := validateNote(n); err != nil {
				return err
			}

			env, err := OpenEnv(c.Flags())
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.Store.Append(n); err != nil {
				return err
			}
			total, err := env.Store.Count()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "added note %d\n", total)
			return nil
		},
	}
}

// EditCmd returns the `notes edit` command. An omitted body keeps the current one.
func EditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <line> <title> [body]",
		Short: "Rewrite a note in place",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(c *cobra.Command, args []string) error {
			env, err := OpenEnv(c.Flags())
			if err != nil {
				return err
			}
			defer env.Close()

			items, err := env.Store.Load()
			if err != nil {
				return err
			}
			index, err := notes.ParseLine(args[0], len(items))
			if err != nil {
				return fmt.Errorf("no note at line %q: %w", args[0], err)
			}

			n := notes.Note{Title: args[1], Body: items[index].Body}
			if len(args) == 3 {
				n.Body = args[2]
			}
			if err := validateNote(n); err != nil {
				return err
			}
			if err := env.Store.UpdateAt(index, n); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "updated note %d\n", index+1)
			return nil
		},
	}
}

// validateNote applies the same rules the editor enforces while typing.
func validateNote(n notes.Note) error {
	if strings.TrimSpace(n.Title) == "" {
		return errTitleRequired
	}
	if len(n.Title) > store.FieldWidth {
		return fmt.Errorf("title is %d bytes, limit is %d", len(n.Title), store.FieldWidth)
	}
	if len(n.Body) > store.FieldWidth {
		return fmt.Errorf("body is %d bytes, limit is %d", len(n.Body), store.FieldWidth)
	}
	return nil
}
