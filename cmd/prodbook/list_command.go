package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prodbook/internal/ledger"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries matching the filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := flags.criteria(cmd.ErrOrStderr())

			return ctx.withStore(func(store *ledger.Store) error {
				entries, err := store.Search(cmd.Context(), criteria)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No entries found")
					return nil
				}
				fmt.Fprintln(out, renderTable(entryTableHeaders, entryTableRows(entries), entryTableAligns))
				fmt.Fprintf(out, "%d entries\n", len(entries))
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *ledger.Store) error {
				entry, err := store.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if entry == nil {
					return fmt.Errorf("entry %d not found", id)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(entryTableHeaders, entryTableRows([]ledger.Entry{*entry}), entryTableAligns))
				return nil
			})
		},
	}
}
