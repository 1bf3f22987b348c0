package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prodbook/internal/ledger"
	"prodbook/internal/logging"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of an existing entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			changed := false
			for _, name := range []string{"article", "card", "color", "size", "qty", "component", "print", "date"} {
				if cmd.Flags().Changed(name) {
					changed = true
					break
				}
			}
			if !changed {
				return fmt.Errorf("no fields to update; pass at least one field flag")
			}

			return ctx.withStore(func(store *ledger.Store) error {
				current, err := store.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if current == nil {
					return fmt.Errorf("entry %d not found", id)
				}

				updated, err := flags.apply(cmd, *current)
				if err != nil {
					return err
				}
				if err := store.Update(cmd.Context(), id, updated); err != nil {
					return err
				}
				ctx.ensureLogger().Info("entry updated", logging.Int64(logging.FieldEntryID, id))
				fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d\n", id)
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}
