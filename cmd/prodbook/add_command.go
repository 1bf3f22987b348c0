package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prodbook/internal/ledger"
	"prodbook/internal/logging"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new production entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := ledger.Entry{
				PrintOpt: ledger.PrintNo,
				Date:     todayDate(),
			}
			entry, err := flags.apply(cmd, base)
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *ledger.Store) error {
				id, err := store.Insert(cmd.Context(), entry)
				if err != nil {
					return err
				}
				ctx.ensureLogger().Info("entry added",
					logging.Int64(logging.FieldEntryID, id),
					logging.String("article", entry.Article),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Added entry %d (%s)\n", id, entry.Article)
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}
