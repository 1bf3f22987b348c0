package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prodbook/internal/config"
	"prodbook/internal/export"
	"prodbook/internal/ledger"
	"prodbook/internal/logging"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export filtered entries to a file",
	}

	exportCmd.AddCommand(newExportXLSXCommand(ctx))
	exportCmd.AddCommand(newExportPDFCommand(ctx))

	return exportCmd
}

func newExportXLSXCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "xlsx <output.xlsx>",
		Short: "Export matching entries as a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(ctx, cmd, args[0], &flags, func(path string, entries []ledger.Entry) error {
				return export.WriteXLSX(path, entries)
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newExportPDFCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "pdf <output.pdf>",
		Short: "Export matching entries as a paginated PDF report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runExport(ctx, cmd, args[0], &flags, func(path string, entries []ledger.Entry) error {
				return export.WritePDF(path, cfg.Export.PageTitle, entries)
			})
		},
		Args: cobra.ExactArgs(1),
	}

	flags.register(cmd)
	return cmd
}

func runExport(ctx *commandContext, cmd *cobra.Command, target string, flags *filterFlags, write func(string, []ledger.Entry) error) error {
	path, err := config.ExpandPath(target)
	if err != nil {
		return err
	}
	criteria := flags.criteria(cmd.ErrOrStderr())

	return ctx.withStore(func(store *ledger.Store) error {
		entries, err := store.Search(cmd.Context(), criteria)
		if err != nil {
			return err
		}
		if err := write(path, entries); err != nil {
			return err
		}
		ctx.ensureLogger().Info("export written",
			logging.String(logging.FieldPath, path),
			logging.Int(logging.FieldCount, len(entries)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), path)
		return nil
	})
}
