package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prodbook/internal/colmap"
	"prodbook/internal/config"
	"prodbook/internal/importer"
	"prodbook/internal/ledger"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var mapOverrides []string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <workbook.xlsx>",
		Short: "Import entries from a spreadsheet",
		Long: `Import entries from an xlsx workbook. Headers are expected on row 2 and
data from row 3 on. A column mapping is suggested from the headers; adjust it
with repeated --map flags, e.g. --map Qty="Order Quantity". Mapping a field to
an empty column name unmaps it. Only Article must be mapped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			headers, err := importer.ReadHeaders(path)
			if err != nil {
				return err
			}

			mapping := colmap.Suggest(headers)
			if err := applyMapOverrides(mapping, mapOverrides, headers); err != nil {
				return err
			}
			if err := mapping.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderMappingTable(mapping))
			if dryRun {
				fmt.Fprintln(out, "Dry run; nothing imported")
				return nil
			}

			return ctx.withStore(func(store *ledger.Store) error {
				report, err := importer.New(store, ctx.ensureLogger()).Run(cmd.Context(), path, mapping)
				if err != nil {
					return err
				}
				for _, warning := range report.Warnings {
					printWarning(cmd.ErrOrStderr(), warning)
				}
				fmt.Fprintf(out, "Imported %d entries (batch %s)\n", report.Imported, report.BatchID)
				if len(report.Warnings) > 0 {
					fmt.Fprintf(out, "%d rows reported problems\n", len(report.Warnings))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&mapOverrides, "map", nil, "Override a suggested mapping as Field=Column (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the column mapping without importing")
	return cmd
}

func applyMapOverrides(mapping colmap.Mapping, overrides, headers []string) error {
	for _, override := range overrides {
		name, header, ok := strings.Cut(override, "=")
		if !ok {
			return fmt.Errorf("invalid --map value %q, expected Field=Column", override)
		}
		field, err := colmap.ParseField(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		if err := mapping.Set(field, strings.TrimSpace(header), headers); err != nil {
			return err
		}
	}
	return nil
}

func renderMappingTable(mapping colmap.Mapping) string {
	rows := make([][]string, 0, len(colmap.Fields))
	for _, field := range colmap.Fields {
		header := mapping[field]
		if header == colmap.NotMapped {
			header = "(not mapped)"
		}
		rows = append(rows, []string{string(field), header})
	}
	return renderTable([]string{"Field", "Column"}, rows, []columnAlignment{alignLeft, alignLeft})
}
