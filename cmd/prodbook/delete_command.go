package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prodbook/internal/ledger"
	"prodbook/internal/logging"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
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

				if !skipConfirm {
					ok, err := confirm(cmd, fmt.Sprintf("Delete entry %d (%s)? [y/N]: ", id, entry.Article))
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
						return nil
					}
				}

				if err := store.Delete(cmd.Context(), id); err != nil {
					return err
				}
				ctx.ensureLogger().Info("entry deleted", logging.Int64(logging.FieldEntryID, id))
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", id)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, err := readLine(bufio.NewReader(cmd.InOrStdin()))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine consumes one line from the reader. Commands that prompt more than
// once must reuse a single reader, or its buffer swallows the later lines.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
