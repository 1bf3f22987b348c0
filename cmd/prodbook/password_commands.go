package main

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newPasswdCommand(ctx *commandContext) *cobra.Command {
	passwdCmd := &cobra.Command{
		Use:   "passwd",
		Short: "Manage the application password",
	}

	passwdCmd.AddCommand(newPasswdSetCommand(ctx))
	passwdCmd.AddCommand(newPasswdCheckCommand(ctx))

	return passwdCmd
}

func newPasswdSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Set or change the application password",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.credentials()
			if err != nil {
				return err
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			fmt.Fprint(cmd.OutOrStdout(), "New password: ")
			password, err := readLine(reader)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), "Confirm password: ")
			confirmation, err := readLine(reader)
			if err != nil {
				return err
			}
			if password != confirmation {
				return errors.New("passwords do not match")
			}

			if err := store.SetPassword(password); err != nil {
				return err
			}
			ctx.ensureLogger().Info("password updated")
			fmt.Fprintln(cmd.OutOrStdout(), "Password updated")
			return nil
		},
	}
}

func newPasswdCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the application password",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.credentials()
			if err != nil {
				return err
			}

			set, err := store.IsSet()
			if err != nil {
				return err
			}
			if !set {
				return errors.New("no password has been set; run `prodbook passwd set` first")
			}

			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			password, err := readLine(bufio.NewReader(cmd.InOrStdin()))
			if err != nil {
				return err
			}
			ok, err := store.Verify(password)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("password rejected")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password accepted")
			return nil
		},
	}
}
