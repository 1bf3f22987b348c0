package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"prodbook/internal/config"
	"prodbook/internal/images"
	"prodbook/internal/logging"
)

func newImageCommand(ctx *commandContext) *cobra.Command {
	imageCmd := &cobra.Command{
		Use:   "image",
		Short: "Manage product images",
	}

	imageCmd.AddCommand(newImageAttachCommand(ctx))
	imageCmd.AddCommand(newImagePathCommand(ctx))

	return imageCmd
}

func newImageAttachCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "attach <article> <image-file>",
		Short: "Attach an image to an article, replacing any previous one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			source, err := config.ExpandPath(args[1])
			if err != nil {
				return err
			}

			stored, err := images.Attach(cfg.Paths.ImagesDir, args[0], source)
			if err != nil {
				return err
			}
			ctx.ensureLogger().Info("image attached",
				logging.String("article", args[0]),
				logging.String(logging.FieldPath, stored),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Stored image at %s\n", stored)
			return nil
		},
	}
}

func newImagePathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path <article>",
		Short: "Print the stored image path for an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := images.PathFor(cfg.Paths.ImagesDir, args[0])
			if errors.Is(err, images.ErrNoImage) {
				return fmt.Errorf("no image stored for article %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
