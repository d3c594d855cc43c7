package main

import (
	"fmt"

	"termnote/pkg/note"

	"github.com/spf13/cobra"
)

func newWrapCmd(a *app) *cobra.Command {
	var (
		maxWidth int
		pad      bool
	)

	cmd := &cobra.Command{
		Use:   "wrap [message...]",
		Short: "Wrap a message to a column budget",
		Long: `Wrap every line of the message, keeping indentation and bullets.
The message is read from stdin when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			opts := a.noteOptions(cmd, maxWidth)
			opts.PadLines = pad

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), note.WrapMessage(message, opts)); err != nil {
				return fmt.Errorf("failed to write wrapped text: %w", err)
			}
			a.logger.Debug("wrapped message", "max_width", note.ResolveMaxWidth(opts), "pad", pad)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "wrap width (default: columns - 10, at least 40)")
	cmd.Flags().BoolVar(&pad, "pad", false, "right-pad every line to the wrap width")
	return cmd
}
