package main

import (
	"fmt"

	"termnote/pkg/note"
	"termnote/pkg/termtext"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/spf13/cobra"
)

func newNoteCmd(a *app) *cobra.Command {
	var (
		title    string
		link     string
		style    string
		maxWidth int
		copyText bool
	)

	cmd := &cobra.Command{
		Use:   "note [message...]",
		Short: "Print a message inside a bordered box",
		Long: `Wrap the message to the terminal width and draw a box around it.
The message is read from stdin when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			if style != "" {
				a.cfg.BoxStyle = style
				if err := a.cfg.Validate(); err != nil {
					return fmt.Errorf("invalid --style: %w", err)
				}
			}

			opts := a.noteOptions(cmd, maxWidth)
			opts.TitleURL = link
			if err := note.Write(cmd.OutOrStdout(), message, title, opts); err != nil {
				return err
			}
			a.logger.Debug("rendered note",
				"max_width", note.ResolveMaxWidth(opts),
				"title", title != "",
				"link", link != "",
				"rich", opts.Rich)

			if copyText {
				plain := termtext.StripANSI(note.Format(message, title, opts))
				if _, err := fmt.Fprint(cmd.ErrOrStderr(), osc52.New(plain)); err != nil {
					return fmt.Errorf("failed to copy note: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title embedded in the top border")
	cmd.Flags().StringVar(&link, "link", "", "make the title an OSC 8 hyperlink to this URL")
	cmd.Flags().StringVar(&style, "style", "", "box style: sharp, rounded")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "wrap width (default: columns - 10, at least 40)")
	cmd.Flags().BoolVar(&copyText, "copy", false, "also copy the plain note to the clipboard via OSC 52")
	return cmd
}
