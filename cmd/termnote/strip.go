package main

import (
	"fmt"
	"io"

	"termnote/pkg/termtext"

	"github.com/spf13/cobra"
)

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip",
		Short: "Remove colour and hyperlink escapes from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			plain := termtext.StripANSI(string(data))
			if _, err := io.WriteString(cmd.OutOrStdout(), plain); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			a.logger.Debug("stripped escapes", "in_bytes", len(data), "out_bytes", len(plain))
			return nil
		},
	}
}
