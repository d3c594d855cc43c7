package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newWidthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "width [text...]",
		Short: "Print the visible width of each argument",
		Long: `Print the number of terminal columns each argument occupies, ignoring
colour and hyperlink escapes. Each stdin line is measured when no arguments
are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.measurer()
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, arg := range args {
					fmt.Fprintln(out, m.Width(arg))
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				fmt.Fprintln(out, m.Width(scanner.Text()))
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return nil
		},
	}
}
