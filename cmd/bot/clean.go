package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgard/fkusi/internal/linkclean"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <url>...",
		Short: "Print each URL with its tracking parameters removed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, raw := range args {
				if _, err := fmt.Fprintf(out, "%s -> %s\n", raw, linkclean.Clean(raw)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
