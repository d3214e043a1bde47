package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clickaround/sadam-tools/internal/window"
)

func windowsCmd(a *app) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "windows",
		Short: "List visible windows, optionally filtered by title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.listWindows(cmd.Context())
			if err != nil {
				return err
			}
			ws := window.Match(all, title)
			for _, w := range ws {
				fmt.Fprintf(a.out, "%-6d %-6d %5dx%-5d %s\n", w.Left, w.Top, w.Width, w.Height, w.Title)
			}
			a.log.Debug("windows listed", "total", len(all), "matched", len(ws))
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "only windows whose title contains this")
	return cmd
}
