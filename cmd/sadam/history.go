package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/clickaround/sadam-tools/internal/artifacts"
)

func historyCmd(a *app) *cobra.Command {
	var days, clean int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously written icons and screenshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := artifacts.Open(a.historyPath())
			if err != nil {
				return fmt.Errorf("opening history: %w", err)
			}
			defer s.Close()

			if cmd.Flags().Changed("clean") {
				n, err := s.Clean(clean)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Removed %d entries older than %d days\n", n, clean)
				return nil
			}

			entries, err := s.Entries(days)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(a.out, "No history yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintln(a.out, e.String())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "only show the last N days (0 = all)")
	cmd.Flags().IntVar(&clean, "clean", 0, "delete entries older than N days")
	return cmd
}

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build date",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "sadam %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
		},
	}
}
