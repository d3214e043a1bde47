package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clickaround/sadam-tools/internal/artifacts"
	"github.com/clickaround/sadam-tools/internal/capture"
	"github.com/clickaround/sadam-tools/internal/window"
)

const defaultShotName = "01_menu_fortune"

func shotCmd(a *app) *cobra.Command {
	var (
		title string
		dir   string
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "shot [name]",
		Short: "Capture the app window without its frame",
		Long: `Finds the first window whose title contains --title, waits for the
app to finish loading, then saves the window's client area as <name>.png.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultShotName
			if len(args) == 1 {
				name = args[0]
			}
			if title == "" {
				title = a.cfg.WindowTitle
			}
			if dir == "" {
				dir = a.cfg.ScreenshotDir
			}
			if !cmd.Flags().Changed("delay") {
				delay = a.cfg.Delay()
			}
			if delay < 0 {
				return fmt.Errorf("delay must be >= 0, got %s", delay)
			}

			ctx := cmd.Context()
			locate := func(ctx context.Context) (window.Window, error) {
				return window.FindWith(ctx, a.listWindows, title)
			}

			w, err := locate(ctx)
			if err != nil {
				return err
			}
			a.log.Info("app window found", "window", w.String(), "delay", delay)

			c := capture.New(delay, a.insets())
			if a.grab != nil {
				c.Grab = a.grab
			}
			art, err := c.Shot(ctx, locate, dir, name)
			if err != nil {
				return err
			}
			a.saved([]artifacts.Artifact{art})
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "window title substring (default: window_title from config)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default: screenshot_dir from config)")
	cmd.Flags().DurationVar(&delay, "delay", 0, "wait before capturing (default: delay_seconds from config)")
	return cmd
}

func (a *app) insets() capture.Insets {
	in := a.cfg.Insets
	return capture.Insets{Left: in.Left, Top: in.Top, Right: in.Right, Bottom: in.Bottom}
}
