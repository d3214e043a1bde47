package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clickaround/sadam-tools/internal/iconset"
)

func iconCmd(a *app) *cobra.Command {
	var (
		dir   string
		size  int
		sizes []int
		noICO bool
	)
	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Generate the moon-and-stars app icon at every resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := iconset.Options{
				MasterSize: a.cfg.IconMasterSize,
				Sizes:      a.cfg.IconSizes,
				ICO:        a.cfg.IconICO && !noICO,
			}
			if dir == "" {
				dir = a.cfg.IconDir
			}
			if cmd.Flags().Changed("size") {
				opts.MasterSize = size
			}
			if cmd.Flags().Changed("sizes") {
				opts.Sizes = sizes
			}

			a.log.Info("generating icons", "dir", dir, "master", opts.MasterSize, "sizes", opts.Sizes, "ico", opts.ICO)
			arts, err := iconset.Generate(dir, opts)
			a.saved(arts)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "\nDone! Icon files generated in %s\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default: icon_dir from config)")
	cmd.Flags().IntVar(&size, "size", 0, "master icon size in pixels")
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "downscaled sizes, comma separated")
	cmd.Flags().BoolVar(&noICO, "no-ico", false, "skip app_icon.ico")
	return cmd
}
