package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/clickaround/sadam-tools/internal/artifacts"
	"github.com/clickaround/sadam-tools/internal/capture"
	"github.com/clickaround/sadam-tools/internal/config"
	"github.com/clickaround/sadam-tools/internal/logging"
	"github.com/clickaround/sadam-tools/internal/mqtt"
	"github.com/clickaround/sadam-tools/internal/window"
)

// app carries state shared by every subcommand. The function fields are
// swapped out in tests.
type app struct {
	configPath string
	verbose    bool

	cfg config.Config
	log *slog.Logger
	out io.Writer
	err io.Writer

	listWindows window.Lister
	grab        capture.Grabber
	historyPath func() string
	announce    func(mqtt.Options, string, artifacts.Artifact) error
}

func newApp() *app {
	return &app{
		out:         os.Stdout,
		err:         os.Stderr,
		listWindows: window.List,
		historyPath: artifacts.DefaultPath,
		announce:    mqtt.Announce,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "sadam",
		Short:         "App icon generator and window screenshot helper",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = logging.New(a.err, a.verbose)
			slog.SetDefault(a.log)

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if cfg.Path != "" {
				a.log.Debug("config loaded", "path", cfg.Path)
			}
			return nil
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.err)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to sadam-config.json")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(iconCmd(a), shotCmd(a), windowsCmd(a), historyCmd(a), versionCmd(a))
	return root
}

// saved reports each written file on stdout, then records and announces it.
// Recording and announcing are best-effort.
func (a *app) saved(arts []artifacts.Artifact) {
	for _, art := range arts {
		fmt.Fprintf(a.out, "Saved: %s\n", art.Path)
	}
	if a.cfg.History {
		a.record(arts)
	}
	if a.cfg.MQTT.Enabled() {
		opts := mqtt.Options{
			Broker:   a.cfg.MQTT.Broker,
			ClientID: a.cfg.MQTT.ClientID,
			QoS:      a.cfg.MQTT.QoS,
			Retain:   a.cfg.MQTT.Retain,
			Username: a.cfg.MQTT.Username,
			Password: a.cfg.MQTT.Password,
		}
		for _, art := range arts {
			if err := a.announce(opts, a.cfg.MQTT.TopicPrefix, art); err != nil {
				a.log.Warn("mqtt announce failed", "path", art.Path, "err", err)
			}
		}
	}
}

func (a *app) record(arts []artifacts.Artifact) {
	s, err := artifacts.Open(a.historyPath())
	if err != nil {
		a.log.Warn("history unavailable", "err", err)
		return
	}
	defer s.Close()
	for _, art := range arts {
		if err := s.Record(art); err != nil {
			a.log.Warn("history record failed", "path", art.Path, "err", err)
		}
	}
}
