package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/clickaround/sadam-tools/internal/paths"
)

// Defaults applied when the config file omits a value.
const (
	DefaultScreenshotDir  = "screenshots"
	DefaultWindowTitle    = "frontend"
	DefaultDelaySeconds   = 3
	DefaultIconDir        = "assets/icons"
	DefaultIconMasterSize = 1024
	DefaultTopicPrefix    = "sadam"
)

// DefaultIconSizes lists the downscaled outputs written next to the master icon.
var DefaultIconSizes = []int{512, 192, 144, 96, 72, 48}

// Insets is the number of pixels trimmed from each edge of a window's
// outer rectangle to drop the OS frame and title bar.
type Insets struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// DefaultInsets matches a standard Windows 10/11 frame.
var DefaultInsets = Insets{Left: 8, Top: 31, Right: 8, Bottom: 8}

// MQTT holds optional broker settings for announcing written images.
type MQTT struct {
	Broker      string `json:"broker,omitempty"`
	ClientID    string `json:"client_id,omitempty"`
	TopicPrefix string `json:"topic_prefix,omitempty"`
	QoS         byte   `json:"qos,omitempty"`
	Retain      bool   `json:"retain,omitempty"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
}

// Enabled reports whether a broker is configured.
func (m MQTT) Enabled() bool { return m.Broker != "" }

// Config holds all settings read from sadam-config.json.
type Config struct {
	ScreenshotDir  string `json:"screenshot_dir"`
	WindowTitle    string `json:"window_title"`
	DelaySeconds   int    `json:"delay_seconds"`
	Insets         Insets `json:"insets"`
	IconDir        string `json:"icon_dir"`
	IconMasterSize int    `json:"icon_master_size"`
	IconSizes      []int  `json:"icon_sizes"`
	IconICO        bool   `json:"icon_ico"`
	History        bool   `json:"history"`
	MQTT           MQTT   `json:"mqtt"`

	// Path is the file the config was read from, empty for defaults.
	Path string `json:"-"`
}

// Default returns a Config populated with every default value.
func Default() Config {
	var c Config
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.ScreenshotDir = DefaultScreenshotDir
	c.WindowTitle = DefaultWindowTitle
	c.DelaySeconds = DefaultDelaySeconds
	c.Insets = DefaultInsets
	c.IconDir = DefaultIconDir
	c.IconMasterSize = DefaultIconMasterSize
	c.IconSizes = append([]int(nil), DefaultIconSizes...)
	c.IconICO = true
	c.History = true
	c.MQTT.TopicPrefix = DefaultTopicPrefix
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.setDefaults()
	type Alias Config
	if err := json.Unmarshal(data, (*Alias)(c)); err != nil {
		return err
	}
	return c.Validate()
}

// Validate rejects values that cannot produce an image.
func (c Config) Validate() error {
	if c.DelaySeconds < 0 {
		return fmt.Errorf("delay_seconds must be >= 0, got %d", c.DelaySeconds)
	}
	if c.IconMasterSize < 1 {
		return fmt.Errorf("icon_master_size must be >= 1, got %d", c.IconMasterSize)
	}
	for _, s := range c.IconSizes {
		if s < 1 {
			return fmt.Errorf("icon_sizes entries must be >= 1, got %d", s)
		}
	}
	in := c.Insets
	if in.Left < 0 || in.Top < 0 || in.Right < 0 || in.Bottom < 0 {
		return fmt.Errorf("insets must be >= 0, got %+v", in)
	}
	return nil
}

// Delay returns DelaySeconds as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelaySeconds) * time.Second
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; a missing file is an error)
//  2. sadam-config.json next to the running binary
//  3. sadam-config.json in paths.DataDir()
//
// When neither implicit location exists, Default() is returned.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), paths.ConfigFileName))
	}
	candidates = append(candidates, filepath.Join(paths.DataDir(), paths.ConfigFileName))

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("checking config %s: %w", p, err)
		}
	}
	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}
