// Package config loads lander settings from defaults, an optional
// lander.yaml and LANDER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the given directory.
const FileName = "lander.yaml"

// AppDir is the directory under os.UserConfigDir searched after dir.
const AppDir = "lunarlander"

type WindowConfig struct {
	Scale float64 `mapstructure:"scale"`
}

type AudioConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	Volume   float64 `mapstructure:"volume"`
	CacheDir string  `mapstructure:"cacheDir"`
}

type RecordsConfig struct {
	Backend string `mapstructure:"backend"` // gdata, sqlite or memory
	AppName string `mapstructure:"appName"`
	Path    string `mapstructure:"path"`
}

type TTYConfig struct {
	// ThrustHoldTicks keeps a thruster firing after a key press, since
	// terminals report no key release.
	ThrustHoldTicks int `mapstructure:"thrustHoldTicks"`
}

// Config is the full settings tree.
type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	Seed     uint64        `mapstructure:"seed"`
	Window   WindowConfig  `mapstructure:"window"`
	Audio    AudioConfig   `mapstructure:"audio"`
	Records  RecordsConfig `mapstructure:"records"`
	TTY      TTYConfig     `mapstructure:"tty"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)

	v.SetDefault("window.scale", 1.0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.8)
	v.SetDefault("audio.cacheDir", "")

	v.SetDefault("records.backend", "gdata")
	v.SetDefault("records.appName", "lunarlander")
	v.SetDefault("records.path", "lander_scores.db")

	v.SetDefault("tty.thrustHoldTicks", 8)
}

// Load reads lander.yaml from dir, or failing that from the user config
// directory. A missing file is not an error; a malformed one is.
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	if userDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(userDir, AppDir))
	}

	v.SetEnvPrefix("LANDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the front-ends cannot run with.
func (c Config) Validate() error {
	switch c.Records.Backend {
	case "gdata", "sqlite", "memory":
	default:
		return fmt.Errorf("records.backend: unknown backend %q", c.Records.Backend)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale: must be positive, got %v", c.Window.Scale)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume: must be within 0..1, got %v", c.Audio.Volume)
	}
	if c.TTY.ThrustHoldTicks < 1 {
		return fmt.Errorf("tty.thrustHoldTicks: must be at least 1, got %d", c.TTY.ThrustHoldTicks)
	}
	return nil
}
