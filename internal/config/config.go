// Package config loads the client configuration from a TOML file, environment
// variables and command-line flags, in that order of increasing precedence.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/drivenext/drivenext/internal/constants"
)

//go:embed default.toml
var defaultTOML []byte

// Config is the top-level TOML structure.
type Config struct {
	DataDir     string        `toml:"data_dir"`
	Locale      string        `toml:"locale"`
	SplashDelay time.Duration `toml:"splash_delay"`

	Log     LogConfig     `toml:"log"`
	Debug   DebugConfig   `toml:"debug"`
	Window  WindowConfig  `toml:"window"`
	Theme   ThemeConfig   `toml:"theme"`
	Power   PowerConfig   `toml:"power"`
	Capture CaptureConfig `toml:"capture"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// DebugConfig holds switches that exist only for manual verification.
type DebugConfig struct {
	ForceOnboarding bool `toml:"force_onboarding"`
	Offline         bool `toml:"offline"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Borderless bool   `toml:"borderless"`
}

type ThemeConfig struct {
	FontPath        string `toml:"font_path"`
	IconFontPath    string `toml:"icon_font_path"`
	AccentColor     uint32 `toml:"accent_color"`
	BackgroundColor uint32 `toml:"background_color"`
}

type PowerConfig struct {
	DevicePath string `toml:"device_path"`
}

type CaptureConfig struct {
	GalleryDir    string `toml:"gallery_dir"`
	CameraCommand string `toml:"camera_command"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if _, err := toml.NewDecoder(bytes.NewReader(defaultTOML)).Decode(cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Dir returns the directory for DriveNext files, using XDG_CONFIG_HOME or
// falling back to ~/.config.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "drivenext"), nil
}

// DefaultPath returns the path of config.toml inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the file at path over the defaults, then applies environment
// overrides and the flags the user set. Derived paths are resolved last.
// A missing file is not an error. Unknown keys are. flags may be nil.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		case len(md.Undecoded()) > 0:
			undecoded := md.Undecoded()
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return nil, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	cfg.applyEnvOverrides()
	if flags != nil {
		flags.Apply(cfg)
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		c.Locale = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(constants.DataDirEnvVar); v != "" {
		c.DataDir = v
	}
	if v, ok := envBool(constants.ForceOnboardingEnvVar); ok {
		c.Debug.ForceOnboarding = v
	}
	if v, ok := envBool(constants.OfflineEnvVar); ok {
		c.Debug.Offline = v
	}
}

func envBool(name string) (bool, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

func (c *Config) resolve() error {
	if c.DataDir == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		c.DataDir = dir
	}
	if c.Capture.GalleryDir == "" {
		c.Capture.GalleryDir = filepath.Join(c.DataDir, "gallery")
	}
	if c.SplashDelay < 0 {
		return fmt.Errorf("config: splash_delay must not be negative, got %s", c.SplashDelay)
	}
	return nil
}

// SessionPath is where the session flags are persisted.
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, "session.toml")
}

// StagingPath is where partially entered registration fields are kept.
func (c *Config) StagingPath() string {
	return filepath.Join(c.DataDir, "registration_temp.toml")
}

// PhotoDir is where captured document photos are stored.
func (c *Config) PhotoDir() string {
	return filepath.Join(c.DataDir, "photos")
}
