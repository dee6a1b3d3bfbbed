package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds command-line overrides. Only flags the user actually set are
// applied, so file and environment values survive when a flag is absent.
type Flags struct {
	ConfigPath      string
	DataDir         string
	Locale          string
	LogLevel        string
	LogPath         string
	SplashDelay     time.Duration
	ForceOnboarding bool
	Offline         bool
	Ephemeral       bool

	set *pflag.FlagSet
}

// AddFlags registers the client flags on flagSet.
func (f *Flags) AddFlags(flagSet *pflag.FlagSet) {
	f.set = flagSet
	flagSet.StringVarP(&f.ConfigPath, "config", "c", "", "path to config.toml (default: <user config dir>/drivenext/config.toml)")
	flagSet.StringVar(&f.DataDir, "data-dir", "", "directory for session flags, registration staging and photos")
	flagSet.StringVar(&f.Locale, "locale", "", "user interface language (ru, en)")
	flagSet.StringVar(&f.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flagSet.StringVar(&f.LogPath, "log-path", "", "also write JSON log records to this file")
	flagSet.DurationVar(&f.SplashDelay, "splash-delay", 0, "how long the splash screen is shown")
	flagSet.BoolVar(&f.ForceOnboarding, "force-onboarding", false, "always show onboarding on cold start (manual verification only)")
	flagSet.BoolVar(&f.Offline, "offline", false, "report no network connectivity")
	flagSet.BoolVar(&f.Ephemeral, "ephemeral", false, "keep session flags in memory only")
}

// Apply copies every flag the user set onto cfg.
func (f *Flags) Apply(cfg *Config) {
	if f.set == nil {
		return
	}
	if f.set.Changed("data-dir") {
		cfg.DataDir = f.DataDir
	}
	if f.set.Changed("locale") {
		cfg.Locale = f.Locale
	}
	if f.set.Changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if f.set.Changed("log-path") {
		cfg.Log.Path = f.LogPath
	}
	if f.set.Changed("splash-delay") {
		cfg.SplashDelay = f.SplashDelay
	}
	if f.set.Changed("force-onboarding") {
		cfg.Debug.ForceOnboarding = f.ForceOnboarding
	}
	if f.set.Changed("offline") {
		cfg.Debug.Offline = f.Offline
	}
}
