package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Timing TimingConfig `mapstructure:"timing"`
	Mock   MockConfig   `mapstructure:"mock"`
	Log    LogConfig    `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme           string `mapstructure:"theme"`
	CurrencySymbol  string `mapstructure:"currency_symbol"`
	DefaultUsername string `mapstructure:"default_username"`
	Width           int    `mapstructure:"width"`
}

// TimingConfig holds the simulated delays and refresh intervals.
type TimingConfig struct {
	LoginDelay     time.Duration `mapstructure:"login_delay"`
	CaptureSeconds int           `mapstructure:"capture_seconds"`
	CaptureTick    time.Duration `mapstructure:"capture_tick"`
	CaptureSettle  time.Duration `mapstructure:"capture_settle"`
	SensorInterval time.Duration `mapstructure:"sensor_interval"`
	CopiedReset    time.Duration `mapstructure:"copied_reset"`
}

// MockConfig controls how display values are produced.
type MockConfig struct {
	Randomize bool  `mapstructure:"randomize"`
	Seed      int64 `mapstructure:"seed"`
}

// LogConfig holds slog settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			Theme:           ThemeAuto,
			CurrencySymbol:  "$",
			DefaultUsername: "demo_user",
			Width:           56,
		},
		Timing: TimingConfig{
			LoginDelay:     1500 * time.Millisecond,
			CaptureSeconds: 10,
			CaptureTick:    time.Second,
			CaptureSettle:  time.Second,
			SensorInterval: 500 * time.Millisecond,
			CopiedReset:    2 * time.Second,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Bounds of timing.capture_settle.
const (
	MinCaptureSettle = 800 * time.Millisecond
	MaxCaptureSettle = time.Second
)

// Flags registers the command-line overrides understood by Load.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a TOML config file")
	fs.String("theme", "", "color theme: auto, light or dark")
	fs.String("log-level", "", "minimum log level: debug, info, warn, error")
	fs.String("log-file", "", "also write JSON log records to this file")
	fs.Bool("random", false, "randomize mock hashes, scores and balances")
}

// Load reads configuration from defaults, file, env and flags (in that order of
// precedence, lowest first). Env var overrides use prefix HASHGAIT_. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.currency_symbol", d.UI.CurrencySymbol)
	v.SetDefault("ui.default_username", d.UI.DefaultUsername)
	v.SetDefault("ui.width", d.UI.Width)
	v.SetDefault("timing.login_delay", d.Timing.LoginDelay)
	v.SetDefault("timing.capture_seconds", d.Timing.CaptureSeconds)
	v.SetDefault("timing.capture_tick", d.Timing.CaptureTick)
	v.SetDefault("timing.capture_settle", d.Timing.CaptureSettle)
	v.SetDefault("timing.sensor_interval", d.Timing.SensorInterval)
	v.SetDefault("timing.copied_reset", d.Timing.CopiedReset)
	v.SetDefault("mock.randomize", d.Mock.Randomize)
	v.SetDefault("mock.seed", d.Mock.Seed)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HASHGAIT_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "hashgait"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HASHGAIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// the default file is optional; an explicit path must be readable
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case cfgPath != "":
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		case !errors.As(err, &notFound):
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for key, flag := range map[string]string{
			"ui.theme":       "theme",
			"log.level":      "log-level",
			"log.file":       "log-file",
			"mock.randomize": "random",
		} {
			f := fs.Lookup(flag)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Validate()
	return c, nil
}

// Validate replaces unusable values with defaults. Nothing in the app can
// fail on a bad timing value, so there is no error to report.
func (c *Config) Validate() {
	d := Defaults()
	switch strings.ToLower(strings.TrimSpace(c.UI.Theme)) {
	case ThemeLight:
		c.UI.Theme = ThemeLight
	case ThemeDark:
		c.UI.Theme = ThemeDark
	default:
		c.UI.Theme = ThemeAuto
	}
	if c.UI.CurrencySymbol == "" {
		c.UI.CurrencySymbol = d.UI.CurrencySymbol
	}
	if strings.TrimSpace(c.UI.DefaultUsername) == "" {
		c.UI.DefaultUsername = d.UI.DefaultUsername
	}
	if c.UI.Width < 32 {
		c.UI.Width = d.UI.Width
	}
	positive := func(v *time.Duration, def time.Duration) {
		if *v <= 0 {
			*v = def
		}
	}
	positive(&c.Timing.LoginDelay, d.Timing.LoginDelay)
	positive(&c.Timing.CaptureTick, d.Timing.CaptureTick)
	positive(&c.Timing.CaptureSettle, d.Timing.CaptureSettle)
	c.Timing.CaptureSettle = min(max(c.Timing.CaptureSettle, MinCaptureSettle), MaxCaptureSettle)
	positive(&c.Timing.SensorInterval, d.Timing.SensorInterval)
	positive(&c.Timing.CopiedReset, d.Timing.CopiedReset)
	if c.Timing.CaptureSeconds <= 0 {
		c.Timing.CaptureSeconds = d.Timing.CaptureSeconds
	}
}
