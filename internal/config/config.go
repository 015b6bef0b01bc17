package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"caladd/internal/fsutil"
	"caladd/internal/publish"
)

// Environment variables that override the config file.
const (
	EnvConfig    = "CALADD_CONFIG"
	EnvPublisher = "CALADD_PUBLISHER"
	EnvICSPath   = "CALADD_ICS_PATH"
	EnvCalendar  = "CALADD_CALENDAR"
	EnvLogLevel  = "CALADD_LOG_LEVEL"
)

const (
	defaultICSPath = "~/.local/share/caladd/calendar.ics"
	defaultTimeout = 10 * time.Second
)

// Config is the top-level application configuration.
type Config struct {
	// Publisher selects the calendar store: "ics" or "calendar-app".
	Publisher string `yaml:"publisher" json:"publisher"`

	// ICSPath is the calendar file used by the ics publisher. A leading
	// "~/" is expanded.
	ICSPath string `yaml:"ics_path" json:"ics_path"`

	// Calendar is the Calendar.app calendar events are added to.
	Calendar string `yaml:"calendar" json:"calendar"`

	// Timeout bounds the single publish call.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// LogLevel is one of "debug", "info", "error".
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Publisher: publish.BackendICS,
		ICSPath:   defaultICSPath,
		Calendar:  publish.DefaultCalendar,
		Timeout:   defaultTimeout,
		LogLevel:  "info",
	}
}

// DefaultPath is $CALADD_CONFIG, else <user config dir>/caladd/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "caladd.yaml"
	}
	return filepath.Join(dir, "caladd", "config.yaml")
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Publisher == "" {
		c.Publisher = publish.BackendICS
	}
	if c.ICSPath == "" {
		c.ICSPath = defaultICSPath
	}
	if c.Calendar == "" {
		c.Calendar = publish.DefaultCalendar
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports settings that Normalize cannot repair.
func (c *Config) Validate() error {
	switch c.Publisher {
	case publish.BackendICS, publish.BackendCalendarApp:
		return nil
	default:
		return fmt.Errorf("config: unknown publisher %q (want %q or %q)", c.Publisher, publish.BackendICS, publish.BackendCalendarApp)
	}
}

// PublishOptions converts the config into publisher options.
func (c *Config) PublishOptions() publish.Options {
	return publish.Options{
		Backend:  c.Publisher,
		ICSPath:  fsutil.ExpandHome(c.ICSPath),
		Calendar: c.Calendar,
	}
}

// applyEnv overrides fields from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPublisher); v != "" {
		c.Publisher = v
	}
	if v := os.Getenv(EnvICSPath); v != "" {
		c.ICSPath = v
	}
	if v := os.Getenv(EnvCalendar); v != "" {
		c.Calendar = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// LoadDotEnv loads a .env file into the process environment. Existing
// variables win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - write a default config with 0600 perms (parent 0700)
//   - use the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
//   - Environment overrides are applied last, then the result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	cfg, err := read(path)
	if err != nil {
		return cfg, err
	}

	cfg.applyEnv()
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the given configuration to path atomically with 0600 perms.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, data, 0o600)
}
