package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Browser BrowserConfig `mapstructure:"browser"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds the remote catalog endpoints
type CatalogConfig struct {
	APIURL         string        `mapstructure:"api_url"`  // Listing API origin
	CDNURL         string        `mapstructure:"cdn_url"`  // Cover image origin
	SiteURL        string        `mapstructure:"site_url"` // Detail page origin
	UserAgent      string        `mapstructure:"user_agent"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultRoute      string        `mapstructure:"default_route"` // "/", "/popular" or "/latest"
	Debounce          time.Duration `mapstructure:"debounce"`
	GridColumns       int           `mapstructure:"grid_columns"`
	ResetPageOnChange bool          `mapstructure:"reset_page_on_change"` // jump back to page 1 on new search text
}

// BrowserConfig holds the command used to open detail pages
type BrowserConfig struct {
	Command string   `mapstructure:"command"` // empty = system default
	Args    []string `mapstructure:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File   string `mapstructure:"file"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "text"
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			APIURL:         "https://api.mangadex.org",
			CDNURL:         "https://uploads.mangadex.org",
			SiteURL:        "https://mangadex.org",
			UserAgent:      "MangaGueh/1.0",
			RequestTimeout: 30 * time.Second,
		},
		UI: UIConfig{
			DefaultRoute:      "/",
			Debounce:          500 * time.Millisecond,
			GridColumns:       3,
			ResetPageOnChange: false,
		},
		Browser: BrowserConfig{
			Command: "",
			Args:    []string{},
		},
		Logging: LoggingConfig{
			File:   defaultLogPath(),
			Level:  "INFO",
			Format: "json",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mangagueh", "mangagueh.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "mangagueh", "mangagueh.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mangagueh")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "mangagueh")
	}
}

// newViper returns a viper instance seeded with every default so that
// environment overrides reach nested keys during Unmarshal
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()

	v.SetDefault("catalog.api_url", cfg.Catalog.APIURL)
	v.SetDefault("catalog.cdn_url", cfg.Catalog.CDNURL)
	v.SetDefault("catalog.site_url", cfg.Catalog.SiteURL)
	v.SetDefault("catalog.user_agent", cfg.Catalog.UserAgent)
	v.SetDefault("catalog.request_timeout", cfg.Catalog.RequestTimeout)

	v.SetDefault("ui.default_route", cfg.UI.DefaultRoute)
	v.SetDefault("ui.debounce", cfg.UI.Debounce)
	v.SetDefault("ui.grid_columns", cfg.UI.GridColumns)
	v.SetDefault("ui.reset_page_on_change", cfg.UI.ResetPageOnChange)

	v.SetDefault("browser.command", cfg.Browser.Command)
	v.SetDefault("browser.args", cfg.Browser.Args)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)

	// Environment variable overrides, e.g. MANGAGUEH_UI_DEBOUNCE=300ms
	v.SetEnvPrefix("MANGAGUEH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment.
// An explicit path must exist; otherwise the default locations are searched
// and a missing file just means defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the UI cannot work with
func (c *Config) Validate() error {
	if c.UI.Debounce < 0 {
		return fmt.Errorf("ui.debounce must not be negative, got %s", c.UI.Debounce)
	}
	if c.UI.GridColumns < 1 {
		return fmt.Errorf("ui.grid_columns must be at least 1, got %d", c.UI.GridColumns)
	}
	if c.Catalog.RequestTimeout <= 0 {
		return fmt.Errorf("catalog.request_timeout must be positive, got %s", c.Catalog.RequestTimeout)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}

// SaveConfig writes cfg as YAML to path, or to the default location when path is empty.
// Returns the file written.
func SaveConfig(cfg *Config, path string) (string, error) {
	if path == "" {
		path = filepath.Join(defaultConfigPath(), "config.yaml")
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("catalog.api_url", cfg.Catalog.APIURL)
	v.Set("catalog.cdn_url", cfg.Catalog.CDNURL)
	v.Set("catalog.site_url", cfg.Catalog.SiteURL)
	v.Set("catalog.user_agent", cfg.Catalog.UserAgent)
	v.Set("catalog.request_timeout", cfg.Catalog.RequestTimeout.String())

	v.Set("ui.default_route", cfg.UI.DefaultRoute)
	v.Set("ui.debounce", cfg.UI.Debounce.String())
	v.Set("ui.grid_columns", cfg.UI.GridColumns)
	v.Set("ui.reset_page_on_change", cfg.UI.ResetPageOnChange)

	v.Set("browser.command", cfg.Browser.Command)
	v.Set("browser.args", cfg.Browser.Args)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.format", cfg.Logging.Format)

	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
