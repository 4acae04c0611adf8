package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Log  LogConfig
	Keys map[string][]string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	City            string
	Currency        string
	SheetCloseDelay time.Duration `mapstructure:"sheet_close_delay"`
	Mouse           bool
}

// LogConfig controls the debug log. An empty File discards log output.
type LogConfig struct {
	File   string
	Prefix string
}

// New returns a viper instance with defaults, file lookup and env binding
// configured. Callers may bind flags before passing it to Load.
func New() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("ui.city", "Душанбе")
	v.SetDefault("ui.currency", "сом.")
	v.SetDefault("ui.sheet_close_delay", "300ms")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.prefix", "karta")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KARTA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "karta"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KARTA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from file and env. Env var overrides use prefix KARTA_.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = New()
	}

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the shell cannot run with.
func (c Config) Validate() error {
	if c.UI.SheetCloseDelay <= 0 {
		return fmt.Errorf("ui.sheet_close_delay must be positive, got %s", c.UI.SheetCloseDelay)
	}
	if strings.TrimSpace(c.UI.Currency) == "" {
		return fmt.Errorf("ui.currency is required")
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: at least one key is required", action)
		}
	}
	return nil
}

// DefaultPath is where the config lives when neither --config nor KARTA_CONFIG
// names a file.
func DefaultPath() string {
	if p := os.Getenv("KARTA_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "karta", "config.toml")
}

// Save writes cfg to path, creating the directory if needed. An empty path
// means DefaultPath.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.city", cfg.UI.City)
	v.Set("ui.currency", cfg.UI.Currency)
	v.Set("ui.sheet_close_delay", cfg.UI.SheetCloseDelay.String())
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.prefix", cfg.Log.Prefix)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
