package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartExpression string `mapstructure:"start_expression"`
	Glyph           string // "lambda" renders \ as λ, "backslash" leaves input as typed
}

// LoggingConfig holds log file settings.
type LoggingConfig struct {
	Level string
	Path  string
}

// Load reads configuration from file and env. Env var overrides use prefix LAMBDAPAD_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "lambdapad")

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir, "lambdapad.db"))
	v.SetDefault("ui.start_expression", "(λx.x) y")
	v.SetDefault("ui.glyph", "lambda")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", filepath.Join(dataDir, "lambdapad.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LAMBDAPAD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "lambdapad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LAMBDAPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI settings view.
func Save(cfg Config) error {
	path := os.Getenv("LAMBDAPAD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "lambdapad", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.start_expression", cfg.UI.StartExpression)
	v.Set("ui.glyph", cfg.UI.Glyph)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.path", cfg.Logging.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
