package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LogConfig controls where and how much the editor logs.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// Config holds all runtime configuration for the save editor.
// Values are populated from .ukse.yaml, UKSE_* env vars, and CLI flags.
type Config struct {
	SaveDir   string    `mapstructure:"save_dir" validate:"omitempty,dir"`
	Slot      int       `mapstructure:"slot" validate:"min=1,max=5"`
	SteamRoot string    `mapstructure:"steam_root" validate:"omitempty,dir"`
	Verbose   bool      `mapstructure:"verbose"`
	Log       LogConfig `mapstructure:"log"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("save_dir", "")
	viper.SetDefault("slot", 1)
	viper.SetDefault("steam_root", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
