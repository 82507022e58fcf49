package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"SaveDir", cfg.SaveDir, ""},
		{"Slot", cfg.Slot, 1},
		{"SteamRoot", cfg.SteamRoot, ""},
		{"Verbose", cfg.Verbose, false},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.File", cfg.Log.File, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"save_dir", "UKSE_SAVE_DIR", dir, func(c Config) any { return c.SaveDir }, dir},
		{"slot", "UKSE_SLOT", "4", func(c Config) any { return c.Slot }, 4},
		{"steam_root", "UKSE_STEAM_ROOT", dir, func(c Config) any { return c.SteamRoot }, dir},
		{"verbose", "UKSE_VERBOSE", "true", func(c Config) any { return c.Log.Level }, "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			viper.SetEnvPrefix("UKSE")
			viper.AutomaticEnv()
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if got := tt.field(cfg); got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		field string
	}{
		{"slot too high", "slot", 6, "Slot"},
		{"slot zero", "slot", 0, "Slot"},
		{"unknown level", "log.level", "loud", "Level"},
		{"missing save dir", "save_dir", "/definitely/not/here", "SaveDir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			viper.Set(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() should reject the config")
			}
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected validation errors, got %v", err)
			}
			if verrs[0].Field() != tt.field {
				t.Errorf("failing field = %s, want %s", verrs[0].Field(), tt.field)
			}
		})
	}
}
