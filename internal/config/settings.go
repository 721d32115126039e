// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FieldConfig is the size of the playing field in pixels.
type FieldConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// CompanionConfig toggles the autonomous fire mode of the companion.
type CompanionConfig struct {
	AutoFire       bool    `mapstructure:"auto_fire"`
	FireIntervalMs float64 `mapstructure:"fire_interval_ms"`
}

// GameConfig holds session level switches.
type GameConfig struct {
	// Seed for the spawn PRNG, 0 picks a time based seed.
	Seed        int64 `mapstructure:"seed"`
	StartInMenu bool  `mapstructure:"start_in_menu"`
}

// SaveConfig selects where progression is persisted.
type SaveConfig struct {
	// Backend is one of "memory", "file", "postgres".
	Backend string `mapstructure:"backend"`
	// Path is the save file for the file backend; .json, .yaml or .yml.
	Path string `mapstructure:"path"`
	// Slot names the row used by the postgres backend.
	Slot string `mapstructure:"slot"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// DebugConfig holds developer switches.
type DebugConfig struct {
	// PprofAddr is the listen address of net/http/pprof; empty disables it.
	PprofAddr string `mapstructure:"pprof_addr"`
}

// Settings is the top-level runtime configuration.
type Settings struct {
	Field     FieldConfig     `mapstructure:"field"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Companion CompanionConfig `mapstructure:"companion"`
	Game      GameConfig      `mapstructure:"game"`
	Save      SaveConfig      `mapstructure:"save"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Debug     DebugConfig     `mapstructure:"debug"`
}

// Validate checks all configuration invariants and reports every violation at once.
func (s Settings) Validate() error {
	var errs []string

	if s.Field.Width <= 0 || s.Field.Height <= 0 {
		errs = append(errs, fmt.Sprintf("field size must be positive, got %dx%d", s.Field.Width, s.Field.Height))
	}
	if err := validateLogging(s.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if s.Companion.FireIntervalMs <= 0 {
		errs = append(errs, fmt.Sprintf("companion.fire_interval_ms must be > 0, got %v", s.Companion.FireIntervalMs))
	}
	if err := validateSave(s.Save); err != nil {
		errs = append(errs, err.Error())
	}
	if s.Save.Backend == "postgres" {
		if err := validateDatabase(s.Database); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateSave(s SaveConfig) error {
	switch s.Backend {
	case "memory":
		return nil
	case "file":
		if s.Path == "" {
			return errors.New("save.path must not be empty for the file backend")
		}
		return nil
	case "postgres":
		if s.Slot == "" {
			return errors.New("save.slot must not be empty for the postgres backend")
		}
		return nil
	default:
		return fmt.Errorf("save.backend must be one of [memory, file, postgres], got %q", s.Backend)
	}
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must be within [0, max_conns]")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads settings from the given YAML file, applies SURVIVOR_ environment
// overrides and validates the result. An empty path uses defaults and environment only.
func Load(path string) (Settings, error) {
	v := viper.New()

	v.SetEnvPrefix("SURVIVOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds Settings from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Defaults returns the settings used when no file or environment override is present.
func Defaults() Settings {
	v := viper.New()
	setDefaults(v)
	s, err := LoadFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("default settings are invalid: %v", err))
	}
	return s
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("field.width", ScreenWidth)
	v.SetDefault("field.height", ScreenHeight)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("companion.auto_fire", true)
	v.SetDefault("companion.fire_interval_ms", CompanionFireMs)

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.start_in_menu", true)

	v.SetDefault("save.backend", "file")
	v.SetDefault("save.path", "survivor-save.json")
	v.SetDefault("save.slot", "default")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "survivor")
	v.SetDefault("database.password", "survivor")
	v.SetDefault("database.name", "survivor")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.min_conns", 1)

	v.SetDefault("debug.pprof_addr", "")
}
