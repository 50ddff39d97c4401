// SPDX-License-Identifier: MIT

// Package config loads gridtopo settings from a YAML file, GRIDTOPO_*
// environment variables and command-line flags, in rising precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridtopo/internal/logging"
)

// DefaultRoot is the grid root used when none is configured.
const DefaultRoot = 14319

// EnvPrefix prefixes every environment override, e.g. GRIDTOPO_LOG_LEVEL.
const EnvPrefix = "GRIDTOPO"

// ErrInvalidConfig wraps loading and validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration of one gridtopo invocation.
type Config struct {
	Root        int       `mapstructure:"root"`
	Concurrency int       `mapstructure:"concurrency" validate:"min=1,max=64"`
	SkipLoops   bool      `mapstructure:"skip_loops"`
	Output      string    `mapstructure:"output"      validate:"oneof=text json yaml"`
	Log         LogConfig `mapstructure:"log"`
}

// LogConfig controls logging output and rotation.
type LogConfig struct {
	Level      string `mapstructure:"level"        validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format"       validate:"oneof=text json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"  validate:"min=0"`
	MaxBackups int    `mapstructure:"max_backups"  validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0"`
	Compress   bool   `mapstructure:"compress"`
}

// Logging converts the log section for the logging package.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}
}

// New returns a viper instance carrying defaults and environment binding.
// Callers bind flags onto it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("root", DefaultRoot)
	v.SetDefault("concurrency", 4)
	v.SetDefault("skip_loops", false)
	v.SetDefault("output", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (or gridtopo.yaml from the working directory when path is
// empty and such a file exists), then unmarshals and validates.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
	} else {
		v.SetConfigName("gridtopo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %w", ErrInvalidConfig, err)
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &c, nil
}
