package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jwalitptl/passcheck/internal/model"
	apperrors "github.com/jwalitptl/passcheck/pkg/errors"
	"github.com/jwalitptl/passcheck/pkg/validator"
)

const envPrefix = "PASSCHECK"

type Config struct {
	Mode string    `mapstructure:"mode" validate:"required,oneof=legacy aggregate"`
	Log  LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	TimeFormat string `mapstructure:"time_format" validate:"required"`
}

// CheckMode returns the configured reporting mode.
func (c *Config) CheckMode() model.Mode {
	return model.Mode(c.Mode)
}

// LoadConfig reads passcheck.yaml from the usual search paths and applies
// PASSCHECK_* environment overrides. The file is optional.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("passcheck")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config", "$HOME/.config/passcheck"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("mode", string(model.ModeLegacy))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.time_format", time.RFC3339)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, apperrors.NewConfig("failed to read config file", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, apperrors.NewConfig("failed to unmarshal config", err)
	}

	config.Mode = strings.ToLower(strings.TrimSpace(config.Mode))
	config.Log.Level = strings.ToLower(strings.TrimSpace(config.Log.Level))

	if err := validator.New().Validate(&config); err != nil {
		return nil, apperrors.NewConfig("invalid configuration", err)
	}

	return &config, nil
}
