package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "NPMCHECK"
	configName     = "config"
	configType     = "yaml"
	defaultTimeout = 10 * time.Second
)

type Config struct {
	Registry    string        `mapstructure:"registry" validate:"required,url,startswith=http"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Concurrency int           `mapstructure:"concurrency" validate:"min=1,max=32"`
	UserAgent   string        `mapstructure:"user_agent" validate:"required"`
	LogLevel    string        `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

func GetStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".npmcheck"), nil
}

// New returns a viper instance with defaults and NPMCHECK_* environment
// bindings. If dir is not empty, dir/config.yaml is read when present.
func New(dir, version string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("registry", "https://registry.npmjs.org")
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("concurrency", 1)
	v.SetDefault("user_agent", "npmcheck/"+version)
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if dir == "" {
		return v, nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
