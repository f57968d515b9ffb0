package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "SCALER"

// ParseConfig attempts to read and parse configuration from the given file path.
// Environment variables prefixed with SCALER_ override file values, with
// nested keys joined by underscores (SCALER_LOG_LEVEL).
// An error is returned if reading, parsing or validating the config fails.
func ParseConfig(configPath string) (Config, error) {
	if configPath == "" {
		return Config{}, ErrEmptyConfigPath
	}

	v := viper.New()
	def := Default()
	v.SetDefault("ddof", def.DDOF)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
