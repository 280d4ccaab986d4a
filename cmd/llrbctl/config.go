package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidCapacity  = errors.New("initial capacity must be positive")
	ErrInvalidColorMode = errors.New("color mode must be auto, always, or never")
)

// Default configuration values.
const (
	defaultCapacity  = 1024
	defaultColorMode = "auto"
)

// Config holds the runtime configuration for llrbctl.
type Config struct {
	Tree  TreeConfig  `mapstructure:"tree"`
	Batch BatchConfig `mapstructure:"batch"`
}

// TreeConfig controls the backing store the shell operates on.
type TreeConfig struct {
	InitialCapacity int `mapstructure:"initial_capacity"`
}

// BatchConfig controls batch-file loading and output rendering.
type BatchConfig struct {
	ColorMode string `mapstructure:"color_mode"`
}

// loadConfig loads configuration from defaults, then the config file, then
// LLRBCTL_-prefixed environment variables (a key's dots become underscores),
// in that order of increasing precedence.
func loadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setConfigDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("llrbctl")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/llrbctl")
	}

	viperCfg.SetEnvPrefix("LLRBCTL")
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config

	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setConfigDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("tree.initial_capacity", defaultCapacity)
	viperCfg.SetDefault("batch.color_mode", defaultColorMode)
}

func validateConfig(cfg *Config) error {
	if cfg.Tree.InitialCapacity <= 0 {
		return ErrInvalidCapacity
	}

	switch cfg.Batch.ColorMode {
	case "auto", "always", "never":
	default:
		return ErrInvalidColorMode
	}

	return nil
}
