package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidWorkers   = errors.New("workers must be positive")
	ErrInvalidOps       = errors.New("ops per worker must be positive")
	ErrInvalidKeySpace  = errors.New("key space must be positive")
	ErrInvalidOpMixSum  = errors.New("insert/get/update/delete weights must sum to 100")
	ErrInvalidReserve   = errors.New("initial capacity must not be negative")
	ErrInvalidListenFmt = errors.New("metrics listen address must be host:port")
	ErrInvalidProfile   = errors.New("profile must be int64 or uuid")
)

// Default configuration values.
const (
	defaultWorkers         = 8
	defaultOpsPerWorker    = 200_000
	defaultKeySpace        = 1_000_000
	defaultInitialCapacity = 0
	defaultInsertWeight    = 40
	defaultGetWeight       = 40
	defaultUpdateWeight    = 15
	defaultDeleteWeight    = 5
	defaultMetricsListen   = ""
	defaultReportPath      = "llrbbench.html"
	defaultProfile         = profileInt64
	opMixTotal             = 100
)

// Config holds the runtime configuration for llrbbench.
type Config struct {
	Workload WorkloadConfig `mapstructure:"workload"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Report   ReportConfig   `mapstructure:"report"`
}

// WorkloadConfig sizes the generated load: how many independent trees run
// concurrently, how many operations each performs, and the relative mix of
// operation kinds.
type WorkloadConfig struct {
	Workers         int    `mapstructure:"workers"`
	OpsPerWorker    int    `mapstructure:"ops_per_worker"`
	KeySpace        int64  `mapstructure:"key_space"`
	InitialCapacity int    `mapstructure:"initial_capacity"`
	Profile         string `mapstructure:"profile"`
	OpMix           OpMix  `mapstructure:"op_mix"`
}

// OpMix is a set of integer weights, interpreted relative to their sum.
type OpMix struct {
	Insert int `mapstructure:"insert"`
	Get    int `mapstructure:"get"`
	Update int `mapstructure:"update"`
	Delete int `mapstructure:"delete"`
}

func (m OpMix) sum() int { return m.Insert + m.Get + m.Update + m.Delete }

// MetricsConfig controls the optional live Prometheus scrape endpoint.
type MetricsConfig struct {
	Listen string `mapstructure:"listen"`
}

// ReportConfig controls the go-echarts HTML summary written after the run.
type ReportConfig struct {
	Path string `mapstructure:"path"`
}

func loadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setConfigDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("llrbbench")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/llrbbench")
	}

	viperCfg.SetEnvPrefix("LLRBBENCH")
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
	viperCfg.SetDefault("workload.workers", defaultWorkers)
	viperCfg.SetDefault("workload.ops_per_worker", defaultOpsPerWorker)
	viperCfg.SetDefault("workload.key_space", defaultKeySpace)
	viperCfg.SetDefault("workload.initial_capacity", defaultInitialCapacity)
	viperCfg.SetDefault("workload.profile", defaultProfile)
	viperCfg.SetDefault("workload.op_mix.insert", defaultInsertWeight)
	viperCfg.SetDefault("workload.op_mix.get", defaultGetWeight)
	viperCfg.SetDefault("workload.op_mix.update", defaultUpdateWeight)
	viperCfg.SetDefault("workload.op_mix.delete", defaultDeleteWeight)
	viperCfg.SetDefault("metrics.listen", defaultMetricsListen)
	viperCfg.SetDefault("report.path", defaultReportPath)
}

func validateConfig(cfg *Config) error {
	w := cfg.Workload

	if w.Workers <= 0 {
		return ErrInvalidWorkers
	}

	if w.OpsPerWorker <= 0 {
		return ErrInvalidOps
	}

	if w.KeySpace <= 0 {
		return ErrInvalidKeySpace
	}

	if w.InitialCapacity < 0 {
		return ErrInvalidReserve
	}

	if w.OpMix.sum() != opMixTotal {
		return ErrInvalidOpMixSum
	}

	if w.Profile != profileInt64 && w.Profile != profileUUID {
		return ErrInvalidProfile
	}

	if listen := cfg.Metrics.Listen; listen != "" && !hasPort(listen) {
		return ErrInvalidListenFmt
	}

	return nil
}

func hasPort(addr string) bool {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return i < len(addr)-1
		}
	}

	return false
}
