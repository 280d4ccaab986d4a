package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, defaultWorkers, cfg.Workload.Workers)
	assert.Equal(t, defaultOpsPerWorker, cfg.Workload.OpsPerWorker)
	assert.Equal(t, int64(defaultKeySpace), cfg.Workload.KeySpace)
	assert.Equal(t, opMixTotal, cfg.Workload.OpMix.sum())
	assert.Equal(t, defaultProfile, cfg.Workload.Profile)
	assert.Equal(t, defaultReportPath, cfg.Report.Path)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	t.Parallel()

	base := func() Config {
		return Config{
			Workload: WorkloadConfig{
				Workers:      defaultWorkers,
				OpsPerWorker: defaultOpsPerWorker,
				KeySpace:     defaultKeySpace,
				Profile:      defaultProfile,
				OpMix: OpMix{
					Insert: defaultInsertWeight,
					Get:    defaultGetWeight,
					Update: defaultUpdateWeight,
					Delete: defaultDeleteWeight,
				},
			},
		}
	}

	tests := []struct {
		name  string
		mutate func(*Config)
		want  error
	}{
		{"zero workers", func(c *Config) { c.Workload.Workers = 0 }, ErrInvalidWorkers},
		{"zero ops", func(c *Config) { c.Workload.OpsPerWorker = 0 }, ErrInvalidOps},
		{"zero key space", func(c *Config) { c.Workload.KeySpace = 0 }, ErrInvalidKeySpace},
		{"negative capacity", func(c *Config) { c.Workload.InitialCapacity = -1 }, ErrInvalidReserve},
		{"bad op mix", func(c *Config) { c.Workload.OpMix.Insert = 0 }, ErrInvalidOpMixSum},
		{"bad profile", func(c *Config) { c.Workload.Profile = "float" }, ErrInvalidProfile},
		{"bad listen address", func(c *Config) { c.Metrics.Listen = "not-a-host-port" }, ErrInvalidListenFmt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := base()
			tt.mutate(&cfg)

			err := validateConfig(&cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOpMixSum(t *testing.T) {
	t.Parallel()

	m := OpMix{Insert: 1, Get: 2, Update: 3, Delete: 4}
	assert.Equal(t, 10, m.sum())
}
