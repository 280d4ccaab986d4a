package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Per-operation latency histograms, labeled by operation kind so a single
// /metrics scrape distinguishes insert/get/update/delete cost.
var opLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
	Name:    "llrbbench_op_latency_seconds",
	Help:    "Latency of a single tree operation, by kind",
	Buckets: prometheus.ExponentialBuckets(1e-7, 2, 20),
}, []string{"op"})

var opsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "llrbbench_ops_completed_total",
	Help: "The total number of operations completed, by kind",
}, []string{"op"})

var workersActive = promauto.NewGauge(prometheus.GaugeOpts{ //nolint:gochecknoglobals
	Name: "llrbbench_workers_active",
	Help: "The number of worker goroutines currently running a workload",
})
