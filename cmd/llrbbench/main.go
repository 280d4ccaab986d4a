// Command llrbbench drives a synthetic insert/get/update/delete workload
// across a pool of independent trees and reports latency and throughput.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configPath, metricsAddr, reportPath string

	root := &cobra.Command{
		Use:           "llrbbench",
		Short:         "Benchmark pkg/llrb under a synthetic concurrent workload",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				cfg.Metrics.Listen = metricsAddr
			}

			if reportPath != "" {
				cfg.Report.Path = reportPath
			}

			return run(cobraCmd, cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a llrbbench.yaml config file")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus /metrics on while the run is in progress")
	flags.StringVar(&reportPath, "chart", "", "path to write the HTML throughput chart to")

	return root
}

func run(cobraCmd *cobra.Command, cfg *Config) error {
	var server *http.Server
	if cfg.Metrics.Listen != "" {
		server = startMetricsServer(cfg.Metrics.Listen)
		defer server.Close() //nolint:errcheck
	}

	start := time.Now()
	results := runWorkload(cfg)
	wallClock := time.Since(start)

	s := summarize(results, wallClock)

	out := cobraCmd.OutOrStdout()
	printSummary(out, s)

	if err := writeReport(cfg.Report.Path, s); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(out, "report written to %s\n", cfg.Report.Path)

	return nil
}

// startMetricsServer exposes /metrics in the background for the duration of
// the run, the way observability.PrometheusHandler is mounted as a scrape
// endpoint rather than served synchronously.
func startMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second} //nolint:mnd

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server stopped", "error", err)
		}
	}()

	return server
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
