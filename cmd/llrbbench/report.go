package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// summary is the run-wide aggregate printed to the console and plotted into
// the HTML report.
type summary struct {
	totalOps    int
	wallClock   time.Duration
	perWorker   []workerResult
	perOpCounts map[opKind]int
}

func summarize(results []workerResult, wallClock time.Duration) summary {
	s := summary{wallClock: wallClock, perWorker: results, perOpCounts: make(map[opKind]int, 4)} //nolint:mnd

	for _, r := range results {
		for kind, n := range r.completed {
			s.totalOps += n
			s.perOpCounts[kind] += n
		}
	}

	return s
}

func (s summary) throughput() float64 {
	if s.wallClock <= 0 {
		return 0
	}

	return float64(s.totalOps) / s.wallClock.Seconds()
}

func printSummary(w io.Writer, s summary) {
	fmt.Fprintf(w, "workers:     %d\n", len(s.perWorker))
	fmt.Fprintf(w, "total ops:   %s\n", humanize.Comma(int64(s.totalOps)))
	fmt.Fprintf(w, "wall clock:  %s\n", s.wallClock.Round(time.Millisecond))
	fmt.Fprintf(w, "throughput:  %s ops/sec\n", humanize.Comma(int64(s.throughput())))

	kinds := make([]opKind, 0, len(s.perOpCounts))
	for kind := range s.perOpCounts {
		kinds = append(kinds, kind)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		fmt.Fprintf(w, "  %-7s %s\n", kind, humanize.Comma(int64(s.perOpCounts[kind])))
	}
}

// writeReport renders a single-page throughput-by-worker bar chart, the way
// codefang's analyzers each render their own chart page.
func writeReport(path string, s summary) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "llrbbench throughput",
			Subtitle: fmt.Sprintf("%s ops across %d workers in %s", humanize.Comma(int64(s.totalOps)), len(s.perWorker), s.wallClock.Round(time.Millisecond)),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "960px", Height: "480px"}),
	)

	labels := make([]string, len(s.perWorker))
	data := make([]opts.BarData, len(s.perWorker))

	for i, r := range s.perWorker {
		labels[i] = fmt.Sprintf("worker %d", r.id)

		total := 0
		for _, n := range r.completed {
			total += n
		}

		perSec := float64(total)
		if r.elapsed > 0 {
			perSec = float64(total) / r.elapsed.Seconds()
		}

		data[i] = opts.BarData{Value: perSec}
	}

	bar.SetXAxis(labels).AddSeries("ops/sec", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	return bar.Render(f)
}
