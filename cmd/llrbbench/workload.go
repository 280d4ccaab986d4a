package main

import (
	"cmp"
	"math/rand"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"

	"github.com/flier/llrb/pkg/llrb"
)

// opKind names the four mutating/reading operations a worker chooses among.
type opKind string

const (
	opInsert opKind = "insert"
	opGet    opKind = "get"
	opUpdate opKind = "update"
	opDelete opKind = "delete"
)

// Key profiles. "int64" drives the integer-keyed Tree with a seeded
// math/rand generator; "uuid" drives the string-keyed Tree with
// google/uuid-generated keys drawn from a fixed-size pool (a fresh UUID per
// op would never collide, defeating get/update/delete).
const (
	profileInt64 = "int64"
	profileUUID  = "uuid"
)

// workerResult is one worker's tally, merged into the run-wide report.
type workerResult struct {
	id        int
	completed map[opKind]int
	elapsed   time.Duration
}

// runWorkload spins up cfg.Workload.Workers pond tasks, each driving its own
// tree independently — concurrency is the pool's concern, not the tree's, so
// no worker ever touches another's tree.
func runWorkload(cfg *Config) []workerResult {
	pool := pond.NewPool(cfg.Workload.Workers)
	defer pool.StopAndWait()

	tasks := make([]pond.Task, cfg.Workload.Workers)
	results := make([]workerResult, cfg.Workload.Workers)

	runOne := workerFunc(cfg.Workload.Profile)

	for i := range cfg.Workload.Workers {
		tasks[i] = pool.Submit(func() {
			workersActive.Inc()
			defer workersActive.Dec()

			results[i] = runOne(i, cfg)
		})
	}

	for _, t := range tasks {
		t.Wait() //nolint:errcheck // workload tasks never return an error
	}

	return results
}

func workerFunc(profile string) func(id int, cfg *Config) workerResult {
	if profile == profileUUID {
		return runUUIDWorker
	}

	return runInt64Worker
}

func runInt64Worker(id int, cfg *Config) workerResult {
	w := cfg.Workload
	tree := llrb.NewWithCapacity[int64, string](cmp.Compare[int64], w.InitialCapacity)
	defer tree.Close()

	rnd := rand.New(rand.NewSource(int64(id) ^ time.Now().UnixNano())) //nolint:gosec // synthetic load, not a security boundary

	return runWorkerLoop(id, w, func() int64 { return rnd.Int63n(w.KeySpace) }, rnd, tree)
}

func runUUIDWorker(id int, cfg *Config) workerResult {
	w := cfg.Workload
	tree := llrb.NewWithCapacity[string, string](cmp.Compare[string], w.InitialCapacity)
	defer tree.Close()

	rnd := rand.New(rand.NewSource(int64(id) ^ time.Now().UnixNano())) //nolint:gosec // synthetic load, not a security boundary

	pool := make([]string, w.KeySpace)
	for i := range pool {
		pool[i] = uuid.NewString()
	}

	return runWorkerLoop(id, w, func() string { return pool[rnd.Int63n(w.KeySpace)] }, rnd, tree)
}

// runWorkerLoop drives OpsPerWorker operations against tree, picking a key
// via genKey and an operation kind via the configured mix. It is shared by
// both key profiles so the timing/metrics/tallying logic lives in one place.
func runWorkerLoop[K any](id int, w WorkloadConfig, genKey func() K, rnd *rand.Rand, tree *llrb.Tree[K, string]) workerResult {
	completed := make(map[opKind]int, 4) //nolint:mnd // four operation kinds
	start := time.Now()

	for range w.OpsPerWorker {
		key := genKey()
		kind := pickOp(rnd, w.OpMix)

		opStart := time.Now()
		runOp(tree, kind, key)
		opLatency.WithLabelValues(string(kind)).Observe(time.Since(opStart).Seconds())
		opsCompleted.WithLabelValues(string(kind)).Inc()

		completed[kind]++
	}

	return workerResult{id: id, completed: completed, elapsed: time.Since(start)}
}

func runOp[K any](tree *llrb.Tree[K, string], kind opKind, key K) {
	switch kind {
	case opInsert:
		tree.Reserve(1)
		_, _ = tree.Insert(key, uuid.NewString())
	case opGet:
		tree.Get(key)
	case opUpdate:
		tree.Update(key, uuid.NewString())
	case opDelete:
		tree.Delete(key)
	}
}

func pickOp(rnd *rand.Rand, mix OpMix) opKind {
	n := rnd.Intn(mix.sum())

	switch {
	case n < mix.Insert:
		return opInsert
	case n < mix.Insert+mix.Get:
		return opGet
	case n < mix.Insert+mix.Get+mix.Update:
		return opUpdate
	default:
		return opDelete
	}
}
