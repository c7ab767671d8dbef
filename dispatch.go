package main

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// reservedCPUs is headroom left to the rest of the host: the task ceiling
// stays strictly below the available parallelism.
const reservedCPUs = 3

// execContext bounds how many file tasks may be counting at once. It is
// constructed once per run and handed to the dispatcher; there is no
// process-global pool.
type execContext struct {
	permits *semaphore.Weighted
	limit   int
}

// newExecContext sizes the admission gate. A non-positive limit means
// derive one from the hardware, keeping reservedCPUs free.
func newExecContext(limit int) *execContext {
	if limit <= 0 {
		limit = runtime.NumCPU() - reservedCPUs
	}
	if limit < 1 {
		limit = 1
	}
	return &execContext{
		permits: semaphore.NewWeighted(int64(limit)),
		limit:   limit,
	}
}

// testHookTaskRunning runs while a task holds its permit. Tests swap it in
// to observe how many tasks execute at once.
var testHookTaskRunning = func() {}

// dispatch submits one counting task per file, each gated by ec's permits,
// and collects the results keyed by path. A task past the ceiling blocks
// in Acquire until a permit frees up; nothing is ever dropped. Permits are
// released on every exit path. A file whose counters all fail still yields
// a row (of unavailable cells) so its siblings are unaffected.
func dispatch(ctx context.Context, ec *execContext, paths []string, metrics []Metric) map[string]CountResult {
	results := make(chan fileResult, len(paths))

	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if err := ec.permits.Acquire(ctx, 1); err != nil {
				logError("acquire permit", path, err)
				results <- fileResult{path: path, counts: unavailableResult(len(metrics))}
				return
			}
			defer ec.permits.Release(1)
			testHookTaskRunning()
			results <- fileResult{path: path, counts: countFile(path, metrics)}
		}(path)
	}
	wg.Wait()
	close(results)

	byPath := make(map[string]CountResult, len(paths))
	for r := range results {
		byPath[r.path] = r.counts
	}
	return byPath
}

// countFile runs one counter per requested metric, concurrently. Each
// metric writes its own slot; one that fails records countUnavailable and
// reports a diagnostic while the rest finish undisturbed.
func countFile(path string, metrics []Metric) CountResult {
	counts := make(CountResult, len(metrics))
	binary := isBinaryFile(path)

	var wg sync.WaitGroup
	for i, m := range metrics {
		wg.Add(1)
		go func(i int, m Metric) {
			defer wg.Done()
			n, err := countMetric(path, m, binary)
			if err != nil {
				logError("count "+m.String(), path, err, zap.Bool("binary", binary))
				n = countUnavailable
			}
			counts[i] = n
		}(i, m)
	}
	wg.Wait()
	return counts
}
