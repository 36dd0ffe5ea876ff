// Package parallel provides the harness's unmeasured-validation fan-out:
// running one replay-and-compare task per candidate structure
// concurrently, since validation precedes and is disjoint from the
// timed region.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// PoolConfig caps how many tasks a WorkerPool runs at once.
type PoolConfig struct {
	// MaxWorkers is the maximum number of concurrent workers.
	// Default: min(runtime.NumCPU(), 8), floor 2.
	MaxWorkers int
}

// DefaultPoolConfig returns a default pool configuration.
func DefaultPoolConfig() PoolConfig {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8 // Cap at 8 to avoid excessive overhead
	}
	if workers < 2 {
		workers = 2
	}
	return PoolConfig{MaxWorkers: workers}
}

// WithWorkers returns a copy of c with MaxWorkers overridden.
func (c PoolConfig) WithWorkers(n int) PoolConfig {
	c.MaxWorkers = n
	return c
}

// Result holds one fn(input) outcome, keyed to the slot its input
// occupied in the original slice.
type Result[T any, R any] struct {
	Input  T
	Result R
	Error  error
}

// WorkerPool runs one function call per input concurrently, capped at
// MaxWorkers, and returns results in input order. The harness uses
// exactly one instantiation of it: bench.Validate replays a generated
// workload against every candidate structure (a Candidate per task) to
// check for disagreement before any timed run.
type WorkerPool[T any, R any] struct {
	config PoolConfig
}

// NewWorkerPool creates a new worker pool with the given configuration.
func NewWorkerPool[T any, R any](config PoolConfig) *WorkerPool[T, R] {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultPoolConfig().MaxWorkers
	}
	return &WorkerPool[T, R]{config: config}
}

// ExecuteFunc runs fn against every input concurrently, at most
// MaxWorkers at a time, and returns one Result per input, in the same
// order as inputs regardless of completion order.
func (p *WorkerPool[T, R]) ExecuteFunc(ctx context.Context, inputs []T, fn func(ctx context.Context, input T) (R, error)) []Result[T, R] {
	if len(inputs) == 0 {
		return nil
	}

	results := make([]Result[T, R], len(inputs))
	sem := make(chan struct{}, p.config.MaxWorkers)

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, input T) {
			defer wg.Done()
			defer func() { <-sem }()
			result, err := fn(ctx, input)
			results[i] = Result[T, R]{Input: input, Result: result, Error: err}
		}(i, input)
	}
	wg.Wait()

	return results
}
