package search

import (
	"context"
	"errors"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrTooFewFragments is returned when a snapshot has fewer than two fragments.
var ErrTooFewFragments = errors.New("search: need at least two fragments")

// DefaultMinParallel is the snapshot size below which Best scans inline.
const DefaultMinParallel = 32

// Config controls the pair search.
type Config struct {
	Threads     int // worker goroutines (0 = all CPUs)
	MinParallel int // snapshots smaller than this are scanned inline (0 = DefaultMinParallel, <0 = never inline)
}

// Engine runs the fork-join pair search.
type Engine struct{ cfg Config }

// New returns an Engine with defaults filled in.
func New(c Config) *Engine {
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.MinParallel == 0 {
		c.MinParallel = DefaultMinParallel
	}
	return &Engine{cfg: c}
}

// Threads returns the effective worker count.
func (e *Engine) Threads() int { return e.cfg.Threads }

// Best returns the highest-ranked ordered pair of frags together with the time
// spent in the parallel region. frags must not be mutated until Best returns.
// The search itself is never interrupted; ctx is only checked before it starts.
func (e *Engine) Best(ctx context.Context, frags []string) (Pick, time.Duration, error) {
	n := len(frags)
	if n < 2 {
		return Pick{}, 0, ErrTooFewFragments
	}
	if err := ctx.Err(); err != nil {
		return Pick{}, 0, err
	}

	total := n * n
	workers := e.cfg.Threads
	if workers > n {
		workers = n
	}
	start := time.Now()
	if workers <= 1 || (e.cfg.MinParallel > 0 && n < e.cfg.MinParallel) {
		p := Scan(frags, 0, total)
		return p, time.Since(start), nil
	}

	// Each worker owns one slot; nothing else is shared until Wait returns.
	slots := make([]Pick, workers)
	chunk := (total + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		g.Go(func() error {
			slots[w] = Scan(frags, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Pick{}, time.Since(start), err
	}

	var best Pick
	for _, p := range slots {
		best = Reduce(best, p)
	}
	return best, time.Since(start), nil
}
