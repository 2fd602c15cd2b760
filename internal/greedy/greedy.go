// Package greedy drives the greedy shortest-superstring reduction: while more
// than one fragment remains, merge the best-overlapping ordered pair.
package greedy

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ssp/internal/diag"
	"ssp/internal/overlap"
	"ssp/internal/search"
)

// Searcher is the minimal capability the loop needs from the pair search.
// *search.Engine satisfies it; tests may use fakes.
type Searcher interface {
	Best(ctx context.Context, frags []string) (search.Pick, time.Duration, error)
}

// Result is the outcome of one reduction run.
type Result struct {
	Superstring string
	Fragments   int // distinct input fragments
	Stats       diag.Stats
}

// Reducer runs the greedy loop over a Searcher.
type Reducer struct {
	search Searcher
	log    *zap.Logger
}

// NewReducer returns a Reducer. A nil logger disables logging.
func NewReducer(s Searcher, log *zap.Logger) *Reducer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reducer{search: s, log: log}
}

// Run reduces frags to a single superstring. Repeated fragments are
// collapsed before the first iteration. ctx is checked between iterations.
func (r *Reducer) Run(ctx context.Context, frags []string) (Result, error) {
	start := time.Now()
	ws := NewWorkingSet(frags)
	res := Result{Fragments: ws.Len()}
	if ws.Len() == 0 {
		res.Stats.Total = time.Since(start)
		return res, nil
	}

	for ws.Len() > 1 {
		if err := ctx.Err(); err != nil {
			res.Stats.Total = time.Since(start)
			return res, err
		}
		p, d, err := r.search.Best(ctx, ws.Snapshot())
		if err != nil {
			res.Stats.Total = time.Since(start)
			return res, fmt.Errorf("iteration %d: %w", res.Stats.Iterations+1, err)
		}
		if !p.Valid {
			res.Stats.Total = time.Since(start)
			return res, fmt.Errorf("iteration %d: no candidate pair among %d fragments", res.Stats.Iterations+1, ws.Len())
		}
		res.Stats.AddSearch(d)

		merged := overlap.MergeAt(p.X, p.Y, p.Overlap)
		ws.Remove(p.X)
		ws.Remove(p.Y)
		if !ws.Add(merged) {
			res.Stats.Collisions++
			r.log.Debug("merge result already present", zap.Int("iteration", res.Stats.Iterations), zap.Int("length", len(merged)))
		}
		if ce := r.log.Check(zap.DebugLevel, "merged pair"); ce != nil {
			ce.Write(
				zap.Int("iteration", res.Stats.Iterations),
				zap.Int("overlap", p.Overlap),
				zap.Int("remaining", ws.Len()),
				zap.Duration("search", d),
			)
		}
	}

	res.Superstring, _ = ws.Only()
	res.Stats.Total = time.Since(start)
	return res, nil
}

// Solve runs a reduction with a fresh search engine using threads workers
// (0 = all CPUs) and returns only the superstring.
func Solve(ctx context.Context, frags []string, threads int) (string, error) {
	res, err := NewReducer(search.New(search.Config{Threads: threads}), nil).Run(ctx, frags)
	return res.Superstring, err
}
