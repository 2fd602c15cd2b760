// Package diag holds the run's timing diagnostics. Values are returned from
// the reduction loop rather than accumulated in globals; nothing here feeds
// back into the algorithm.
package diag

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Stats describes one greedy reduction run.
type Stats struct {
	Total      time.Duration // wall time of the whole loop
	Parallel   time.Duration // time spent inside pair searches
	Iterations int           // merges performed
	Collisions int           // merges whose result was already in the set
}

// AddSearch accounts one search of duration d.
func (s *Stats) AddSearch(d time.Duration) {
	s.Parallel += d
	s.Iterations++
}

// SerialFraction estimates the non-parallel share of the run as
// 1 - Parallel/Total. It is 0 when Total is 0 and clamped to [0, 1].
func (s Stats) SerialFraction() float64 {
	if s.Total <= 0 {
		return 0
	}
	f := 1 - s.Parallel.Seconds()/s.Total.Seconds()
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Write prints a single human-readable diagnostics line.
func (s Stats) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "total=%.6fs parallel=%.6fs serial_fraction=%.4f iterations=%d collisions=%d\n",
		s.Total.Seconds(), s.Parallel.Seconds(), s.SerialFraction(), s.Iterations, s.Collisions)
	return err
}

// Fields renders the stats as structured log fields.
func (s Stats) Fields() []zap.Field {
	return []zap.Field{
		zap.Duration("total", s.Total),
		zap.Duration("parallel", s.Parallel),
		zap.Float64("serial_fraction", s.SerialFraction()),
		zap.Int("iterations", s.Iterations),
		zap.Int("collisions", s.Collisions),
	}
}
