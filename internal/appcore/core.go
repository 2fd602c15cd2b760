// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ssp/internal/fragment"
	"ssp/internal/greedy"
	"ssp/internal/logging"
	"ssp/internal/search"
	"ssp/internal/verify"
	"ssp/internal/writers"
	"ssp/pkg/api"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2 // bad flags, config or input
	ExitFailure     = 3 // output or runtime failure
	ExitVerify      = 4 // --verify found missing fragments
	ExitInterrupted = 130
)

// pairSearcher is what Run needs from the pair search.
type pairSearcher interface {
	greedy.Searcher
	Threads() int
}

// newSearcher builds the pair search for a run; tests replace it.
var newSearcher = func(threads int) pairSearcher {
	return search.New(search.Config{Threads: threads})
}

// Options is the resolved run configuration.
type Options struct {
	Input    string
	Threads  int
	Output   string
	Stats    bool
	Verify   bool
	LogLevel string
	Quiet    bool
}

// Run loads fragments, reduces them to a superstring and writes the result.
// It returns the process exit code.
func Run(parent context.Context, stdin io.Reader, stdout, stderr io.Writer, o Options) int {
	log, err := logging.New(stderr, o.LogLevel, o.Quiet)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	defer func() { _ = log.Sync() }()
	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	eng := newSearcher(o.Threads)
	thr := eng.Threads()

	frags, err := fragment.Load(parent, o.Input, stdin)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitInterrupted
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}
	inputLen := 0
	for _, f := range frags {
		inputLen += len(f)
	}
	log.Info("fragments loaded",
		zap.String("input", o.Input),
		zap.Int("fragments", len(frags)),
		zap.Int("input_length", inputLen),
		zap.Int("threads", thr),
	)

	red := greedy.NewReducer(eng, log)
	res, err := red.Run(parent, frags)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("interrupted", res.Stats.Fields()...)
			return ExitInterrupted
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitFailure
	}
	log.Info("reduction finished", append(res.Stats.Fields(), zap.Int("length", len(res.Superstring)))...)

	out := api.ResultV1{
		RunID:       runID,
		Superstring: res.Superstring,
		Length:      len(res.Superstring),
		Fragments:   res.Fragments,
		InputLength: inputLen,
		Threads:     thr,
		Iterations:  res.Stats.Iterations,
		Collisions:  res.Stats.Collisions,
	}
	var rep verify.Report
	if o.Verify {
		rep = verify.Coverage(res.Superstring, frags)
		ok := rep.OK()
		out.Verified = &ok
		out.Missing = rep.Missing
	}
	if o.Stats {
		out.Stats = &api.StatsV1{
			TotalSeconds:    res.Stats.Total.Seconds(),
			ParallelSeconds: res.Stats.Parallel.Seconds(),
			SerialFraction:  res.Stats.SerialFraction(),
		}
	}

	outw := bufio.NewWriter(stdout)
	if err := writers.Write(o.Output, outw, out); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	if o.Stats {
		_ = res.Stats.Write(stderr)
	}
	if !rep.OK() {
		log.Warn("coverage check failed", zap.Int("missing", len(rep.Missing)))
		fmt.Fprintf(stderr, "verify: %s\n", rep.Error())
		return ExitVerify
	}
	return ExitOK
}
