// Package search finds the best-overlapping ordered pair of a fragment
// snapshot. It is domain-only: it never imports app, writers, cli or greedy.
//
// The n² pair space is split into contiguous index ranges, one per worker.
// Each worker keeps a local Pick; the locals are folded with Reduce after the
// workers join, so the result does not depend on the worker count.
package search
