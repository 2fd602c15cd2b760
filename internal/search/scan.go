package search

import "ssp/internal/overlap"

// Scan walks the flattened index range [lo, hi) of the n×n pair space of
// frags (idx = i*n + j), skipping the diagonal, and returns the best Pick.
// The result is invalid when the range holds no off-diagonal pair.
func Scan(frags []string, lo, hi int) Pick {
	n := len(frags)
	if lo < 0 {
		lo = 0
	}
	if hi > n*n {
		hi = n * n
	}
	var best Pick
	if n == 0 || lo >= hi {
		return best
	}
	for i := lo / n; i < n && i*n < hi; i++ {
		jlo, jhi := 0, n
		if i*n < lo {
			jlo = lo - i*n
		}
		if (i+1)*n > hi {
			jhi = hi - i*n
		}
		x := frags[i]
		for j := jlo; j < jhi; j++ {
			if i == j {
				continue
			}
			y := frags[j]
			// A pair whose shorter side cannot reach the current best overlap
			// can neither beat nor tie it.
			if best.Valid && len(x) < best.Overlap {
				break
			}
			if best.Valid && len(y) < best.Overlap {
				continue
			}
			c := Pick{X: x, Y: y, I: i, J: j, Overlap: overlap.Length(x, y), Valid: true}
			if Better(c, best) {
				best = c
			}
		}
	}
	return best
}
