// Package overlap computes suffix/prefix overlaps between fragments and merges
// them. It is pure and safe for concurrent use.
package overlap

// Length returns the largest k (0 <= k <= min(len(a), len(b))) such that the
// last k bytes of a equal the first k bytes of b. The scan runs from the
// longest candidate down, so the first hit is the maximal overlap.
func Length(a, b string) int {
	maxK := len(a)
	if len(b) < maxK {
		maxK = len(b)
	}
	for k := maxK; k > 0; k-- {
		if a[len(a)-k:] == b[:k] {
			return k
		}
	}
	return 0
}

// Merge returns a followed by the part of b not covered by their overlap.
// len(Merge(a, b)) == len(a) + len(b) - Length(a, b).
func Merge(a, b string) string {
	return MergeAt(a, b, Length(a, b))
}

// MergeAt merges a and b assuming an already computed overlap k.
// k is clamped to [0, len(b)].
func MergeAt(a, b string, k int) string {
	if k < 0 {
		k = 0
	}
	if k > len(b) {
		k = len(b)
	}
	return a + b[k:]
}
