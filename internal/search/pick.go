package search

// Pick is a candidate ordered pair (X, Y) with its overlap length.
// The zero value is an invalid Pick meaning "nothing seen yet".
type Pick struct {
	X, Y    string
	I, J    int // positions of X and Y in the scanned snapshot
	Overlap int
	Valid   bool
}

// Better reports whether a ranks strictly above b: a valid Pick beats an
// invalid one, a longer overlap wins, then the lexicographically smaller X,
// then the smaller Y.
func Better(a, b Pick) bool {
	if !a.Valid {
		return false
	}
	if !b.Valid {
		return true
	}
	if a.Overlap != b.Overlap {
		return a.Overlap > b.Overlap
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Reduce returns the higher-ranked of a and b. It is associative and, for
// picks over distinct pairs, commutative.
func Reduce(a, b Pick) Pick {
	if Better(b, a) {
		return b
	}
	return a
}
