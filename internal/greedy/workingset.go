package greedy

import "slices"

// WorkingSet is a duplicate-free collection of fragments. Its internal order
// is an artifact of insertions and removals and carries no meaning.
type WorkingSet struct {
	items []string
	index map[string]int
}

// NewWorkingSet builds a set from frags, dropping repeats.
func NewWorkingSet(frags []string) *WorkingSet {
	ws := &WorkingSet{
		items: make([]string, 0, len(frags)),
		index: make(map[string]int, len(frags)),
	}
	for _, f := range frags {
		ws.Add(f)
	}
	return ws
}

// Len returns the number of fragments.
func (ws *WorkingSet) Len() int { return len(ws.items) }

// Contains reports whether f is present.
func (ws *WorkingSet) Contains(f string) bool {
	_, ok := ws.index[f]
	return ok
}

// Add inserts f and reports whether it was new.
func (ws *WorkingSet) Add(f string) bool {
	if _, ok := ws.index[f]; ok {
		return false
	}
	ws.index[f] = len(ws.items)
	ws.items = append(ws.items, f)
	return true
}

// Remove deletes f and reports whether it was present.
func (ws *WorkingSet) Remove(f string) bool {
	i, ok := ws.index[f]
	if !ok {
		return false
	}
	last := len(ws.items) - 1
	if i != last {
		moved := ws.items[last]
		ws.items[i] = moved
		ws.index[moved] = i
	}
	ws.items[last] = ""
	ws.items = ws.items[:last]
	delete(ws.index, f)
	return true
}

// Snapshot returns a copy of the current fragments.
func (ws *WorkingSet) Snapshot() []string { return slices.Clone(ws.items) }

// Only returns the sole fragment of a one-element set.
func (ws *WorkingSet) Only() (string, bool) {
	if len(ws.items) != 1 {
		return "", false
	}
	return ws.items[0], true
}
