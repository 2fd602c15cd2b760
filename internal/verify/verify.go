// Package verify checks that a superstring really contains every fragment.
package verify

import (
	"fmt"
	"strings"
)

// Report is the outcome of a coverage check.
type Report struct {
	Checked int
	Missing []string // fragments not found, in input order
}

// OK reports whether every fragment was found.
func (r Report) OK() bool { return len(r.Missing) == 0 }

// Error describes the first few missing fragments.
func (r Report) Error() string {
	if r.OK() {
		return ""
	}
	const show = 5
	list := r.Missing
	more := ""
	if len(list) > show {
		more = fmt.Sprintf(" (+%d more)", len(list)-show)
		list = list[:show]
	}
	return fmt.Sprintf("%d of %d fragments missing from output: %s%s",
		len(r.Missing), r.Checked, strings.Join(list, ", "), more)
}

// Coverage checks each fragment against super.
func Coverage(super string, frags []string) Report {
	rep := Report{Checked: len(frags)}
	for _, f := range frags {
		if !strings.Contains(super, f) {
			rep.Missing = append(rep.Missing, f)
		}
	}
	return rep
}
