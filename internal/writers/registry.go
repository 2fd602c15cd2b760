// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"ssp/pkg/api"
)

// WriteFunc serializes one result.
type WriteFunc func(w io.Writer, r api.ResultV1) error

// Result writers (format → handler). Register in init() blocks.
var resultWriters = map[string]WriteFunc{}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn WriteFunc) { resultWriters[format] = fn }

// Formats lists the registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(resultWriters))
	for f := range resultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches r to the writer registered for format.
func Write(format string, w io.Writer, r api.ResultV1) error {
	fn, ok := resultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r)
}
