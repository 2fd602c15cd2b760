package writers

import (
	"io"

	"ssp/pkg/api"
)

func init() { Register("text", WriteText) }

// WriteText writes the superstring on a single line.
func WriteText(w io.Writer, r api.ResultV1) error {
	if _, err := io.WriteString(w, r.Superstring); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
