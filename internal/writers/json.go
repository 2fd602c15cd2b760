package writers

import (
	"encoding/json"
	"io"

	"ssp/pkg/api"
)

func init() { Register("json", WriteJSON) }

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r api.ResultV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
