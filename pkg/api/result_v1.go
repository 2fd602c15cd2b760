// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON schema for one superstring run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	RunID       string   `json:"run_id"`
	Superstring string   `json:"superstring"`
	Length      int      `json:"length"`
	Fragments   int      `json:"fragments"`    // distinct input fragments
	InputLength int      `json:"input_length"` // sum of distinct fragment lengths
	Threads     int      `json:"threads"`
	Iterations  int      `json:"iterations"`
	Collisions  int      `json:"collisions,omitempty"`
	Verified    *bool    `json:"verified,omitempty"`
	Missing     []string `json:"missing,omitempty"`
	Stats       *StatsV1 `json:"stats,omitempty"`
}

// StatsV1 carries the optional timing diagnostics.
type StatsV1 struct {
	TotalSeconds    float64 `json:"total_s"`
	ParallelSeconds float64 `json:"parallel_s"`
	SerialFraction  float64 `json:"serial_fraction"`
}
