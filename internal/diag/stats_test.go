package diag

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSerialFraction(t *testing.T) {
	cases := []struct {
		s    Stats
		want float64
	}{
		{Stats{}, 0},
		{Stats{Total: 4 * time.Second, Parallel: 3 * time.Second}, 0.25},
		{Stats{Total: time.Second, Parallel: 2 * time.Second}, 0},
		{Stats{Total: time.Second}, 1},
	}
	for _, c := range cases {
		if got := c.s.SerialFraction(); got != c.want {
			t.Errorf("%+v: got %v want %v", c.s, got, c.want)
		}
	}
}

func TestAddSearch(t *testing.T) {
	var s Stats
	s.AddSearch(time.Millisecond)
	s.AddSearch(2 * time.Millisecond)
	if s.Iterations != 2 || s.Parallel != 3*time.Millisecond {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	s := Stats{Total: 2 * time.Second, Parallel: time.Second, Iterations: 3, Collisions: 1}
	if err := s.Write(&buf); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"total=2.000000s", "parallel=1.000000s", "serial_fraction=0.5000", "iterations=3", "collisions=1"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	if len(s.Fields()) != 5 {
		t.Errorf("want 5 log fields")
	}
}
