package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseAllKeys(t *testing.T) {
	f, err := Parse(strings.NewReader("threads: 3\noutput: json\nstats: true\nverify: false\nlog_level: debug\nquiet: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Threads == nil || *f.Threads != 3 {
		t.Errorf("threads: %v", f.Threads)
	}
	if f.Output == nil || *f.Output != "json" {
		t.Errorf("output: %v", f.Output)
	}
	if f.Stats == nil || !*f.Stats || f.Verify == nil || *f.Verify {
		t.Errorf("bools: stats=%v verify=%v", f.Stats, f.Verify)
	}
	if f.LogLevel == nil || *f.LogLevel != "debug" || f.Quiet == nil || !*f.Quiet {
		t.Errorf("log_level=%v quiet=%v", f.LogLevel, f.Quiet)
	}
}

func TestParsePartialAndEmpty(t *testing.T) {
	f, err := Parse(strings.NewReader("threads: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Output != nil || f.Stats != nil {
		t.Fatalf("unset keys must stay nil: %+v", f)
	}
	if _, err := Parse(strings.NewReader("")); err != nil {
		t.Fatalf("empty doc: %v", err)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("threads: 2\nchunk: 9\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("want ErrInvalid, got %v", err)
	}
	_, err = Parse(strings.NewReader("threads: [1, 2]\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("want ErrInvalid for bad type, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ssp.yaml")
	if err := os.WriteFile(p, []byte("output: text\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(p)
	if err != nil || f.Output == nil || *f.Output != "text" {
		t.Fatalf("load: %+v %v", f, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
