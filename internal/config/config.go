// Package config loads optional YAML defaults for the command. Values given
// explicitly on the command line always win over the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every decoding failure, including unknown keys.
var ErrInvalid = errors.New("invalid config")

// File mirrors the YAML document. Nil fields were not set.
type File struct {
	Threads  *int    `yaml:"threads"`
	Output   *string `yaml:"output"`
	Stats    *bool   `yaml:"stats"`
	Verify   *bool   `yaml:"verify"`
	LogLevel *string `yaml:"log_level"`
	Quiet    *bool   `yaml:"quiet"`
}

// Parse decodes a config document. Unknown keys are rejected; an empty
// document is an empty config.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return f, nil
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer func() { _ = fh.Close() }()
	f, err := Parse(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
