// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"ssp/internal/config"
	"ssp/internal/logging"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input      string // path, or "-" for stdin
	ConfigFile string

	// Performance
	Threads int // 0 = all CPUs

	// Output
	Output string
	Stats  bool
	Verify bool

	// Misc
	LogLevel string
	Quiet    bool
	Version  bool
}

// Register wires all flags onto fs.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.StringVarP(&o.Input, "input", "i", "-", "fragment file (count then tokens; .gz/.zst ok) or '-' for STDIN")
	fs.StringVarP(&o.ConfigFile, "config", "c", "", "YAML file with default settings")

	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker goroutines for the pair search (0 = all CPUs)")

	fs.StringVarP(&o.Output, "output", "o", OutputText, "output: text | json")
	fs.BoolVar(&o.Stats, "stats", false, "print timing diagnostics to STDERR")
	fs.BoolVar(&o.Verify, "verify", false, "check every fragment occurs in the result")

	fs.StringVar(&o.LogLevel, "log-level", logging.DefaultLevel, "log level: debug | info | warn | error")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress logs")
	fs.BoolVarP(&o.Version, "version", "v", false, "print version and exit")
}

// Finalize resolves positionals and the config file, then validates.
// Precedence is flag > config file > default.
func Finalize(fs *pflag.FlagSet, o *Options, args []string) error {
	if o.Version {
		return nil
	}
	switch {
	case len(args) > 1:
		return fmt.Errorf("expected at most one input file, got %d", len(args))
	case len(args) == 1 && fs.Changed("input"):
		return errors.New("input given both as --input and as an argument")
	case len(args) == 1:
		o.Input = args[0]
	}
	if o.ConfigFile != "" {
		f, err := config.Load(o.ConfigFile)
		if err != nil {
			return err
		}
		Apply(fs, o, f)
	}
	return Validate(o)
}

// Apply copies config values into o for every flag not set explicitly.
func Apply(fs *pflag.FlagSet, o *Options, f config.File) {
	if f.Threads != nil && !fs.Changed("threads") {
		o.Threads = *f.Threads
	}
	if f.Output != nil && !fs.Changed("output") {
		o.Output = *f.Output
	}
	if f.Stats != nil && !fs.Changed("stats") {
		o.Stats = *f.Stats
	}
	if f.Verify != nil && !fs.Changed("verify") {
		o.Verify = *f.Verify
	}
	if f.LogLevel != nil && !fs.Changed("log-level") {
		o.LogLevel = *f.LogLevel
	}
	if f.Quiet != nil && !fs.Changed("quiet") {
		o.Quiet = *f.Quiet
	}
}

// Validate applies option invariants.
func Validate(o *Options) error {
	if o.Input == "" {
		return errors.New("--input must not be empty")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	switch o.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}
