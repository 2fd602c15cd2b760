// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ssp/internal/appcore"
	"ssp/internal/cli"
	"ssp/internal/version"
)

// exitCode carries a process exit code out of cobra's RunE.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit %d", int(c)) }

// NewCommand builds the root command. The exit code of a run is reported as
// an exitCode error (nil on success).
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts cli.Options
	cmd := &cobra.Command{
		Use:   "ssp [flags] [input]",
		Short: "greedy shortest common superstring",
		Long: `ssp merges a set of fragments into one short string that contains every
fragment, by repeatedly joining the pair with the longest suffix/prefix overlap.

Input is an integer count followed by that many whitespace-separated
fragments. Repeated fragments are collapsed. gzip and zstd input is detected
automatically. With no input argument, STDIN is read.`,
		Example: `  ssp frags.txt
  ssp -t 8 --stats frags.txt.gz
  printf '3 ab bc cd' | ssp -o json --verify`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.Finalize(cmd.Flags(), &opts, args); err != nil {
				return err
			}
			if opts.Version {
				_, _ = fmt.Fprintf(stdout, "ssp version %s\n", version.Version)
				return nil
			}
			code := appcore.Run(cmd.Context(), stdin, stdout, stderr, appcore.Options{
				Input:    opts.Input,
				Threads:  opts.Threads,
				Output:   opts.Output,
				Stats:    opts.Stats,
				Verify:   opts.Verify,
				LogLevel: opts.LogLevel,
				Quiet:    opts.Quiet,
			})
			if code != appcore.ExitOK {
				return exitCode(code)
			}
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cli.Register(cmd.Flags(), &opts)
	return cmd
}

// RunContextIO executes the command with explicit streams and returns the
// process exit code.
func RunContextIO(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if argv == nil {
		// cobra falls back to os.Args on a nil slice.
		argv = []string{}
	}
	cmd := NewCommand(stdin, stdout, stderr)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(parent)
	if err == nil {
		return appcore.ExitOK
	}
	var code exitCode
	if errors.As(err, &code) {
		return int(code)
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	_, _ = fmt.Fprintln(stderr, "Run 'ssp --help' for usage.")
	return appcore.ExitUsage
}
