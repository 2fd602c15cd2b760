package fragment

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MaxToken bounds a single fragment (64 MiB).
const MaxToken = 64 * 1024 * 1024

// ctxCheckEvery is how many tokens are read between cancellation checks.
const ctxCheckEvery = 4096

// Read parses "n tok1 tok2 ... tokn" from r and returns the distinct tokens in
// first-seen order.
//
// A missing, malformed or negative count yields no fragments. If the stream
// ends before n tokens, the tokens read so far are kept. Tokens after the
// n-th are ignored. Only real I/O errors are returned.
func Read(r io.Reader) ([]string, error) {
	return ReadContext(context.Background(), r)
}

// ReadContext is Read with cancellation between tokens.
func ReadContext(ctx context.Context, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), MaxToken)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, scanErr(sc.Err())
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n <= 0 {
		return nil, nil
	}

	hint := n
	if hint > 1<<16 {
		hint = 1 << 16
	}
	out := make([]string, 0, hint)
	seen := make(map[string]struct{}, hint)
	for i := 0; i < n; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if !sc.Scan() {
			if err := scanErr(sc.Err()); err != nil {
				return nil, err
			}
			break
		}
		tok := sc.Text()
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out, nil
}

func scanErr(err error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("fragment longer than %d bytes: %w", MaxToken, err)
	}
	return err
}

// Load opens path (see Open) and reads it with ReadContext.
func Load(ctx context.Context, path string, stdin io.Reader) ([]string, error) {
	rc, err := Open(path, stdin)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	frags, err := ReadContext(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return frags, nil
}
