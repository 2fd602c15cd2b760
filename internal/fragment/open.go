// Package fragment reads fragment sets: an integer count followed by that many
// whitespace-delimited tokens, from a file or stdin, optionally compressed.
package fragment

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path ("-" reads stdin). gzip and zstd input is
// detected by magic number or by a .gz / .zst suffix and decompressed.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer = io.NopCloser(nil)
	)
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		src = stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, closer = fh, fh
	}

	br := bufio.NewReaderSize(src, 64*1024)
	sig, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, fmt.Errorf("%s: gzip: %w", path, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	case bytes.HasPrefix(sig, zstdMagic) || strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			_ = closer.Close()
			return nil, fmt.Errorf("%s: zstd: %w", path, err)
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), closer}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{closer}}, nil
}
