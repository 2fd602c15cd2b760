// Package logging builds the zap loggers used by the command.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps normal runs silent apart from warnings.
const DefaultLevel = "warn"

// ParseLevel accepts debug|info|warn|error (case-insensitive, "" = DefaultLevel).
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		s = DefaultLevel
	}
	switch s {
	case "debug", "info", "warn", "error":
	default:
		return zapcore.InvalidLevel, fmt.Errorf("invalid log level %q (want debug|info|warn|error)", s)
	}
	return zapcore.ParseLevel(s)
}

// New returns a JSON logger writing to w at the given level. quiet returns a
// no-op logger.
func New(w io.Writer, level string, quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}
