package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("fatal")
	assert.Error(t, err)
}

func TestNewWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", false)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("shown", zap.Int("fragments", 3))
	require.NoError(t, log.Sync())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "info", rec["level"])
	assert.EqualValues(t, 3, rec["fragments"])
}

func TestNewQuiet(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "bogus", true)
	require.NoError(t, err)
	log.Error("nothing")
	assert.Zero(t, buf.Len())
}
