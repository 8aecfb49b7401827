package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "")
	assert.Error(t, err)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortener.log")
	log, err := New("info", path)
	require.NoError(t, err)

	log.Infow("hello", "id", "abc123")
	log.Debug("dropped")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"id":"abc123"`)
	assert.NotContains(t, string(data), "dropped")
}

func TestNewWithSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithSink(zapcore.DebugLevel, zapcore.AddSync(&buf))
	log.Debugw("resolved", "url", "https://example.com")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "https://example.com", entry["url"])
	assert.Contains(t, entry, "ts")
}
