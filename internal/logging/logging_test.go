package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtopo/internal/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	log, closer := logging.New(logging.Config{Level: "warn", Format: "json"}, &buf)
	defer closer.Close()

	log.Info("dropped")
	log.Warn("kept", slog.Int("root", 14319))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.EqualValues(t, 14319, rec["root"])
	assert.Contains(t, rec, "timestamp")
}

func TestNew_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	log, _ := logging.New(logging.Config{}, &buf)
	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	quiet, _ := logging.New(logging.Config{}, nil)
	quiet.Info("nowhere")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridtopo.log")
	log, closer := logging.New(logging.Config{Level: "debug", File: path, MaxSizeMB: 1}, nil)
	log.Debug("to file")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "to file")
}
