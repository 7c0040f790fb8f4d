package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NopByDefault(t *testing.T) {
	var buf bytes.Buffer
	log, runID, closeFn := New(Config{Console: &buf})
	log.Info("hidden")

	assert.Empty(t, buf.String())
	_, err := uuid.Parse(runID)
	assert.NoError(t, err)
	assert.NoError(t, closeFn())
}

func TestNew_DebugConsole(t *testing.T) {
	var buf bytes.Buffer
	log, runID, _ := New(Config{Debug: true, Console: &buf})
	log.Debug("hook finished")
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "hook finished")
	assert.Contains(t, out, runID)
}

func TestNew_FileSinkWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	log, runID, closeFn := New(Config{FilePath: path})
	log.Info("run finished")
	require.NoError(t, log.Sync())
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(b))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "run finished", entry["msg"])
	assert.Equal(t, runID, entry["run_id"])
	assert.Equal(t, "info", entry["level"])
}
