package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("writes text at the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Config{Level: "warn", Output: &buf})
		require.NoError(t, err)
		defer logger.Close()

		logger.Info("hidden")
		logger.Warn("shown", "benchmark", "Richards")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "benchmark=Richards")
	})

	t.Run("fans out to a json file", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "awfy.log")

		logger, err := New(Config{Level: "debug", File: path, Output: &buf})
		require.NoError(t, err)

		logger.Debug("iteration finished", "runtime_us", 42)
		require.NoError(t, logger.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &record))
		assert.Equal(t, "iteration finished", record["msg"])
		assert.Equal(t, float64(42), record["runtime_us"])
		assert.Contains(t, buf.String(), "iteration finished")
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		_, err := New(Config{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("level can change later", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Config{Output: &buf})
		require.NoError(t, err)
		assert.Equal(t, slog.LevelInfo, logger.Level())

		require.NoError(t, logger.SetLevel("error"))
		logger.Warn("hidden")
		assert.Empty(t, buf.String())
	})
}
