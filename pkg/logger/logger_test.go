package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(file, "info")
	require.NoError(t, err)

	log.Info("call started: call_id=%s", "abc")
	log.Debug("hidden at info level")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "call started: call_id=abc")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Warn("ignored %d", 1)
	assert.NoError(t, log.Close())
}

func TestNewFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ivrsim.log")

	log, err := NewFile(file, "debug")
	require.NoError(t, err)
	log.Debug("digit=%s", "1")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digit=1")

	nop, err := NewFile("", "info")
	require.NoError(t, err)
	assert.NoError(t, nop.Close())
}
