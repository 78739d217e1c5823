package logging

import (
	"encoding/json"
	"microservice/config"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	c := config.NewConfig()
	c.LogLevel = "debug"
	c.LogFile = path

	logger, err := NewLogger("microservice", c)
	require.NoError(t, err)

	logger.Debug("request served")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "microservice", entry["logger"])
	assert.Equal(t, "request served", entry["msg"])
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	c := config.NewConfig()
	c.LogFile = path

	logger, err := NewLogger("microservice", c)
	require.NoError(t, err)

	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewLoggerBadLevel(t *testing.T) {
	c := config.NewConfig()
	c.LogLevel = "loud"

	_, err := NewLogger("microservice", c)
	assert.ErrorContains(t, err, "invalid log level")
}
