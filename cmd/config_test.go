package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "REQUEST_TIMEOUT", "NOTIFY_TIMEOUT", "REMINDER_AFTER", "KAFKA_HOST"} {
		t.Setenv(key, "")
	}

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, 5*time.Second, config.RequestTimeout)
	assert.Equal(t, 3*time.Second, config.NotifyTimeout)
	assert.Equal(t, 2*time.Minute, config.ReminderAfter)
	assert.Empty(t, config.KafkaHost)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("DB_NAME", "")
	// godotenv does not override variables that are already set, so unset them.
	require.NoError(t, os.Unsetenv("HTTP_PORT"))
	require.NoError(t, os.Unsetenv("REQUEST_TIMEOUT"))
	require.NoError(t, os.Unsetenv("DB_NAME"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\nREQUEST_TIMEOUT=750ms\nDB_NAME=marketplace\n"), 0o600))

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, 750*time.Millisecond, config.RequestTimeout)
	assert.Contains(t, config.DSN(), "dbname=marketplace")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("NOTIFY_TIMEOUT", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTIFY_TIMEOUT")
}
