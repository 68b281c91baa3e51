package providers

import (
	"bytes"
	"chatsplit/internal/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestGetLogTypeByCommand_Split(t *testing.T) {
	assert.Equal(t, TypeWrite, GetLogTypeByCommand(structures.CommandSplit))
}

func TestGetLogTypeByCommand_ReadOnly(t *testing.T) {
	assert.Equal(t, TypeLoad, GetLogTypeByCommand(structures.CommandFirstIDs))
	assert.Equal(t, TypeLoad, GetLogTypeByCommand(structures.CommandSummary))
	assert.Equal(t, TypeLoad, GetLogTypeByCommand(structures.CommandVerify))
}

func TestGetLogTypeByCommand_Other(t *testing.T) {
	assert.Equal(t, TypeApp, GetLogTypeByCommand("serve"))
	assert.Equal(t, TypeApp, GetLogTypeByCommand(""))
}

func TestTypeEnum_String(t *testing.T) {
	assert.Equal(t, "app", TypeApp.String())
	assert.Equal(t, "load", TypeLoad.String())
	assert.Equal(t, "write", TypeWrite.String())
}

func TestNewLogProvider_CreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	var console bytes.Buffer
	logger, err := NewLogProviderWithWriter(conf, &console)
	require.NoError(t, err)

	logger.Infof(TypeApp, "test message %d", 42)
	logger.Debugf(TypeLoad, "debug is filtered")
	logger.Warnf(TypeWrite, "write warning")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test message 42")
	assert.Contains(t, string(data), `"type":"write"`)
	assert.NotContains(t, string(data), "debug is filtered")
	assert.Contains(t, console.String(), "test message 42")
}

func TestNewLogProvider_DebugFlagLowersLevel(t *testing.T) {
	conf := &structures.Config{
		Debug:  true,
		Logger: structures.LoggerConfig{Level: "error"},
	}

	var console bytes.Buffer
	logger, err := NewLogProviderWithWriter(conf, &console)
	require.NoError(t, err)
	defer logger.Close()

	logger.Debugf(TypeApp, "visible in debug mode")
	assert.Contains(t, console.String(), "visible in debug mode")
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/nonexistent/directory/path",
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{Level: "verbose"},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
