package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileConfig_RoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written := &FileConfig{
		BaseURL:   "https://api.example.com",
		AuthToken: "secret-token",
	}

	require.NoError(t, WriteFileConfig(filename, written))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	read, err := ReadFileConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, written, read)
}

func TestReadFileConfig_MissingFile(t *testing.T) {
	_, err := ReadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
