package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultOptions_SeedsFromEnvironment(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://api.example.com")
	t.Setenv(EnvAuthToken, "env-token")

	options := NewDefaultOptions()

	assert.Equal(t, "https://api.example.com", options.BaseURL)
	assert.Equal(t, "env-token", options.AuthToken)
	assert.Equal(t, DefaultTimeout, options.Timeout)
	assert.Equal(t, OutputText, options.Output)
}

func TestOptions_Complete(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		filename := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(filename, []byte(content), 0o600))
		return filename
	}

	t.Run("file values fill unset options", func(t *testing.T) {
		options := &Options{
			ConfigFile: writeConfig(t, "baseURL: https://file.example.com\nauthToken: file-token\n"),
		}

		require.NoError(t, options.Complete())

		assert.Equal(t, "https://file.example.com", options.BaseURL)
		assert.Equal(t, "file-token", options.AuthToken)
	})

	t.Run("explicitly set options win over the file", func(t *testing.T) {
		options := &Options{
			BaseURL:    "https://flag.example.com",
			ConfigFile: writeConfig(t, "baseURL: https://file.example.com\nauthToken: file-token\n"),
		}

		require.NoError(t, options.Complete())

		assert.Equal(t, "https://flag.example.com", options.BaseURL)
		assert.Equal(t, "file-token", options.AuthToken)
	})

	t.Run("missing config file is not an error", func(t *testing.T) {
		options := &Options{
			ConfigFile: filepath.Join(t.TempDir(), "does-not-exist.yaml"),
		}

		require.NoError(t, options.Complete())

		assert.Equal(t, DefaultBaseURL, options.BaseURL)
	})

	t.Run("malformed config file is an error", func(t *testing.T) {
		options := &Options{
			ConfigFile: writeConfig(t, "{invalidyaml"),
		}

		require.Error(t, options.Complete())
	})
}

func TestOptions_Validate(t *testing.T) {
	valid := Options{
		BaseURL:   "http://localhost:8080",
		AuthToken: "token",
		Timeout:   30 * time.Second,
		Output:    OutputText,
	}

	tests := []struct {
		name        string
		mutate      func(*Options)
		expectError bool
	}{
		{
			name:   "valid options",
			mutate: func(*Options) {},
		},
		{
			name:   "json output is valid",
			mutate: func(o *Options) { o.Output = OutputJSON },
		},
		{
			name:        "base URL without http scheme",
			mutate:      func(o *Options) { o.BaseURL = "ftp://example.com" },
			expectError: true,
		},
		{
			name:        "missing auth token",
			mutate:      func(o *Options) { o.AuthToken = "" },
			expectError: true,
		},
		{
			name:        "unsupported output format",
			mutate:      func(o *Options) { o.Output = "xml" },
			expectError: true,
		},
		{
			name:        "non-positive timeout",
			mutate:      func(o *Options) { o.Timeout = 0 },
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			options := valid
			test.mutate(&options)

			err := options.Validate()
			if test.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
