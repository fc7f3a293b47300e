package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// FileConfig is the subset of the options that can be persisted to the
// config file via "evals-cli configure".
type FileConfig struct {
	// BaseURL is the base URL of the evals API.
	BaseURL string `json:"baseURL"`

	// AuthToken is the bearer token used to authenticate API requests.
	AuthToken string `json:"authToken"`
}

// DefaultConfigFile returns the default config file location,
// $HOME/.evals-cli/config.yaml.
func DefaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".evals-cli", "config.yaml")
}

// ReadFileConfig reads the client configuration from given file.
func ReadFileConfig(filename string) (*FileConfig, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config FileConfig

	err = yaml.Unmarshal(buf, &config)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config file %s", filename)
	}

	return &config, nil
}

// WriteFileConfig persists the client configuration to given file. The
// parent directory is created if needed. The file contains the auth token
// and is only readable by the owner.
func WriteFileConfig(filename string, config *FileConfig) error {
	buf, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(filename), 0o700)
	if err != nil {
		return errors.Wrapf(err, "failed to create config directory")
	}

	return os.WriteFile(filename, buf, 0o600)
}
