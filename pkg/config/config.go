package config

import (
	"net/url"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	// EnvBaseURL is the environment variable holding the API base URL.
	EnvBaseURL = "EVALS_API_BASE_URL"

	// EnvAuthToken is the environment variable holding the API auth token.
	EnvAuthToken = "EVALS_API_AUTH_TOKEN"

	// OutputText renders results as human readable text.
	OutputText = "text"

	// OutputJSON renders results as indented JSON.
	OutputJSON = "json"

	// DefaultBaseURL is used if no base URL is configured via flag,
	// environment or config file.
	DefaultBaseURL = "http://localhost:8080"

	// DefaultTimeout is the default timeout for a single API request.
	DefaultTimeout = 30 * time.Second
)

// Options holds the client configuration. Values are resolved in order of
// precedence: command line flags, environment variables, config file,
// built-in defaults.
type Options struct {
	// BaseURL is the base URL of the evals API.
	BaseURL string

	// AuthToken is the bearer token used to authenticate API requests.
	AuthToken string

	// Timeout is the timeout for a single API request.
	Timeout time.Duration

	// Output selects the rendering mode, one of "text" or "json".
	Output string

	// ConfigFile overrides the default config file location.
	ConfigFile string
}

// NewDefaultOptions creates options seeded from the environment. Base URL
// and auth token stay empty if the environment does not provide them so that
// config file values can still apply.
func NewDefaultOptions() *Options {
	return &Options{
		BaseURL:   os.Getenv(EnvBaseURL),
		AuthToken: os.Getenv(EnvAuthToken),
		Timeout:   DefaultTimeout,
		Output:    OutputText,
	}
}

// AddFlags adds the flags for the options to cmd.
func (o *Options) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.BaseURL, "base-url", o.BaseURL, "Base URL of the evals API.")
	cmd.PersistentFlags().StringVar(&o.AuthToken, "auth-token", o.AuthToken, "Bearer token used to authenticate API requests.")
	cmd.PersistentFlags().DurationVar(&o.Timeout, "timeout", o.Timeout, "Timeout for a single API request.")
	cmd.PersistentFlags().StringVarP(&o.Output, "output", "o", o.Output, `Output format. Either "text" or "json".`)
	cmd.PersistentFlags().StringVar(&o.ConfigFile, "config", o.ConfigFile, "Location of the config file.")
}

// Complete fills unset options from the config file and applies built-in
// defaults. Must be called after flag parsing and before Validate.
func (o *Options) Complete() error {
	filename := o.ConfigFile
	if filename == "" {
		filename = DefaultConfigFile()
	}

	fileConfig, err := ReadFileConfig(filename)
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		return errors.Wrapf(err, "failed to load config from file %s", filename)
	}

	if fileConfig != nil {
		fromFile := Options{
			BaseURL:   fileConfig.BaseURL,
			AuthToken: fileConfig.AuthToken,
		}

		err = mergo.Merge(o, fromFile)
		if err != nil {
			return errors.Wrapf(err, "failed to merge config file values")
		}
	}

	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}

	return nil
}

// Validate validates the options. Returns an error for the first invalid
// option encountered.
func (o *Options) Validate() error {
	u, err := url.Parse(o.BaseURL)
	if err != nil {
		return errors.Wrapf(err, "invalid base URL %q", o.BaseURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("invalid base URL %q, scheme must be http or https", o.BaseURL)
	}

	if o.AuthToken == "" {
		return errors.Errorf("no auth token configured, set %s or run \"evals-cli configure\"", EnvAuthToken)
	}

	if o.Output != OutputText && o.Output != OutputJSON {
		return errors.Errorf("unsupported output format %q", o.Output)
	}

	if o.Timeout <= 0 {
		return errors.Errorf("timeout must be positive, got %s", o.Timeout)
	}

	return nil
}
