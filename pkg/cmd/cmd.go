// Package cmd implements the evals-cli subcommands. Commands are thin
// presentation glue: they resolve the client configuration, perform a single
// API call and render the result.
package cmd

import (
	"github.com/evals-oss/evals-cli/pkg/api"
	"github.com/evals-oss/evals-cli/pkg/config"
)

// newClient creates the API client used by the commands. Declared as a
// variable so tests can swap in a fake.
var newClient = api.New

// resolveClient completes and validates the options and creates an API
// client from them.
func resolveClient(options *config.Options) (api.Client, error) {
	err := options.Complete()
	if err != nil {
		return nil, err
	}

	err = options.Validate()
	if err != nil {
		return nil, err
	}

	return newClient(options), nil
}
