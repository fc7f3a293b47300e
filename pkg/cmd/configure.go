package cmd

import (
	"fmt"
	"io"

	"github.com/evals-oss/evals-cli/pkg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewConfigureCommand creates the "configure" command which persists the API
// connection settings to the config file.
func NewConfigureCommand(options *config.Options) *cobra.Command {
	var fileConfig config.FileConfig

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure the API connection settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filename := options.ConfigFile
			if filename == "" {
				filename = config.DefaultConfigFile()
			}

			return runConfigure(cmd.OutOrStdout(), filename, fileConfig)
		},
	}

	cmd.Flags().StringVar(&fileConfig.BaseURL, "base-url", config.DefaultBaseURL, "Base URL of the evals API.")
	cmd.Flags().StringVar(&fileConfig.AuthToken, "auth-token", "", "Bearer token used to authenticate API requests.")

	cobra.CheckErr(cmd.MarkFlagRequired("auth-token"))

	return cmd
}

func runConfigure(w io.Writer, filename string, fileConfig config.FileConfig) error {
	if filename == "" {
		return errors.Errorf("could not determine config file location, pass --config")
	}

	err := config.WriteFileConfig(filename, &fileConfig)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Configuration saved to %s.\n", filename)

	return nil
}
