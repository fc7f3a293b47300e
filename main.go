package main

import (
	"fmt"
	"os"

	"github.com/evals-oss/evals-cli/pkg/cmd"
	"github.com/evals-oss/evals-cli/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool

// NewRootCommand creates a new *cobra.Command that is used as the root
// command for evals-cli.
func NewRootCommand() *cobra.Command {
	options := config.NewDefaultOptions()

	rootCmd := &cobra.Command{
		Use:           "evals-cli",
		Short:         "Manage auto-monitor-setups and evaluation pipeline health",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	options.AddFlags(rootCmd)

	rootCmd.AddCommand(cmd.NewConfigureCommand(options))
	rootCmd.AddCommand(cmd.NewSetupCommand(options))
	rootCmd.AddCommand(cmd.NewMonitoringCommand(options))
	rootCmd.AddCommand(cmd.NewMetricsCommand(options))
	rootCmd.AddCommand(cmd.NewOrgCommand(options))

	return rootCmd
}

func main() {
	rootCmd := NewRootCommand()

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", debug, "Enable debug logging.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
