package cmd

import (
	"context"
	"io"

	"github.com/evals-oss/evals-cli/pkg/api"
	"github.com/evals-oss/evals-cli/pkg/config"
	"github.com/spf13/cobra"
)

// NewMonitoringCommand creates the "monitoring" command group for inspecting
// the evaluation pipeline health.
func NewMonitoringCommand(options *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitoring",
		Short: "View monitoring status and pipeline health",
	}

	cmd.AddCommand(newMonitoringStatusCommand(options))

	return cmd
}

func newMonitoringStatusCommand(options *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Get the monitoring status for the organization",
		Long: `Get the monitoring status for the organization.

Shows the evaluation pipeline health including lag metrics. The status is OK
for a lag of up to 3 minutes, DEGRADED up to 10 minutes and ERROR beyond that
or if no evaluation data exists at all.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := resolveClient(options)
			if err != nil {
				return err
			}

			return runMonitoringStatus(cmd.Context(), client, options, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runMonitoringStatus(ctx context.Context, client api.Client, options *config.Options, w io.Writer) error {
	status, err := client.GetMonitoringStatus(ctx)
	if err != nil {
		return err
	}

	return render(w, options, status, func(w io.Writer) error {
		return renderMonitoringStatus(w, status)
	})
}
