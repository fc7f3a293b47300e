package cmd

import (
	"context"
	"io"

	"github.com/evals-oss/evals-cli/pkg/api"
	"github.com/evals-oss/evals-cli/pkg/config"
	"github.com/spf13/cobra"
)

// NewOrgCommand creates the "org" command group for managing organizations.
func NewOrgCommand(options *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Manage organizations",
	}

	cmd.AddCommand(newOrgCreateCommand(options))

	return cmd
}

func newOrgCreateCommand(options *config.Options) *cobra.Command {
	var req api.CreateOrganizationRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new organization",
		Long: `Create a new organization.

One API key is issued per environment. If no environments are specified, the
organization is created with the single environment "prd".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := resolveClient(options)
			if err != nil {
				return err
			}

			return runOrgCreate(cmd.Context(), client, options, cmd.OutOrStdout(), req)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Name of the organization.")
	cmd.Flags().StringArrayVar(&req.Environments, "environment", nil, "Environment slug to issue an API key for. Can be specified multiple times.")

	cobra.CheckErr(cmd.MarkFlagRequired("name"))

	return cmd
}

func runOrgCreate(ctx context.Context, client api.Client, options *config.Options, w io.Writer, req api.CreateOrganizationRequest) error {
	org, err := client.CreateOrganization(ctx, req)
	if err != nil {
		return err
	}

	return render(w, options, org, func(w io.Writer) error {
		return renderOrganization(w, org)
	})
}
