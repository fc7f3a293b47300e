package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/evals-oss/evals-cli/pkg/api"
	"github.com/evals-oss/evals-cli/pkg/config"
	"github.com/evals-oss/evals-cli/pkg/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewSetupCommand creates the "setup" command group for managing
// auto-monitor-setups.
func NewSetupCommand(options *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Manage auto-monitor-setups",
	}

	cmd.AddCommand(newSetupCreateCommand(options))
	cmd.AddCommand(newSetupListCommand(options))
	cmd.AddCommand(newSetupGetCommand(options))
	cmd.AddCommand(newSetupDeleteCommand(options))

	return cmd
}

func newSetupCreateCommand(options *config.Options) *cobra.Command {
	var (
		entityType     string
		entityValue    string
		evaluatorIDs   []string
		evaluatorTypes []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new auto-monitor-setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := resolveClient(options)
			if err != nil {
				return err
			}

			return runSetupCreate(cmd.Context(), client, options, cmd.OutOrStdout(), entityType, entityValue, evaluatorIDs, evaluatorTypes)
		},
	}

	cmd.Flags().StringVarP(&entityType, "entity-type", "t", "", "Type of the monitored entity, e.g. \"agent\".")
	cmd.Flags().StringVarP(&entityValue, "entity-value", "v", "", "Name of the monitored entity.")
	cmd.Flags().StringArrayVarP(&evaluatorIDs, "evaluator-id", "e", nil, "ID of an existing evaluator to attach. Can be specified multiple times.")
	cmd.Flags().StringArrayVarP(&evaluatorTypes, "evaluator-type", "T", nil, "Type of an evaluator to create, e.g. \"hallucination\". Can be specified multiple times.")

	cobra.CheckErr(cmd.MarkFlagRequired("entity-type"))
	cobra.CheckErr(cmd.MarkFlagRequired("entity-value"))

	return cmd
}

func runSetupCreate(ctx context.Context, client api.Client, options *config.Options, w io.Writer, entityType, entityValue string, evaluatorIDs, evaluatorTypes []string) error {
	req := api.CreateSetupRequest{
		EntityType:  entityType,
		EntityValue: entityValue,
	}

	for _, id := range evaluatorIDs {
		req.Evaluators = append(req.Evaluators, models.NewEvaluatorID(id))
	}

	for _, typ := range evaluatorTypes {
		req.Evaluators = append(req.Evaluators, models.NewEvaluatorType(typ))
	}

	setup, err := client.CreateSetup(ctx, req)
	if err != nil {
		return err
	}

	return render(w, options, setup, func(w io.Writer) error {
		fmt.Fprintf(w, "Setup %s created.\n", setup.ID)
		return renderSetup(w, setup)
	})
}

func newSetupListCommand(options *config.Options) *cobra.Command {
	var filter api.ListSetupsFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List auto-monitor-setups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := resolveClient(options)
			if err != nil {
				return err
			}

			return runSetupList(cmd.Context(), client, options, cmd.OutOrStdout(), filter)
		},
	}

	cmd.Flags().StringVarP(&filter.EntityType, "entity-type", "t", "", "Only list setups for entities of this type.")
	cmd.Flags().StringVarP(&filter.Status, "status", "s", "", "Only list setups with this status, e.g. \"pending\" or \"active\".")

	return cmd
}

func runSetupList(ctx context.Context, client api.Client, options *config.Options, w io.Writer, filter api.ListSetupsFilter) error {
	setups, err := client.ListSetups(ctx, filter)
	if err != nil {
		return err
	}

	return render(w, options, setups, func(w io.Writer) error {
		return renderSetupList(w, setups)
	})
}

func newSetupGetCommand(options *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Get a single auto-monitor-setup by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveClient(options)
			if err != nil {
				return err
			}

			return runSetupGet(cmd.Context(), client, options, cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

func runSetupGet(ctx context.Context, client api.Client, options *config.Options, w io.Writer, id string) error {
	setup, err := client.GetSetup(ctx, id)
	if models.IsNotFound(err) {
		return errors.Errorf("setup %q not found", id)
	} else if err != nil {
		return err
	}

	return render(w, options, setup, func(w io.Writer) error {
		return renderSetup(w, setup)
	})
}

func newSetupDeleteCommand(options *config.Options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an auto-monitor-setup by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolveClient(options)
			if err != nil {
				return err
			}

			return runSetupDelete(cmd.Context(), client, cmd.OutOrStdout(), args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion.")

	return cmd
}

func runSetupDelete(ctx context.Context, client api.Client, w io.Writer, id string, yes bool) error {
	if !yes {
		return errors.Errorf("refusing to delete setup %q without --yes", id)
	}

	err := client.DeleteSetup(ctx, id)
	if models.IsNotFound(err) {
		return errors.Errorf("setup %q not found", id)
	} else if err != nil {
		return err
	}

	fmt.Fprintf(w, "Setup %s deleted.\n", id)

	return nil
}
