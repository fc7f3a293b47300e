package cmd

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/evals-oss/evals-cli/pkg/api"
	"github.com/evals-oss/evals-cli/pkg/config"
	"github.com/evals-oss/evals-cli/pkg/models"
	"github.com/spf13/cobra"
)

// NewMetricsCommand creates the "metrics" command group for querying
// evaluation metrics.
func NewMetricsCommand(options *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Query evaluation metrics",
	}

	cmd.AddCommand(newMetricsQueryCommand(options))

	return cmd
}

func newMetricsQueryCommand(options *config.Options) *cobra.Command {
	var (
		from            string
		to              string
		environments    []string
		metricName      string
		metricSource    string
		sortBy          string
		sortOrder       string
		limit           int
		cursor          string
		filters         []string
		logicalOperator string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Fetch one page of metric points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := buildMetricsQuery(from, to, environments, metricName, metricSource, sortBy, sortOrder, limit, cursor, filters, logicalOperator)
			if err != nil {
				return err
			}

			client, err := resolveClient(options)
			if err != nil {
				return err
			}

			return runMetricsQuery(cmd.Context(), client, options, cmd.OutOrStdout(), query)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start of the queried time range, RFC3339.")
	cmd.Flags().StringVar(&to, "to", "", "End of the queried time range, RFC3339.")
	cmd.Flags().StringArrayVar(&environments, "environment", nil, "Only include points from this environment. Can be specified multiple times.")
	cmd.Flags().StringVar(&metricName, "metric-name", "", "Only include points for this metric name.")
	cmd.Flags().StringVar(&metricSource, "metric-source", "", "Only include points from this metric source.")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Field to sort the points by.")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", `Sort order, either "ASC" or "DESC".`)
	cmd.Flags().IntVar(&limit, "limit", models.DefaultMetricsLimit, "Maximum number of points per page.")
	cmd.Flags().StringVar(&cursor, "cursor", "", "Opaque cursor from a previous page to fetch the next one.")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter in the form field:operator:value. Can be specified multiple times.")
	cmd.Flags().StringVar(&logicalOperator, "logical-operator", "", `How multiple filters combine, either "AND" or "OR".`)

	cobra.CheckErr(cmd.MarkFlagRequired("from"))
	cobra.CheckErr(cmd.MarkFlagRequired("to"))

	return cmd
}

func buildMetricsQuery(from, to string, environments []string, metricName, metricSource, sortBy, sortOrder string, limit int, cursor string, filters []string, logicalOperator string) (*models.MetricsQuery, error) {
	fromTS, err := time.Parse(time.RFC3339, from)
	if err != nil {
		return nil, models.Validationf("invalid from timestamp %q, expected RFC3339", from)
	}

	toTS, err := time.Parse(time.RFC3339, to)
	if err != nil {
		return nil, models.Validationf("invalid to timestamp %q, expected RFC3339", to)
	}

	query := &models.MetricsQuery{
		From:            fromTS,
		To:              toTS,
		Environments:    environments,
		MetricName:      metricName,
		MetricSource:    metricSource,
		SortBy:          sortBy,
		SortOrder:       sortOrder,
		Limit:           limit,
		Cursor:          cursor,
		LogicalOperator: logicalOperator,
	}

	for _, filter := range filters {
		parts := strings.SplitN(filter, ":", 3)
		if len(parts) != 3 {
			return nil, models.Validationf("invalid filter %q, expected field:operator:value", filter)
		}

		query.Filters = append(query.Filters, models.MetricFilter{
			Field:    parts[0],
			Operator: parts[1],
			Value:    parts[2],
		})
	}

	return query, nil
}

func runMetricsQuery(ctx context.Context, client api.Client, options *config.Options, w io.Writer, query *models.MetricsQuery) error {
	page, err := client.QueryMetrics(ctx, query)
	if err != nil {
		return err
	}

	return render(w, options, page, func(w io.Writer) error {
		return renderMetricsPage(w, page)
	})
}
