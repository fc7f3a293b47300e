package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/evals-oss/evals-cli/pkg/config"
	"github.com/evals-oss/evals-cli/pkg/models"
)

// render writes v to w, either as indented JSON or via the given text
// renderer, depending on the configured output format.
func render(w io.Writer, options *config.Options, v interface{}, text func(io.Writer) error) error {
	if options.Output == config.OutputJSON {
		return printJSON(w, v)
	}

	return text(w)
}

func printJSON(w io.Writer, v interface{}) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(buf))

	return err
}

func renderSetup(w io.Writer, setup *models.Setup) error {
	return renderSetupList(w, []models.Setup{*setup})
}

func renderSetupList(w io.Writer, setups []models.Setup) error {
	if len(setups) == 0 {
		_, err := fmt.Fprintln(w, "No setups found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tENTITY TYPE\tENTITY VALUE\tSTATUS\tEVALUATORS")

	for _, setup := range setups {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", setup.ID, setup.EntityType, setup.EntityValue, setup.Status, len(setup.Evaluators))
	}

	return tw.Flush()
}

func renderMonitoringStatus(w io.Writer, status *models.MonitoringStatus) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "Status:\t%s\n", status.Status)
	fmt.Fprintf(tw, "Organization:\t%s\n", status.OrganizationID)

	if status.Environment != "" {
		fmt.Fprintf(tw, "Environment:\t%s\n", status.Environment)
	}

	if status.Project != "" {
		fmt.Fprintf(tw, "Project:\t%s\n", status.Project)
	}

	fmt.Fprintf(tw, "Evaluated Up To:\t%s\n", formatTimestamp(status.EvaluatedUpTo))
	fmt.Fprintf(tw, "Latest Span Received:\t%s\n", formatTimestamp(status.LatestSpanReceived))
	fmt.Fprintf(tw, "Lag (seconds):\t%d\n", status.LagInSeconds)
	fmt.Fprintf(tw, "Lag (spans):\t%d\n", status.LagInSpans)

	for i, reason := range status.Reasons {
		if i == 0 {
			fmt.Fprintf(tw, "Reasons:\t%s\n", reason)
		} else {
			fmt.Fprintf(tw, "\t%s\n", reason)
		}
	}

	return tw.Flush()
}

func renderMetricsPage(w io.Writer, page *models.MetricsPage) error {
	if len(page.Points) == 0 {
		_, err := fmt.Fprintln(w, "No metric points found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "METRIC\tSOURCE\tVALUE\tEVENT TIME")

	for _, point := range page.Points {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", point.MetricName, point.MetricSource, formatMetricValue(point), point.EventTime.Format(time.RFC3339))
	}

	err := tw.Flush()
	if err != nil {
		return err
	}

	if page.HasMore {
		_, err = fmt.Fprintf(w, "\nMore results available, pass --cursor %s to fetch the next page.\n", page.NextCursor)
	}

	return err
}

func renderOrganization(w io.Writer, org *models.Organization) error {
	fmt.Fprintf(w, "Organization %q created", org.Name)

	if org.ID != "" {
		fmt.Fprintf(w, " with ID %s", org.ID)
	}

	fmt.Fprintln(w, ".")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "ENVIRONMENT\tAPI KEY")

	for _, env := range org.Environments {
		fmt.Fprintf(tw, "%s\t%s\n", env.Slug, env.APIKey)
	}

	return tw.Flush()
}

func formatMetricValue(point models.MetricPoint) string {
	if point.Value != nil {
		return strconv.FormatFloat(*point.Value, 'f', -1, 64)
	}

	return point.StringValue
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return "<none>"
	}

	return t.Format(time.RFC3339)
}
