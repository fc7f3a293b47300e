package models

import "time"

const (
	// SortOrderAsc sorts metric points in ascending order.
	SortOrderAsc = "ASC"

	// SortOrderDesc sorts metric points in descending order.
	SortOrderDesc = "DESC"

	// LogicalOperatorAnd requires all metric filters to match.
	LogicalOperatorAnd = "AND"

	// LogicalOperatorOr requires at least one metric filter to match.
	LogicalOperatorOr = "OR"

	// DefaultMetricsLimit is the page size used when a query does not set an
	// explicit limit.
	DefaultMetricsLimit = 50
)

// MetricFilter narrows a metrics query to points whose field matches value
// under operator, e.g. {"environment", "eq", "prd"}.
type MetricFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// MetricsQuery describes a single metrics page request. From and To are
// required; all other fields are optional.
type MetricsQuery struct {
	From            time.Time      `json:"from"`
	To              time.Time      `json:"to"`
	Environments    []string       `json:"environments,omitempty"`
	MetricName      string         `json:"metric_name,omitempty"`
	MetricSource    string         `json:"metric_source,omitempty"`
	SortBy          string         `json:"sort_by,omitempty"`
	SortOrder       string         `json:"sort_order,omitempty"`
	Limit           int            `json:"limit,omitempty"`
	Cursor          string         `json:"cursor,omitempty"`
	Filters         []MetricFilter `json:"filters,omitempty"`
	LogicalOperator string         `json:"logical_operator,omitempty"`
}

// Validate returns a *ValidationError if the query is malformed. It is
// called before any request is sent.
func (q *MetricsQuery) Validate() error {
	if q.From.IsZero() || q.To.IsZero() {
		return Validationf("metrics query requires both from and to timestamps")
	}

	if q.From.After(q.To) {
		return Validationf("metrics query from timestamp %s is after to timestamp %s", q.From.Format(time.RFC3339), q.To.Format(time.RFC3339))
	}

	if q.SortOrder != "" && q.SortOrder != SortOrderAsc && q.SortOrder != SortOrderDesc {
		return Validationf("invalid sort order %q, must be one of %s, %s", q.SortOrder, SortOrderAsc, SortOrderDesc)
	}

	if q.LogicalOperator != "" && q.LogicalOperator != LogicalOperatorAnd && q.LogicalOperator != LogicalOperatorOr {
		return Validationf("invalid logical operator %q, must be one of %s, %s", q.LogicalOperator, LogicalOperatorAnd, LogicalOperatorOr)
	}

	if q.Limit < 0 {
		return Validationf("metrics query limit must not be negative, got %d", q.Limit)
	}

	return nil
}

// MetricPoint is a single measurement returned by a metrics query. The value
// is either numeric or a string, never both.
type MetricPoint struct {
	MetricName   string            `json:"metric_name"`
	MetricSource string            `json:"metric_source,omitempty"`
	Value        *float64          `json:"value,omitempty"`
	StringValue  string            `json:"string_value,omitempty"`
	EventTime    time.Time         `json:"event_time"`
	Labels       map[string]string `json:"labels,omitempty"`
}

// MetricsPage is one page of metric points. NextCursor is an opaque token
// that fetches the next page when passed back in a MetricsQuery.
type MetricsPage struct {
	Points     []MetricPoint `json:"points"`
	NextCursor string        `json:"next_cursor,omitempty"`
	HasMore    bool          `json:"has_more"`
}
