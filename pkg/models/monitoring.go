package models

import "time"

// MonitoringStatus describes the health of the evaluation pipeline for an
// organization. All fields are derived server side; the status and reasons
// can be recomputed locally via the health package.
type MonitoringStatus struct {
	// OrganizationID is the ID of the organization the status belongs to.
	OrganizationID string `json:"organization_id"`

	// Environment is the environment the status was computed for, if scoped.
	Environment string `json:"environment,omitempty"`

	// Project is the project the status was computed for, if scoped.
	Project string `json:"project,omitempty"`

	// EvaluatedUpTo is the timestamp up to which spans have been evaluated.
	// Nil if no evaluation data exists yet.
	EvaluatedUpTo *time.Time `json:"evaluated_up_to,omitempty"`

	// LatestSpanReceived is the timestamp of the latest span that was
	// received.
	LatestSpanReceived *time.Time `json:"latest_span_received,omitempty"`

	// LagInSeconds is the elapsed time between the latest received span and
	// the latest evaluated span.
	LagInSeconds int64 `json:"lag_in_seconds"`

	// LagInSpans is the number of spans received but not yet evaluated.
	LagInSpans int64 `json:"lag_in_spans"`

	// Status is the three-level pipeline health, one of OK, DEGRADED or
	// ERROR.
	Status string `json:"status"`

	// Reasons holds diagnostic reason codes explaining a degraded or
	// erroneous status.
	Reasons []string `json:"reasons,omitempty"`
}

// HasEvaluationData returns true if the pipeline has evaluated any data at
// all.
func (s *MonitoringStatus) HasEvaluationData() bool {
	return s.EvaluatedUpTo != nil
}
