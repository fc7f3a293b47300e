package health

// Status is the three-level health of the evaluation pipeline.
type Status string

const (
	// StatusOK means the pipeline is keeping up with incoming spans.
	StatusOK Status = "OK"

	// StatusDegraded means the pipeline is lagging noticeably behind.
	StatusDegraded Status = "DEGRADED"

	// StatusError means the pipeline is lagging badly or has not evaluated
	// any data at all.
	StatusError Status = "ERROR"
)

// Reason codes attached to a DEGRADED or ERROR status.
const (
	// ReasonLagHigh is attached whenever the evaluation lag exceeds
	// DegradedThresholdSeconds.
	ReasonLagHigh = "LAG_HIGH"

	// ReasonNoEvaluationData is attached when the pipeline has not evaluated
	// any data yet.
	ReasonNoEvaluationData = "NO_EVALUATION_DATA"
)

const (
	// DegradedThresholdSeconds is the highest lag still considered OK.
	DegradedThresholdSeconds = 180

	// ErrorThresholdSeconds is the highest lag still considered DEGRADED.
	ErrorThresholdSeconds = 600
)

// Classify converts a lag measurement into a status and a list of reason
// codes. Lag up to 180 seconds is OK, up to 600 seconds DEGRADED, anything
// beyond ERROR; both boundaries belong to the lower band. Missing evaluation
// data forces ERROR regardless of lag. The reason codes are independent:
// both can be present on a single result.
func Classify(lagSeconds int64, hasEvaluationData bool) (Status, []string) {
	var reasons []string

	status := StatusOK

	switch {
	case lagSeconds > ErrorThresholdSeconds:
		status = StatusError
		reasons = append(reasons, ReasonLagHigh)
	case lagSeconds > DegradedThresholdSeconds:
		status = StatusDegraded
		reasons = append(reasons, ReasonLagHigh)
	}

	if !hasEvaluationData {
		status = StatusError
		reasons = append(reasons, ReasonNoEvaluationData)
	}

	return status, reasons
}
