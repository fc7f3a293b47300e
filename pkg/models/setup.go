package models

// Setup is a configured binding between a monitored entity and one or more
// evaluators. Setups are created via the API and are immutable afterwards
// except for deletion.
type Setup struct {
	// ID is the server assigned ID of the setup.
	ID string `json:"id"`

	// EntityType is the type of the monitored entity, e.g. "agent" or
	// "workflow".
	EntityType string `json:"entity_type"`

	// EntityValue is the name of the monitored entity.
	EntityValue string `json:"entity_value"`

	// Evaluators are the evaluators attached to the entity.
	Evaluators []EvaluatorRef `json:"evaluators"`

	// Status is the server side status of the setup, e.g. "pending" or
	// "active".
	Status string `json:"status"`
}

// EvaluatorRef references an evaluator either by the ID of an existing
// evaluator or by a type name used to create one. Exactly one of the two
// fields must be set. Use NewEvaluatorID or NewEvaluatorType to construct
// valid references.
type EvaluatorRef struct {
	EvaluatorID   string `json:"evaluator_id,omitempty"`
	EvaluatorType string `json:"evaluator_type,omitempty"`
}

// NewEvaluatorID creates an EvaluatorRef pointing at an existing evaluator.
func NewEvaluatorID(id string) EvaluatorRef {
	return EvaluatorRef{EvaluatorID: id}
}

// NewEvaluatorType creates an EvaluatorRef that instructs the server to
// create an evaluator of the given type, e.g. "hallucination" or "toxicity".
func NewEvaluatorType(typ string) EvaluatorRef {
	return EvaluatorRef{EvaluatorType: typ}
}

// Validate returns a *ValidationError unless exactly one of EvaluatorID and
// EvaluatorType is set.
func (r EvaluatorRef) Validate() error {
	if r.EvaluatorID != "" && r.EvaluatorType != "" {
		return Validationf("evaluator reference must not set both evaluator_id %q and evaluator_type %q", r.EvaluatorID, r.EvaluatorType)
	}

	if r.EvaluatorID == "" && r.EvaluatorType == "" {
		return Validationf("evaluator reference must set one of evaluator_id or evaluator_type")
	}

	return nil
}
