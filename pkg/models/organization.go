package models

// Organization is a tenant of the evals service. Created once, immutable.
type Organization struct {
	// ID is the server assigned ID of the organization.
	ID string `json:"id"`

	// Name is the display name of the organization.
	Name string `json:"name"`

	// Environments holds one issued API key per requested environment.
	Environments []EnvironmentKey `json:"environments"`
}

// EnvironmentKey is an API key issued for one environment of an
// organization.
type EnvironmentKey struct {
	// Slug identifies the environment, e.g. "prd" or "stg".
	Slug string `json:"slug"`

	// APIKey is the key issued for the environment.
	APIKey string `json:"api_key"`
}
