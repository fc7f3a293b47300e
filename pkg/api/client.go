package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/evals-oss/evals-cli/pkg/config"
	"github.com/evals-oss/evals-cli/pkg/health"
	"github.com/evals-oss/evals-cli/pkg/models"
)

// Client is the interface for the evals API. Every operation performs
// exactly one synchronous request-response cycle. There are no retries and
// no caching.
type Client interface {
	// CreateSetup creates a new auto-monitor-setup. Returns a
	// *models.ValidationError if the request is malformed before any request
	// is sent.
	CreateSetup(ctx context.Context, req CreateSetupRequest) (*models.Setup, error)

	// ListSetups lists auto-monitor-setups. Absent filters return all
	// setups.
	ListSetups(ctx context.Context, filter ListSetupsFilter) ([]models.Setup, error)

	// GetSetup retrieves an auto-monitor-setup by its ID. Returns a
	// *models.APIError with status 404 if the setup does not exist.
	GetSetup(ctx context.Context, id string) (*models.Setup, error)

	// DeleteSetup deletes an auto-monitor-setup by its ID. Returns a
	// *models.APIError with status 404 if the setup does not exist.
	DeleteSetup(ctx context.Context, id string) error

	// GetMonitoringStatus retrieves the evaluation pipeline health for the
	// organization.
	GetMonitoringStatus(ctx context.Context) (*models.MonitoringStatus, error)

	// QueryMetrics fetches one page of metric points. Returns a
	// *models.ValidationError if the query is malformed before any request
	// is sent.
	QueryMetrics(ctx context.Context, query *models.MetricsQuery) (*models.MetricsPage, error)

	// CreateOrganization creates a new organization with one issued API key
	// per environment. Environments default to ["prd"] when empty.
	CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*models.Organization, error)
}

// CreateSetupRequest is the payload for CreateSetup.
type CreateSetupRequest struct {
	EntityType  string                `json:"entity_type"`
	EntityValue string                `json:"entity_value"`
	Evaluators  []models.EvaluatorRef `json:"evaluators"`
}

// Validate returns a *models.ValidationError if the request is malformed.
func (r CreateSetupRequest) Validate() error {
	if r.EntityType == "" {
		return models.Validationf("entity type must not be empty")
	}

	if r.EntityValue == "" {
		return models.Validationf("entity value must not be empty")
	}

	if len(r.Evaluators) == 0 {
		return models.Validationf("at least one evaluator reference is required")
	}

	for _, evaluator := range r.Evaluators {
		if err := evaluator.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ListSetupsFilter narrows the result of ListSetups. Zero values are not
// sent.
type ListSetupsFilter struct {
	EntityType string
	Status     string
}

// CreateOrganizationRequest is the payload for CreateOrganization.
type CreateOrganizationRequest struct {
	Name         string   `json:"name"`
	Environments []string `json:"environments"`
}

// DefaultEnvironments are the environments an organization is created with
// if none are specified.
var DefaultEnvironments = []string{"prd"}

const setupsPath = "/v2/auto-monitor-setups"

type client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// New creates a new Client from options.
func New(options *config.Options) Client {
	return &client{
		baseURL:    strings.TrimRight(options.BaseURL, "/"),
		authToken:  options.AuthToken,
		httpClient: &http.Client{Timeout: options.Timeout},
	}
}

// CreateSetup implements Client.
func (c *client) CreateSetup(ctx context.Context, req CreateSetupRequest) (*models.Setup, error) {
	err := req.Validate()
	if err != nil {
		return nil, err
	}

	var setup models.Setup

	err = c.do(ctx, "CreateSetup", http.MethodPost, setupsPath, nil, req, &setup)
	if err != nil {
		return nil, err
	}

	return &setup, nil
}

// ListSetups implements Client.
func (c *client) ListSetups(ctx context.Context, filter ListSetupsFilter) ([]models.Setup, error) {
	query := url.Values{}
	if filter.EntityType != "" {
		query.Set("entity_type", filter.EntityType)
	}

	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	var setups []models.Setup

	err := c.do(ctx, "ListSetups", http.MethodGet, setupsPath, query, nil, &setups)
	if err != nil {
		return nil, err
	}

	return setups, nil
}

// GetSetup implements Client.
func (c *client) GetSetup(ctx context.Context, id string) (*models.Setup, error) {
	if id == "" {
		return nil, models.Validationf("setup ID must not be empty")
	}

	var setup models.Setup

	err := c.do(ctx, "GetSetup", http.MethodGet, setupsPath+"/"+url.PathEscape(id), nil, nil, &setup)
	if err != nil {
		return nil, err
	}

	return &setup, nil
}

// DeleteSetup implements Client.
func (c *client) DeleteSetup(ctx context.Context, id string) error {
	if id == "" {
		return models.Validationf("setup ID must not be empty")
	}

	return c.do(ctx, "DeleteSetup", http.MethodDelete, setupsPath+"/"+url.PathEscape(id), nil, nil, nil)
}

// GetMonitoringStatus implements Client.
func (c *client) GetMonitoringStatus(ctx context.Context) (*models.MonitoringStatus, error) {
	var status models.MonitoringStatus

	err := c.do(ctx, "GetMonitoringStatus", http.MethodGet, "/v2/monitoring/status", nil, nil, &status)
	if err != nil {
		return nil, err
	}

	// Some server versions omit the classification. Reproduce it locally so
	// callers always see a status and reasons.
	if status.Status == "" {
		derived, reasons := health.Classify(status.LagInSeconds, status.HasEvaluationData())
		status.Status = string(derived)
		status.Reasons = reasons
	}

	return &status, nil
}

// QueryMetrics implements Client.
func (c *client) QueryMetrics(ctx context.Context, query *models.MetricsQuery) (*models.MetricsPage, error) {
	err := query.Validate()
	if err != nil {
		return nil, err
	}

	body := *query
	if body.Limit == 0 {
		body.Limit = models.DefaultMetricsLimit
	}

	var page models.MetricsPage

	err = c.do(ctx, "QueryMetrics", http.MethodPost, "/v2/metrics", nil, body, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// CreateOrganization implements Client.
func (c *client) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*models.Organization, error) {
	if req.Name == "" {
		return nil, models.Validationf("organization name must not be empty")
	}

	if len(req.Environments) == 0 {
		req.Environments = DefaultEnvironments
	}

	for _, slug := range req.Environments {
		if slug == "" {
			return nil, models.Validationf("environment slug must not be empty")
		}
	}

	var org models.Organization

	err := c.do(ctx, "CreateOrganization", http.MethodPost, "/v2/organizations", nil, req, &org)
	if err != nil {
		return nil, err
	}

	return &org, nil
}
