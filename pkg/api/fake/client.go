package fake

import (
	"context"

	"github.com/evals-oss/evals-cli/pkg/api"
	"github.com/evals-oss/evals-cli/pkg/models"
	"github.com/stretchr/testify/mock"
)

// Client is a fake API client that can be used in unit tests.
type Client struct {
	mock.Mock
}

// CreateSetup implements api.Client.
func (c *Client) CreateSetup(_ context.Context, req api.CreateSetupRequest) (*models.Setup, error) {
	args := c.Called(req)
	if obj, ok := args.Get(0).(*models.Setup); ok {
		return obj, args.Error(1)
	}

	return nil, args.Error(1)
}

// ListSetups implements api.Client.
func (c *Client) ListSetups(_ context.Context, filter api.ListSetupsFilter) ([]models.Setup, error) {
	args := c.Called(filter)
	if obj, ok := args.Get(0).([]models.Setup); ok {
		return obj, args.Error(1)
	}

	return nil, args.Error(1)
}

// GetSetup implements api.Client.
func (c *Client) GetSetup(_ context.Context, id string) (*models.Setup, error) {
	args := c.Called(id)
	if obj, ok := args.Get(0).(*models.Setup); ok {
		return obj, args.Error(1)
	}

	return nil, args.Error(1)
}

// DeleteSetup implements api.Client.
func (c *Client) DeleteSetup(_ context.Context, id string) error {
	args := c.Called(id)

	return args.Error(0)
}

// GetMonitoringStatus implements api.Client.
func (c *Client) GetMonitoringStatus(_ context.Context) (*models.MonitoringStatus, error) {
	args := c.Called()
	if obj, ok := args.Get(0).(*models.MonitoringStatus); ok {
		return obj, args.Error(1)
	}

	return nil, args.Error(1)
}

// QueryMetrics implements api.Client.
func (c *Client) QueryMetrics(_ context.Context, query *models.MetricsQuery) (*models.MetricsPage, error) {
	args := c.Called(query)
	if obj, ok := args.Get(0).(*models.MetricsPage); ok {
		return obj, args.Error(1)
	}

	return nil, args.Error(1)
}

// CreateOrganization implements api.Client.
func (c *Client) CreateOrganization(_ context.Context, req api.CreateOrganizationRequest) (*models.Organization, error) {
	args := c.Called(req)
	if obj, ok := args.Get(0).(*models.Organization); ok {
		return obj, args.Error(1)
	}

	return nil, args.Error(1)
}
