package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts API requests that received a response, partitioned
	// by operation and HTTP status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evals_cli_api_requests_total",
		Help: "Total number of API requests by operation and status code.",
	}, []string{"operation", "code"})

	// RequestErrorsTotal counts API requests that failed before a response
	// was received, e.g. due to connection or timeout errors.
	RequestErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evals_cli_api_request_errors_total",
		Help: "Total number of API requests that failed without a response.",
	}, []string{"operation"})
)
