package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/evals-oss/evals-cli/pkg/api/metrics"
	"github.com/evals-oss/evals-cli/pkg/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "api-client")

// do performs a single request-response cycle against the evals API. The
// response body is decoded into out if out is non-nil. Non-2xx responses are
// returned as *models.APIError, transport failures as wrapped errors.
func (c *client) do(ctx context.Context, operation, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader

	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal request body")
		}

		reqBody = bytes.NewReader(buf)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrapf(err, "failed to create request")
	}

	req.Header.Set("Authorization", bearerToken(c.authToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	log.WithFields(logrus.Fields{"method": method, "url": endpoint}).Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues(operation).Inc()
		return errors.Wrapf(err, "request to %s failed", endpoint)
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read response body")
	}

	log.WithFields(logrus.Fields{"method": method, "url": endpoint, "status": resp.StatusCode}).Debug("received response")

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	err = json.Unmarshal(respBody, out)
	if err != nil {
		return errors.Wrapf(err, "failed to unmarshal response body")
	}

	return nil
}

// bearerToken normalizes token into an Authorization header value. Tokens
// that already carry the Bearer prefix are passed through unchanged.
func bearerToken(token string) string {
	if strings.HasPrefix(token, "Bearer ") {
		return token
	}

	return "Bearer " + token
}

// newAPIError builds a *models.APIError from an error response body. The
// server convention is a JSON object with a message field; anything else is
// carried verbatim.
func newAPIError(statusCode int, body []byte) *models.APIError {
	var errBody struct {
		Message string `json:"message"`
	}

	message := strings.TrimSpace(string(body))

	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Message != "" {
		message = errBody.Message
	}

	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &models.APIError{StatusCode: statusCode, Message: message}
}
