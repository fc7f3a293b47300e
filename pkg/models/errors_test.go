package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "setup not found"}

	assert.Equal(t, "HTTP 404: setup not found", err.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: 404, Message: "gone"}))
	assert.False(t, IsNotFound(&APIError{StatusCode: 500, Message: "boom"}))
	assert.False(t, IsNotFound(errors.New("not an API error")))
	assert.False(t, IsNotFound(nil))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(Validationf("bad input %d", 42)))
	assert.False(t, IsValidation(errors.New("other")))
	assert.False(t, IsValidation(nil))
}
