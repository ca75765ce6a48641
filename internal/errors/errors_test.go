package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "product not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("customer not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "customer not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	message := "checkout rejected"
	details := []ValidationDetail{
		{Field: "customerName", Message: "customer name is required"},
		{Field: "customerPhone", Message: "customer phone is required"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestValidationError_IsValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("checkout: %w", NewValidationError("cart is empty"))

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "cart is empty", ve.Message)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to persist order", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to persist order", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to persist order")
	assert.Contains(t, err.Error(), "database error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestAdvisoryProviderError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAdvisoryProviderError("gemini", cause)

	assert.Contains(t, err.Error(), "gemini")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))

	ape, ok := IsAdvisoryProviderError(fmt.Errorf("advise: %w", err))
	assert.True(t, ok)
	assert.Equal(t, "gemini", ape.Provider)

	assert.Equal(t, "advisory provider gemini failed", NewAdvisoryProviderError("gemini", nil).Error())
}
