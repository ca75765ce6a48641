package errors

import (
	stderrors "errors"
	"fmt"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nfe *NotFoundError
	if stderrors.As(err, &nfe) {
		return nfe, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

// AdvisoryProviderError wraps a failure of the remote advice provider. It is
// logged and converted to fallback text; callers of the advisory package never
// receive it.
type AdvisoryProviderError struct {
	Provider string
	Cause    error
}

func (e *AdvisoryProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("advisory provider %s: %v", e.Provider, e.Cause)
	}
	return fmt.Sprintf("advisory provider %s failed", e.Provider)
}

func (e *AdvisoryProviderError) Unwrap() error {
	return e.Cause
}

func NewAdvisoryProviderError(provider string, cause error) *AdvisoryProviderError {
	return &AdvisoryProviderError{
		Provider: provider,
		Cause:    cause,
	}
}

func IsAdvisoryProviderError(err error) (*AdvisoryProviderError, bool) {
	var ape *AdvisoryProviderError
	if stderrors.As(err, &ape) {
		return ape, true
	}
	return nil, false
}
