package commons

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "boutique/internal/errors"

	"go.uber.org/zap"
)

type ErrorResponse struct {
	TraceID   string                       `json:"traceId,omitempty"`
	Error     string                       `json:"error"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, traceID string, message string, logger *zap.Logger, details ...apperrors.ValidationDetail) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		TraceID:   traceID,
		Error:     "VALIDATION_ERROR",
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}, logger)
}

// WriteError maps the application error taxonomy onto HTTP status codes.
func WriteError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteValidationError(w, traceID, ve.Message, logger, ve.Details...)
		return
	}

	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	message := "an unexpected error occurred"

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		status = http.StatusNotFound
		code = "NOT_FOUND"
		message = nfe.Message
	} else {
		logger.Error("unexpected error", zap.String("traceId", traceID), zap.Error(err))
	}

	WriteJSON(w, status, ErrorResponse{
		TraceID:   traceID,
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}, logger)
}
