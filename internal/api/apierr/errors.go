package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pixelforge/gamevault/internal/artwork"
	"github.com/pixelforge/gamevault/internal/model"
	"github.com/pixelforge/gamevault/internal/store"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodeEnemyNotFound        = "ENEMY_NOT_FOUND"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeUnsupportedFormat    = "UNSUPPORTED_FORMAT"
	CodeStorageUnavailable   = "STORAGE_UNAVAILABLE"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Validation errors carry the offending field in their message
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, ve.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrEnemyNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeEnemyNotFound, "Enemy not found"}}
	case errors.Is(err, model.ErrConfirmationRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeConfirmationRequired, "Set confirm=true to delete all records"}}
	case errors.Is(err, artwork.ErrUnsupportedFormat):
		return &httpError{http.StatusBadRequest, APIError{CodeUnsupportedFormat, "Unsupported artwork format"}}
	case errors.Is(err, store.ErrUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStorageUnavailable, "Storage unavailable"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
