package tasksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared by the server handlers and the SDK client.
const (
	ErrorCodeInvalidInput       = "invalid_input"
	ErrorCodeDuplicateIdentity  = "duplicate_identity"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeStorageUnavailable = "storage_unavailable"
	ErrorCodeServerError        = "server_error"
)

// APIError is the typed form of an ErrorResponse. The server handlers use
// it to write responses; the SDK returns it from failed calls.
type APIError struct {
	// StatusCode is the HTTP status for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Fields holds field-level validation detail for invalid_input errors.
	Fields map[string]string `json:"fields,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   e.Code,
		Message: e.Message,
		Fields:  e.Fields,
	})
}

var (
	// ErrUnauthenticated is the uniform rejection for any token problem.
	// It carries no detail about why the token was rejected.
	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "missing, invalid or expired token",
	}

	// ErrInvalidCredentials is the uniform login failure, identical for an
	// unknown email and a wrong password.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid email or password",
	}

	// ErrDuplicateIdentity is returned when a registration collides with an
	// existing username or email.
	ErrDuplicateIdentity = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeDuplicateIdentity,
		Message:    "username or email already registered",
	}

	// ErrTaskNotFound covers both a missing task and a task owned by
	// another account. One response, one message.
	ErrTaskNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "task not found",
	}

	// ErrStorageUnavailable reports that the store could not be reached.
	// The service does not retry; retry policy belongs to the caller.
	ErrStorageUnavailable = &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       ErrorCodeStorageUnavailable,
		Message:    "storage temporarily unavailable",
	}

	// ErrServerError is the fallback for unexpected failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// NewValidationError builds an invalid_input APIError with field detail.
func NewValidationError(fields map[string]string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidInput,
		Message:    "one or more fields are invalid",
		Fields:     fields,
	}
}

// ErrNotAuthenticated is returned by Session methods once the session has
// dropped back to the anonymous state; no request is made.
var ErrNotAuthenticated = errors.New("tasksdk: session is not authenticated")

// parseErrorResponse turns a non-success HTTP response into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Message:    errResp.Message,
			Fields:     errResp.Fields,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
