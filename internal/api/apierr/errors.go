package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/techub/rps/internal/model"
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
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeRateLimited    = "RATE_LIMIT_EXCEEDED"
	CodeInternalError  = "INTERNAL_ERROR"
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

// WriteError writes an error response to the response writer. Client-class
// domain errors keep their message so the caller can correct the request;
// server-class errors are reported generically, with the cause chain left
// to the logs.
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	if derr, ok := model.AsDomainError(err); ok {
		switch {
		case derr.Code == model.CodeUserNotFound:
			return &httpError{http.StatusNotFound, APIError{derr.Code, derr.Message}}
		case derr.Class == model.ClientError:
			return &httpError{http.StatusBadRequest, APIError{derr.Code, derr.Message}}
		default:
			return &httpError{http.StatusInternalServerError, APIError{derr.Code, "Internal server error"}}
		}
	}

	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// RateLimitResponse is the payload for rejected requests
type RateLimitResponse struct {
	Status     int    `json:"status"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	RetryAfter string `json:"retry_after"`
}

// WriteRateLimited writes a 429 response with a retry-after hint
func WriteRateLimited(w http.ResponseWriter, retryAfter time.Duration) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(RateLimitResponse{
		Status:     http.StatusTooManyRequests,
		ErrorCode:  CodeRateLimited,
		Message:    "Too many requests. Please try again later.",
		RetryAfter: fmt.Sprintf("%d seconds", int(retryAfter.Seconds())),
	})
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
