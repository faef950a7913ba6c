package intercom

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorKind identifies the category of a failed API call.
type ErrorKind string

// The full taxonomy. Every kind except ErrorKindRateLimited is terminal;
// rate-limited calls are resolved inside the transport by waiting out the
// server-declared delay and resending.
const (
	ErrorKindUnreachable      ErrorKind = "unreachable"
	ErrorKindAuthFailed       ErrorKind = "auth_failed"
	ErrorKindPermissionDenied ErrorKind = "permission_denied"
	ErrorKindNotFound         ErrorKind = "not_found"
	ErrorKindRateLimited      ErrorKind = "rate_limited"
	ErrorKindServerError      ErrorKind = "server_error"
	ErrorKindRequestFailed    ErrorKind = "request_failed"
)

// DefaultRetryAfter is used when a 429 response carries no usable
// Retry-After header.
const DefaultRetryAfter = 10 * time.Second

// UnknownErrorMessage is the last-resort message when a failed response
// carries no usable detail.
const UnknownErrorMessage = "Unknown error"

// APIError is the normalized representation of a failed API call,
// independent of the original response shape.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch e.Kind {
	case ErrorKindUnreachable:
		return fmt.Sprintf("could not reach the Intercom API: %s", e.Message)
	case ErrorKindAuthFailed:
		return fmt.Sprintf("authentication failed: %s (run 'intercom login' to re-authenticate)", e.Message)
	case ErrorKindPermissionDenied:
		return "you do not have permission to perform this action"
	case ErrorKindNotFound:
		return fmt.Sprintf("not found: %s", e.Message)
	case ErrorKindRateLimited:
		return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
	case ErrorKindServerError:
		return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("request failed (status %d): %s", e.StatusCode, e.Message)
	}
}

// Retryable reports whether the failure is resolvable by resending the
// original request.
func (e *APIError) Retryable() bool {
	return e.Kind == ErrorKindRateLimited
}

// errorBody is the error envelope Intercom returns on failed requests.
type errorBody struct {
	Type   string `json:"type"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
	Message string `json:"message"`
}

// ClassifyResponse maps a failed HTTP response onto the error taxonomy.
// The message is taken from the first entry of the body's error list,
// falling back to the body's top-level message field, then to a literal
// "Unknown error".
func ClassifyResponse(statusCode int, header http.Header, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    extractMessage(body),
	}

	switch {
	case statusCode == http.StatusUnauthorized:
		apiErr.Kind = ErrorKindAuthFailed
	case statusCode == http.StatusForbidden:
		apiErr.Kind = ErrorKindPermissionDenied
	case statusCode == http.StatusNotFound:
		apiErr.Kind = ErrorKindNotFound
	case statusCode == http.StatusTooManyRequests:
		apiErr.Kind = ErrorKindRateLimited
		apiErr.RetryAfter = ParseRetryAfter(header)
	case statusCode >= http.StatusInternalServerError:
		apiErr.Kind = ErrorKindServerError
	default:
		apiErr.Kind = ErrorKindRequestFailed
	}

	return apiErr
}

// ParseRetryAfter reads the retry delay from a 429 response. Absent or
// malformed headers fall back to DefaultRetryAfter.
func ParseRetryAfter(header http.Header) time.Duration {
	value := header.Get("Retry-After")
	if value == "" {
		return DefaultRetryAfter
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return DefaultRetryAfter
	}

	return time.Duration(seconds) * time.Second
}

func extractMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if len(parsed.Errors) > 0 && parsed.Errors[0].Message != "" {
			return parsed.Errors[0].Message
		}

		if parsed.Message != "" {
			return parsed.Message
		}
	}

	return UnknownErrorMessage
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasKind(err, ErrorKindNotFound)
}

// IsAuthFailed checks if the error is an authentication error.
func IsAuthFailed(err error) bool {
	return hasKind(err, ErrorKindAuthFailed)
}

// IsPermissionDenied checks if the error is a permission error.
func IsPermissionDenied(err error) bool {
	return hasKind(err, ErrorKindPermissionDenied)
}

// IsUnreachable checks if the error means no response was received.
func IsUnreachable(err error) bool {
	return hasKind(err, ErrorKindUnreachable)
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}
