package errors

import "net/http"

// HTTPError is an error that carries the status and code to answer with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError builds an HTTPError whose code mirrors the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

var (
	ErrBadRequest      = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound        = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
