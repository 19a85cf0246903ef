package analysis

import "errors"

// Domain-specific errors for the analysis package.
var (
	ErrInvalidInput      = errors.New("note content and credential are required")
	ErrServiceFailure    = errors.New("completion service failed")
	ErrEmptyResponse     = errors.New("empty response from completion service")
	ErrMalformedResponse = errors.New("completion response is missing required fields")
)

// IsDegradable reports whether err happened after the service was called,
// meaning the caller should keep a degraded note rather than reject the input.
func IsDegradable(err error) bool {
	return errors.Is(err, ErrServiceFailure) || errors.Is(err, ErrMalformedResponse)
}
