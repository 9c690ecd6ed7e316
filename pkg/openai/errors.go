package openai

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when base URL or model is missing
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrMissingAPIKey is returned when no API key is configured
	ErrMissingAPIKey = errors.New("api key is not configured")

	// ErrNetworkError is returned when there's a network communication error
	ErrNetworkError = errors.New("network error")

	// ErrUnauthorized is returned when the API key is rejected
	ErrUnauthorized = errors.New("unauthorized: invalid API key")

	// ErrRateLimited is returned on HTTP 429
	ErrRateLimited = errors.New("rate limited")

	// ErrUpstream is returned for any other non-2xx status
	ErrUpstream = errors.New("upstream error")

	// ErrEmptyResponse is returned when the completion carries no content
	ErrEmptyResponse = errors.New("empty completion")

	// ErrRefused is returned when the model declines to answer
	ErrRefused = errors.New("model refused")
)

// HTTPError keeps the status and body of a failed call for logging.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Body)
}
