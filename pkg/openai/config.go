package openai

import "time"

// Config represents the configuration for the chat completion client
type Config struct {
	// APIKey is sent as a Bearer token
	APIKey string

	// BaseURL is the API root without the /v1 suffix, e.g. https://api.openai.com
	BaseURL string

	// Model is the pinned model version used for every request
	Model string

	// Timeout bounds a single HTTP round trip; zero means 60s
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	if c.Model == "" {
		return ErrInvalidConfig
	}
	return nil
}
