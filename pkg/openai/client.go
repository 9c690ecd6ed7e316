package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ikkim/pcbuild-backend/pkg/logger"
)

const chatCompletionsPath = "/v1/chat/completions"

// Client calls an OpenAI-compatible chat completions endpoint
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Model returns the pinned model name
func (c *Client) Model() string {
	return c.config.Model
}

// GenerateJSON sends one structured-output request and returns the raw JSON text the model produced.
// It performs exactly one HTTP call; callers decide what to do on failure.
func (c *Client) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) ([]byte, error) {
	if schemaName == "" || schema == nil {
		return nil, fmt.Errorf("%w: schema name and schema are required", ErrInvalidConfig)
	}

	req := ChatRequest{
		Model: c.config.Model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchemaFormat{
				Name:   schemaName,
				Schema: schema,
				Strict: true,
			},
		},
	}

	body, err := c.doRequest(ctx, chatCompletionsPath, req)
	if err != nil {
		return nil, err
	}

	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	msg := resp.Choices[0].Message
	if msg.Refusal != nil && *msg.Refusal != "" {
		return nil, fmt.Errorf("%w: %s", ErrRefused, *msg.Refusal)
	}
	if strings.TrimSpace(msg.Content) == "" {
		return nil, ErrEmptyResponse
	}

	logger.Debug("Completion received", map[string]interface{}{
		"model":             resp.Model,
		"finish_reason":     resp.Choices[0].FinishReason,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	})

	return []byte(msg.Content), nil
}

// doRequest performs an HTTP request and maps non-2xx statuses to sentinel errors
func (c *Client) doRequest(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := c.config.BaseURL + path
	logger.Debug("Sending completion request", map[string]interface{}{
		"url":        url,
		"model":      c.config.Model,
		"body_bytes": len(reqBody),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			httpErr.Body = errResp.Error.Message
		}

		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("%w: %w", ErrUnauthorized, httpErr)
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("%w: %w", ErrRateLimited, httpErr)
		default:
			return nil, fmt.Errorf("%w: %w", ErrUpstream, httpErr)
		}
	}

	return body, nil
}
