// Package upstream wraps the clinic REST API that owns every record this
// service touches. The request/response shapes here are the fixed
// compatibility surface; nothing in this package reinterprets them.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"medibook/config"
)

// envelope is the clinic API's uniform response wrapper.
type envelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Client talks to the clinic API. It implements every per-area interface in
// this package.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client from AppConfig.
func NewClient() *Client {
	timeout := time.Duration(config.AppConfig.UpstreamTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: config.AppConfig.UpstreamBaseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// NewClientWith builds a client against an explicit base URL, used by tests.
func NewClientWith(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, httpc: httpc}
}

// do issues one request and decodes the envelope's data into out (when out is
// non-nil). Transport failures wrap ErrNetwork; error-flagged envelopes become
// *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	// An error status is an upstream answer even when the body is not the
	// JSON envelope (proxies in between serve HTML error pages).
	if resp.StatusCode >= 400 {
		msg := http.StatusText(resp.StatusCode)
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
			msg = env.Message
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrNetwork, method, path, err)
	}
	if env.Error {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data of %s %s: %w", method, path, err)
		}
	}
	return nil
}
