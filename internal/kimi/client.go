// Package kimi talks to the Kimi K2.5 local service. The service is an
// optional collaborator: when it is not running, the normalizer falls back to
// pattern matching without it.
package kimi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the fixed loopback address the local service listens on.
const DefaultEndpoint = "http://127.0.0.1:8765"

// Client calls the Kimi K2.5 local service over HTTP.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a client for the local service. An empty endpoint uses
// the default loopback address.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Endpoint returns the service address this client targets.
func (c *Client) Endpoint() string { return c.endpoint }

// Normalization is the service's answer for one intent.
type Normalization struct {
	Citizen    string            `json:"citizen"`
	Confidence float64           `json:"confidence"`
	Tools      []string          `json:"tools"`
	Parameters map[string]string `json:"parameters"`
}

type normalizeRequest struct {
	Intent string `json:"intent"`
}

// Normalize asks the local service to normalize a raw intent.
func (c *Client) Normalize(ctx context.Context, intent string) (*Normalization, error) {
	body, err := json.Marshal(normalizeRequest{Intent: intent})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/api/normalize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("kimi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("kimi returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result Normalization
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// HealthCheck reports whether the local service answers within the timeout.
func (c *Client) HealthCheck(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.endpoint+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
