// Package store persists generated system prompts to a PostgREST-style
// REST backend (Supabase or compatible).
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// Sentinel errors for the store package.
var (
	// ErrNotConfigured is returned when the client has no base URL or key.
	ErrNotConfigured = errors.New("store not configured")

	// ErrUnhealthy is returned when the backend health check fails.
	ErrUnhealthy = errors.New("store health check failed")
)

// Client is a PostgREST-compatible REST client scoped to one table.
type Client struct {
	baseURL    string
	serviceKey string
	table      string
	httpClient *http.Client
}

// Config holds connection settings for the store backend.
type Config struct {
	BaseURL    string
	ServiceKey string
	Table      string
	Timeout    time.Duration
}

// NewClient creates a store client. Returns ErrNotConfigured when the
// base URL or service key is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" || cfg.ServiceKey == "" {
		return nil, ErrNotConfigured
	}
	table := cfg.Table
	if table == "" {
		table = "copies"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		table:      table,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Table returns the table this client writes to.
func (c *Client) Table() string {
	return c.table
}

// GeneratedPrompt is the persisted record for one copy's generated
// system prompt.
type GeneratedPrompt struct {
	ID          string    `json:"id"`
	Prompt      string    `json:"generated_system_prompt"`
	ContextHash string    `json:"system_prompt_context_hash"`
	GeneratedAt time.Time `json:"system_prompt_generated_at"`
	Model       string    `json:"system_prompt_model"`
}

// UpsertGeneratedPrompt writes the generated prompt for copyID, merging
// into an existing row when one exists. Transient failures (429 and 5xx)
// are retried with backoff.
func (c *Client) UpsertGeneratedPrompt(ctx context.Context, rec GeneratedPrompt) error {
	if rec.ID == "" {
		return fmt.Errorf("upsert: missing record id")
	}

	body, err := json.Marshal([]GeneratedPrompt{rec})
	if err != nil {
		return fmt.Errorf("upsert: marshal record: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?on_conflict=id", c.baseURL, url.PathEscape(c.table))

	return retry.Do(
		func() error {
			return c.doUpsert(ctx, endpoint, body)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var se *statusError
			if errors.As(err, &se) {
				return se.status == http.StatusTooManyRequests || se.status >= 500
			}
			return true
		}),
	)
}

// statusError carries the backend status code so retry policy can
// distinguish transient from fatal responses.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("store error (status %d): %s", e.status, e.body)
}

func (c *Client) doUpsert(ctx context.Context, endpoint string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("upsert: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upsert: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &statusError{status: resp.StatusCode, body: string(respBody)}
}

// HealthCheck verifies the REST backend is reachable and accepts the
// service key.
func (c *Client) HealthCheck(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?select=id&limit=1", c.baseURL, url.PathEscape(c.table))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnhealthy, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}
