// Package client is a Go client for the textsmith HTTP API. It validates
// requests before issuing any network call and surfaces transport failures
// to the caller unmodified, with no retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL points at a locally running service.
const DefaultBaseURL = "http://localhost:5000"

const defaultTimeout = 30 * time.Second

// ErrEmptyText is returned when a request carries no text. The check runs
// before any network call.
var ErrEmptyText = errors.New("text is empty")

type Client struct {
	baseURL string
	client  *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to change the
// timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.client = httpClient
	}
}

// New creates a Client for the given base URL. An empty baseURL falls back
// to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Summarize requests a summary for the given text.
func (c *Client) Summarize(ctx context.Context, req SummaryRequest) (*SummaryResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}
	if req.Type != "" && req.Type != TypeConcise && req.Type != TypeDetailed {
		return nil, fmt.Errorf("invalid summary type %q", req.Type)
	}
	if req.MaxLength < 0 {
		return nil, fmt.Errorf("max_length must be positive, got %d", req.MaxLength)
	}

	var resp SummaryResponse
	if err := c.post(ctx, "/api/summarize", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ConvertMarkdown converts text to or from Markdown.
func (c *Client) ConvertMarkdown(ctx context.Context, req MarkdownRequest) (*MarkdownResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}
	if req.Mode != "" && req.Mode != ModeToMarkdown && req.Mode != ModeToText {
		return nil, fmt.Errorf("invalid conversion mode %q", req.Mode)
	}

	var resp MarkdownResponse
	if err := c.post(ctx, "/api/markdown", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Health fetches the service health payload.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var health HealthResponse
	if err = json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &health, nil
}

func (c *Client) post(ctx context.Context, path string, body, dst any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(encoded),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
