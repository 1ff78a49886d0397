package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "nucleav-frontend/internal/errors"
	"nucleav-frontend/internal/logger"
	"nucleav-frontend/internal/session"
)

// Client talks to the platform REST API on behalf of the session user
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	session    session.Provider
}

// New creates a platform API client
func New(baseURL string, timeout time.Duration, provider session.Provider) (*Client, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return nil, fmt.Errorf("platform API base URL is required")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	parsed, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid platform API URL '%s': %w", base, err)
	}

	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		session:    provider,
	}, nil
}

// WithHTTPClient swaps the underlying http.Client
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BaseURL returns the normalised platform API URL
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// errorBody covers both {"message": ...} and {"error": ...} error payloads
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs an authenticated JSON request. in and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	// Token check happens before any network I/O.
	tok, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	fullURL := c.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	tok.SetAuthHeader(req)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logger.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"method": method,
		"path":   path,
	})
	log.Debug("Invoking platform API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Platform API request failed")
		return fmt.Errorf("platform API request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &apperrors.APIError{Method: method, Path: path, StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.ServerMessage = eb.Message
			if apiErr.ServerMessage == "" {
				apiErr.ServerMessage = eb.Error
			}
		}
		log.WithField("status", resp.StatusCode).Warnf("Platform API responded with error: %s", string(raw))
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode platform API response: %w", err)
	}
	return nil
}

// Ping checks the platform API is reachable without requiring a session
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("platform API unhealthy: status=%d", resp.StatusCode)
	}
	return nil
}
