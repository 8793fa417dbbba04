// ABOUTME: HTTP client for the backend REST API with bearer token attachment
// ABOUTME: Bounded timeout, per-request logging, and status-to-error mapping

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every backend call. The original system hung
// indefinitely; a visible failure after 30s is the better behavior.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token for outbound requests. The
// second return is false when no usable token exists (anonymous session
// or expired token), in which case the request goes out unauthenticated.
type TokenSource interface {
	BearerToken(ctx context.Context) (string, bool)
}

// Client performs the HTTP calls against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  slog.Default().With("component", "api"),
	}
}

// SetTokenSource wires the session store in as the token supplier.
// Separate from NewClient because the session store itself needs the
// client as its authenticator.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// SetHTTPClient replaces the underlying HTTP client. Used by tests.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// do performs one request. A non-nil body is sent as JSON; a non-nil
// out receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Attach the bearer token only when a non-expired one exists.
	// An expired token is discarded by the source and the request
	// proceeds unauthenticated so the backend's 401 drives re-login.
	if c.tokens != nil {
		if token, ok := c.tokens.BearerToken(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds())

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Mensaje: backendMessage(respBody)}
	}

	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

// backendMessage extracts a human-readable message from an error body.
// The backend sends either {"message": "..."} or plain text.
func backendMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(body))
}
