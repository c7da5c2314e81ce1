// Package api is the one HTTP surface between the client and the
// SkillBridge backend. Module adapters wrap a shared *Client; nothing
// else in the tree opens a connection.
package api

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

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "skillbridge/internal/platform/errors"
)

// TokenSource supplies the bearer credential for protected calls. An
// empty token is sent as-is; the backend is the authority that rejects
// it. The token is read exactly once per request.
type TokenSource interface {
	Token() string
	UserID() int
}

// Error carries a decoded backend failure. Reason is the structured
// {error} field when the body had one.
type Error struct {
	Status int
	Reason string
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("backend: %s (HTTP %d)", e.Reason, e.Status)
	}
	return fmt.Sprintf("backend: HTTP %d", e.Status)
}

func (e *Error) Unwrap() error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// Humanize turns any failure from the client into the message shown to
// the user: the backend's structured reason when present, otherwise a
// generic phrase.
func Humanize(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Reason != "" {
			return apiErr.Reason
		}
		return fmt.Sprintf("request failed (HTTP %d)", apiErr.Status)
	}
	return "cannot reach the server, please try again"
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SetTokenSource binds the credential provider. Wiring is two-phase
// because the session manager both uses the client and feeds it tokens.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, authed bool, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, authed, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, authed bool, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, authed, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, authed bool, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, authed, out)
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, authed bool, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if authed {
		token := ""
		if c.tokens != nil {
			token = c.tokens.Token()
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	c.logger.Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(payload, &eb) == nil {
			apiErr.Reason = eb.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}
