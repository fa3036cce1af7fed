// Package hubapi talks to the external backend that owns suggestions, subscriptions and notifications.
package hubapi

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

	"github.com/MrSnakeDoc/linkhub/internal/apperror"
	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/metrics"
	"github.com/MrSnakeDoc/linkhub/internal/utils"
)

// HeaderInitData is how the list endpoint receives the viewer's blob.
const HeaderInitData = "init-data"

// maxErrorBody bounds how much of a failed response is read for its detail.
const maxErrorBody = 64 << 10

// API is the backend surface used by the handlers.
type API interface {
	CreateSuggestion(ctx context.Context, content, initData string) error
	ListSuggestions(ctx context.Context, initData string) ([]domain.Suggestion, error)
	Notify(ctx context.Context, message, adminID string) error
	Subscribe(ctx context.Context, email string) error
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Endpoint string
	Status   int
	Detail   string // backend-provided "detail", when it was a string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.Status)
}

func (e *APIError) Unwrap() error { return apperror.ErrUpstream }

// DetailOf returns the backend detail carried by err, or "".
func DetailOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration     // 0 = no client timeout
	Transport http.RoundTripper // nil = http.DefaultTransport
}

// Client issues exactly one HTTP request per call. It never retries.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger logger.Logger
}

// New validates the base URL and builds a client.
func New(opts Options, log logger.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", opts.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid api url %q: missing host", opts.BaseURL)
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		base:   base,
		http:   &http.Client{Timeout: opts.Timeout, Transport: transport},
		logger: log,
	}, nil
}

type createSuggestionRequest struct {
	Content  string `json:"content"`
	InitData string `json:"init_data"`
}

type notifyRequest struct {
	Message string `json:"message"`
	AdminID string `json:"admin_id"`
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// CreateSuggestion posts {content, init_data} to /suggestions.
func (c *Client) CreateSuggestion(ctx context.Context, content, initData string) error {
	return c.do(ctx, http.MethodPost, "/suggestions", createSuggestionRequest{Content: content, InitData: initData}, nil, nil)
}

// ListSuggestions fetches /suggestions with the blob in the init-data header.
func (c *Client) ListSuggestions(ctx context.Context, initData string) ([]domain.Suggestion, error) {
	var out []domain.Suggestion
	header := http.Header{}
	header.Set(HeaderInitData, initData)
	if err := c.do(ctx, http.MethodGet, "/suggestions", nil, header, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Notify posts {message, admin_id} to /admin/notify.
func (c *Client) Notify(ctx context.Context, message, adminID string) error {
	return c.do(ctx, http.MethodPost, "/admin/notify", notifyRequest{Message: message, AdminID: adminID}, nil, nil)
}

// Subscribe posts {email} to /subscribe.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/subscribe", subscribeRequest{Email: email}, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, header http.Header, out any) error {
	endpoint := method + " " + path
	start := time.Now()

	var reader io.Reader = http.NoBody
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", endpoint, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(endpoint, "network_error", time.Since(start))
		c.logger.Warn("backend request failed",
			logger.String("endpoint", endpoint),
			logger.Error(err))
		return fmt.Errorf("%s: %w: %w", endpoint, apperror.ErrNetwork, err)
	}
	defer utils.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(endpoint, statusClass(resp.StatusCode), time.Since(start))
		apiErr := &APIError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Detail:   readDetail(resp.Body),
		}
		c.logger.Warn("backend rejected request",
			logger.String("endpoint", endpoint),
			logger.Int("status", resp.StatusCode),
			logger.String("detail", apiErr.Detail))
		return apiErr
	}

	metrics.ObserveUpstream(endpoint, statusClass(resp.StatusCode), time.Since(start))

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", endpoint, err)
	}
	return nil
}

// readDetail extracts a string "detail" field from an error body.
// Structured details (validation error lists) are not surfaced.
func readDetail(body io.Reader) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&payload); err != nil {
		return ""
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
