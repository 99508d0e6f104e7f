package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/softhouse/dreams-gateway/internal/config"
	"github.com/softhouse/dreams-gateway/internal/platform/logger"
	"github.com/softhouse/dreams-gateway/internal/redact"
	"github.com/tidwall/gjson"
)

// RequestIDHeader carries the inbound request id to the downstream API.
const RequestIDHeader = "X-Request-Id"

// maxResponseBytes bounds how much of a downstream response is read.
const maxResponseBytes = 8 << 20

// Client talks to the downstream persistence API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	logger    *slog.Logger
	metrics   *Metrics
	requestID func(context.Context) string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithRequestID sets the function used to read the inbound request id from
// the context so it can be forwarded downstream.
func WithRequestID(fn func(context.Context) string) Option {
	return func(c *Client) {
		c.requestID = fn
	}
}

// NewClient creates a Client for cfg.BaseURL.
func NewClient(cfg config.DownstreamConfig, log *slog.Logger, opts ...Option) (*Client, error) {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for downstream client")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid downstream base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid downstream base url %q: scheme and host are required", redact.String(cfg.BaseURL))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		logger:  log.With(slog.String("component", "downstream_client")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Create POSTs payload to the collection and returns the stored item.
func (c *Client) Create(ctx context.Context, collection string, payload any) (json.RawMessage, error) {
	return c.fetch(ctx, http.MethodPost, collection, "", "", payload, createOutcome)
}

// Get returns the item with the given id.
func (c *Client) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	return c.fetch(ctx, http.MethodGet, collection, id, "", nil, getOutcome)
}

// List returns the items matching rawQuery. The query string is forwarded
// verbatim, without being parsed or re-encoded.
func (c *Client) List(ctx context.Context, collection, rawQuery string) (json.RawMessage, error) {
	return c.fetch(ctx, http.MethodGet, collection, "", rawQuery, nil, getOutcome)
}

// Update PUTs payload over the item with the given id.
func (c *Client) Update(ctx context.Context, collection, id string, payload any) error {
	_, err := c.exchange(ctx, http.MethodPut, collection, id, "", payload, updateOutcome)
	return err
}

// Delete removes the item with the given id.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	_, err := c.exchange(ctx, http.MethodDelete, collection, id, "", nil, deleteOutcome)
	return err
}

// fetch is exchange for operations whose success body is returned to the caller.
func (c *Client) fetch(
	ctx context.Context,
	method, collection, id, rawQuery string,
	payload any,
	outcome statusMapper,
) (json.RawMessage, error) {
	body, err := c.exchange(ctx, method, collection, id, rawQuery, payload, outcome)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, &RequestError{Method: method, Collection: collection, ID: id, Status: http.StatusOK, Err: ErrInvalidResponse}
	}
	return json.RawMessage(body), nil
}

// exchange performs one request and maps the status through outcome.
func (c *Client) exchange(
	ctx context.Context,
	method, collection, id, rawQuery string,
	payload any,
	outcome statusMapper,
) ([]byte, error) {
	log := logger.FromContextOrDefault(ctx, c.logger).With(
		slog.String("collection", collection),
		slog.String("method", method),
	)

	req, err := c.newRequest(ctx, method, collection, id, rawQuery, payload)
	if err != nil {
		return nil, &RequestError{Method: method, Collection: collection, ID: id, Err: err}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(collection, method, 0, elapsed)
		log.Warn("downstream request failed",
			slog.String("error", redact.Error(err)),
			slog.Duration("duration", elapsed))
		return nil, &RequestError{
			Method:     method,
			Collection: collection,
			ID:         id,
			Err:        fmt.Errorf("%w: %w", ErrUnavailable, err),
		}
	}
	defer resp.Body.Close()

	c.metrics.observe(collection, method, resp.StatusCode, elapsed)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &RequestError{
			Method:     method,
			Collection: collection,
			ID:         id,
			Status:     resp.StatusCode,
			Err:        fmt.Errorf("%w: reading body: %w", ErrUnavailable, err),
		}
	}

	log.Debug("downstream request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", elapsed))

	if err := outcome(resp.StatusCode); err != nil {
		if errors.Is(err, ErrUnexpectedStatus) {
			log.Warn("downstream returned unexpected status", slog.Int("status", resp.StatusCode))
		}
		return nil, &RequestError{Method: method, Collection: collection, ID: id, Status: resp.StatusCode, Err: err}
	}

	return body, nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, collection, id, rawQuery string,
	payload any,
) (*http.Request, error) {
	segments := []string{collection}
	if id != "" {
		segments = append(segments, url.PathEscape(id))
	}
	target := c.baseURL.JoinPath(segments...)
	target.RawQuery = rawQuery

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.requestID != nil {
		if rid := c.requestID(ctx); rid != "" {
			req.Header.Set(RequestIDHeader, rid)
		}
	}
	return req, nil
}
