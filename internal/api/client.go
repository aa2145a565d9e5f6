// Package api is the HTTP client for the itinerary generation service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/tripwise/internal/model"
)

// Defaults
const (
	DefaultBaseURL        = "http://localhost:8000/api"
	DefaultConnectTimeout = 10 * time.Second
	DefaultRequestTimeout = 120 * time.Second

	RequestIDHeader = "X-Request-ID"
	generatePath    = "/generate-itinerary"
	maxBodySize     = 8 << 20
)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeouts sets the pre-check and generation timeouts
func WithTimeouts(connect, request time.Duration) Option {
	return func(c *Client) {
		c.setTimeouts(connect, request)
	}
}

// WithRequestID overrides the request id generator
func WithRequestID(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// Client talks to the itinerary service. It is safe for concurrent use.
type Client struct {
	mu             sync.RWMutex
	baseURL        string
	connectTimeout time.Duration
	requestTimeout time.Duration
	http           *http.Client
	newID          func() string
}

// NewClient creates a client for baseURL (DefaultBaseURL when empty)
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		connectTimeout: DefaultConnectTimeout,
		requestTimeout: DefaultRequestTimeout,
		http:           &http.Client{},
		newID:          uuid.NewString,
	}
	c.SetBaseURL(baseURL)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL without a trailing slash
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL changes the service location for subsequent calls
func (c *Client) SetBaseURL(baseURL string) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c.mu.Lock()
	c.baseURL = baseURL
	c.mu.Unlock()
}

// SetTimeouts changes timeouts for subsequent calls; non-positive values are ignored
func (c *Client) SetTimeouts(connect, request time.Duration) {
	c.setTimeouts(connect, request)
}

func (c *Client) setTimeouts(connect, request time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if connect > 0 {
		c.connectTimeout = connect
	}
	if request > 0 {
		c.requestTimeout = request
	}
}

func (c *Client) snapshot() (string, time.Duration, time.Duration) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL, c.connectTimeout, c.requestTimeout
}

// Ping checks the service is reachable. Any transport error or non-2xx status
// yields an *UnreachableError.
func (c *Client) Ping(ctx context.Context) error {
	base, connect, _ := c.snapshot()

	ctx, cancel := context.WithTimeout(ctx, connect)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/", nil)
	if err != nil {
		return &UnreachableError{BaseURL: base, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("api: pre-check %s failed: %v", base, err)
		return &UnreachableError{BaseURL: base, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("api: pre-check %s returned %d", base, resp.StatusCode)
		return &UnreachableError{BaseURL: base, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return nil
}

// GenerateItinerary posts the trip request and returns the decoded plan
// together with the bytes it was decoded from
func (c *Client) GenerateItinerary(ctx context.Context, trip model.TripRequest) (*model.ItineraryDocument, error) {
	base, _, timeout := c.snapshot()

	payload, err := json.Marshal(trip)
	if err != nil {
		return nil, fmt.Errorf("failed to encode trip request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+generatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	id := c.newID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, id)

	log.Printf("api: generate %s destination=%q dates=%s..%s", id, trip.Destination, trip.StartDate, trip.EndDate)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, classify(id, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		svcErr := &ServiceError{StatusCode: resp.StatusCode, Detail: parseDetail(body)}
		log.Printf("api: generate %s failed: %v", id, svcErr)
		return nil, svcErr
	}

	doc, err := model.ParseItineraryDocument(body)
	if err != nil {
		log.Printf("api: generate %s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	log.Printf("api: generate %s done in %s, %d days", id, time.Since(started).Round(time.Millisecond), len(doc.Trip().Days))
	return doc, nil
}

func classify(id string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		log.Printf("api: generate %s timed out", id)
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	log.Printf("api: generate %s: %v", id, err)
	return fmt.Errorf("generate request failed: %w", err)
}

// parseDetail extracts "detail" from an error body. A string is returned
// verbatim, anything else as compact JSON.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	raw := bytes.TrimSpace(envelope.Detail)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
