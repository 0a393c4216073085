package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/api"
	"github.com/nikolayk812/partsdepot/internal/catalog"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetries    = 2
	defaultRetryDelay = 200 * time.Millisecond
)

// Client talks to the storefront REST API. GET requests are retried on
// transport errors and 5xx answers; other methods are sent once.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
	retries    uint64
	retryDelay time.Duration
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithRetries sets how many times a GET is retried and the first delay.
func WithRetries(retries uint64, delay time.Duration) Option {
	return func(c *Client) {
		c.retries = retries
		c.retryDelay = delay
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	c := &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   defaultTimeout,
		},
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// ListParts satisfies port.PartsLister.
func (c *Client) ListParts(ctx context.Context, filters domain.SearchFilters) (domain.PartPage, error) {
	var page api.PartPage
	if err := c.do(ctx, http.MethodGet, "/api/parts", catalog.EncodeParams(filters), nil, &page); err != nil {
		return domain.PartPage{}, fmt.Errorf("GET /api/parts: %w", err)
	}

	return page.ToDomain(), nil
}

func (c *Client) GetPart(ctx context.Context, id uuid.UUID) (domain.Part, error) {
	var part api.Part
	if err := c.do(ctx, http.MethodGet, "/api/parts/"+id.String(), nil, nil, &part); err != nil {
		return domain.Part{}, fmt.Errorf("GET /api/parts/%s: %w", id, err)
	}

	return part.ToDomain(), nil
}

func (c *Client) CreateOrder(ctx context.Context, req api.OrderRequest) (domain.Order, error) {
	var envelope api.OrderEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &envelope); err != nil {
		return domain.Order{}, fmt.Errorf("POST /api/orders: %w", err)
	}

	return envelope.Order.ToDomain(), nil
}

func (c *Client) ListOrders(ctx context.Context, status string, page, limit int) (domain.OrderPage, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var orders api.OrderPage
	if err := c.do(ctx, http.MethodGet, "/api/orders", query, nil, &orders); err != nil {
		return domain.OrderPage{}, fmt.Errorf("GET /api/orders: %w", err)
	}

	return orders.ToDomain(), nil
}

func (c *Client) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	var envelope api.OrderEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+id.String(), nil, nil, &envelope); err != nil {
		return domain.Order{}, fmt.Errorf("GET /api/orders/%s: %w", id, err)
	}

	return envelope.Order.ToDomain(), nil
}

func (c *Client) UpdateOrder(ctx context.Context, id uuid.UUID, req api.OrderUpdateRequest) (domain.Order, error) {
	var envelope api.OrderEnvelope
	if err := c.do(ctx, http.MethodPatch, "/api/orders/"+id.String(), nil, req, &envelope); err != nil {
		return domain.Order{}, fmt.Errorf("PATCH /api/orders/%s: %w", id, err)
	}

	return envelope.Order.ToDomain(), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
	}

	endpoint := c.baseURL.JoinPath(path)
	endpoint.RawQuery = query.Encode()

	retries := c.retries
	if method != http.MethodGet {
		retries = 0
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryDelay
	b := backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx)

	attempt := func() error {
		err := c.send(ctx, method, endpoint.String(), payload, out)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}

		var transportErr interface{ Timeout() bool }
		if isTemporary(err) || errors.As(err, &transportErr) {
			return err
		}
		return backoff.Permanent(err)
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("retrying api request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	return backoff.RetryNotify(attempt, b, notify)
}

func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
