package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("catalogapi: not found")

// APIError is a non-2xx answer from the product API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalogapi: status %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether another attempt may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

type Config struct {
	BaseURL      string
	FallbackURLs []string
	Timeout      time.Duration
	MaxRetries   int
	// RetryInterval is the first backoff delay. Zero means 200ms.
	RetryInterval time.Duration
}

type Client struct {
	bases         []string
	http          *http.Client
	maxRetries    int
	retryInterval time.Duration
	logger        logger.ZapLogger
}

func NewClient(cfg Config, log logger.ZapLogger) *Client {
	var bases []string
	for _, b := range append([]string{cfg.BaseURL}, cfg.FallbackURLs...) {
		b = strings.TrimRight(strings.TrimSpace(b), "/")
		if b != "" {
			bases = append(bases, b)
		}
	}
	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		bases:         bases,
		http:          &http.Client{Timeout: timeout},
		maxRetries:    cfg.MaxRetries,
		retryInterval: interval,
		logger:        log,
	}
}

type request struct {
	method      string
	path        string
	token       string
	body        []byte
	contentType string
}

func jsonRequest(method, path, token string, v any) (request, error) {
	r := request{method: method, path: path, token: token}
	if v != nil {
		data, err := json.Marshal(v)
		if err != nil {
			return r, err
		}
		r.body = data
		r.contentType = "application/json"
	}
	return r, nil
}

// retryable reports whether r may be sent again after err. Creates and
// uploads are only resent when the connection was never established, since
// the server may have committed a request whose answer was lost.
func (r request) retryable(err error) bool {
	var apiErr *APIError
	if errors.Is(err, ErrNotFound) || (errors.As(err, &apiErr) && !apiErr.Temporary()) {
		return false
	}
	if r.method == http.MethodPost {
		return notDelivered(err)
	}
	return true
}

// notDelivered reports whether err happened while dialing, before any byte
// of the request was written.
func notDelivered(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// do sends r to each base URL in turn. A base is retried with exponential
// backoff on transport errors and 5xx answers; when it is exhausted the next
// base is tried. 4xx answers stop immediately, and POST requests move on only
// when they never reached the server.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	if len(c.bases) == 0 {
		return nil, errors.New("catalogapi: no base url configured")
	}

	var lastErr error
	for _, base := range c.bases {
		var body []byte
		op := func() error {
			data, err := c.send(ctx, base, r)
			if err != nil {
				if !r.retryable(err) {
					return backoff.Permanent(err)
				}
				return err
			}
			body = data
			return nil
		}

		b := backoff.NewExponentialBackOff()
		b.InitialInterval = c.retryInterval
		b.MaxElapsedTime = 0
		policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxRetries)), ctx)

		err := backoff.Retry(op, policy)
		if err == nil {
			return body, nil
		}
		if !r.retryable(err) || ctx.Err() != nil {
			return nil, err
		}
		c.logger.Warn("catalog api base unavailable",
			zap.String("base", base),
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Error(err),
		)
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) send(ctx context.Context, base string, r request) ([]byte, error) {
	var reader io.Reader
	if r.body != nil {
		reader = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, base+r.path, reader)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data, resp.Status)}
	}
	return data, nil
}

func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && len(text) < 512 {
		return text
	}
	return fallback
}

func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	data, err := c.do(ctx, request{method: http.MethodGet, path: "/products/" + url.PathEscape(id)})
	if err != nil {
		return nil, err
	}
	var p model.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	if p.ID == "" {
		p.ID = id
	}
	return &p, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	data, err := c.do(ctx, request{method: http.MethodGet, path: "/products/all"})
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := decodeList(data, "products", &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// CreateProduct posts a new product. The returned product carries whatever
// the API echoed back; its ID may be empty when the API answers with only a
// message.
func (c *Client) CreateProduct(ctx context.Context, token string, p *model.ProductPayload) (*model.Product, error) {
	r, err := jsonRequest(http.MethodPost, "/products/addProduct", token, p)
	if err != nil {
		return nil, err
	}
	data, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	return decodeSaved(data), nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, p *model.ProductPayload) (*model.Product, error) {
	r, err := jsonRequest(http.MethodPut, "/products/"+url.PathEscape(id), token, p)
	if err != nil {
		return nil, err
	}
	data, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	saved := decodeSaved(data)
	if saved.ID == "" {
		saved.ID = id
	}
	return saved, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, request{method: http.MethodDelete, path: "/products/" + url.PathEscape(id), token: token})
	return err
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	data, err := c.do(ctx, request{method: http.MethodGet, path: "/api/admin/categories"})
	if err != nil {
		return nil, err
	}
	var categories []model.Category
	if err := decodeList(data, "categories", &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

// decodeList accepts either a bare JSON array or an object holding the array
// under key.
func decodeList(data []byte, key string, dst any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, dst)
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return err
	}
	raw, ok := wrapper[key]
	if !ok || string(raw) == "null" {
		return json.Unmarshal([]byte("[]"), dst)
	}
	return json.Unmarshal(raw, dst)
}

func decodeSaved(data []byte) *model.Product {
	var wrapped struct {
		Product *model.Product `json:"product"`
	}
	if json.Unmarshal(data, &wrapped) == nil && wrapped.Product != nil {
		return wrapped.Product
	}
	var p model.Product
	_ = json.Unmarshal(data, &p)
	return &p
}
