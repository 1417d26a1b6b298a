package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/domain/gateway"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

// Client is the HTTP client for the external POS backend. All calls go
// through a circuit breaker so a degraded backend sheds load fast instead
// of stacking up blocked terminals.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// Config holds the backend client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a backend client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "pos-backend",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A 4xx means the backend answered and rejected the request;
		// only transport failures and 5xx count against the breaker.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var ue *upstreamError
			return errors.As(err, &ue)
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		breaker:    cb,
	}
}

var _ gateway.Backend = (*Client)(nil)

// errorBody is the backend's error response shape.
type errorBody struct {
	Message string `json:"message"`
}

// upstreamError marks responses that must not count as breaker failures:
// the backend answered, it just rejected the request.
type upstreamError struct {
	err *apperror.AppError
}

func (e *upstreamError) Error() string { return e.err.Message }

func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body interface{}) ([]byte, error) {
	data, err := c.breaker.Execute(func() ([]byte, error) {
		var reader io.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			if err != nil {
				return nil, err
			}
			reader = bytes.NewReader(raw)
		}

		u := c.baseURL + path
		if len(query) > 0 {
			u += "?" + query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("backend request failed: %w", err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("backend response read failed: %w", err)
		}

		if resp.StatusCode >= 500 {
			return nil, apperror.NewUpstreamError(http.StatusBadGateway, upstreamMessage(raw))
		}
		if resp.StatusCode >= 400 {
			// Client-side rejection: pass the message through without
			// tripping the breaker.
			return nil, &upstreamError{err: apperror.NewUpstreamError(resp.StatusCode, upstreamMessage(raw))}
		}

		return raw, nil
	})

	if err != nil {
		var ue *upstreamError
		if errors.As(err, &ue) {
			return nil, ue.err
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, apperror.NewAppError(http.StatusServiceUnavailable, "Sales backend temporarily unavailable")
		}
		return nil, err
	}
	return data, nil
}

func upstreamMessage(raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return ""
	}
	return eb.Message
}

// SearchProducts queries the backend product catalog by code or name.
func (c *Client) SearchProducts(ctx context.Context, token, query string) ([]entity.Product, error) {
	q := url.Values{"query": {query}}
	raw, err := c.do(ctx, token, http.MethodGet, "/productos/search", q, nil)
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decoding product search response: %w", err)
	}
	return products, nil
}

// SearchClients queries the backend client accounts by name or DNI.
func (c *Client) SearchClients(ctx context.Context, token, query string) ([]entity.Client, error) {
	q := url.Values{"search": {query}}
	raw, err := c.do(ctx, token, http.MethodGet, "/clientes", q, nil)
	if err != nil {
		return nil, err
	}

	var clients []entity.Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, fmt.Errorf("decoding client search response: %w", err)
	}
	return clients, nil
}

// saleEnvelope is the backend's success response for sale creation.
type saleEnvelope struct {
	Sale entity.Sale `json:"sale"`
}

// CreateSale submits a composed sale. On success the backend persists the
// sale, adjusts stock for forward and return lines, updates the client
// balance for store-credit settlements, and returns the authoritative
// record used for the receipt.
func (c *Client) CreateSale(ctx context.Context, token string, sub *gateway.SaleSubmission) (*entity.Sale, error) {
	raw, err := c.do(ctx, token, http.MethodPost, "/sales", nil, sub)
	if err != nil {
		return nil, err
	}

	var env saleEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding sale response: %w", err)
	}
	return &env.Sale, nil
}

// GetSettings fetches the business configuration used for receipts.
func (c *Client) GetSettings(ctx context.Context, token string) (*entity.BusinessSettings, error) {
	raw, err := c.do(ctx, token, http.MethodGet, "/settings", nil, nil)
	if err != nil {
		return nil, err
	}

	var settings entity.BusinessSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decoding settings response: %w", err)
	}
	return &settings, nil
}
