package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kicks/internal/domain"
)

// HTTPClient клиент REST-бэкенда поверх net/http
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Ensure interface
var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) ListSneakers(ctx context.Context) ([]domain.Sneaker, error) {
	var out []domain.Sneaker
	if err := c.do(ctx, http.MethodGet, "/sneakers", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetSneaker(ctx context.Context, id int64) (*domain.Sneaker, error) {
	var out domain.Sneaker
	if err := c.do(ctx, http.MethodGet, "/sneakers/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListReviews(ctx context.Context, sneakerID int64) ([]domain.Review, error) {
	q := url.Values{"sneakerId": {strconv.FormatInt(sneakerID, 10)}}
	var out []domain.Review
	if err := c.do(ctx, http.MethodGet, "/reviews", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateReview(ctx context.Context, r domain.Review) (*domain.Review, error) {
	var out domain.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListCartItems(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	if err := c.do(ctx, http.MethodGet, "/cartItems", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateCartItem(ctx context.Context, item domain.CartItem) (*domain.CartItem, error) {
	var out domain.CartItem
	if err := c.do(ctx, http.MethodPost, "/cartItems", nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, id int64, patch CartItemPatch) (*domain.CartItem, error) {
	var out domain.CartItem
	if err := c.do(ctx, http.MethodPatch, "/cartItems/"+strconv.FormatInt(id, 10), nil, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteCartItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/cartItems/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *HTTPClient) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, o, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
