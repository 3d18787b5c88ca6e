package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront-orders/internal/features/orders/domain"
	"storefront-orders/internal/features/orders/ports"
)

// HTTPRepository reads orders from the upstream storefront order API.
type HTTPRepository struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the API root without a trailing slash.
	baseURL string
	// apiKey is sent as X-API-Key when non-empty.
	apiKey string
}

// NewHTTPRepository creates a new HTTPRepository.
func NewHTTPRepository(client *http.Client, baseURL, apiKey string) *HTTPRepository {
	return &HTTPRepository{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// GetOrder implements ports.OrderRepository. A 404 from upstream yields (nil, nil).
func (r *HTTPRepository) GetOrder(ctx context.Context, orderNumber string) (*domain.RawOrder, error) {
	endpoint := fmt.Sprintf("%s/orders/%s", r.baseURL, url.PathEscape(orderNumber))

	var order domain.RawOrder
	found, err := r.getJSON(ctx, endpoint, &order)
	if err != nil || !found {
		return nil, err
	}
	return &order, nil
}

// ListOrders implements ports.OrderRepository.
func (r *HTTPRepository) ListOrders(ctx context.Context, customerID string, opts ports.ListOptions) (*ports.ListResult, error) {
	q := url.Values{}
	if opts.Filter.Year != "" {
		q.Set("year", opts.Filter.Year)
	}
	if opts.Filter.SearchTerm != "" {
		q.Set("q", opts.Filter.SearchTerm)
	}
	if opts.Sort != "" {
		q.Set("sort", string(opts.Sort))
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(opts.PageSize))
	}

	endpoint := fmt.Sprintf("%s/customers/%s/orders", r.baseURL, url.PathEscape(customerID))
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var result ports.ListResult
	found, err := r.getJSON(ctx, endpoint, &result)
	if err != nil {
		return nil, err
	}
	if !found {
		return &ports.ListResult{Items: []domain.RawOrder{}}, nil
	}
	if result.Items == nil {
		result.Items = []domain.RawOrder{}
	}
	return &result, nil
}

// getJSON decodes a 200 response into out. It reports false for a 404.
func (r *HTTPRepository) getJSON(ctx context.Context, endpoint string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.apiKey != "" {
		req.Header.Set("X-API-Key", r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("orders API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return true, nil
}
