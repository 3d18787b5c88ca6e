package ports

import (
	"context"

	"storefront-orders/internal/features/orders/domain"
)

// ListOptions narrows and pages a customer's order history.
type ListOptions struct {
	Filter   domain.OrderFilter
	Sort     domain.SortKey
	Page     int
	PageSize int
}

// ListResult is one page of orders plus the number of orders matching the filter.
type ListResult struct {
	Items []domain.RawOrder `json:"items"`
	Total int               `json:"total"`
	// Years lists every year the customer ordered in, newest first, ignoring filters.
	Years []string `json:"years,omitempty"`
}

// OrderRepository is the persistence boundary for raw orders.
// This is a Secondary Port (Driven Port).
type OrderRepository interface {
	// GetOrder returns the order with the given number, or (nil, nil) when it does not exist.
	GetOrder(ctx context.Context, orderNumber string) (*domain.RawOrder, error)
	// ListOrders returns a page of the customer's orders after filtering and sorting.
	ListOrders(ctx context.Context, customerID string, opts ListOptions) (*ListResult, error)
}
