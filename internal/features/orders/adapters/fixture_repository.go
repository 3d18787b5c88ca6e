package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"storefront-orders/internal/features/orders/domain"
	"storefront-orders/internal/features/orders/ports"
)

// FixtureRepository serves orders from an in-memory snapshot loaded from a JSON file.
// Returned orders are deep copies, so callers may mutate them freely.
type FixtureRepository struct {
	orders   []domain.RawOrder
	byNumber map[string]int
}

// NewFixtureRepository reads a JSON array of raw orders from path.
func NewFixtureRepository(path string) (*FixtureRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read order fixture: %w", err)
	}

	var orders []domain.RawOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode order fixture %s: %w", path, err)
	}

	return NewFixtureRepositoryFromOrders(orders), nil
}

// NewFixtureRepositoryFromOrders builds a repository over the given orders.
// On duplicate order numbers the first one wins.
func NewFixtureRepositoryFromOrders(orders []domain.RawOrder) *FixtureRepository {
	r := &FixtureRepository{
		orders:   make([]domain.RawOrder, 0, len(orders)),
		byNumber: make(map[string]int, len(orders)),
	}
	for i := range orders {
		if _, dup := r.byNumber[orders[i].Number]; dup {
			continue
		}
		r.byNumber[orders[i].Number] = len(r.orders)
		r.orders = append(r.orders, *orders[i].Clone())
	}
	return r
}

// GetOrder implements ports.OrderRepository.
func (r *FixtureRepository) GetOrder(ctx context.Context, orderNumber string) (*domain.RawOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx, ok := r.byNumber[orderNumber]
	if !ok {
		return nil, nil
	}
	return r.orders[idx].Clone(), nil
}

// ListOrders implements ports.OrderRepository. An empty customerID lists every order.
func (r *FixtureRepository) ListOrders(ctx context.Context, customerID string, opts ports.ListOptions) (*ports.ListResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	owned := make([]domain.RawOrder, 0, len(r.orders))
	for i := range r.orders {
		if customerID == "" || r.orders[i].CustomerID == customerID {
			owned = append(owned, *r.orders[i].Clone())
		}
	}

	matched := domain.SortOrders(domain.Query(owned, opts.Filter), opts.Sort)
	items, page := domain.Paginate(matched, opts.Page, opts.PageSize)

	return &ports.ListResult{
		Items: items,
		Total: page.TotalItems,
		Years: domain.AvailableYears(owned),
	}, nil
}
