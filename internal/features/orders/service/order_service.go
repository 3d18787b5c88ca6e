package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"storefront-orders/internal/core/logger"
	"storefront-orders/internal/features/orders/domain"
	"storefront-orders/internal/features/orders/ports"
	thumbdomain "storefront-orders/internal/features/thumbnails/domain"
	thumbservice "storefront-orders/internal/features/thumbnails/service"

	"go.uber.org/zap"
)

// ErrOrderNotFound is returned when the order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrInvalidLayout is returned for a negative or non-finite thumbnail geometry, or an empty tile.
var ErrInvalidLayout = errors.New("invalid thumbnail layout")

const previewItemLimit = 3

// Options tune the OrderService. Zero values fall back to defaults.
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
	// TilePx and GapPx are the default thumbnail geometry.
	TilePx float64
	GapPx  float64
	// Now is the clock used for the return window.
	Now func() time.Time
}

// OrderService composes the order detail, order history and thumbnail views.
type OrderService struct {
	repo     ports.OrderRepository
	tracking ports.TrackingURLResolver
	opts     Options
}

// NewOrderService creates a new instance of OrderService. tracking may be nil.
func NewOrderService(repo ports.OrderRepository, tracking ports.TrackingURLResolver, opts Options) *OrderService {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 10
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = opts.DefaultPageSize
	}
	if opts.TilePx <= 0 {
		opts.TilePx = 64
	}
	if opts.GapPx < 0 {
		opts.GapPx = 0
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &OrderService{
		repo:     repo,
		tracking: tracking,
		opts:     opts,
	}
}

// GetOrderDetail loads an order and builds its detail view.
// If ctx ends while the order is loading, the result is discarded.
func (s *OrderService) GetOrderDetail(ctx context.Context, orderNumber string) (*OrderDetail, error) {
	order, err := s.fetch(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	groups := domain.Normalize(order)
	views := make([]GroupView, len(groups))
	itemCount := 0
	for i, g := range groups {
		views[i] = GroupView{
			FulfillmentGroup: g,
			Badge:            domain.BadgeFor(g.Status),
			CanReturn:        domain.CanReturnItem(order, g),
			CanCancel:        domain.CanCancelItem(order, g),
			TrackingURL:      s.trackingURL(g),
		}
		itemCount += len(g.Items)
	}

	return &OrderDetail{
		Number:           order.Number,
		Date:             order.Date,
		Status:           order.Status,
		Badge:            domain.BadgeFor(order.Status),
		Totals:           order.Totals,
		Groups:           views,
		ItemCount:        itemCount,
		ReturnDeadline:   order.ReturnDeadline,
		ReturnWindowOpen: s.returnWindowOpen(order),
	}, nil
}

// ListOrderHistory returns one page of a customer's orders.
// Page and page size are clamped to the configured bounds.
func (s *OrderService) ListOrderHistory(ctx context.Context, customerID string, params ListParams) (*OrderHistory, error) {
	opts := ports.ListOptions{
		Filter: domain.OrderFilter{
			Year:       strings.TrimSpace(params.Year),
			SearchTerm: strings.TrimSpace(params.Query),
		},
		Sort:     domain.ParseSortKey(params.Sort),
		Page:     max(params.Page, 1),
		PageSize: s.clampPageSize(params.PageSize),
	}

	res, err := s.repo.ListOrders(ctx, customerID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for customer %s: %w", customerID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(res.Items))
	for i := range res.Items {
		summaries = append(summaries, summarize(&res.Items[i]))
	}

	years := res.Years
	if years == nil {
		years = []string{}
	}

	return &OrderHistory{
		Orders: summaries,
		Page:   domain.PageInfo(res.Total, opts.Page, opts.PageSize),
		Filter: opts.Filter,
		Sort:   opts.Sort,
		Years:  years,
	}, nil
}

// Thumbnails lays out an order's item thumbnails in a row of the given width.
// Items are taken in fulfillment group order.
func (s *OrderService) Thumbnails(ctx context.Context, orderNumber string, params ThumbnailParams) (*ThumbnailStrip, error) {
	tile, gap := s.opts.TilePx, s.opts.GapPx
	if params.Tile != nil {
		tile = *params.Tile
	}
	if params.Gap != nil {
		gap = *params.Gap
	}
	if tile <= 0 || !validGeometry(params.Width, tile, gap) {
		return nil, fmt.Errorf("%w: width=%v tile=%v gap=%v", ErrInvalidLayout, params.Width, tile, gap)
	}

	order, err := s.fetch(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	items := domain.FlattenItems(domain.Normalize(order))

	driver := thumbservice.NewDriver(tile, gap)
	driver.SetItemCount(len(items))
	layout, ok := driver.Measure(params.Width)
	if !ok {
		layout = thumbdomain.Result{}
	}

	strip := &ThumbnailStrip{
		Result: layout,
		Items:  append([]domain.FulfillmentItem{}, items[:layout.VisibleCount]...),
	}
	if layout.ShowBadge {
		strip.BadgeLabel = fmt.Sprintf("+%d", layout.RemainingCount)
	}
	return strip, nil
}

func (s *OrderService) fetch(ctx context.Context, orderNumber string) (*domain.RawOrder, error) {
	order, err := s.repo.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderNumber, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) trackingURL(g domain.FulfillmentGroup) string {
	info := g.ShippingInfo
	if info == nil {
		return ""
	}
	if info.CarrierURL != "" {
		return info.CarrierURL
	}
	if s.tracking == nil || info.TrackingNumber == "" || info.Carrier == "" {
		return ""
	}

	link, err := s.tracking.TrackingURL(info.TrackingNumber, info.Carrier)
	if err != nil {
		logger.Named("orders").Debug("No tracking link for carrier",
			zap.String("carrier", info.Carrier),
			zap.Error(err),
		)
		return ""
	}
	return link
}

// returnWindowOpen is true until the end of the return deadline day.
// A missing or unreadable deadline leaves the window open.
func (s *OrderService) returnWindowOpen(order *domain.RawOrder) bool {
	if !order.CanReturn {
		return false
	}
	deadline, ok := domain.ParseOrderDate(order.ReturnDeadline)
	if !ok {
		return true
	}
	return s.opts.Now().Before(deadline.AddDate(0, 0, 1))
}

func (s *OrderService) clampPageSize(size int) int {
	if size <= 0 {
		return s.opts.DefaultPageSize
	}
	return min(size, s.opts.MaxPageSize)
}

func summarize(order *domain.RawOrder) OrderSummary {
	preview := make([]string, 0, min(len(order.Items), previewItemLimit))
	for _, item := range order.Items {
		if len(preview) == previewItemLimit {
			break
		}
		preview = append(preview, item.Name)
	}

	return OrderSummary{
		Number:      order.Number,
		Date:        order.Date,
		Status:      order.Status,
		Badge:       domain.BadgeFor(order.Status),
		Total:       order.Totals.Total,
		ItemCount:   len(order.Items),
		ItemPreview: preview,
	}
}

func validGeometry(values ...float64) bool {
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
