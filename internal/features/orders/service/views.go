package service

import (
	"storefront-orders/internal/features/orders/domain"
	thumbdomain "storefront-orders/internal/features/thumbnails/domain"

	"github.com/shopspring/decimal"
)

// OrderDetail is the order detail page model.
type OrderDetail struct {
	Number string             `json:"order_number"`
	Date   string             `json:"date"`
	Status domain.OrderStatus `json:"status"`
	Badge  domain.Badge       `json:"badge"`
	Totals domain.Totals      `json:"totals"`
	Groups []GroupView        `json:"groups"`
	// ItemCount is the number of line items across all groups.
	ItemCount        int    `json:"item_count"`
	ReturnDeadline   string `json:"return_deadline,omitempty"`
	ReturnWindowOpen bool   `json:"return_window_open"`
}

// GroupView is a fulfillment group decorated with its badge and actions.
type GroupView struct {
	domain.FulfillmentGroup
	Badge     domain.Badge `json:"badge"`
	CanReturn bool         `json:"can_return"`
	CanCancel bool         `json:"can_cancel"`
	// TrackingURL is the carrier URL from the order, or one built from carrier and tracking number.
	TrackingURL string `json:"tracking_url,omitempty"`
}

// ListParams are the raw order history request parameters.
type ListParams struct {
	Year     string
	Query    string
	Sort     string
	Page     int
	PageSize int
}

// OrderSummary is one row of the order history list.
type OrderSummary struct {
	Number      string             `json:"order_number"`
	Date        string             `json:"date"`
	Status      domain.OrderStatus `json:"status"`
	Badge       domain.Badge       `json:"badge"`
	Total       decimal.Decimal    `json:"total"`
	ItemCount   int                `json:"item_count"`
	ItemPreview []string           `json:"item_preview"`
}

// OrderHistory is one page of a customer's order history.
type OrderHistory struct {
	Orders []OrderSummary     `json:"orders"`
	Page   domain.Page        `json:"page"`
	Filter domain.OrderFilter `json:"filter"`
	Sort   domain.SortKey     `json:"sort"`
	Years  []string           `json:"years"`
}

// ThumbnailParams describe the row a thumbnail strip is laid out in.
// Nil Tile or Gap use the configured defaults.
type ThumbnailParams struct {
	Width float64
	Tile  *float64
	Gap   *float64
}

// ThumbnailStrip is the visible part of an order's item thumbnail row.
type ThumbnailStrip struct {
	thumbdomain.Result
	Items []domain.FulfillmentItem `json:"items"`
	// BadgeLabel is "+N" when ShowBadge is set.
	BadgeLabel string `json:"badge_label,omitempty"`
}
