package domain

import (
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order or of one of its shipping groups.
type OrderStatus string

const (
	// OrderStatusProcessing indicates the order has been placed and is not yet with a carrier.
	OrderStatusProcessing OrderStatus = "Processing"
	// OrderStatusInTransit indicates the shipment has been handed to the carrier.
	OrderStatusInTransit OrderStatus = "In Transit"
	// OrderStatusDelivered indicates the shipment reached the customer.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusPartiallyDelivered indicates some, but not all, shipments were delivered.
	OrderStatusPartiallyDelivered OrderStatus = "Partially Delivered"
	// OrderStatusReadyForPickup indicates a BOPIS order is waiting at the store.
	OrderStatusReadyForPickup OrderStatus = "Ready for Pickup"
	// OrderStatusPickedUp indicates a BOPIS order was collected by the customer.
	OrderStatusPickedUp OrderStatus = "Picked Up"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Received reports whether the status means the goods are in the customer's hands.
func (s OrderStatus) Received() bool {
	return s == OrderStatusDelivered || s == OrderStatusPickedUp
}

// FulfillmentStarted reports whether physical fulfillment has begun or completed.
func (s OrderStatus) FulfillmentStarted() bool {
	return s.Received() || s == OrderStatusInTransit
}

// Totals holds the monetary summary of an order.
type Totals struct {
	// Subtotal is the sum of line items before promotions.
	Subtotal decimal.Decimal `json:"subtotal"`
	// Promotions is the applied discount, zero or negative.
	Promotions decimal.Decimal `json:"promotions"`
	// Shipping is the shipping charge.
	Shipping decimal.Decimal `json:"shipping"`
	// Tax is the tax charged.
	Tax decimal.Decimal `json:"tax"`
	// Total is the amount charged to the customer.
	Total decimal.Decimal `json:"total"`
}

// RawOrder is an order as delivered by the order repository, before normalization.
type RawOrder struct {
	// Number is the unique, stable order identifier.
	Number string `json:"order_number"`
	// CustomerID identifies the customer who placed the order.
	CustomerID string `json:"customer_id,omitempty"`
	// Status is the aggregate order status.
	Status OrderStatus `json:"status"`
	// Date is the ordered-on date as displayed (e.g. "Sep 15, 2024").
	Date string `json:"date"`
	// Totals holds the monetary summary.
	Totals Totals `json:"totals"`
	// Items is the flat list of line items.
	Items []LineItem `json:"items"`
	// ShippingGroups optionally splits the items into shipments or pickups.
	ShippingGroups []ShippingGroup `json:"shipping_groups,omitempty"`

	// IsBOPIS marks a buy-online-pick-up-in-store order.
	IsBOPIS bool `json:"is_bopis,omitempty"`
	// PickupLocation is the store name for pickup orders.
	PickupLocation string `json:"pickup_location,omitempty"`
	// PickupAddress is the store address for pickup orders.
	PickupAddress string `json:"pickup_address,omitempty"`
	// PickupReadyDate is when the pickup is ready to collect.
	PickupReadyDate string `json:"pickup_ready_date,omitempty"`
	// PickupWindow is the collection window shown to the customer.
	PickupWindow string `json:"pickup_window,omitempty"`

	// ShippingAddress is the order-level delivery address.
	ShippingAddress string `json:"shipping_address,omitempty"`
	// ShippingMethod is the order-level shipping method label.
	ShippingMethod string `json:"shipping_method,omitempty"`
	// Carrier is the order-level carrier name.
	Carrier string `json:"carrier,omitempty"`
	// TrackingNumber is the order-level tracking number.
	TrackingNumber string `json:"tracking_number,omitempty"`
	// CarrierURL links to the carrier's tracking page.
	CarrierURL string `json:"carrier_url,omitempty"`
	// DeliveryDate is the actual or estimated delivery date.
	DeliveryDate string `json:"delivery_date,omitempty"`

	// CanReturn enables returns for this order.
	CanReturn bool `json:"can_return"`
	// CanCancel enables cancellation for this order.
	CanCancel bool `json:"can_cancel"`
	// ReturnDeadline is the last day a return can be requested.
	ReturnDeadline string `json:"return_deadline,omitempty"`
}

// LineItem is a single product line of an order.
type LineItem struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Image         string           `json:"image,omitempty"`
	Quantity      int              `json:"quantity"`
	Color         string           `json:"color,omitempty"`
	Size          string           `json:"size,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	// ShippingGroup is the id of the ShippingGroup this item belongs to.
	ShippingGroup string `json:"shipping_group,omitempty"`
}

// ShippingGroup is a raw shipment or pickup split of an order.
type ShippingGroup struct {
	// ID is unique within the order.
	ID string `json:"id"`
	// Status may lag or lead the order's aggregate status.
	Status OrderStatus `json:"status,omitempty"`
	// IsBOPIS overrides the order-level pickup flag for this group.
	IsBOPIS bool `json:"is_bopis,omitempty"`

	ShippingAddress string `json:"shipping_address,omitempty"`
	ShippingMethod  string `json:"shipping_method,omitempty"`
	Carrier         string `json:"carrier,omitempty"`
	TrackingNumber  string `json:"tracking_number,omitempty"`
	CarrierURL      string `json:"carrier_url,omitempty"`
	DeliveryDate    string `json:"delivery_date,omitempty"`

	PickupLocation  string `json:"pickup_location,omitempty"`
	PickupAddress   string `json:"pickup_address,omitempty"`
	PickupReadyDate string `json:"pickup_ready_date,omitempty"`
	PickupWindow    string `json:"pickup_window,omitempty"`
}

// Clone returns a deep copy so callers can never mutate a shared order.
func (o *RawOrder) Clone() *RawOrder {
	if o == nil {
		return nil
	}
	c := *o
	if o.Items != nil {
		c.Items = make([]LineItem, len(o.Items))
		for i, item := range o.Items {
			c.Items[i] = item
			if item.OriginalPrice != nil {
				p := *item.OriginalPrice
				c.Items[i].OriginalPrice = &p
			}
		}
	}
	if o.ShippingGroups != nil {
		c.ShippingGroups = append([]ShippingGroup(nil), o.ShippingGroups...)
	}
	return &c
}
