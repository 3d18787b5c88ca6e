package domain

import (
	"fmt"
	"strings"
)

// FulfillmentType is how a fulfillment group reaches the customer.
type FulfillmentType string

const (
	FulfillmentShipping FulfillmentType = "shipping"
	FulfillmentPickup   FulfillmentType = "pickup"
)

// FulfillmentGroup is the normalized projection of a ShippingGroup, or of the order itself
// when it carries no groups. Exactly one of ShippingInfo and PickupInfo is set.
type FulfillmentGroup struct {
	// ID is the source ShippingGroup id; empty for synthesized groups.
	ID    string          `json:"id,omitempty"`
	Index int             `json:"index"`
	Type  FulfillmentType `json:"type"`
	// Title is the display heading, e.g. "Shipment 2" or "Pickup".
	Title        string            `json:"title"`
	Status       OrderStatus       `json:"status"`
	Items        []FulfillmentItem `json:"items"`
	ShippingInfo *ShippingInfo     `json:"shipping_info,omitempty"`
	PickupInfo   *PickupInfo       `json:"pickup_info,omitempty"`
}

// FulfillmentItem is a line item plus its derived display fields.
type FulfillmentItem struct {
	LineItem
	// VariantInfo is color and size joined by ", "; empty when both are absent.
	VariantInfo string `json:"variant_info,omitempty"`
}

// ShippingInfo holds the resolved delivery details of a shipping group.
type ShippingInfo struct {
	Address        string `json:"address,omitempty"`
	Method         string `json:"method,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	CarrierURL     string `json:"carrier_url,omitempty"`
	DeliveryDate   string `json:"delivery_date,omitempty"`
}

// PickupInfo holds the resolved store details of a pickup group.
type PickupInfo struct {
	LocationName string `json:"location_name,omitempty"`
	Address      string `json:"address,omitempty"`
	ReadyDate    string `json:"ready_date,omitempty"`
	PickupWindow string `json:"pickup_window,omitempty"`
}

// Normalize converts a raw order into its fulfillment groups.
//
// The result is never empty: an order without shipping groups yields one synthesized
// group built from order-level fields. Group order follows the input. The order is
// not modified; every returned value is freshly allocated.
func Normalize(order *RawOrder) []FulfillmentGroup {
	if order == nil {
		order = &RawOrder{}
	}

	if len(order.ShippingGroups) > 0 {
		groups := make([]FulfillmentGroup, 0, len(order.ShippingGroups))
		for i := range order.ShippingGroups {
			sg := &order.ShippingGroups[i]
			pickup := sg.IsBOPIS || order.IsBOPIS || sg.PickupLocation != ""
			groups = append(groups, buildGroup(order, sg, i, pickup, itemsForGroup(order.Items, sg.ID)))
		}
		return groups
	}

	pickup := order.IsBOPIS || order.PickupLocation != ""
	return []FulfillmentGroup{buildGroup(order, nil, 0, pickup, decorateItems(order.Items))}
}

// FlattenItems returns the items of all groups in group order.
func FlattenItems(groups []FulfillmentGroup) []FulfillmentItem {
	var n int
	for _, g := range groups {
		n += len(g.Items)
	}
	items := make([]FulfillmentItem, 0, n)
	for _, g := range groups {
		items = append(items, g.Items...)
	}
	return items
}

// VariantInfo joins the color and size labels of an item.
func VariantInfo(item LineItem) string {
	parts := make([]string, 0, 2)
	if c := strings.TrimSpace(item.Color); c != "" {
		parts = append(parts, c)
	}
	if s := strings.TrimSpace(item.Size); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func buildGroup(order *RawOrder, sg *ShippingGroup, index int, pickup bool, items []FulfillmentItem) FulfillmentGroup {
	g := FulfillmentGroup{
		Index:  index,
		Status: OrderStatus(ResolveField(sg, order, FieldStatus)),
		Items:  items,
	}
	if sg != nil {
		g.ID = sg.ID
	}

	if pickup {
		g.Type = FulfillmentPickup
		g.Title = "Pickup"
		g.PickupInfo = &PickupInfo{
			LocationName: ResolveField(sg, order, FieldPickupLocation),
			Address:      ResolveField(sg, order, FieldPickupAddress),
			ReadyDate:    ResolveField(sg, order, FieldPickupReadyDate),
			PickupWindow: ResolveField(sg, order, FieldPickupWindow),
		}
		return g
	}

	g.Type = FulfillmentShipping
	g.Title = fmt.Sprintf("Shipment %d", index+1)
	g.ShippingInfo = &ShippingInfo{
		Address:        ResolveField(sg, order, FieldShippingAddress),
		Method:         ResolveField(sg, order, FieldShippingMethod),
		Carrier:        ResolveField(sg, order, FieldCarrier),
		TrackingNumber: ResolveField(sg, order, FieldTrackingNumber),
		CarrierURL:     ResolveField(sg, order, FieldCarrierURL),
		DeliveryDate:   ResolveField(sg, order, FieldDeliveryDate),
	}
	return g
}

func itemsForGroup(items []LineItem, groupID string) []FulfillmentItem {
	out := make([]FulfillmentItem, 0)
	for _, item := range items {
		if item.ShippingGroup == groupID {
			out = append(out, decorateItem(item))
		}
	}
	return out
}

func decorateItems(items []LineItem) []FulfillmentItem {
	out := make([]FulfillmentItem, 0, len(items))
	for _, item := range items {
		out = append(out, decorateItem(item))
	}
	return out
}

func decorateItem(item LineItem) FulfillmentItem {
	if item.OriginalPrice != nil {
		p := *item.OriginalPrice
		item.OriginalPrice = &p
	}
	return FulfillmentItem{
		LineItem:    item,
		VariantInfo: VariantInfo(item),
	}
}
