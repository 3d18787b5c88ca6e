package domain

// Field names a fulfillment attribute that exists at both group and order level.
type Field string

const (
	FieldStatus          Field = "status"
	FieldShippingAddress Field = "shipping_address"
	FieldShippingMethod  Field = "shipping_method"
	FieldCarrier         Field = "carrier"
	FieldTrackingNumber  Field = "tracking_number"
	FieldCarrierURL      Field = "carrier_url"
	FieldDeliveryDate    Field = "delivery_date"
	FieldPickupLocation  Field = "pickup_location"
	FieldPickupAddress   Field = "pickup_address"
	FieldPickupReadyDate Field = "pickup_ready_date"
	FieldPickupWindow    Field = "pickup_window"
)

// ResolveField returns the group-level value of field when set, else the order-level value.
// A nil group resolves straight to the order. Unknown fields resolve to "".
func ResolveField(group *ShippingGroup, order *RawOrder, field Field) string {
	var g ShippingGroup
	if group != nil {
		g = *group
	}
	var o RawOrder
	if order != nil {
		o = *order
	}

	switch field {
	case FieldStatus:
		return firstNonEmpty(string(g.Status), string(o.Status))
	case FieldShippingAddress:
		return firstNonEmpty(g.ShippingAddress, o.ShippingAddress)
	case FieldShippingMethod:
		return firstNonEmpty(g.ShippingMethod, o.ShippingMethod)
	case FieldCarrier:
		return firstNonEmpty(g.Carrier, o.Carrier)
	case FieldTrackingNumber:
		return firstNonEmpty(g.TrackingNumber, o.TrackingNumber)
	case FieldCarrierURL:
		return firstNonEmpty(g.CarrierURL, o.CarrierURL)
	case FieldDeliveryDate:
		return firstNonEmpty(g.DeliveryDate, o.DeliveryDate)
	case FieldPickupLocation:
		return firstNonEmpty(g.PickupLocation, o.PickupLocation)
	case FieldPickupAddress:
		return firstNonEmpty(g.PickupAddress, o.PickupAddress)
	case FieldPickupReadyDate:
		return firstNonEmpty(g.PickupReadyDate, o.PickupReadyDate)
	case FieldPickupWindow:
		return firstNonEmpty(g.PickupWindow, o.PickupWindow)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
