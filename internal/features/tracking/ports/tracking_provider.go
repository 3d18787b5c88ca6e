package ports

import "storefront-orders/internal/features/tracking/domain"

// TrackingProvider builds tracking links for one carrier.
type TrackingProvider interface {
	// TrackingLink returns the carrier tracking page for a tracking number.
	TrackingLink(trackingNumber string) (*domain.TrackingLink, error)
	// SupportsCarrier returns true if this provider handles the given normalized carrier key.
	SupportsCarrier(carrier string) bool
}
