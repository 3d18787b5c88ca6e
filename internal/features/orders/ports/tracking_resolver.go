package ports

// TrackingURLResolver builds a carrier tracking page URL when the order data carries none.
type TrackingURLResolver interface {
	TrackingURL(trackingNumber, carrier string) (string, error)
}
