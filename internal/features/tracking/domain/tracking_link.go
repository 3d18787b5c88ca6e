package domain

// TrackingLink points a customer at the carrier page for one shipment.
type TrackingLink struct {
	// Carrier is the normalized carrier key (e.g., ups, usps, fedex, dhl).
	Carrier string `json:"carrier"`
	// TrackingNumber is the carrier-issued shipment identifier.
	TrackingNumber string `json:"tracking_number"`
	// URL is the carrier's public tracking page for this shipment.
	URL string `json:"url"`
}
