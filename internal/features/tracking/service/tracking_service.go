package service

import (
	"errors"
	"fmt"
	"strings"

	"storefront-orders/internal/features/tracking/domain"
	"storefront-orders/internal/features/tracking/ports"
)

var (
	// ErrCarrierNotSupported is returned when no provider handles the requested carrier.
	ErrCarrierNotSupported = errors.New("carrier not supported")
)

// TrackingService routes tracking link requests to the provider of the matching carrier.
type TrackingService struct {
	providers []ports.TrackingProvider
}

// NewTrackingService creates a new TrackingService with the given providers.
func NewTrackingService(providers []ports.TrackingProvider) *TrackingService {
	return &TrackingService{
		providers: providers,
	}
}

// GetTrackingLink resolves the tracking page for a tracking number and carrier display name.
func (s *TrackingService) GetTrackingLink(trackingNumber, carrier string) (*domain.TrackingLink, error) {
	key := NormalizeCarrierName(carrier)
	for _, provider := range s.providers {
		if provider.SupportsCarrier(key) {
			link, err := provider.TrackingLink(trackingNumber)
			if err != nil {
				return nil, fmt.Errorf("failed to build tracking link: %w", err)
			}
			return link, nil
		}
	}

	return nil, ErrCarrierNotSupported
}

// TrackingURL returns only the URL of GetTrackingLink, for callers that just render a link.
func (s *TrackingService) TrackingURL(trackingNumber, carrier string) (string, error) {
	link, err := s.GetTrackingLink(trackingNumber, carrier)
	if err != nil {
		return "", err
	}
	return link.URL, nil
}

// NormalizeCarrierName maps carrier display names ("UPS Ground", "FedEx Home") to provider keys.
func NormalizeCarrierName(carrier string) string {
	carrier = strings.ToLower(strings.TrimSpace(carrier))

	switch {
	case carrier == "":
		return ""
	case strings.Contains(carrier, "usps"), strings.Contains(carrier, "postal"):
		return "usps"
	case strings.Contains(carrier, "ups"):
		return "ups"
	case strings.Contains(carrier, "fedex"), strings.Contains(carrier, "federal express"):
		return "fedex"
	case strings.Contains(carrier, "dhl"):
		return "dhl"
	default:
		return carrier
	}
}
