package adapter

import (
	"errors"
	"net/url"
	"strings"

	"storefront-orders/internal/features/tracking/domain"
)

// ErrInvalidTrackingNumber is returned for blank tracking numbers.
var ErrInvalidTrackingNumber = errors.New("invalid tracking number")

// TemplateAdapter builds tracking links from a URL template. The first %s is replaced
// by the tracking number; other percent sequences are kept as written.
type TemplateAdapter struct {
	carrier  string
	template string
}

// NewTemplateAdapter creates a TemplateAdapter for a normalized carrier key.
func NewTemplateAdapter(carrier, template string) *TemplateAdapter {
	return &TemplateAdapter{
		carrier:  carrier,
		template: template,
	}
}

// TrackingLink fills the template with the escaped tracking number.
func (a *TemplateAdapter) TrackingLink(trackingNumber string) (*domain.TrackingLink, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, ErrInvalidTrackingNumber
	}

	escaped := url.QueryEscape(trackingNumber)

	var link string
	switch {
	case strings.Contains(a.template, "%s"):
		link = strings.Replace(a.template, "%s", escaped, 1)
	case strings.HasSuffix(a.template, "="):
		link = a.template + escaped
	default:
		link = a.template + "?tracking=" + escaped
	}

	return &domain.TrackingLink{
		Carrier:        a.carrier,
		TrackingNumber: trackingNumber,
		URL:            link,
	}, nil
}

// SupportsCarrier returns true for the carrier this adapter was built for.
func (a *TemplateAdapter) SupportsCarrier(carrier string) bool {
	return carrier == a.carrier
}
