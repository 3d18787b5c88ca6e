package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateAdapter_TrackingLink(t *testing.T) {
	tests := []struct {
		name     string
		template string
		number   string
		want     string
	}{
		{"placeholder", "https://www.ups.com/track?tracknum=%s", "1Z999AA10123456784", "https://www.ups.com/track?tracknum=1Z999AA10123456784"},
		{"trailing equals", "https://carrier.test/track?id=", "ABC", "https://carrier.test/track?id=ABC"},
		{"bare base url", "https://carrier.test/track", "ABC", "https://carrier.test/track?tracking=ABC"},
		{"escaped", "https://carrier.test/t?n=%s", " A B&C ", "https://carrier.test/t?n=A+B%26C"},
		{"percent escape in template", "https://carrier.test/my%20track?n=%s", "ABC", "https://carrier.test/my%20track?n=ABC"},
		{"only first placeholder", "https://carrier.test/t?n=%s&ref=%s", "ABC", "https://carrier.test/t?n=ABC&ref=%s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewTemplateAdapter("ups", tt.template)
			link, err := a.TrackingLink(tt.number)

			require.NoError(t, err)
			assert.Equal(t, tt.want, link.URL)
			assert.Equal(t, "ups", link.Carrier)
		})
	}
}

func TestTemplateAdapter_BlankNumber(t *testing.T) {
	a := NewTemplateAdapter("ups", "https://www.ups.com/track?tracknum=%s")

	link, err := a.TrackingLink("  ")

	assert.Nil(t, link)
	assert.ErrorIs(t, err, ErrInvalidTrackingNumber)
}

func TestTemplateAdapter_SupportsCarrier(t *testing.T) {
	a := NewTemplateAdapter("fedex", "https://www.fedex.com/fedextrack/?trknbr=%s")

	assert.True(t, a.SupportsCarrier("fedex"))
	assert.False(t, a.SupportsCarrier("ups"))
}
