package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleQuery struct {
	Page  int      `query:"page" validate:"gte=0"`
	Width *float64 `query:"width" validate:"required"`
	Sort  string   `json:"sort" validate:"omitempty,oneof=asc desc"`
	Note  string   `validate:"max=3"`
}

func TestValidator_Struct(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	width := 10.0

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.Struct(sampleQuery{Page: 1, Width: &width, Sort: "asc"}))
	})

	t.Run("Invalid", func(t *testing.T) {
		err := v.Struct(sampleQuery{Page: -1, Sort: "random", Note: "too long"})

		var verr *Error
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 4)
		assert.Equal(t, "page must be 0 or greater", verr.Fields["page"])
		assert.Equal(t, "width is a required field", verr.Fields["width"])
		assert.Contains(t, verr.Fields, "sort")
		assert.Contains(t, verr.Fields, "Note")
		assert.Contains(t, err.Error(), "width is a required field")
	})
}
