//go:build unit

package cart_test

import (
	"testing"

	"nexus-store/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCoupon(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantCode string
		wantRate float64
		wantOK   bool
	}{
		{name: "ten percent", code: "DESCONTO10", wantCode: "DESCONTO10", wantRate: 0.10, wantOK: true},
		{name: "twenty percent", code: "DESCONTO20", wantCode: "DESCONTO20", wantRate: 0.20, wantOK: true},
		{name: "first purchase", code: "PRIMEIRA", wantCode: "PRIMEIRA", wantRate: 0.15, wantOK: true},
		{name: "black friday", code: "BLACK50", wantCode: "BLACK50", wantRate: 0.50, wantOK: true},
		{name: "lowercase input is normalized", code: "desconto10", wantCode: "DESCONTO10", wantRate: 0.10, wantOK: true},
		{name: "surrounding whitespace trimmed", code: "  BLACK50  ", wantCode: "BLACK50", wantRate: 0.50, wantOK: true},
		{name: "unknown code", code: "NOPE", wantOK: false},
		{name: "empty code", code: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := cart.LookupCoupon(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantCode, c.Code())
			assert.Equal(t, tt.wantRate, c.Rate())
		})
	}
}

func TestNewLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		l, err := cart.NewLine("ssd-nvme-2tb", 2, "")
		require.NoError(t, err)
		assert.Equal(t, 2, l.Quantity())
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := cart.NewLine("ssd-nvme-2tb", 0, "")
		assert.Error(t, err)
	})

	t.Run("variant distinguishes lines", func(t *testing.T) {
		l, err := cart.NewLine("teclado-mecanico", 1, "red")
		require.NoError(t, err)
		assert.True(t, l.Matches("teclado-mecanico", "red"))
		assert.False(t, l.Matches("teclado-mecanico", "blue"))
	})
}
