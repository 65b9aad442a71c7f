//go:build unit

package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nexus-store/internal/pkg/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "zero", cents: 0, want: "R$ 0,00"},
		{name: "whole reais", cents: 500, want: "R$ 5,00"},
		{name: "with centavos", cents: 9999, want: "R$ 99,99"},
		{name: "thousands grouping", cents: 123456, want: "R$ 1.234,56"},
		{name: "millions", cents: 123456789, want: "R$ 1.234.567,89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.FromCents(tt.cents).Format())
		})
	}
}

func TestCentsRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 12345, 999999} {
		assert.Equal(t, cents, money.FromCents(cents).Cents())
	}
}

func TestFloat64(t *testing.T) {
	assert.Equal(t, 12.34, money.FromCents(1234).Float64())
	assert.Equal(t, 0.01, money.FromCents(1).Float64())
}

func TestInstallment(t *testing.T) {
	tests := []struct {
		name       string
		totalCents int64
		n          int
		wantCents  int64
	}{
		{name: "single installment is the total", totalCents: 10000, n: 1, wantCents: 10000},
		{name: "even split", totalCents: 12000, n: 12, wantCents: 1000},
		{name: "repeating decimal rounds per row", totalCents: 10000, n: 3, wantCents: 3333},
		{name: "rounds up", totalCents: 10000, n: 6, wantCents: 1667},
		{name: "non-positive count is clamped to one", totalCents: 5000, n: 0, wantCents: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCents, money.Installment(tt.totalCents, tt.n).Cents())
		})
	}
}
