package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTotals(t *testing.T) {
	tests := []struct {
		name         string
		base         int
		services     int
		discount     int
		wantDiscount int
		wantTax      int
		wantTotal    int
	}{
		{
			name:      "no discount",
			base:      1800,
			services:  160,
			wantTax:   431, // 1960 * 22% = 431.2, floored
			wantTotal: 2391,
		},
		{
			name:         "partial discount",
			base:         1000,
			services:     0,
			discount:     100,
			wantDiscount: 100,
			wantTax:      198,
			wantTotal:    1098,
		},
		{
			name:         "discount capped at subtotal",
			base:         500,
			services:     100,
			discount:     5000,
			wantDiscount: 600,
			wantTax:      0,
			wantTotal:    0,
		},
		{
			name:      "zero everything",
			wantTax:   0,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := NewTotals(tt.base, tt.services, tt.discount, DefaultTaxRateBps)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDiscount, totals.DiscountAmount)
			assert.Equal(t, tt.wantTax, totals.TaxAmount)
			assert.Equal(t, tt.wantTotal, totals.TotalPrice)
			assert.Equal(t, tt.base+tt.services, totals.Subtotal())
		})
	}

	t.Run("rejects negative components", func(t *testing.T) {
		_, err := NewTotals(-1, 0, 0, DefaultTaxRateBps)
		assert.Error(t, err)
		_, err = NewTotals(0, -1, 0, DefaultTaxRateBps)
		assert.Error(t, err)
		_, err = NewTotals(0, 0, -1, DefaultTaxRateBps)
		assert.Error(t, err)
		_, err = NewTotals(0, 0, 0, -1)
		assert.Error(t, err)
	})
}
