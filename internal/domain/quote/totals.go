package quote

import "fmt"

// DefaultTaxRateBps is the Italian standard VAT rate in basis points.
const DefaultTaxRateBps = 2200

// Totals is the price breakdown of a quote. All amounts are whole euro; the
// tax rate is carried in basis points to keep the arithmetic integral.
type Totals struct {
	BasePrice      int `json:"base_price"`
	ServicesPrice  int `json:"services_price"`
	DiscountAmount int `json:"discount_amount"`
	TaxRateBps     int `json:"tax_rate_bps"`
	TaxAmount      int `json:"tax_amount"`
	TotalPrice     int `json:"total_price"`
}

// NewTotals computes the breakdown. The discount is capped at the taxable
// subtotal so the total can never go negative; tax rounds down.
func NewTotals(basePrice, servicesPrice, discountAmount, taxRateBps int) (Totals, error) {
	if basePrice < 0 || servicesPrice < 0 || discountAmount < 0 {
		return Totals{}, fmt.Errorf("price components cannot be negative")
	}
	if taxRateBps < 0 {
		return Totals{}, fmt.Errorf("tax rate cannot be negative")
	}

	subtotal := basePrice + servicesPrice
	if discountAmount > subtotal {
		discountAmount = subtotal
	}
	taxable := subtotal - discountAmount
	taxAmount := taxable * taxRateBps / 10000

	return Totals{
		BasePrice:      basePrice,
		ServicesPrice:  servicesPrice,
		DiscountAmount: discountAmount,
		TaxRateBps:     taxRateBps,
		TaxAmount:      taxAmount,
		TotalPrice:     taxable + taxAmount,
	}, nil
}

// Subtotal returns the pre-discount, pre-tax amount.
func (t Totals) Subtotal() int {
	return t.BasePrice + t.ServicesPrice
}
