package order

import "github.com/shopspring/decimal"

// Pricer computes line and order money fields. It is pure: no I/O, no state
// beyond the configured tax rate.
//
// Rounding is half-up to 2 decimal places, matching currency display. Line
// subtotals are rounded; the order subtotal is their exact sum and only tax
// gets rounded again.
type Pricer struct {
	taxRate decimal.Decimal
}

// NewPricer builds a Pricer with the given tax rate (e.g. 0.12 for 12% VAT).
func NewPricer(taxRate decimal.Decimal) Pricer {
	return Pricer{taxRate: taxRate}
}

// Totals is the order money triple. The three fields are always computed and
// persisted together.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// LineSubtotal is unitPrice * quantity rounded to 2 decimals.
func (p Pricer) LineSubtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// OrderSubtotal sums line subtotals without re-rounding.
func (p Pricer) OrderSubtotal(items []Item) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	return subtotal
}

// Tax is subtotal * rate rounded to 2 decimals.
func (p Pricer) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(p.taxRate).Round(2)
}

// TotalsFor derives the full money triple from the live item set.
func (p Pricer) TotalsFor(items []Item) Totals {
	subtotal := p.OrderSubtotal(items)
	tax := p.Tax(subtotal)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
