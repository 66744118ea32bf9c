package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func TestPricer_LineSubtotal(t *testing.T) {
	t.Parallel()

	pricer := NewPricer(dec(t, "0.12"))

	testCases := []struct {
		name      string
		unitPrice string
		quantity  int
		expected  string
	}{
		{name: "simple multiple", unitPrice: "9.99", quantity: 2, expected: "19.98"},
		{name: "single unit", unitPrice: "5.00", quantity: 1, expected: "5"},
		{name: "rounds half up", unitPrice: "0.335", quantity: 1, expected: "0.34"},
		{name: "third-decimal price", unitPrice: "1.333", quantity: 3, expected: "4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := pricer.LineSubtotal(dec(t, tc.unitPrice), tc.quantity)

			assert.True(t, dec(t, tc.expected).Equal(result),
				"expected %s, got %s", tc.expected, result)
		})
	}
}

func TestPricer_TotalsFor(t *testing.T) {
	t.Parallel()

	pricer := NewPricer(dec(t, "0.12"))

	t.Run("should compute the money triple for a two-line order", func(t *testing.T) {
		// given
		items := []Item{
			{Quantity: 2, UnitPrice: dec(t, "9.99"), Subtotal: pricer.LineSubtotal(dec(t, "9.99"), 2)},
			{Quantity: 1, UnitPrice: dec(t, "5.00"), Subtotal: pricer.LineSubtotal(dec(t, "5.00"), 1)},
		}

		// when
		totals := pricer.TotalsFor(items)

		// then
		assert.True(t, dec(t, "24.98").Equal(totals.Subtotal), "subtotal: %s", totals.Subtotal)
		assert.True(t, dec(t, "3.00").Equal(totals.Tax), "tax: %s", totals.Tax)
		assert.True(t, dec(t, "27.98").Equal(totals.Total), "total: %s", totals.Total)
	})

	t.Run("should recompute after adding a line", func(t *testing.T) {
		// given
		items := []Item{
			{Quantity: 2, UnitPrice: dec(t, "9.99"), Subtotal: pricer.LineSubtotal(dec(t, "9.99"), 2)},
			{Quantity: 1, UnitPrice: dec(t, "5.00"), Subtotal: pricer.LineSubtotal(dec(t, "5.00"), 1)},
			{Quantity: 2, UnitPrice: dec(t, "3.50"), Subtotal: pricer.LineSubtotal(dec(t, "3.50"), 2)},
		}

		// when
		totals := pricer.TotalsFor(items)

		// then
		assert.True(t, dec(t, "31.98").Equal(totals.Subtotal), "subtotal: %s", totals.Subtotal)
		assert.True(t, dec(t, "3.84").Equal(totals.Tax), "tax: %s", totals.Tax)
		assert.True(t, dec(t, "35.82").Equal(totals.Total), "total: %s", totals.Total)
	})

	t.Run("should return zeroes for an empty item set", func(t *testing.T) {
		totals := pricer.TotalsFor(nil)

		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Tax.IsZero())
		assert.True(t, totals.Total.IsZero())
	})
}

func TestPricer_Tax(t *testing.T) {
	t.Parallel()

	t.Run("should round tax half up", func(t *testing.T) {
		pricer := NewPricer(dec(t, "0.12"))

		// 24.98 * 0.12 = 2.9976 -> 3.00
		assert.True(t, dec(t, "3.00").Equal(pricer.Tax(dec(t, "24.98"))))
		// 31.98 * 0.12 = 3.8376 -> 3.84
		assert.True(t, dec(t, "3.84").Equal(pricer.Tax(dec(t, "31.98"))))
	})

	t.Run("should honor a zero rate", func(t *testing.T) {
		pricer := NewPricer(decimal.Zero)

		assert.True(t, pricer.Tax(dec(t, "100.00")).IsZero())
	})
}
