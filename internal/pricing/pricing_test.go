package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute(t *testing.T) {
	t.Run("no subscription", func(t *testing.T) {
		q := Compute(dec("10"), TierNone, Original)
		assert.Equal(t, "10.00", q.Original.StringFixed(2))
		assert.Equal(t, "7.50", q.Digital.StringFixed(2))
		assert.True(t, q.Selected.Equal(q.Original))
		assert.False(t, q.Discounted())
	})

	t.Run("premium behaves like none", func(t *testing.T) {
		q := Compute(dec("10"), TierPremium, Digital)
		assert.Equal(t, "7.50", q.Selected.StringFixed(2))
		assert.True(t, q.Discounted())
	})

	t.Run("unlimited halves original and frees digital", func(t *testing.T) {
		q := Compute(dec("10"), TierUnlimited, Digital)
		assert.Equal(t, "5.00", q.Original.StringFixed(2))
		assert.True(t, q.Digital.IsZero())
		assert.True(t, q.Free())
		assert.Equal(t, FreeLabel, Display(q.Selected))
		assert.Equal(t, "ADD TO CART - FREE", q.AddToCartLabel())
	})

	t.Run("values are not rounded", func(t *testing.T) {
		q := Compute(dec("4.99"), TierNone, Digital)
		assert.Equal(t, "3.7425", q.Selected.String())
		assert.Equal(t, "$3.74", Display(q.Selected))
		assert.Equal(t, "ADD TO CART - $3.74", q.AddToCartLabel())
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Compute(dec("12.5"), TierUnlimited, Original)
		b := Compute(dec("12.5"), TierUnlimited, Original)
		assert.True(t, a.Selected.Equal(b.Selected))
	})
}

func TestParseTier(t *testing.T) {
	assert.Equal(t, TierUnlimited, ParseTier("Unlimited"))
	assert.Equal(t, TierPremium, ParseTier(" PREMIUM "))
	assert.Equal(t, TierNone, ParseTier(""))
	assert.Equal(t, TierNone, ParseTier("gold"))
}

func TestDefaultPurchaseType(t *testing.T) {
	assert.Equal(t, Digital, DefaultPurchaseType("ONLY_DIGITAL"))
	assert.Equal(t, Original, DefaultPurchaseType("PHYSICAL_COPY"))
	assert.Equal(t, Original, DefaultPurchaseType(""))
}
