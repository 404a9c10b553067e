// Package pricing derives display prices from a comic's base price, the
// shopper's subscription tier and the chosen purchase type. Values are never
// rounded here; Display rounds to cents.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

type PurchaseType string

const (
	Original PurchaseType = "ORIGINAL"
	Digital  PurchaseType = "DIGITAL"
)

func (p PurchaseType) Valid() bool { return p == Original || p == Digital }

type Tier string

const (
	TierNone      Tier = ""
	TierPremium   Tier = "premium"
	TierUnlimited Tier = "unlimited"
)

// ParseTier accepts the backend's subscriptionType in any case.
func ParseTier(subscriptionType string) Tier {
	switch strings.ToLower(strings.TrimSpace(subscriptionType)) {
	case "unlimited":
		return TierUnlimited
	case "premium":
		return TierPremium
	default:
		return TierNone
	}
}

const ComicTypeDigitalOnly = "ONLY_DIGITAL"

// DefaultPurchaseType preselects DIGITAL for digital exclusives.
func DefaultPurchaseType(comicType string) PurchaseType {
	if comicType == ComicTypeDigitalOnly {
		return Digital
	}
	return Original
}

const FreeLabel = "FREE WITH UNLIMITED"

var (
	half          = decimal.NewFromFloat(0.5)
	threeQuarters = decimal.NewFromFloat(0.75)
)

type Quote struct {
	Base         decimal.Decimal
	Original     decimal.Decimal
	Digital      decimal.Decimal
	Selected     decimal.Decimal
	PurchaseType PurchaseType
}

// Compute applies the tier rule. Only the unlimited tier changes prices today.
func Compute(base decimal.Decimal, tier Tier, pt PurchaseType) Quote {
	unlimited := tier == TierUnlimited

	original := base
	digital := base.Mul(threeQuarters)
	if unlimited {
		original = base.Mul(half)
		digital = decimal.Zero
	}

	selected := original
	if pt == Digital {
		selected = digital
	}

	return Quote{
		Base:         base,
		Original:     original,
		Digital:      digital,
		Selected:     selected,
		PurchaseType: pt,
	}
}

func (q Quote) Free() bool { return q.Selected.IsZero() }

// Discounted reports whether the base price should be shown struck through.
func (q Quote) Discounted() bool { return !q.Selected.Equal(q.Base) }

func (q Quote) AddToCartLabel() string {
	if q.Free() {
		return "ADD TO CART - FREE"
	}
	return "ADD TO CART - " + Money(q.Selected)
}

// Display renders a price for shoppers; exactly zero reads as free.
func Display(v decimal.Decimal) string {
	if v.IsZero() {
		return FreeLabel
	}
	return Money(v)
}

func Money(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}

// TierSource reports the active shopper's tier at call time.
type TierSource interface {
	Tier() Tier
}

type TierFunc func() Tier

func (f TierFunc) Tier() Tier { return f() }
