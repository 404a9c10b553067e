package domain

import (
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/comics-storefront/internal/pricing"
)

const ComicTypePhysical = "PHYSICAL_COPY"

// FallbackPrice is shown for comics the backend lists without a price.
var FallbackPrice = decimal.RequireFromString("4.99")

type Comic struct {
	ID            string
	Title         string
	Creators      string
	Description   string
	MainCharacter string
	Series        string
	Image         string
	Price         decimal.Decimal
	Category      string
	ComicType     string
}

func (c Comic) DigitalExclusive() bool {
	return c.ComicType == pricing.ComicTypeDigitalOnly
}

// ListPrice is the base price fed to the pricing rule.
func (c Comic) ListPrice() decimal.Decimal {
	if c.Price.IsPositive() {
		return c.Price
	}
	return FallbackPrice
}

// Normalize fills in the defaults the catalog views rely on.
func Normalize(c Comic) Comic {
	if c.ComicType == "" {
		c.ComicType = ComicTypePhysical
	}
	return c
}
