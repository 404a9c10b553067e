package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/comics-storefront/internal/pricing"
)

type CartLine struct {
	ID           string
	ComicID      string
	Title        string
	PurchaseType pricing.PurchaseType
	Quantity     int
	UnitPrice    decimal.Decimal
}

type CartReader interface {
	Lines(ctx context.Context) []CartLine
	Clear(ctx context.Context)
}

type LibraryGranter interface {
	Grant(ctx context.Context, comicID string) error
}

type TokenSource interface {
	Token() string
}
