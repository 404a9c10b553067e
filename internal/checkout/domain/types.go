package domain

import (
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/comics-storefront/internal/pricing"
)

type QuoteLine struct {
	CartItemID   string               `json:"cartItemId"`
	ComicID      string               `json:"comicId"`
	Title        string               `json:"title"`
	PurchaseType pricing.PurchaseType `json:"purchaseType"`
	Quantity     int                  `json:"quantity"`
	UnitPrice    decimal.Decimal      `json:"unitPrice"`
	LineTotal    decimal.Decimal      `json:"lineTotal"`
}

type Quote struct {
	Lines      []QuoteLine     `json:"lines"`
	TotalItems int             `json:"totalItems"`
	Total      decimal.Decimal `json:"total"`
}

// Receipt is what the shopper sees after placing an order. Granted lists the
// comics added to the digital library; failed grants are only logged.
type Receipt struct {
	Quote   Quote    `json:"quote"`
	Granted []string `json:"granted"`
}
