package domain

import (
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/comics-storefront/internal/pricing"
)

type PurchaseType = pricing.PurchaseType

type LineItem struct {
	ID           string          `json:"id"`
	ComicID      string          `json:"comicId"`
	Title        string          `json:"title"`
	Image        string          `json:"image"`
	Creators     string          `json:"creators"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	ComicType    string          `json:"comicType,omitempty"`
	PurchaseType PurchaseType    `json:"purchaseType"`
}

func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an immutable snapshot of the mirrored server cart. Totals are folds
// over Items and are never stored.
type Cart struct {
	Items []LineItem
}

func (c Cart) TotalItems() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (c Cart) Find(id string) (LineItem, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}

type AddRequest struct {
	ComicID      string       `json:"comicId"`
	PurchaseType PurchaseType `json:"purchaseType"`
}
