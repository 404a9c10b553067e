package domain

import "github.com/shopspring/decimal"

// Item is keyed by comic id; presence is all that matters.
type Item struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Image    string          `json:"image"`
	Creators string          `json:"creators"`
	Price    decimal.Decimal `json:"price"`
}

type Wishlist struct {
	Items []Item
}

func (w Wishlist) TotalItems() int { return len(w.Items) }

func (w Wishlist) Contains(id string) bool {
	for _, it := range w.Items {
		if it.ID == id {
			return true
		}
	}
	return false
}
