package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/comics-storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/comics-storefront/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Lines(ctx context.Context) []checkoutapp.CartLine {
	cart := r.svc.Cart()

	items := make([]checkoutapp.CartLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, checkoutapp.CartLine{
			ID:           it.ID,
			ComicID:      it.ComicID,
			Title:        it.Title,
			PurchaseType: it.PurchaseType,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		})
	}
	return items
}

func (r *CartServiceReader) Clear(ctx context.Context) {
	r.svc.ClearCart(ctx)
}
