package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/comics-storefront/internal/cart/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

type apiComic struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Image     string          `json:"image"`
	Author    string          `json:"author"`
	Price     decimal.Decimal `json:"price"`
	ComicType string          `json:"comicType"`
}

type apiCartItem struct {
	ID           int64               `json:"id"`
	Comic        apiComic            `json:"comic"`
	ComicID      int64               `json:"comicId"`
	Quantity     int                 `json:"quantity"`
	PurchaseType domain.PurchaseType `json:"purchaseType"`
	UnitPrice    decimal.Decimal     `json:"unitPrice"`
}

type CartAPI struct {
	c *restclient.Client
}

func NewCartAPI(c *restclient.Client) *CartAPI {
	return &CartAPI{c: c}
}

func (a *CartAPI) List(ctx context.Context, token string) ([]domain.LineItem, error) {
	return a.call(ctx, "/api/cart", restclient.Options{AuthToken: token})
}

func (a *CartAPI) Add(ctx context.Context, token string, req domain.AddRequest) ([]domain.LineItem, error) {
	comicID, err := numericID(req.ComicID)
	if err != nil {
		return nil, err
	}
	return a.call(ctx, "/api/cart", restclient.Options{
		Method:    http.MethodPost,
		AuthToken: token,
		Body: map[string]any{
			"comicId":      comicID,
			"quantity":     1,
			"purchaseType": req.PurchaseType,
		},
	})
}

func (a *CartAPI) Remove(ctx context.Context, token string, id string) ([]domain.LineItem, error) {
	return a.call(ctx, "/api/cart/"+url.PathEscape(id), restclient.Options{
		Method:    http.MethodDelete,
		AuthToken: token,
	})
}

func (a *CartAPI) SetQuantity(ctx context.Context, token string, id string, quantity int) ([]domain.LineItem, error) {
	itemID, err := numericID(id)
	if err != nil {
		return nil, err
	}
	return a.call(ctx, "/api/cart", restclient.Options{
		Method:    http.MethodPut,
		AuthToken: token,
		Body:      map[string]any{"cartItemId": itemID, "quantity": quantity},
	})
}

func (a *CartAPI) Clear(ctx context.Context, token string) ([]domain.LineItem, error) {
	return a.call(ctx, "/api/cart", restclient.Options{
		Method:    http.MethodDelete,
		AuthToken: token,
	})
}

func (a *CartAPI) call(ctx context.Context, path string, opts restclient.Options) ([]domain.LineItem, error) {
	res, err := restclient.Call[[]apiCartItem](ctx, a.c, path, opts)
	if err != nil {
		return nil, err
	}
	return toDomain(res), nil
}

func toDomain(res []apiCartItem) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(res))
	for _, it := range res {
		comicID := it.Comic.ID
		if comicID == 0 {
			comicID = it.ComicID
		}
		items = append(items, domain.LineItem{
			ID:           strconv.FormatInt(it.ID, 10),
			ComicID:      strconv.FormatInt(comicID, 10),
			Title:        it.Comic.Title,
			Image:        it.Comic.Image,
			Creators:     it.Comic.Author,
			UnitPrice:    it.UnitPrice,
			Quantity:     it.Quantity,
			ComicType:    it.Comic.ComicType,
			PurchaseType: it.PurchaseType,
		})
	}
	return items
}

func numericID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not numeric", apperr.ErrInvalidInput, id)
	}
	return n, nil
}
