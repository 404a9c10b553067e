package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/comics-storefront/internal/wishlist/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

type apiWishlistItem struct {
	Comic struct {
		ID     int64            `json:"id"`
		Title  string           `json:"title"`
		Image  string           `json:"image"`
		Author string           `json:"author"`
		Price  *decimal.Decimal `json:"price"`
	} `json:"comic"`
}

type WishlistAPI struct {
	c *restclient.Client
}

func NewWishlistAPI(c *restclient.Client) *WishlistAPI {
	return &WishlistAPI{c: c}
}

func (a *WishlistAPI) List(ctx context.Context, token string) ([]domain.Item, error) {
	return a.call(ctx, "/api/wishlist", restclient.Options{AuthToken: token})
}

func (a *WishlistAPI) Add(ctx context.Context, token string, comicID string) ([]domain.Item, error) {
	id, err := strconv.ParseInt(comicID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: comic id %q is not numeric", apperr.ErrInvalidInput, comicID)
	}
	return a.call(ctx, "/api/wishlist", restclient.Options{
		Method:    http.MethodPost,
		AuthToken: token,
		Body:      map[string]int64{"comicId": id},
	})
}

func (a *WishlistAPI) Remove(ctx context.Context, token string, comicID string) ([]domain.Item, error) {
	return a.call(ctx, "/api/wishlist/"+url.PathEscape(comicID), restclient.Options{
		Method:    http.MethodDelete,
		AuthToken: token,
	})
}

func (a *WishlistAPI) call(ctx context.Context, path string, opts restclient.Options) ([]domain.Item, error) {
	res, err := restclient.Call[[]apiWishlistItem](ctx, a.c, path, opts)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(res))
	for _, it := range res {
		price := decimal.Zero
		if it.Comic.Price != nil {
			price = *it.Comic.Price
		}
		items = append(items, domain.Item{
			ID:       strconv.FormatInt(it.Comic.ID, 10),
			Title:    it.Comic.Title,
			Image:    it.Comic.Image,
			Creators: it.Comic.Author,
			Price:    price,
		})
	}
	return items, nil
}
