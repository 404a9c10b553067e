package rest

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/comics-storefront/internal/catalog/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

type apiComic struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Author        *string          `json:"author"`
	Description   *string          `json:"description"`
	MainCharacter *string          `json:"mainCharacter"`
	Series        *string          `json:"series"`
	Image         string           `json:"image"`
	Price         *decimal.Decimal `json:"price"`
	Category      *struct {
		Name string `json:"name"`
	} `json:"category"`
	ComicType *string `json:"comicType"`
}

type ComicAPI struct {
	c *restclient.Client
}

func NewComicAPI(c *restclient.Client) *ComicAPI {
	return &ComicAPI{c: c}
}

func (a *ComicAPI) ListComics(ctx context.Context) ([]domain.Comic, error) {
	res, err := restclient.Call[[]apiComic](ctx, a.c, "/api/comics", restclient.Options{})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Comic, 0, len(res))
	for _, c := range res {
		out = append(out, toDomain(c))
	}
	return out, nil
}

func toDomain(c apiComic) domain.Comic {
	comic := domain.Comic{
		ID:            strconv.FormatInt(c.ID, 10),
		Title:         c.Title,
		Creators:      deref(c.Author),
		Description:   deref(c.Description),
		MainCharacter: deref(c.MainCharacter),
		Series:        deref(c.Series),
		Image:         c.Image,
		ComicType:     deref(c.ComicType),
	}
	if c.Price != nil {
		comic.Price = *c.Price
	}
	if c.Category != nil {
		comic.Category = c.Category.Name
	}
	return comic
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
