package rest

import (
	"context"
	"net/http"

	"github.com/dwikikusuma/comics-storefront/internal/news/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

type NewsAPI struct {
	c *restclient.Client
}

func NewNewsAPI(c *restclient.Client) *NewsAPI {
	return &NewsAPI{c: c}
}

func (a *NewsAPI) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := restclient.Call[[]domain.Post](ctx, a.c, "/api/news", restclient.Options{})
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (a *NewsAPI) Create(ctx context.Context, token string, d domain.Draft) error {
	return a.c.Do(ctx, "/api/news", restclient.Options{
		Method:    http.MethodPost,
		AuthToken: token,
		Body:      d,
	}, nil)
}
