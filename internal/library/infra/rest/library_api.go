package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dwikikusuma/comics-storefront/internal/library/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

type apiLibraryItem struct {
	ID    int64 `json:"id"`
	Comic struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Image       string `json:"image"`
		Author      string `json:"author"`
		Description string `json:"description"`
		ComicType   string `json:"comicType"`
	} `json:"comic"`
}

type LibraryAPI struct {
	c *restclient.Client
}

func NewLibraryAPI(c *restclient.Client) *LibraryAPI {
	return &LibraryAPI{c: c}
}

func (a *LibraryAPI) List(ctx context.Context, token string) ([]domain.Entry, error) {
	res, err := restclient.Call[[]apiLibraryItem](ctx, a.c, "/api/library", restclient.Options{AuthToken: token})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Entry, 0, len(res))
	for _, it := range res {
		out = append(out, domain.Entry{
			ID: strconv.FormatInt(it.ID, 10),
			Comic: domain.Comic{
				ID:          strconv.FormatInt(it.Comic.ID, 10),
				Title:       it.Comic.Title,
				Image:       it.Comic.Image,
				Creators:    it.Comic.Author,
				Description: it.Comic.Description,
				ComicType:   it.Comic.ComicType,
			},
		})
	}
	return out, nil
}

func (a *LibraryAPI) Grant(ctx context.Context, token string, comicID string) error {
	id, err := strconv.ParseInt(comicID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: comic id %q is not numeric", apperr.ErrInvalidInput, comicID)
	}
	return a.c.Do(ctx, "/api/library", restclient.Options{
		Method:    http.MethodPost,
		AuthToken: token,
		Body:      map[string]int64{"comicId": id},
	}, nil)
}
