package app

import (
	"context"

	"github.com/dwikikusuma/comics-storefront/internal/catalog/domain"
)

type ComicAPI interface {
	ListComics(ctx context.Context) ([]domain.Comic, error)
}
