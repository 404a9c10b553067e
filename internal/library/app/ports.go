package app

import (
	"context"

	"github.com/dwikikusuma/comics-storefront/internal/library/domain"
)

type LibraryAPI interface {
	List(ctx context.Context, token string) ([]domain.Entry, error)
	Grant(ctx context.Context, token string, comicID string) error
}

type TokenSource interface {
	Token() string
}
