package app

import (
	"context"

	"github.com/dwikikusuma/comics-storefront/internal/wishlist/domain"
)

type WishlistAPI interface {
	List(ctx context.Context, token string) ([]domain.Item, error)
	Add(ctx context.Context, token string, comicID string) ([]domain.Item, error)
	Remove(ctx context.Context, token string, comicID string) ([]domain.Item, error)
}

type TokenSource interface {
	Token() string
}
