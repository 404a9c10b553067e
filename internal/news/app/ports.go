package app

import (
	"context"

	"github.com/dwikikusuma/comics-storefront/internal/news/domain"
)

type NewsAPI interface {
	List(ctx context.Context) ([]domain.Post, error)
	Create(ctx context.Context, token string, d domain.Draft) error
}

type TokenSource interface {
	Token() string
}
