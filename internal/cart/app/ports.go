package app

import (
	"context"

	"github.com/dwikikusuma/comics-storefront/internal/cart/domain"
)

// CartAPI mirrors the backend cart. Every call returns the complete cart after the change.
type CartAPI interface {
	List(ctx context.Context, token string) ([]domain.LineItem, error)
	Add(ctx context.Context, token string, req domain.AddRequest) ([]domain.LineItem, error)
	Remove(ctx context.Context, token string, id string) ([]domain.LineItem, error)
	SetQuantity(ctx context.Context, token string, id string, quantity int) ([]domain.LineItem, error)
	Clear(ctx context.Context, token string) ([]domain.LineItem, error)
}

// TokenSource yields the bearer token at call time, empty when signed out.
type TokenSource interface {
	Token() string
}
