package adapter

import (
	"context"

	libraryapp "github.com/dwikikusuma/comics-storefront/internal/library/app"
)

type LibraryServiceGranter struct {
	svc *libraryapp.Service
}

func NewLibraryServiceGranter(svc *libraryapp.Service) *LibraryServiceGranter {
	return &LibraryServiceGranter{svc: svc}
}

func (g *LibraryServiceGranter) Grant(ctx context.Context, comicID string) error {
	return g.svc.Grant(ctx, comicID)
}
