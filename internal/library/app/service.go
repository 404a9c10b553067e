package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/dwikikusuma/comics-storefront/internal/library/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
)

type Service struct {
	api    LibraryAPI
	tokens TokenSource
}

func NewService(api LibraryAPI, tokens TokenSource) *Service {
	return &Service{api: api, tokens: tokens}
}

func (s *Service) List(ctx context.Context) ([]domain.Entry, error) {
	token := s.tokens.Token()
	if token == "" {
		return nil, apperr.ErrUnauthenticated
	}
	return s.api.List(ctx, token)
}

// Grant records a digital entitlement for the signed-in user.
func (s *Service) Grant(ctx context.Context, comicID string) error {
	token := s.tokens.Token()
	if token == "" {
		return apperr.ErrUnauthenticated
	}
	if strings.TrimSpace(comicID) == "" {
		return fmt.Errorf("%w: comic id is required", apperr.ErrInvalidInput)
	}
	return s.api.Grant(ctx, token, comicID)
}
