package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/comics-storefront/internal/news/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
)

type Service struct {
	api    NewsAPI
	tokens TokenSource
	log    *slog.Logger
}

func NewService(api NewsAPI, tokens TokenSource, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, tokens: tokens, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.Post, error) {
	return s.api.List(ctx)
}

// Post publishes a news item. Role checks are left to the backend.
func (s *Service) Post(ctx context.Context, title, content string) error {
	token := s.tokens.Token()
	if token == "" {
		return apperr.ErrUnauthenticated
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: title and content are required", apperr.ErrInvalidInput)
	}

	if err := s.api.Create(ctx, token, domain.Draft{Title: title, Content: content}); err != nil {
		return err
	}
	s.log.Info("news posted", slog.String("title", title))
	return nil
}
