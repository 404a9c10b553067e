package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/comics-storefront/internal/admin/domain"
	sessiondomain "github.com/dwikikusuma/comics-storefront/internal/session/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
)

// CatalogReloader is told when admin edits change what shoppers see.
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

type Service struct {
	api     AdminAPI
	session SessionReader
	catalog CatalogReloader
	log     *slog.Logger
}

func NewService(api AdminAPI, session SessionReader, catalog CatalogReloader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, session: session, catalog: catalog, log: log}
}

func (s *Service) authorize() (string, error) {
	st := s.session.Snapshot()
	if !st.Authenticated() {
		return "", apperr.ErrUnauthenticated
	}
	if !st.Session.IsAdmin() {
		return "", apperr.ErrForbidden
	}
	return st.Token, nil
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	if _, err := s.authorize(); err != nil {
		return nil, err
	}
	return s.api.Categories(ctx)
}

func (s *Service) Conditions(ctx context.Context) ([]domain.Condition, error) {
	if _, err := s.authorize(); err != nil {
		return nil, err
	}
	return s.api.Conditions(ctx)
}

func (s *Service) ListUsers(ctx context.Context, query string) ([]domain.User, error) {
	token, err := s.authorize()
	if err != nil {
		return nil, err
	}
	return s.api.ListUsers(ctx, token, strings.TrimSpace(query))
}

func (s *Service) CreateUser(ctx context.Context, in domain.UserInput) error {
	token, err := s.authorize()
	if err != nil {
		return err
	}
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return fmt.Errorf("%w: username, email and password are required", apperr.ErrInvalidInput)
	}
	if in.Role == "" {
		in.Role = sessiondomain.RoleUser
	}
	if err := s.api.CreateUser(ctx, token, in); err != nil {
		return err
	}
	s.log.Info("user created", slog.String("username", in.Username), slog.String("role", in.Role))
	return nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, in domain.UserInput) error {
	token, err := s.authorize()
	if err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: user id", apperr.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: username and email are required", apperr.ErrInvalidInput)
	}
	return s.api.UpdateUser(ctx, token, id, in)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	token, err := s.authorize()
	if err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: user id", apperr.ErrInvalidInput)
	}
	return s.api.DeleteUser(ctx, token, id)
}

func (s *Service) ListComics(ctx context.Context, query string) ([]domain.Comic, error) {
	token, err := s.authorize()
	if err != nil {
		return nil, err
	}
	comics, err := s.api.ListComics(ctx, token)
	if err != nil {
		return nil, err
	}
	return domain.SearchComics(comics, query), nil
}

func (s *Service) CreateComic(ctx context.Context, in domain.ComicInput) error {
	token, err := s.authorize()
	if err != nil {
		return err
	}
	if err := validateComic(in); err != nil {
		return err
	}
	if err := s.api.CreateComic(ctx, token, in); err != nil {
		return err
	}
	s.refreshCatalog(ctx)
	return nil
}

func (s *Service) UpdateComic(ctx context.Context, id int64, in domain.ComicInput) error {
	token, err := s.authorize()
	if err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: comic id", apperr.ErrInvalidInput)
	}
	if err := validateComic(in); err != nil {
		return err
	}
	if err := s.api.UpdateComic(ctx, token, id, in); err != nil {
		return err
	}
	s.refreshCatalog(ctx)
	return nil
}

func (s *Service) DeleteComic(ctx context.Context, id int64) error {
	token, err := s.authorize()
	if err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: comic id", apperr.ErrInvalidInput)
	}
	if err := s.api.DeleteComic(ctx, token, id); err != nil {
		return err
	}
	s.refreshCatalog(ctx)
	return nil
}

// SetRedacted hides a comic from the storefront, or restores it.
func (s *Service) SetRedacted(ctx context.Context, id int64, redacted bool) error {
	token, err := s.authorize()
	if err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: comic id", apperr.ErrInvalidInput)
	}
	if err := s.api.SetRedacted(ctx, token, id, redacted); err != nil {
		return err
	}
	s.refreshCatalog(ctx)
	return nil
}

func (s *Service) refreshCatalog(ctx context.Context) {
	if s.catalog == nil {
		return
	}
	if err := s.catalog.Reload(ctx); err != nil {
		s.log.Warn("catalog reload after admin edit failed", slog.Any("err", err))
	}
}

func validateComic(in domain.ComicInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", apperr.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", apperr.ErrInvalidInput)
	}
	return nil
}
