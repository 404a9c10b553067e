package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/comics-storefront/internal/catalog/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
)

type snapshot struct {
	comics []domain.Comic
	facets domain.FacetOptions
}

// Service fetches the catalog once and serves that snapshot until Reload.
type Service struct {
	api ComicAPI
	log *slog.Logger

	mu   sync.Mutex
	snap *snapshot
}

func NewService(api ComicAPI, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, log: log}
}

func (s *Service) load(ctx context.Context) (*snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap != nil {
		return s.snap, nil
	}

	raw, err := s.api.ListComics(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	comics := make([]domain.Comic, 0, len(raw))
	for _, c := range raw {
		comics = append(comics, domain.Normalize(c))
	}
	s.snap = &snapshot{comics: comics, facets: domain.BuildFacets(comics)}
	s.log.Debug("catalog loaded", slog.Int("comics", len(comics)))
	return s.snap, nil
}

// Reload drops the snapshot and fetches again.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()

	_, err := s.load(ctx)
	return err
}

func (s *Service) Comics(ctx context.Context) ([]domain.Comic, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.Comic(nil), snap.comics...), nil
}

func (s *Service) Browse(ctx context.Context, q domain.Query) (domain.BrowseResult, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return domain.BrowseResult{}, err
	}
	return domain.BrowseResult{
		Results:  domain.Filter(snap.comics, q),
		Facets:   snap.facets,
		Filtered: q.Filtered(),
		Heading:  q.Heading(),
	}, nil
}

func (s *Service) Landing(ctx context.Context) (domain.Landing, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return domain.Landing{}, err
	}
	return domain.BuildLanding(snap.comics), nil
}

func (s *Service) FindByID(ctx context.Context, id string) (domain.Comic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Comic{}, apperr.ErrInvalidInput
	}

	snap, err := s.load(ctx)
	if err != nil {
		return domain.Comic{}, err
	}
	for _, c := range snap.comics {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Comic{}, fmt.Errorf("comic %s: %w", id, apperr.ErrNotFound)
}
