package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/comics-storefront/internal/wishlist/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
	"github.com/dwikikusuma/comics-storefront/pkg/notify"
)

// Service mirrors the server wishlist for the active session, same as the cart.
// A response is applied only if gen has not moved since its request was issued.
type Service struct {
	api    WishlistAPI
	tokens TokenSource
	log    *slog.Logger

	mu        sync.RWMutex
	items     []domain.Item
	lastToken string
	gen       uint64

	hub notify.Hub[domain.Wishlist]
}

func NewService(api WishlistAPI, tokens TokenSource, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, tokens: tokens, log: log}
}

func (s *Service) Wishlist() domain.Wishlist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Wishlist{Items: append([]domain.Item(nil), s.items...)}
}

// IsInWishlist checks the mirror only.
func (s *Service) IsInWishlist(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Wishlist{Items: s.items}.Contains(id)
}

func (s *Service) Subscribe(fn func(domain.Wishlist)) func() {
	return s.hub.Subscribe(fn)
}

func (s *Service) OnTokenChange(ctx context.Context) {
	token := s.tokens.Token()

	s.mu.RLock()
	changed := token == "" || token != s.lastToken
	s.mu.RUnlock()

	if changed {
		s.Load(ctx)
	}
}

func (s *Service) Load(ctx context.Context) {
	token := s.tokens.Token()
	gen := s.adopt(token)
	if token == "" {
		return
	}

	items, err := s.api.List(ctx, token)
	if err != nil {
		s.log.Warn("wishlist load failed, showing empty wishlist", slog.Any("err", err))
		items = nil
	}
	s.reconcileFor(gen, token, items)
}

// AddToWishlist sends only the comic id; the server's list supplies the display fields.
func (s *Service) AddToWishlist(ctx context.Context, item domain.Item) error {
	gen, token := s.begin()
	if token == "" {
		return apperr.ErrUnauthenticated
	}
	if item.ID == "" {
		return fmt.Errorf("%w: comic id is required", apperr.ErrInvalidInput)
	}

	items, err := s.api.Add(ctx, token, item.ID)
	if err != nil {
		return err
	}
	s.reconcileFor(gen, token, items)
	return nil
}

func (s *Service) RemoveFromWishlist(ctx context.Context, id string) error {
	gen, token := s.begin()
	if token == "" {
		return apperr.ErrUnauthenticated
	}

	items, err := s.api.Remove(ctx, token, id)
	if err != nil {
		return err
	}
	s.reconcileFor(gen, token, items)
	return nil
}

// Toggle adds or removes depending on current membership, like the comic modal's heart button.
func (s *Service) Toggle(ctx context.Context, item domain.Item) (bool, error) {
	if s.IsInWishlist(item.ID) {
		return false, s.RemoveFromWishlist(ctx, item.ID)
	}
	return true, s.AddToWishlist(ctx, item)
}

func (s *Service) begin() (uint64, string) {
	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()
	return gen, s.tokens.Token()
}

// adopt moves the mirror to token's session, emptying it when the session differs.
func (s *Service) adopt(token string) uint64 {
	s.mu.Lock()
	if token != "" && token == s.lastToken {
		gen := s.gen
		s.mu.Unlock()
		return gen
	}
	s.gen++
	s.lastToken = token
	s.items = nil
	gen := s.gen
	s.mu.Unlock()

	s.hub.Publish(domain.Wishlist{})
	return gen
}

func (s *Service) reconcileFor(gen uint64, token string, items []domain.Item) {
	if s.tokens.Token() != token {
		return
	}
	s.reconcile(gen, token, items)
}

func (s *Service) reconcile(gen uint64, token string, items []domain.Item) {
	next := append([]domain.Item(nil), items...)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.log.Debug("dropping wishlist response for stale session")
		return
	}
	s.items = next
	s.lastToken = token
	s.mu.Unlock()

	s.hub.Publish(domain.Wishlist{Items: append([]domain.Item(nil), next...)})
}
