package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/comics-storefront/internal/cart/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
	"github.com/dwikikusuma/comics-storefront/pkg/notify"
)

// Service keeps a verbatim mirror of the signed-in shopper's server cart.
// reconcile is the only writer of items; nothing computes lines locally.
// Concurrent mutations are not serialized: whichever response lands last wins.
// gen advances whenever the mirror moves to another session, and a response
// is applied only if gen has not moved since its request was issued.
type Service struct {
	api    CartAPI
	tokens TokenSource
	log    *slog.Logger

	mu        sync.RWMutex
	items     []domain.LineItem
	lastToken string
	gen       uint64

	hub notify.Hub[domain.Cart]
}

func NewService(api CartAPI, tokens TokenSource, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		api:    api,
		tokens: tokens,
		log:    log,
	}
}

func (s *Service) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Cart{Items: append([]domain.LineItem(nil), s.items...)}
}

func (s *Service) Subscribe(fn func(domain.Cart)) func() {
	return s.hub.Subscribe(fn)
}

// OnTokenChange reloads when the session token differs from the one last loaded for.
// A signed-out session always resets the mirror.
func (s *Service) OnTokenChange(ctx context.Context) {
	token := s.tokens.Token()

	s.mu.RLock()
	changed := token == "" || token != s.lastToken
	s.mu.RUnlock()

	if changed {
		s.Load(ctx)
	}
}

// Load replaces the mirror with the server cart. Failures and a missing
// session both leave an empty cart rather than stale lines.
func (s *Service) Load(ctx context.Context) {
	token := s.tokens.Token()
	gen := s.adopt(token)
	if token == "" {
		return
	}

	items, err := s.api.List(ctx, token)
	if err != nil {
		s.log.Warn("cart load failed, showing empty cart", slog.Any("err", err))
		items = nil
	}
	s.reconcileFor(gen, token, items)
}

func (s *Service) AddToCart(ctx context.Context, req domain.AddRequest) error {
	gen, token := s.begin()
	if token == "" {
		return apperr.ErrUnauthenticated
	}
	if req.ComicID == "" || !req.PurchaseType.Valid() {
		return fmt.Errorf("%w: comicId and purchaseType ORIGINAL|DIGITAL are required", apperr.ErrInvalidInput)
	}

	items, err := s.api.Add(ctx, token, req)
	if err != nil {
		return err
	}
	s.reconcileFor(gen, token, items)
	return nil
}

func (s *Service) RemoveFromCart(ctx context.Context, id string) error {
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

// UpdateQuantity treats a quantity of zero or less as removal.
func (s *Service) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	gen, token := s.begin()
	if token == "" {
		return apperr.ErrUnauthenticated
	}
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, id)
	}

	items, err := s.api.SetQuantity(ctx, token, id, quantity)
	if err != nil {
		return err
	}
	s.reconcileFor(gen, token, items)
	return nil
}

// ClearCart empties the server cart. The local mirror ends up empty even if the call fails.
func (s *Service) ClearCart(ctx context.Context) {
	gen, token := s.begin()
	if token == "" {
		s.adopt("")
		return
	}

	items, err := s.api.Clear(ctx, token)
	if err != nil {
		s.log.Warn("clear cart failed, resetting local cart", slog.Any("err", err))
		items = nil
	}
	s.reconcileFor(gen, token, items)
}

// begin reads the mirror generation before the token, so any session change
// after this point invalidates the response.
func (s *Service) begin() (uint64, string) {
	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()
	return gen, s.tokens.Token()
}

// adopt moves the mirror to token's session. Another session, or none, empties
// the mirror and invalidates responses still in flight for the previous one.
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

	s.hub.Publish(domain.Cart{})
	return gen
}

// reconcileFor drops responses that belong to a session that has since ended or changed.
func (s *Service) reconcileFor(gen uint64, token string, items []domain.LineItem) {
	if s.tokens.Token() != token {
		s.log.Debug("dropping cart response for stale session")
		return
	}
	s.reconcile(gen, token, items)
}

// reconcile is the only writer of items. The generation check and the swap
// share one critical section.
func (s *Service) reconcile(gen uint64, token string, items []domain.LineItem) {
	next := append([]domain.LineItem(nil), items...)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.log.Debug("dropping cart response for stale session")
		return
	}
	s.items = next
	s.lastToken = token
	s.mu.Unlock()

	s.hub.Publish(domain.Cart{Items: append([]domain.LineItem(nil), next...)})
}
