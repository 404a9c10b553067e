package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dwikikusuma/comics-storefront/internal/session/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
	"github.com/dwikikusuma/comics-storefront/pkg/notify"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

var ErrMissingToken = fmt.Errorf("%w: auth response carried no token", apperr.ErrInvalidInput)

// Store owns the authenticated identity and its bearer token. Every transition
// writes both to storage before the in-memory state changes. writeMu serializes
// transitions from the read of the current state through the swap; mu only
// guards state for readers.
type Store struct {
	api     AuthAPI
	storage Storage
	log     *slog.Logger
	now     func() time.Time

	writeMu sync.Mutex
	mu      sync.RWMutex
	state   domain.State

	hub notify.Hub[domain.State]
}

func NewStore(api AuthAPI, storage Storage, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		api:     api,
		storage: storage,
		log:     log,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for defaulted timestamps and token expiry.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Rehydrate restores the persisted session. A half-written pair, an unreadable
// session payload or an expired JWT leaves the store signed out and storage cleared.
func (s *Store) Rehydrate() error {
	p, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if p.Token == "" && len(p.Session) == 0 {
		return nil
	}

	var sess domain.Session
	valid := p.Token != "" && len(p.Session) > 0
	if valid {
		if err := json.Unmarshal(p.Session, &sess); err != nil {
			s.log.Warn("discarding unreadable session", slog.Any("err", err))
			valid = false
		}
	}
	if valid && tokenExpired(p.Token, s.now()) {
		s.log.Info("discarding expired session", slog.String("username", sess.Username))
		valid = false
	}

	if !valid {
		return s.storage.Clear()
	}

	s.writeMu.Lock()
	s.mu.Lock()
	s.state = domain.State{Session: &sess, Token: p.Token}
	s.mu.Unlock()
	s.writeMu.Unlock()

	s.hub.Publish(s.Snapshot())
	return nil
}

func (s *Store) Snapshot() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := domain.State{Token: s.state.Token}
	if s.state.Session != nil {
		cp := *s.state.Session
		st.Session = &cp
	}
	return st
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *Store) Session() (domain.Session, bool) {
	st := s.Snapshot()
	if st.Session == nil {
		return domain.Session{}, false
	}
	return *st.Session, true
}

func (s *Store) Subscribe(fn func(domain.State)) func() {
	return s.hub.Subscribe(fn)
}

func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.handleAuth(resp)
}

func (s *Store) Register(ctx context.Context, username, email, password string) error {
	resp, err := s.api.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	return s.handleAuth(resp)
}

// UpdateUser merges a partial profile into the current session without contacting the backend.
func (s *Store) UpdateUser(p domain.Patch) (domain.Session, error) {
	var merged domain.Session
	err := s.transition(func(cur domain.State) (domain.State, error) {
		if cur.Session == nil {
			return domain.State{}, apperr.ErrUnauthenticated
		}
		merged = cur.Session.Apply(p)
		return domain.State{Session: &merged, Token: cur.Token}, nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	return merged, nil
}

func (s *Store) Logout() error {
	return s.transition(func(domain.State) (domain.State, error) {
		return domain.State{}, nil
	})
}

func (s *Store) handleAuth(resp domain.AuthResponse) error {
	if resp.Token == "" {
		return ErrMissingToken
	}

	now := s.now().UTC().Format(isoMillis)
	sess := domain.Session{
		ID:                     resp.UserID,
		Username:               resp.Username,
		Email:                  resp.Email,
		Role:                   resp.Role,
		AvatarURL:              resp.AvatarURL,
		FirstName:              resp.FirstName,
		LastName:               resp.LastName,
		DateOfBirth:            resp.DateOfBirth,
		SubscriptionType:       resp.SubscriptionType,
		SubscriptionExpiration: resp.SubscriptionExpiration,
		CreatedAt:              orDefault(resp.CreatedAt, now),
		UpdatedAt:              orDefault(resp.UpdatedAt, now),
	}

	return s.transition(func(domain.State) (domain.State, error) {
		return domain.State{Session: &sess, Token: resp.Token}, nil
	})
}

// transition runs read, persist and swap as one step. Subscribers are told
// after writeMu is released so they may call back into the store.
func (s *Store) transition(next func(cur domain.State) (domain.State, error)) error {
	s.writeMu.Lock()
	st, err := next(s.Snapshot())
	if err == nil {
		err = s.commit(st)
	}
	s.writeMu.Unlock()
	if err != nil {
		return err
	}

	s.hub.Publish(s.Snapshot())
	return nil
}

// commit must be called with writeMu held.
func (s *Store) commit(next domain.State) error {
	if (next.Token == "") != (next.Session == nil) {
		return errors.New("session and token must be set together")
	}

	if next.Session == nil {
		if err := s.storage.Clear(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	} else {
		raw, err := json.Marshal(next.Session)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
		if err := s.storage.Save(domain.Persisted{Token: next.Token, Session: raw}); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
	return nil
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
