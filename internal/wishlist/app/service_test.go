package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/comics-storefront/internal/wishlist/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
	"github.com/dwikikusuma/comics-storefront/pkg/logger"
)

type staticToken struct{ token string }

func (s *staticToken) Token() string { return s.token }

type fakeAPI struct {
	items []domain.Item
	calls []string
	err   error
}

func (f *fakeAPI) List(ctx context.Context, token string) ([]domain.Item, error) {
	f.calls = append(f.calls, "list")
	return append([]domain.Item(nil), f.items...), f.err
}

func (f *fakeAPI) Add(ctx context.Context, token string, comicID string) ([]domain.Item, error) {
	f.calls = append(f.calls, "add:"+comicID)
	if f.err != nil {
		return nil, f.err
	}
	// the server fills in the catalog fields; the client only sends the id
	f.items = append(f.items, domain.Item{ID: comicID, Title: "from server", Price: decimal.NewFromInt(4)})
	return append([]domain.Item(nil), f.items...), nil
}

func (f *fakeAPI) Remove(ctx context.Context, token string, comicID string) ([]domain.Item, error) {
	f.calls = append(f.calls, "remove:"+comicID)
	if f.err != nil {
		return nil, f.err
	}
	kept := []domain.Item{}
	for _, it := range f.items {
		if it.ID != comicID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return append([]domain.Item(nil), f.items...), nil
}

func TestWishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("signed out operations are no-ops", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewService(api, &staticToken{}, logger.Discard())

		assert.ErrorIs(t, svc.AddToWishlist(ctx, domain.Item{ID: "1"}), apperr.ErrUnauthenticated)
		assert.ErrorIs(t, svc.RemoveFromWishlist(ctx, "1"), apperr.ErrUnauthenticated)
		assert.Empty(t, api.calls)
	})

	t.Run("add mirrors server list, not the submitted item", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewService(api, &staticToken{token: "tok"}, logger.Discard())

		require.NoError(t, svc.AddToWishlist(ctx, domain.Item{ID: "7", Title: "local title"}))
		w := svc.Wishlist()
		require.Len(t, w.Items, 1)
		assert.Equal(t, "from server", w.Items[0].Title)
		assert.Equal(t, 1, w.TotalItems())
		assert.True(t, svc.IsInWishlist("7"))
		assert.False(t, svc.IsInWishlist("8"))
	})

	t.Run("membership check makes no call", func(t *testing.T) {
		api := &fakeAPI{items: []domain.Item{{ID: "3"}}}
		svc := NewService(api, &staticToken{token: "tok"}, logger.Discard())
		svc.Load(ctx)
		api.calls = nil

		assert.True(t, svc.IsInWishlist("3"))
		assert.Empty(t, api.calls)
	})

	t.Run("toggle", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewService(api, &staticToken{token: "tok"}, logger.Discard())

		added, err := svc.Toggle(ctx, domain.Item{ID: "5"})
		require.NoError(t, err)
		assert.True(t, added)

		added, err = svc.Toggle(ctx, domain.Item{ID: "5"})
		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, 0, svc.Wishlist().TotalItems())
	})

	t.Run("load failure resets to empty", func(t *testing.T) {
		api := &fakeAPI{items: []domain.Item{{ID: "1"}}}
		svc := NewService(api, &staticToken{token: "tok"}, logger.Discard())
		svc.Load(ctx)
		require.Equal(t, 1, svc.Wishlist().TotalItems())

		api.err = errors.New("down")
		svc.Load(ctx)
		assert.Equal(t, 0, svc.Wishlist().TotalItems())
	})

	t.Run("token change reloads once", func(t *testing.T) {
		api := &fakeAPI{items: []domain.Item{{ID: "1"}}}
		tok := &staticToken{token: "a"}
		svc := NewService(api, tok, logger.Discard())

		svc.OnTokenChange(ctx)
		svc.OnTokenChange(ctx)
		assert.Equal(t, []string{"list"}, api.calls)

		tok.token = ""
		svc.OnTokenChange(ctx)
		assert.Equal(t, 0, svc.Wishlist().TotalItems())
	})
}

type signingOutToken struct {
	token   string
	calls   int
	at      int
	signOut func()
}

func (s *signingOutToken) Token() string {
	s.calls++
	tok := s.token
	if s.calls == s.at {
		s.token = ""
		s.signOut()
	}
	return tok
}

func TestSignOutBetweenCheckAndSwap(t *testing.T) {
	api := &fakeAPI{}
	tok := &signingOutToken{token: "a", at: 2}
	svc := NewService(api, tok, logger.Discard())
	tok.signOut = func() { svc.OnTokenChange(context.Background()) }

	require.NoError(t, svc.AddToWishlist(context.Background(), domain.Item{ID: "4"}))

	assert.Len(t, api.items, 1)
	assert.Equal(t, 0, svc.Wishlist().TotalItems())
	assert.False(t, svc.IsInWishlist("4"))
}
