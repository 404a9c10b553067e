package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/comics-storefront/internal/wishlist/app"
	"github.com/dwikikusuma/comics-storefront/internal/wishlist/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/logger"
	"github.com/dwikikusuma/comics-storefront/pkg/media"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type fakeAPI struct{ items []domain.Item }

func (f *fakeAPI) List(ctx context.Context, token string) ([]domain.Item, error) { return f.items, nil }

func (f *fakeAPI) Add(ctx context.Context, token string, comicID string) ([]domain.Item, error) {
	f.items = append(f.items, domain.Item{ID: comicID, Title: "Saga", Image: "/s.png"})
	return append([]domain.Item(nil), f.items...), nil
}

func (f *fakeAPI) Remove(ctx context.Context, token string, comicID string) ([]domain.Item, error) {
	var kept []domain.Item
	for _, it := range f.items {
		if it.ID != comicID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return append([]domain.Item(nil), kept...), nil
}

func call(t *testing.T, r http.Handler, method, path, body string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestWishlistHandler(t *testing.T) {
	svc := app.NewService(&fakeAPI{}, staticToken("tok"), logger.Discard())
	r := chi.NewRouter()
	r.Route("/wishlist", NewHandler(svc, media.NewLocator("http://api.test")).Routes)

	var v wishlistView
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/wishlist", `{"comicId":"4"}`, &v))
	require.Len(t, v.Items, 1)
	assert.Equal(t, "http://api.test/s.png", v.Items[0].Image)

	var member map[string]bool
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/wishlist/4", "", &member))
	assert.True(t, member["inWishlist"])

	var toggled struct {
		Added    bool         `json:"added"`
		Wishlist wishlistView `json:"wishlist"`
	}
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/wishlist/4/toggle", "", &toggled))
	assert.False(t, toggled.Added)
	assert.Equal(t, 0, toggled.Wishlist.TotalItems)

	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/wishlist/5/toggle", "", &toggled))
	assert.True(t, toggled.Added)

	require.Equal(t, http.StatusOK, call(t, r, http.MethodDelete, "/wishlist/5", "", &v))
	assert.Empty(t, v.Items)
}

func TestWishlistHandlerSignedOut(t *testing.T) {
	svc := app.NewService(&fakeAPI{}, staticToken(""), logger.Discard())
	r := chi.NewRouter()
	r.Route("/wishlist", NewHandler(svc, media.NewLocator("")).Routes)

	assert.Equal(t, http.StatusUnauthorized, call(t, r, http.MethodPost, "/wishlist", `{"comicId":"4"}`, nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, r, http.MethodDelete, "/wishlist/4", "", nil))
}
