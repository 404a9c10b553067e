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

	"github.com/dwikikusuma/comics-storefront/internal/library/app"
	"github.com/dwikikusuma/comics-storefront/internal/library/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/media"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type fakeAPI struct{ entries []domain.Entry }

func (f *fakeAPI) List(ctx context.Context, token string) ([]domain.Entry, error) {
	return append([]domain.Entry(nil), f.entries...), nil
}

func (f *fakeAPI) Grant(ctx context.Context, token string, comicID string) error {
	f.entries = append(f.entries, domain.Entry{ID: "e1", Comic: domain.Comic{ID: comicID, Image: "cover.png"}})
	return nil
}

func TestLibraryHandler(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/library", NewHandler(app.NewService(&fakeAPI{}, staticToken("tok")), media.NewLocator("http://api.test")).Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/library", strings.NewReader(`{"comicId":"3"}`)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/library", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []domain.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "http://api.test/cover.png", entries[0].Comic.Image)
}

func TestLibraryHandlerSignedOut(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/library", NewHandler(app.NewService(&fakeAPI{}, staticToken("")), media.NewLocator("")).Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/library", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
