package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/comics-storefront/pkg/logger"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

func TestWishlistAPI(t *testing.T) {
	payload := `[{"id": 1, "comic": {"id": 9, "title": "Saga #1", "image": "s.png", "author": "BKV", "price": 2.99}},
	             {"id": 2, "comic": {"id": 10, "title": "No Price"}}]`

	var gotBody map[string]any
	var deleted string
	r := chi.NewRouter()
	r.Get("/api/wishlist", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(payload))
	})
	r.Post("/api/wishlist", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(payload))
	})
	r.Delete("/api/wishlist/{id}", func(w http.ResponseWriter, req *http.Request) {
		deleted = chi.URLParam(req, "id")
		_, _ = w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := NewWishlistAPI(restclient.New(srv.URL, srv.Client(), logger.Discard()))
	ctx := context.Background()

	items, err := api.List(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "9", items[0].ID)
	assert.Equal(t, "BKV", items[0].Creators)
	assert.Equal(t, "2.99", items[0].Price.String())
	assert.True(t, items[1].Price.IsZero())

	_, err = api.Add(ctx, "tok", "9")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"comicId": float64(9)}, gotBody)

	items, err = api.Remove(ctx, "tok", "9")
	require.NoError(t, err)
	assert.Equal(t, "9", deleted)
	assert.Empty(t, items)
}
