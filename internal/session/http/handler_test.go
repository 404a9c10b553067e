package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/comics-storefront/internal/session/app"
	"github.com/dwikikusuma/comics-storefront/internal/session/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/logger"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

type fakeAuth struct{}

func (fakeAuth) Login(ctx context.Context, email, password string) (domain.AuthResponse, error) {
	if password != "secret" {
		return domain.AuthResponse{}, &restclient.RequestError{StatusCode: 401, Message: "Bad credentials"}
	}
	return domain.AuthResponse{Token: "tok", UserID: 1, Username: "ada", Email: email, Role: "EDITOR"}, nil
}

func (fakeAuth) Register(ctx context.Context, username, email, password string) (domain.AuthResponse, error) {
	return domain.AuthResponse{}, errors.New("not used")
}

type memStorage struct{ p domain.Persisted }

func (m *memStorage) Load() (domain.Persisted, error) { return m.p, nil }

func (m *memStorage) Save(p domain.Persisted) error {
	m.p = p
	return nil
}

func (m *memStorage) Clear() error {
	m.p = domain.Persisted{}
	return nil
}

func newRouter() chi.Router {
	store := app.NewStore(fakeAuth{}, &memStorage{}, logger.Discard())
	r := chi.NewRouter()
	r.Route("/session", NewHandler(store).Routes)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestSessionHandler(t *testing.T) {
	r := newRouter()

	rec, body := do(t, r, http.MethodGet, "/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["authenticated"])

	rec, body = do(t, r, http.MethodPost, "/session/login", `{"email":"a@x.io","password":"nope"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Bad credentials", body["error"])

	rec, body = do(t, r, http.MethodPost, "/session/login", `{"email":"a@x.io","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, true, body["canPostNews"])
	assert.Equal(t, false, body["isAdmin"])
	assert.NotContains(t, rec.Body.String(), "tok\"")

	rec, body = do(t, r, http.MethodPatch, "/session", `{"firstName":"Ada"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ada", body["session"].(map[string]any)["firstName"])

	rec, body = do(t, r, http.MethodPatch, "/session", `{"role":"ADMIN","lastName":"Lovelace"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["isAdmin"])
	assert.Equal(t, "EDITOR", body["session"].(map[string]any)["role"])
	assert.Equal(t, "Lovelace", body["session"].(map[string]any)["lastName"])

	rec, _ = do(t, r, http.MethodPatch, "/session", `{bad json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, r, http.MethodPost, "/session/logout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, r, http.MethodPatch, "/session", `{"firstName":"Ada"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
