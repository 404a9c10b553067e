package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/comics-storefront/internal/checkout/app"
	"github.com/dwikikusuma/comics-storefront/internal/checkout/domain"
	"github.com/dwikikusuma/comics-storefront/internal/pricing"
	"github.com/dwikikusuma/comics-storefront/pkg/logger"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type fakeCart struct{ lines []app.CartLine }

func (f *fakeCart) Lines(ctx context.Context) []app.CartLine { return f.lines }
func (f *fakeCart) Clear(ctx context.Context)                { f.lines = nil }

type fakeLibrary struct{}

func (fakeLibrary) Grant(ctx context.Context, comicID string) error { return nil }

func TestCheckoutHandler(t *testing.T) {
	cart := &fakeCart{lines: []app.CartLine{
		{ID: "1", ComicID: "7", PurchaseType: pricing.Digital, Quantity: 1, UnitPrice: decimal.RequireFromString("2.99")},
	}}
	svc := app.NewService(cart, fakeLibrary{}, staticToken("tok"), 2, logger.Discard())
	r := chi.NewRouter()
	r.Route("/checkout", NewHandler(svc).Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/quote", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var q domain.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, "2.99", q.Total.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	var receipt domain.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, []string{"7"}, receipt.Granted)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
