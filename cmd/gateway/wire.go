package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	adminapp "github.com/dwikikusuma/comics-storefront/internal/admin/app"
	adminhttp "github.com/dwikikusuma/comics-storefront/internal/admin/http"
	adminrest "github.com/dwikikusuma/comics-storefront/internal/admin/infra/rest"

	cartapp "github.com/dwikikusuma/comics-storefront/internal/cart/app"
	carthttp "github.com/dwikikusuma/comics-storefront/internal/cart/http"
	cartrest "github.com/dwikikusuma/comics-storefront/internal/cart/infra/rest"

	catalogapp "github.com/dwikikusuma/comics-storefront/internal/catalog/app"
	cataloghttp "github.com/dwikikusuma/comics-storefront/internal/catalog/http"
	catalogrest "github.com/dwikikusuma/comics-storefront/internal/catalog/infra/rest"

	checkoutapp "github.com/dwikikusuma/comics-storefront/internal/checkout/app"
	checkouthttp "github.com/dwikikusuma/comics-storefront/internal/checkout/http"
	checkoutadapter "github.com/dwikikusuma/comics-storefront/internal/checkout/infra/adapter"

	libraryapp "github.com/dwikikusuma/comics-storefront/internal/library/app"
	libraryhttp "github.com/dwikikusuma/comics-storefront/internal/library/http"
	libraryrest "github.com/dwikikusuma/comics-storefront/internal/library/infra/rest"

	newsapp "github.com/dwikikusuma/comics-storefront/internal/news/app"
	newshttp "github.com/dwikikusuma/comics-storefront/internal/news/http"
	newsrest "github.com/dwikikusuma/comics-storefront/internal/news/infra/rest"

	sessionapp "github.com/dwikikusuma/comics-storefront/internal/session/app"
	sessiondomain "github.com/dwikikusuma/comics-storefront/internal/session/domain"
	sessionhttp "github.com/dwikikusuma/comics-storefront/internal/session/http"
	sessionrest "github.com/dwikikusuma/comics-storefront/internal/session/infra/rest"

	subscriptionapp "github.com/dwikikusuma/comics-storefront/internal/subscription/app"
	subscriptionhttp "github.com/dwikikusuma/comics-storefront/internal/subscription/http"
	subscriptionrest "github.com/dwikikusuma/comics-storefront/internal/subscription/infra/rest"

	wishlistapp "github.com/dwikikusuma/comics-storefront/internal/wishlist/app"
	wishlisthttp "github.com/dwikikusuma/comics-storefront/internal/wishlist/http"
	wishlistrest "github.com/dwikikusuma/comics-storefront/internal/wishlist/infra/rest"

	"github.com/dwikikusuma/comics-storefront/internal/pricing"
	"github.com/dwikikusuma/comics-storefront/pkg/config"
	"github.com/dwikikusuma/comics-storefront/pkg/httpx"
	"github.com/dwikikusuma/comics-storefront/pkg/media"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

type storefront struct {
	Store    *sessionapp.Store
	Cart     *cartapp.Service
	Wishlist *wishlistapp.Service
	Catalog  *catalogapp.Service
	Router   http.Handler

	unsubscribe func()
}

func (s *storefront) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// newStorefront wires every context against the backend at cfg.APIURL and
// restores the persisted session before returning.
func newStorefront(ctx context.Context, cfg config.Config, storage sessionapp.Storage, httpClient *http.Client, log *slog.Logger) (*storefront, error) {
	client := restclient.New(cfg.APIURL, httpClient, log)
	locator := media.NewLocator(cfg.APIURL)

	// Session
	store := sessionapp.NewStore(sessionrest.NewAuthAPI(client), storage, log)

	// Cart and wishlist mirror the server for whoever is signed in.
	cartSvc := cartapp.NewService(cartrest.NewCartAPI(client), store, log)
	wishlistSvc := wishlistapp.NewService(wishlistrest.NewWishlistAPI(client), store, log)

	unsubscribe := store.Subscribe(func(sessiondomain.State) {
		cartSvc.OnTokenChange(ctx)
		wishlistSvc.OnTokenChange(ctx)
	})

	if err := store.Rehydrate(); err != nil {
		unsubscribe()
		return nil, fmt.Errorf("rehydrate session: %w", err)
	}

	// Catalog
	catalogSvc := catalogapp.NewService(catalogrest.NewComicAPI(client), log)
	tiers := pricing.TierFunc(func() pricing.Tier {
		sess, ok := store.Session()
		if !ok {
			return pricing.TierNone
		}
		return pricing.ParseTier(sess.SubscriptionType)
	})

	// Library and checkout
	librarySvc := libraryapp.NewService(libraryrest.NewLibraryAPI(client), store)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewLibraryServiceGranter(librarySvc),
		store,
		cfg.CheckoutConcurrency,
		log,
	)

	subscriptionSvc := subscriptionapp.NewService(subscriptionrest.NewSubscriptionAPI(client), store, log)
	newsSvc := newsapp.NewService(newsrest.NewNewsAPI(client), store, log)
	adminSvc := adminapp.NewService(adminrest.NewAdminAPI(client), store, catalogSvc, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(httpx.RequestLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/session", sessionhttp.NewHandler(store).Routes)
	r.Route("/catalog", cataloghttp.NewHandler(catalogSvc, tiers, locator).Routes)
	r.Route("/cart", carthttp.NewHandler(cartSvc, locator).Routes)
	r.Route("/wishlist", wishlisthttp.NewHandler(wishlistSvc, locator).Routes)
	r.Route("/checkout", checkouthttp.NewHandler(checkoutSvc).Routes)
	r.Route("/library", libraryhttp.NewHandler(librarySvc, locator).Routes)
	r.Route("/subscriptions", subscriptionhttp.NewHandler(subscriptionSvc).Routes)
	r.Route("/news", newshttp.NewHandler(newsSvc).Routes)
	r.Route("/admin", adminhttp.NewHandler(adminSvc).Routes)

	return &storefront{
		Store:       store,
		Cart:        cartSvc,
		Wishlist:    wishlistSvc,
		Catalog:     catalogSvc,
		Router:      r,
		unsubscribe: unsubscribe,
	}, nil
}
