package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/comics-storefront/internal/wishlist/app"
	"github.com/dwikikusuma/comics-storefront/internal/wishlist/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/httpx"
	"github.com/dwikikusuma/comics-storefront/pkg/media"
)

type Handler struct {
	svc     *app.Service
	locator media.Locator
}

func NewHandler(svc *app.Service, locator media.Locator) *Handler {
	return &Handler{svc: svc, locator: locator}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Get("/{id}", h.Contains)
	r.Delete("/{id}", h.Remove)
	r.Post("/{id}/toggle", h.Toggle)
}

type wishlistView struct {
	Items      []domain.Item `json:"items"`
	TotalItems int           `json:"totalItems"`
}

func (h *Handler) toView(wl domain.Wishlist) wishlistView {
	items := make([]domain.Item, 0, len(wl.Items))
	for _, it := range wl.Items {
		it.Image = h.locator.Resolve(it.Image)
		items = append(items, it)
	}
	return wishlistView{Items: items, TotalItems: wl.TotalItems()}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.toView(h.svc.Wishlist()))
}

type addRequest struct {
	ComicID string `json:"comicId"`
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.svc.AddToWishlist(r.Context(), domain.Item{ID: req.ComicID}); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.toView(h.svc.Wishlist()))
}

// Contains answers from the local mirror only.
func (h *Handler) Contains(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"inWishlist": h.svc.IsInWishlist(chi.URLParam(r, "id"))})
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveFromWishlist(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.toView(h.svc.Wishlist()))
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	added, err := h.svc.Toggle(r.Context(), domain.Item{ID: chi.URLParam(r, "id")})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"added":    added,
		"wishlist": h.toView(h.svc.Wishlist()),
	})
}
