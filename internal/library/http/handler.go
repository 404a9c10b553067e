package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/comics-storefront/internal/library/app"
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
	r.Post("/", h.Grant)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	for i := range entries {
		entries[i].Comic.Image = h.locator.Resolve(entries[i].Comic.Image)
	}
	httpx.WriteJSON(w, http.StatusOK, entries)
}

type grantRequest struct {
	ComicID string `json:"comicId"`
}

func (h *Handler) Grant(w http.ResponseWriter, r *http.Request) {
	var req grantRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.svc.Grant(r.Context(), req.ComicID); err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
