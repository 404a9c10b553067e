package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/comics-storefront/internal/news/app"
	"github.com/dwikikusuma/comics-storefront/internal/news/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/httpx"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Post)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.List(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	var d domain.Draft
	if err := httpx.DecodeJSON(r, &d); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.svc.Post(r.Context(), d.Title, d.Content); err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
