package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/comics-storefront/internal/checkout/app"
	"github.com/dwikikusuma/comics-storefront/pkg/httpx"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/quote", h.Quote)
	r.Post("/", h.PlaceOrder)
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Quote(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, q)
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.svc.PlaceOrder(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, receipt)
}
