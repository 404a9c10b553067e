package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/comics-storefront/internal/subscription/app"
	"github.com/dwikikusuma/comics-storefront/pkg/httpx"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/offer", h.Offer)
	r.Post("/", h.Subscribe)
}

// Offer echoes the normalized plan, billing cycle and price shown before payment.
func (h *Handler) Offer(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	httpx.WriteJSON(w, http.StatusOK, h.svc.Offer(qs.Get("plan"), qs.Get("billing")))
}

type subscribeRequest struct {
	Plan    string `json:"plan"`
	Billing string `json:"billing"`
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	sess, err := h.svc.Subscribe(r.Context(), req.Plan, req.Billing)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sess)
}
