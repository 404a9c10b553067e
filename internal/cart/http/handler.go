package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/comics-storefront/internal/cart/app"
	"github.com/dwikikusuma/comics-storefront/internal/cart/domain"
	"github.com/dwikikusuma/comics-storefront/internal/pricing"
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
	r.Get("/", h.Get)
	r.Post("/", h.Add)
	r.Delete("/", h.Clear)
	r.Put("/{id}", h.UpdateQuantity)
	r.Delete("/{id}", h.Remove)
}

type lineView struct {
	domain.LineItem
	LineTotal string `json:"lineTotal"`
}

type cartView struct {
	Items        []lineView `json:"items"`
	TotalItems   int        `json:"totalItems"`
	TotalPrice   string     `json:"totalPrice"`
	DisplayTotal string     `json:"displayTotal"`
}

func (h *Handler) toView(c domain.Cart) cartView {
	items := make([]lineView, 0, len(c.Items))
	for _, it := range c.Items {
		it.Image = h.locator.Resolve(it.Image)
		items = append(items, lineView{LineItem: it, LineTotal: it.LineTotal().StringFixed(2)})
	}
	return cartView{
		Items:        items,
		TotalItems:   c.TotalItems(),
		TotalPrice:   c.TotalPrice().StringFixed(2),
		DisplayTotal: pricing.Money(c.TotalPrice()),
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.toView(h.svc.Cart()))
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.AddRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.svc.AddToCart(r.Context(), req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.toView(h.svc.Cart()))
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity removes the line when quantity drops to zero or below.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.svc.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.toView(h.svc.Cart()))
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveFromCart(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.toView(h.svc.Cart()))
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearCart(r.Context())
	httpx.WriteJSON(w, http.StatusOK, h.toView(h.svc.Cart()))
}
