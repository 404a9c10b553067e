package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/comics-storefront/internal/session/app"
	"github.com/dwikikusuma/comics-storefront/internal/session/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/httpx"
)

type Handler struct {
	store *app.Store
}

func NewHandler(store *app.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Current)
	r.Patch("/", h.Update)
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Post("/logout", h.Logout)
}

type sessionView struct {
	Authenticated bool            `json:"authenticated"`
	Session       *domain.Session `json:"session"`
	CanPostNews   bool            `json:"canPostNews"`
	IsAdmin       bool            `json:"isAdmin"`
}

func toView(st domain.State) sessionView {
	v := sessionView{Authenticated: st.Authenticated(), Session: st.Session}
	if st.Session != nil {
		v.CanPostNews = st.Session.CanPostNews()
		v.IsAdmin = st.Session.IsAdmin()
	}
	return v
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toView(h.store.Snapshot()))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.store.Login(r.Context(), req.Email, req.Password); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toView(h.store.Snapshot()))
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.store.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toView(h.store.Snapshot()))
}

// Update merges profile fields locally; the backend is not contacted.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var p domain.Patch
	if err := httpx.DecodeJSON(r, &p); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if _, err := h.store.UpdateUser(p); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toView(h.store.Snapshot()))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Logout(); err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
