package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/comics-storefront/internal/catalog/app"
	"github.com/dwikikusuma/comics-storefront/internal/catalog/domain"
	"github.com/dwikikusuma/comics-storefront/internal/pricing"
	"github.com/dwikikusuma/comics-storefront/pkg/httpx"
	"github.com/dwikikusuma/comics-storefront/pkg/media"
)

type Handler struct {
	svc     *app.Service
	tiers   pricing.TierSource
	locator media.Locator
}

func NewHandler(svc *app.Service, tiers pricing.TierSource, locator media.Locator) *Handler {
	return &Handler{svc: svc, tiers: tiers, locator: locator}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Browse)
	r.Get("/landing", h.Landing)
	r.Get("/{id}", h.Get)
}

type priceView struct {
	Base           string `json:"base"`
	Original       string `json:"original"`
	Digital        string `json:"digital"`
	Selected       string `json:"selected"`
	Display        string `json:"display"`
	PurchaseType   string `json:"purchaseType"`
	Discounted     bool   `json:"discounted"`
	AddToCartLabel string `json:"addToCartLabel"`
}

type comicView struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Creators         string    `json:"creators"`
	Description      string    `json:"description,omitempty"`
	Series           string    `json:"series"`
	MainCharacter    string    `json:"mainCharacter"`
	Category         string    `json:"category,omitempty"`
	Image            string    `json:"image"`
	ComicType        string    `json:"comicType"`
	DigitalExclusive bool      `json:"digitalExclusive"`
	Price            priceView `json:"price"`
}

func (h *Handler) view(c domain.Comic, pt pricing.PurchaseType) comicView {
	if !pt.Valid() {
		pt = pricing.DefaultPurchaseType(c.ComicType)
	}
	q := pricing.Compute(c.ListPrice(), h.tiers.Tier(), pt)

	return comicView{
		ID:               c.ID,
		Title:            c.Title,
		Creators:         c.Creators,
		Description:      c.Description,
		Series:           c.Series,
		MainCharacter:    c.MainCharacter,
		Category:         c.Category,
		Image:            h.locator.Resolve(c.Image),
		ComicType:        c.ComicType,
		DigitalExclusive: c.DigitalExclusive(),
		Price: priceView{
			Base:           q.Base.StringFixed(2),
			Original:       q.Original.StringFixed(2),
			Digital:        q.Digital.StringFixed(2),
			Selected:       q.Selected.StringFixed(2),
			Display:        pricing.Display(q.Selected),
			PurchaseType:   string(q.PurchaseType),
			Discounted:     q.Discounted(),
			AddToCartLabel: q.AddToCartLabel(),
		},
	}
}

func (h *Handler) views(comics []domain.Comic) []comicView {
	out := make([]comicView, 0, len(comics))
	for _, c := range comics {
		out = append(out, h.view(c, ""))
	}
	return out
}

type browseResponse struct {
	Heading  string              `json:"heading"`
	Filtered bool                `json:"filtered"`
	Count    int                 `json:"count"`
	Facets   domain.FacetOptions `json:"facets"`
	Results  []comicView         `json:"results"`
}

// Browse takes search, facet, value and view query parameters.
func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := domain.Query{
		Search: qs.Get("search"),
		Facet:  domain.Facet{Kind: domain.FacetKind(qs.Get("facet")), Value: qs.Get("value")},
		View:   domain.ParseViewMode(qs.Get("view")),
	}

	res, err := h.svc.Browse(r.Context(), q)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, browseResponse{
		Heading:  res.Heading,
		Filtered: res.Filtered,
		Count:    len(res.Results),
		Facets:   res.Facets,
		Results:  h.views(res.Results),
	})
}

type landingResponse struct {
	NewThisWeek []comicView `json:"newThisWeek"`
	DigitalRead []comicView `json:"digitalRead"`
	All         []comicView `json:"all"`
}

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Landing(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, landingResponse{
		NewThisWeek: h.views(l.NewThisWeek),
		DigitalRead: h.views(l.DigitalRead),
		All:         h.views(l.All),
	})
}

// Get prices one comic; ?purchaseType=DIGITAL switches the selected price.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	pt := pricing.PurchaseType(r.URL.Query().Get("purchaseType"))
	httpx.WriteJSON(w, http.StatusOK, h.view(c, pt))
}
