package domain

import "github.com/dwikikusuma/comics-storefront/internal/pricing"

type Comic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Creators    string `json:"creators"`
	Description string `json:"description"`
	ComicType   string `json:"comicType"`
}

// Entry is one owned digital copy.
type Entry struct {
	ID    string `json:"id"`
	Comic Comic  `json:"comic"`
}

func (e Entry) DigitalExclusive() bool {
	return e.Comic.ComicType == pricing.ComicTypeDigitalOnly
}
