package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type FacetKind string

const (
	FacetSeries    FacetKind = "series"
	FacetCharacter FacetKind = "character"
	FacetCreator   FacetKind = "creator"
)

const (
	AllSeries     = "All Series"
	AllCharacters = "All Characters"
	AllCreators   = "All Creators"
)

type Facet struct {
	Kind  FacetKind
	Value string
}

// Active is false for an empty value or one of the "All ..." options.
func (f Facet) Active() bool {
	switch f.Value {
	case "", AllSeries, AllCharacters, AllCreators:
		return false
	}
	return true
}

type ViewMode string

const (
	ViewNone    ViewMode = ""
	ViewAll     ViewMode = "all"
	ViewDigital ViewMode = "digital"
)

func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewAll, ViewDigital:
		return ViewMode(s)
	}
	return ViewNone
}

type Query struct {
	Search string
	Facet  Facet
	View   ViewMode
}

// Filtered reports whether the browse grid replaces the landing sections.
func (q Query) Filtered() bool {
	return q.Search != "" || q.Facet.Value != "" || q.View != ViewNone
}

func (q Query) Heading() string {
	switch {
	case q.Search != "":
		return `SEARCH RESULTS FOR "` + strings.ToUpper(q.Search) + `"`
	case q.View == ViewAll:
		return "ALL COMICS"
	case q.View == ViewDigital:
		return "DIGITAL EXCLUSIVE"
	default:
		return "FILTERED RESULTS"
	}
}

// Filter returns a new slice; source order is kept.
func Filter(comics []Comic, q Query) []Comic {
	out := make([]Comic, 0, len(comics))

	search := strings.ToLower(q.Search)
	for _, c := range comics {
		if q.View == ViewDigital && !c.DigitalExclusive() {
			continue
		}
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		if q.Facet.Active() && !matchesFacet(c, q.Facet) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesSearch(c Comic, lowered string) bool {
	for _, field := range []string{c.Title, c.Creators, c.Series, c.MainCharacter} {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

func matchesFacet(c Comic, f Facet) bool {
	switch f.Kind {
	case FacetSeries:
		return c.Series == f.Value
	case FacetCharacter:
		return c.MainCharacter == f.Value
	case FacetCreator:
		return strings.EqualFold(c.Creators, f.Value)
	default:
		// unknown facet kinds narrow nothing
		return true
	}
}

type FacetOptions struct {
	Series     []string `json:"series"`
	Characters []string `json:"characters"`
	Creators   []string `json:"creators"`
}

func BuildFacets(comics []Comic) FacetOptions {
	col := collate.New(language.Und, collate.Loose)

	collect := func(sentinel string, field func(Comic) string) []string {
		seen := make(map[string]struct{})
		values := make([]string, 0)
		for _, c := range comics {
			v := field(c)
			if strings.TrimSpace(v) == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		slices.SortStableFunc(values, col.CompareString)
		return append([]string{sentinel}, values...)
	}

	return FacetOptions{
		Series:     collect(AllSeries, func(c Comic) string { return c.Series }),
		Characters: collect(AllCharacters, func(c Comic) string { return c.MainCharacter }),
		Creators:   collect(AllCreators, func(c Comic) string { return c.Creators }),
	}
}

const (
	newThisWeekSize = 12
	digitalReadSize = 10
)

type Landing struct {
	NewThisWeek []Comic
	DigitalRead []Comic
	All         []Comic
}

func BuildLanding(comics []Comic) Landing {
	digital := Filter(comics, Query{View: ViewDigital})
	return Landing{
		NewThisWeek: slices.Clone(comics[:min(newThisWeekSize, len(comics))]),
		DigitalRead: digital[:min(digitalReadSize, len(digital))],
		All:         slices.Clone(comics),
	}
}

type BrowseResult struct {
	Results  []Comic
	Facets   FacetOptions
	Filtered bool
	Heading  string
}
