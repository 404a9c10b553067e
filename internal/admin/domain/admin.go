package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Condition struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Role        string `json:"role,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// UserInput backs both create and update. An empty Password on update keeps
// the current one.
type UserInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Role        string `json:"role"`
}

type Comic struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Author        string           `json:"author,omitempty"`
	Series        string           `json:"series,omitempty"`
	ISBN          string           `json:"isbn,omitempty"`
	Description   string           `json:"description,omitempty"`
	MainCharacter string           `json:"mainCharacter,omitempty"`
	PublishedYear *int             `json:"publishedYear,omitempty"`
	Condition     *Condition       `json:"condition,omitempty"`
	Category      *Category        `json:"category,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Image         string           `json:"image,omitempty"`
	ComicType     string           `json:"comicType,omitempty"`
	Redacted      bool             `json:"redacted"`
}

// ComicInput is the catalog form. Zero values mean "not set".
type ComicInput struct {
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	ISBN          string          `json:"isbn"`
	Description   string          `json:"description"`
	Series        string          `json:"series"`
	MainCharacter string          `json:"mainCharacter"`
	PublishedYear int             `json:"publishedYear"`
	ConditionID   int64           `json:"conditionId"`
	CategoryID    int64           `json:"categoryId"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
	DigitalOnly   bool            `json:"digitalOnly"`
}

// SearchComics narrows the admin table by title, series or author.
func SearchComics(comics []Comic, query string) []Comic {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return comics
	}

	out := make([]Comic, 0, len(comics))
	for _, c := range comics {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Series), q) ||
			strings.Contains(strings.ToLower(c.Author), q) {
			out = append(out, c)
		}
	}
	return out
}
