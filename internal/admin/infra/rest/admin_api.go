package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dwikikusuma/comics-storefront/internal/admin/domain"
	"github.com/dwikikusuma/comics-storefront/internal/pricing"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

// comicPayload mirrors the backend comic entity; nil fields are sent as null.
type comicPayload struct {
	Title         string       `json:"title"`
	Author        *string      `json:"author"`
	ISBN          *string      `json:"isbn"`
	Description   *string      `json:"description"`
	Series        *string      `json:"series"`
	PublishedYear *int         `json:"publishedYear"`
	ConditionID   *int64       `json:"conditionId"`
	CategoryID    *int64       `json:"categoryId"`
	Price         *json.Number `json:"price"`
	Image         *string      `json:"image"`
	MainCharacter *string      `json:"mainCharacter"`
	ComicType     *string      `json:"comicType"`
}

type createUserPayload struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	DateOfBirth *string `json:"dateOfBirth"`
	Role        string  `json:"role"`
}

type updateUserPayload struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password,omitempty"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	DateOfBirth *string `json:"dateOfBirth"`
	Role        string  `json:"role"`
}

type AdminAPI struct {
	c *restclient.Client
}

func NewAdminAPI(c *restclient.Client) *AdminAPI {
	return &AdminAPI{c: c}
}

func (a *AdminAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	return restclient.Call[[]domain.Category](ctx, a.c, "/api/categories", restclient.Options{})
}

func (a *AdminAPI) Conditions(ctx context.Context) ([]domain.Condition, error) {
	return restclient.Call[[]domain.Condition](ctx, a.c, "/api/conditions", restclient.Options{})
}

func (a *AdminAPI) ListUsers(ctx context.Context, token, query string) ([]domain.User, error) {
	path := "/api/admin/users"
	if query != "" {
		path += "?query=" + url.QueryEscape(query)
	}
	return restclient.Call[[]domain.User](ctx, a.c, path, restclient.Options{AuthToken: token})
}

func (a *AdminAPI) CreateUser(ctx context.Context, token string, in domain.UserInput) error {
	return a.c.Do(ctx, "/api/admin/users", restclient.Options{
		Method:    http.MethodPost,
		AuthToken: token,
		Body: createUserPayload{
			Username:    in.Username,
			Email:       in.Email,
			Password:    in.Password,
			FirstName:   nullable(in.FirstName),
			LastName:    nullable(in.LastName),
			DateOfBirth: nullable(in.DateOfBirth),
			Role:        in.Role,
		},
	}, nil)
}

func (a *AdminAPI) UpdateUser(ctx context.Context, token string, id int64, in domain.UserInput) error {
	return a.c.Do(ctx, userPath(id), restclient.Options{
		Method:    http.MethodPut,
		AuthToken: token,
		Body: updateUserPayload{
			Username:    in.Username,
			Email:       in.Email,
			Password:    in.Password,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			DateOfBirth: nullable(in.DateOfBirth),
			Role:        in.Role,
		},
	}, nil)
}

func (a *AdminAPI) DeleteUser(ctx context.Context, token string, id int64) error {
	return a.c.Do(ctx, userPath(id), restclient.Options{Method: http.MethodDelete, AuthToken: token}, nil)
}

func (a *AdminAPI) ListComics(ctx context.Context, token string) ([]domain.Comic, error) {
	return restclient.Call[[]domain.Comic](ctx, a.c, "/api/admin/comics", restclient.Options{AuthToken: token})
}

// CreateComic goes through the public comics resource; the admin one has no POST.
func (a *AdminAPI) CreateComic(ctx context.Context, token string, in domain.ComicInput) error {
	return a.c.Do(ctx, "/api/comics", restclient.Options{
		Method:    http.MethodPost,
		AuthToken: token,
		Body:      toPayload(in),
	}, nil)
}

func (a *AdminAPI) UpdateComic(ctx context.Context, token string, id int64, in domain.ComicInput) error {
	return a.c.Do(ctx, comicPath(id), restclient.Options{
		Method:    http.MethodPut,
		AuthToken: token,
		Body:      toPayload(in),
	}, nil)
}

func (a *AdminAPI) DeleteComic(ctx context.Context, token string, id int64) error {
	return a.c.Do(ctx, comicPath(id), restclient.Options{Method: http.MethodDelete, AuthToken: token}, nil)
}

func (a *AdminAPI) SetRedacted(ctx context.Context, token string, id int64, redacted bool) error {
	return a.c.Do(ctx, comicPath(id)+"/redaction", restclient.Options{
		Method:    http.MethodPut,
		AuthToken: token,
		Body:      map[string]bool{"redacted": redacted},
	}, nil)
}

func toPayload(in domain.ComicInput) comicPayload {
	p := comicPayload{
		Title:         in.Title,
		Author:        nullable(in.Author),
		ISBN:          nullable(in.ISBN),
		Description:   nullable(in.Description),
		Series:        nullable(in.Series),
		Image:         nullable(in.Image),
		MainCharacter: nullable(in.MainCharacter),
	}
	if in.PublishedYear != 0 {
		p.PublishedYear = &in.PublishedYear
	}
	if in.ConditionID != 0 {
		p.ConditionID = &in.ConditionID
	}
	if in.CategoryID != 0 {
		p.CategoryID = &in.CategoryID
	}
	if !in.Price.IsZero() {
		// sent as a JSON number, not decimal's quoted string
		n := json.Number(in.Price.String())
		p.Price = &n
	}
	if in.DigitalOnly {
		t := pricing.ComicTypeDigitalOnly
		p.ComicType = &t
	}
	return p
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func userPath(id int64) string  { return "/api/admin/users/" + strconv.FormatInt(id, 10) }
func comicPath(id int64) string { return "/api/admin/comics/" + strconv.FormatInt(id, 10) }
