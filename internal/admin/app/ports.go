package app

import (
	"context"

	"github.com/dwikikusuma/comics-storefront/internal/admin/domain"
	sessiondomain "github.com/dwikikusuma/comics-storefront/internal/session/domain"
)

type AdminAPI interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Conditions(ctx context.Context) ([]domain.Condition, error)

	ListUsers(ctx context.Context, token, query string) ([]domain.User, error)
	CreateUser(ctx context.Context, token string, in domain.UserInput) error
	UpdateUser(ctx context.Context, token string, id int64, in domain.UserInput) error
	DeleteUser(ctx context.Context, token string, id int64) error

	ListComics(ctx context.Context, token string) ([]domain.Comic, error)
	CreateComic(ctx context.Context, token string, in domain.ComicInput) error
	UpdateComic(ctx context.Context, token string, id int64, in domain.ComicInput) error
	DeleteComic(ctx context.Context, token string, id int64) error
	SetRedacted(ctx context.Context, token string, id int64, redacted bool) error
}

type SessionReader interface {
	Snapshot() sessiondomain.State
}
