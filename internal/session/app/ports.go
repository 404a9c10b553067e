package app

import (
	"context"

	"github.com/dwikikusuma/comics-storefront/internal/session/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.AuthResponse, error)
	Register(ctx context.Context, username, email, password string) (domain.AuthResponse, error)
}

// Storage is durable client storage. Save and Clear must write both keys in one step.
type Storage interface {
	Load() (domain.Persisted, error)
	Save(p domain.Persisted) error
	Clear() error
}
