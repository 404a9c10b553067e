package rest

import (
	"context"
	"net/http"

	"github.com/dwikikusuma/comics-storefront/internal/session/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

type AuthAPI struct {
	c *restclient.Client
}

func NewAuthAPI(c *restclient.Client) *AuthAPI {
	return &AuthAPI{c: c}
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (domain.AuthResponse, error) {
	return restclient.Call[domain.AuthResponse](ctx, a.c, "/api/auth/login", restclient.Options{
		Method: http.MethodPost,
		Body:   map[string]string{"email": email, "password": password},
	})
}

func (a *AuthAPI) Register(ctx context.Context, username, email, password string) (domain.AuthResponse, error) {
	return restclient.Call[domain.AuthResponse](ctx, a.c, "/api/auth/register", restclient.Options{
		Method: http.MethodPost,
		Body:   map[string]string{"username": username, "email": email, "password": password},
	})
}
