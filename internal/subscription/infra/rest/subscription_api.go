package rest

import (
	"context"
	"net/http"

	"github.com/dwikikusuma/comics-storefront/internal/subscription/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

type subscribeRequest struct {
	SubscriptionType domain.Plan         `json:"subscriptionType"`
	BillingCycle     domain.BillingCycle `json:"billingCycle"`
}

type SubscriptionAPI struct {
	c *restclient.Client
}

func NewSubscriptionAPI(c *restclient.Client) *SubscriptionAPI {
	return &SubscriptionAPI{c: c}
}

func (a *SubscriptionAPI) Subscribe(ctx context.Context, token string, plan domain.Plan, billing domain.BillingCycle) (domain.Confirmation, error) {
	return restclient.Call[domain.Confirmation](ctx, a.c, "/api/subscriptions/subscribe", restclient.Options{
		Method:    http.MethodPost,
		AuthToken: token,
		Body:      subscribeRequest{SubscriptionType: plan, BillingCycle: billing},
	})
}
