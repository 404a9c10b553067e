package app

import (
	"context"

	sessiondomain "github.com/dwikikusuma/comics-storefront/internal/session/domain"
	"github.com/dwikikusuma/comics-storefront/internal/subscription/domain"
)

type SubscriptionAPI interface {
	Subscribe(ctx context.Context, token string, plan domain.Plan, billing domain.BillingCycle) (domain.Confirmation, error)
}

// SessionWriter is the slice of the session store a subscription needs.
type SessionWriter interface {
	Token() string
	UpdateUser(p sessiondomain.Patch) (sessiondomain.Session, error)
}
