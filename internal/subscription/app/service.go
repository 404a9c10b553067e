package app

import (
	"context"
	"log/slog"

	sessiondomain "github.com/dwikikusuma/comics-storefront/internal/session/domain"
	"github.com/dwikikusuma/comics-storefront/internal/subscription/domain"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
)

type Service struct {
	api     SubscriptionAPI
	session SessionWriter
	log     *slog.Logger
}

func NewService(api SubscriptionAPI, session SessionWriter, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, session: session, log: log}
}

func (s *Service) Offer(plan, billing string) domain.Offer {
	return domain.NewOffer(plan, billing)
}

// Subscribe activates a plan and copies the result into the local session.
func (s *Service) Subscribe(ctx context.Context, plan, billing string) (sessiondomain.Session, error) {
	token := s.session.Token()
	if token == "" {
		return sessiondomain.Session{}, apperr.ErrUnauthenticated
	}

	offer := domain.NewOffer(plan, billing)
	conf, err := s.api.Subscribe(ctx, token, offer.Plan, offer.Billing)
	if err != nil {
		return sessiondomain.Session{}, err
	}

	sess, err := s.session.UpdateUser(sessiondomain.Patch{
		SubscriptionType:       &conf.SubscriptionType,
		SubscriptionExpiration: conf.SubscriptionExpiration,
	})
	if err != nil {
		return sessiondomain.Session{}, err
	}

	s.log.Info("subscription activated",
		slog.String("plan", string(offer.Plan)),
		slog.String("billing", string(offer.Billing)),
		slog.String("subscription_type", conf.SubscriptionType),
	)
	return sess, nil
}
