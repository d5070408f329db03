package service

import (
	"context"

	"github.com/MKhiriev/go-lingo/internal/adapter"
	"github.com/MKhiriev/go-lingo/internal/logger"
)

type clientSubscriptionService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService

	logger *logger.Logger
}

// NewClientSubscriptionService returns a subscription service that keeps
// session's user in step with every change it makes.
func NewClientSubscriptionService(serverAdapter adapter.ServerAdapter, session ClientSessionService, logger *logger.Logger) ClientSubscriptionService {
	return &clientSubscriptionService{adapter: serverAdapter, session: session, logger: logger}
}

func (s *clientSubscriptionService) Checkout(ctx context.Context) (string, error) {
	user, ok := s.session.User()
	if !ok {
		return "", ErrNoActiveSession
	}
	if user.HasActiveSubscription() {
		return "", ErrAlreadySubscribed
	}

	checkout, err := s.adapter.CreateCheckoutSession(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSubscriptionService.Checkout").Msg("checkout session failed")
		return "", err
	}

	return checkout.URL, nil
}

func (s *clientSubscriptionService) StartTrial(ctx context.Context) error {
	if _, ok := s.session.User(); !ok {
		return ErrNoActiveSession
	}

	resp, err := s.adapter.Subscribe(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSubscriptionService.StartTrial").Msg("subscribe failed")
		return err
	}

	return s.session.MergeUser(ctx, resp.ProfilePatch())
}

func (s *clientSubscriptionService) Cancel(ctx context.Context) error {
	if _, ok := s.session.User(); !ok {
		return ErrNoActiveSession
	}

	if err := s.adapter.CancelSubscription(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientSubscriptionService.Cancel").Msg("cancel subscription failed")
		return err
	}

	_, err := s.session.CheckSubscriptionStatus(ctx)
	return err
}
