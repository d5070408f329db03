// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-lingo/internal/adapter"
	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/store"
	"github.com/MKhiriev/go-lingo/internal/utils"
	"github.com/MKhiriev/go-lingo/internal/validators"
	"github.com/MKhiriev/go-lingo/models"
)

type clientSessionService struct {
	credentials store.CredentialStore
	adapter     adapter.ServerAdapter
	validator   validators.Validator
	job         ClientStatusJob
	interval    time.Duration

	// opMu serialises mutating operations. Poller Start/Stop always happen
	// outside of it, under jobMu.
	opMu  sync.Mutex
	jobMu sync.Mutex

	mu      sync.RWMutex
	loading bool
	errMsg  string
	user    *models.UserProfile

	lifeCtx    context.Context
	lifeCancel context.CancelFunc

	logger *logger.Logger
}

// NewClientSessionService returns a session manager in the loading state.
// pollInterval is the period of the subscription status poller.
func NewClientSessionService(
	credentials store.CredentialStore,
	serverAdapter adapter.ServerAdapter,
	validator validators.Validator,
	pollInterval time.Duration,
	logger *logger.Logger,
) ClientSessionService {
	s := &clientSessionService{
		credentials: credentials,
		adapter:     serverAdapter,
		validator:   validator,
		interval:    pollInterval,
		loading:     true,
		logger:      logger,
	}
	s.job = NewClientStatusJob(s, logger)

	return s
}

func (s *clientSessionService) Init(ctx context.Context) {
	s.mu.Lock()
	if s.lifeCancel == nil {
		s.lifeCtx, s.lifeCancel = context.WithCancel(context.WithoutCancel(ctx))
	}
	s.mu.Unlock()

	restored := s.restore(ctx)

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()

	if restored {
		s.syncPolling()
	}
}

func (s *clientSessionService) restore(ctx context.Context) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	log := s.logger.With().Str("func", "clientSessionService.Init").Logger()

	token, err := s.credentials.LoadToken(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		log.Debug().Msg("no stored session")
		return false
	}
	if err != nil {
		log.Err(err).Msg("error loading stored token")
		return false
	}

	if expiry, err := utils.TokenExpiry(token); err == nil {
		if utils.TokenExpired(token, time.Now()) {
			log.Warn().Time("expires_at", expiry).Msg("stored token has expired")
		} else {
			log.Debug().Time("expires_at", expiry).Msg("stored token restored")
		}
	}

	user, err := s.credentials.LoadUser(ctx)
	if err != nil {
		log.Err(err).Msg("error loading stored user")
		return false
	}

	s.setUser(&user)
	return true
}

func (s *clientSessionService) Dispose() {
	s.jobMu.Lock()
	s.job.Stop()
	s.jobMu.Unlock()

	s.mu.Lock()
	if s.lifeCancel != nil {
		s.lifeCancel()
		s.lifeCancel = nil
	}
	s.mu.Unlock()
}

func (s *clientSessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := SessionState{Loading: s.loading, Err: s.errMsg}
	if s.user != nil {
		u := *s.user
		state.User = &u
	}

	return state
}

func (s *clientSessionService) User() (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.UserProfile{}, false
	}
	return *s.user, true
}

func (s *clientSessionService) Register(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, "clientSessionService.Register", models.Credentials{Email: email, Password: password}, s.adapter.Register, msgRegistrationFailed)
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, "clientSessionService.Login", models.Credentials{Email: email, Password: password}, s.adapter.Login, msgLoginFailed)
}

type authCall func(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

func (s *clientSessionService) authenticate(ctx context.Context, fn string, creds models.Credentials, call authCall, fallback string) error {
	err := s.withOp(func() error {
		s.setErr("")

		if err := s.validator.Validate(ctx, creds); err != nil {
			return err
		}

		resp, err := call(ctx, creds)
		if err != nil {
			return err
		}

		user, ok := resp.Profile()
		if resp.Token == "" || !ok {
			return adapter.ErrMalformedAuthResponse
		}

		if err = s.credentials.Save(ctx, models.Session{Token: resp.Token, User: user}); err != nil {
			return err
		}

		s.setUser(&user)
		return nil
	})
	if err != nil {
		s.setErr(errorMessage(err, fallback))
		s.logger.Err(err).Str("func", fn).Msg("authentication failed")
		return err
	}

	s.syncPolling()
	return nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	err := s.withOp(func() error {
		err := s.credentials.Clear(ctx)
		s.setUser(nil)
		s.setErr("")
		return err
	})

	s.syncPolling()

	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Logout").Msg("stored session could not be cleared")
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

func (s *clientSessionService) UpdateEmail(ctx context.Context, newEmail string) error {
	err := s.withOp(func() error {
		s.setErr("")

		current, ok := s.User()
		if !ok {
			return ErrNoActiveSession
		}

		update := models.EmailUpdate{Email: newEmail}
		if err := s.validator.Validate(ctx, update); err != nil {
			return err
		}

		profile, err := s.adapter.UpdateDetails(ctx, update)
		if err != nil {
			return err
		}

		updated := current
		updated.Email = profile.Email
		if err = s.credentials.UpdateUser(ctx, updated); err != nil {
			return err
		}

		s.setUser(&updated)
		return nil
	})
	if err != nil {
		s.setErr(errorMessage(err, msgUpdateEmailFailed))
		s.logger.Err(err).Str("func", "clientSessionService.UpdateEmail").Msg("email update failed")
	}

	return err
}

func (s *clientSessionService) DeleteAccount(ctx context.Context) error {
	err := s.withOp(func() error {
		s.setErr("")

		if _, ok := s.User(); !ok {
			return ErrNoActiveSession
		}

		if err := s.adapter.DeleteUser(ctx); err != nil {
			return err
		}

		if err := s.credentials.Clear(ctx); err != nil {
			return err
		}

		s.setUser(nil)
		return nil
	})
	if err != nil {
		s.setErr(errorMessage(err, msgDeleteAccountFailed))
		s.logger.Err(err).Str("func", "clientSessionService.DeleteAccount").Msg("account deletion failed")
		return err
	}

	s.syncPolling()
	return nil
}

func (s *clientSessionService) CheckSubscriptionStatus(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse

	err := s.withOp(func() error {
		current, ok := s.User()
		if !ok {
			return nil
		}

		var err error
		status, err = s.adapter.SubscriptionStatus(ctx)
		if err != nil {
			return err
		}

		return s.storeUserLocked(ctx, applyStatus(current, status))
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.CheckSubscriptionStatus").Msg("error checking subscription status")
		return models.StatusResponse{}, err
	}

	return status, nil
}

func (s *clientSessionService) MergeUser(ctx context.Context, patch models.UserProfile) error {
	return s.withOp(func() error {
		current, ok := s.User()
		if !ok {
			return ErrNoActiveSession
		}

		return s.mergeLocked(ctx, current, patch)
	})
}

// mergeLocked persists current overlaid with patch and mirrors it in memory.
// The caller holds opMu.
func (s *clientSessionService) mergeLocked(ctx context.Context, current, patch models.UserProfile) error {
	merged, err := mergeProfile(current, patch)
	if err != nil {
		return fmt.Errorf("merge user profile: %w", err)
	}

	return s.storeUserLocked(ctx, merged)
}

// storeUserLocked persists user and mirrors it in memory. The caller holds opMu.
func (s *clientSessionService) storeUserLocked(ctx context.Context, user models.UserProfile) error {
	if err := s.credentials.UpdateUser(ctx, user); err != nil {
		return err
	}

	s.setUser(&user)
	return nil
}

// syncPolling runs the status poller while a user is signed in and stops it
// otherwise. Each caller re-reads the user under jobMu, so the last call
// after any login or logout leaves the poller matching the session.
func (s *clientSessionService) syncPolling() {
	s.jobMu.Lock()
	defer s.jobMu.Unlock()

	if _, ok := s.User(); ok {
		s.job.Start(s.lifetime(), s.interval)
		return
	}
	s.job.Stop()
}

func (s *clientSessionService) withOp(fn func() error) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return fn()
}

func (s *clientSessionService) setUser(u *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.user = nil
		return
	}
	cp := *u
	s.user = &cp
}

func (s *clientSessionService) setErr(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

// lifetime is the context the poller runs under: cancelled by Dispose.
func (s *clientSessionService) lifetime() context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lifeCtx == nil {
		return context.Background()
	}
	return s.lifeCtx
}
