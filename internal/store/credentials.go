// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/models"
)

// Well-known keys of the credential and preference stores.
const (
	TokenKey              = "@auth_token"
	UserKey               = "@auth_user"
	LanguagePreferenceKey = "@language_preference"
)

type credentialStore struct {
	kv KeyValueStore
}

// NewCredentialStore returns a [CredentialStore] on top of kv. The profile is
// stored as JSON under [UserKey], the token verbatim under [TokenKey].
func NewCredentialStore(kv KeyValueStore) CredentialStore {
	return &credentialStore{kv: kv}
}

func (c *credentialStore) Save(ctx context.Context, session models.Session) error {
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user profile: %w", err)
	}

	err = c.kv.SetMany(ctx, map[string]string{
		TokenKey: session.Token,
		UserKey:  string(user),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialStore.Save").
			Msg("failed to persist session")
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (c *credentialStore) LoadToken(ctx context.Context) (string, error) {
	token, err := c.kv.Get(ctx, TokenKey)
	if errors.Is(err, ErrKeyNotFound) || (err == nil && token == "") {
		return "", ErrLocalSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}

	return token, nil
}

func (c *credentialStore) LoadUser(ctx context.Context) (models.UserProfile, error) {
	raw, err := c.kv.Get(ctx, UserKey)
	if errors.Is(err, ErrKeyNotFound) {
		return models.UserProfile{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("load user: %w", err)
	}

	var user models.UserProfile
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialStore.LoadUser").
			Msg("stored user profile is not valid JSON")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrCorruptedValue, err)
	}

	return user, nil
}

func (c *credentialStore) UpdateUser(ctx context.Context, user models.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user profile: %w", err)
	}

	if err = c.kv.Set(ctx, UserKey, string(raw)); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (c *credentialStore) Clear(ctx context.Context) error {
	if err := c.kv.RemoveMany(ctx, TokenKey, UserKey); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialStore.Clear").
			Msg("failed to clear session")
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

type preferenceStore struct {
	kv KeyValueStore
}

// NewPreferenceStore returns a [PreferenceStore] on top of kv.
func NewPreferenceStore(kv KeyValueStore) PreferenceStore {
	return &preferenceStore{kv: kv}
}

func (p *preferenceStore) LoadLanguage(ctx context.Context) (string, error) {
	return p.kv.Get(ctx, LanguagePreferenceKey)
}

func (p *preferenceStore) SaveLanguage(ctx context.Context, language string) error {
	if err := p.kv.Set(ctx, LanguagePreferenceKey, language); err != nil {
		return fmt.Errorf("save language preference: %w", err)
	}
	return nil
}
