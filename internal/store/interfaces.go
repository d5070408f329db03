// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-lingo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the low-level string key-value persistence used by the
// credential and preference stores. Multi-key writes are atomic: either
// every pair is stored or none is.
type KeyValueStore interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores a single key.
	Set(ctx context.Context, key, value string) error
	// SetMany stores all pairs atomically.
	SetMany(ctx context.Context, pairs map[string]string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// RemoveMany deletes all keys atomically.
	RemoveMany(ctx context.Context, keys ...string) error
	// Close releases the underlying resources.
	Close() error
}

// CredentialStore persists the token and user profile of the logged-in
// account. The token and the profile are always written and cleared
// together.
type CredentialStore interface {
	// Save stores token and profile as one atomic write.
	Save(ctx context.Context, session models.Session) error
	// LoadToken returns the stored token or [ErrLocalSessionNotFound].
	LoadToken(ctx context.Context) (string, error)
	// LoadUser returns the stored profile or [ErrLocalSessionNotFound].
	LoadUser(ctx context.Context) (models.UserProfile, error)
	// UpdateUser overwrites only the stored profile.
	UpdateUser(ctx context.Context, user models.UserProfile) error
	// Clear removes token and profile. Clearing an empty store succeeds.
	Clear(ctx context.Context) error
}

// PreferenceStore persists user preferences that outlive a session.
type PreferenceStore interface {
	// LoadLanguage returns the stored native language or [ErrKeyNotFound].
	LoadLanguage(ctx context.Context) (string, error)
	// SaveLanguage stores the native language.
	SaveLanguage(ctx context.Context, language string) error
}
