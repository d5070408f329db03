// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lingo/internal/config"
	"github.com/MKhiriev/go-lingo/internal/logger"
)

// ClientStorages groups all client-side stores into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// KeyValue is the backend shared by the stores below.
	KeyValue KeyValueStore
	// Credentials holds the token and profile of the logged-in user.
	Credentials CredentialStore
	// Preferences holds settings that survive logout.
	Preferences PreferenceStore
}

// NewClientStorages initialises the client storage layer for the configured
// backend:
//   - "sqlite": opens the database at cfg.DSN (creating it if needed) and
//     runs the embedded migrations;
//   - "file": opens the JSON document at cfg.FilePath.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	var (
		kv  KeyValueStore
		err error
	)

	switch cfg.Backend {
	case config.StorageBackendSQLite:
		db, connErr := NewConnectSQLite(ctx, cfg.DSN, log)
		if connErr != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", connErr)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv = NewSQLiteKeyValueStore(db)
	case config.StorageBackendFile:
		kv, err = NewFileKeyValueStore(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("file store error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalidStorageConfigs, cfg.Backend)
	}

	return NewClientStoragesFromKV(kv), nil
}

// NewClientStoragesFromKV wires the credential and preference stores on top
// of an already opened backend.
func NewClientStoragesFromKV(kv KeyValueStore) *ClientStorages {
	return &ClientStorages{
		KeyValue:    kv,
		Credentials: NewCredentialStore(kv),
		Preferences: NewPreferenceStore(kv),
	}
}

// Close releases the backend.
func (s *ClientStorages) Close() error {
	return s.KeyValue.Close()
}
