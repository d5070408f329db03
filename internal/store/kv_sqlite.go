// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-lingo/internal/logger"
)

type sqliteKeyValueStore struct {
	db *DB
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] backed by the kv_store
// table. The schema must already be migrated.
func NewSQLiteKeyValueStore(db *DB) KeyValueStore {
	return &sqliteKeyValueStore{db: db}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

func (s *sqliteKeyValueStore) SetMany(ctx context.Context, pairs map[string]string) error {
	log := logger.FromContext(ctx)

	if len(pairs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.SetMany").
			Int("count", len(pairs)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// stable order keeps statements deterministic
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		query, args, buildErr := buildUpsertValueQuery(key, pairs[key])
		if buildErr != nil {
			return buildErr
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "sqliteKeyValueStore.SetMany").
				Str("key", key).
				Msg("failed to upsert value")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.SetMany").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Remove(ctx context.Context, key string) error {
	return s.RemoveMany(ctx, key)
}

func (s *sqliteKeyValueStore) RemoveMany(ctx context.Context, keys ...string) error {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildDeleteValuesQuery(keys...)
	if err != nil {
		return err
	}

	// a single DELETE ... IN is atomic on its own
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.RemoveMany").
			Strs("keys", keys).
			Msg("failed to delete values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Close() error {
	return s.db.Close()
}
