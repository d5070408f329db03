// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-lingo/internal/logger"
)

// fileKeyValueStore keeps every key in one JSON document. Each write
// replaces the document through a temp file and rename, so a crash never
// leaves a half-written state behind.
type fileKeyValueStore struct {
	path string

	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

type filePersistedState struct {
	Items map[string]string `json:"items"`
}

// NewFileKeyValueStore opens (or lazily creates) the JSON store at path.
func NewFileKeyValueStore(path string) (KeyValueStore, error) {
	s := &fileKeyValueStore{
		path:  path,
		items: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValueStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", ErrStoreClosed
	}

	value, ok := s.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *fileKeyValueStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

func (s *fileKeyValueStore) SetMany(ctx context.Context, pairs map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	next := maps.Clone(s.items)
	maps.Copy(next, pairs)

	if err := s.persist(next); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileKeyValueStore.SetMany").
			Int("count", len(pairs)).
			Msg("failed to persist values")
		return err
	}

	s.items = next
	return nil
}

func (s *fileKeyValueStore) Remove(ctx context.Context, key string) error {
	return s.RemoveMany(ctx, key)
}

func (s *fileKeyValueStore) RemoveMany(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	next := maps.Clone(s.items)
	changed := false
	for _, k := range keys {
		if _, ok := next[k]; ok {
			delete(next, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := s.persist(next); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileKeyValueStore.RemoveMany").
			Strs("keys", keys).
			Msg("failed to persist removal")
		return err
	}

	s.items = next
	return nil
}

func (s *fileKeyValueStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *fileKeyValueStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}

	if st.Items != nil {
		s.items = st.Items
	}

	return nil
}

func (s *fileKeyValueStore) persist(items map[string]string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = syncFile(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync local storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod local storage file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace local storage file: %w", err)
	}

	syncDir(dir)
	return nil
}

// syncFile flushes the temp file to disk before it replaces the old state.
var syncFile = (*os.File).Sync

// syncDir makes the rename durable. Not every platform can fsync a
// directory, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
