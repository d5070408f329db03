// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKV_MissingFileStartsEmpty(t *testing.T) {
	kv, err := NewFileKeyValueStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	_, err = kv.Get(context.Background(), TokenKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	ctx := context.Background()

	kv, err := NewFileKeyValueStore(path)
	require.NoError(t, err)
	require.NoError(t, kv.SetMany(ctx, map[string]string{TokenKey: "tok", UserKey: "{}"}))
	require.NoError(t, kv.Close())

	reopened, err := NewFileKeyValueStore(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileKV_RemoveMany(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	kv, err := NewFileKeyValueStore(path)
	require.NoError(t, err)
	require.NoError(t, kv.SetMany(ctx, map[string]string{TokenKey: "tok", UserKey: "{}", LanguagePreferenceKey: "German"}))

	require.NoError(t, kv.RemoveMany(ctx, TokenKey, UserKey))

	_, err = kv.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	lang, err := kv.Get(ctx, LanguagePreferenceKey)
	require.NoError(t, err)
	assert.Equal(t, "German", lang)

	// no-op removal
	require.NoError(t, kv.RemoveMany(ctx, "never-set"))
}

func TestFileKV_FailedWriteKeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")
	ctx := context.Background()

	kv, err := NewFileKeyValueStore(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", "old"))

	// make the directory unwritable so the temp file cannot be created
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })
	if f, createErr := os.CreateTemp(dir, "writable"); createErr == nil {
		f.Close()
		os.Remove(f.Name())
		t.Skip("running with permissions that ignore directory mode")
	}

	err = kv.Set(ctx, "k", "new")
	require.Error(t, err)

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "old", got)
}

func TestFileKV_SyncFailureKeepsPreviousState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")
	ctx := context.Background()

	kv, err := NewFileKeyValueStore(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", "old"))

	var synced int
	syncFile = func(f *os.File) error {
		synced++
		return errors.New("input/output error")
	}
	t.Cleanup(func() { syncFile = (*os.File).Sync })

	err = kv.Set(ctx, "k", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync local storage file")
	assert.Equal(t, 1, synced)

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "old", got)

	// the old file is untouched and the temp file is gone
	reopened, err := NewFileKeyValueStore(path)
	require.NoError(t, err)
	got, err = reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "old", got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "store.json", entries[0].Name())
}

func TestFileKV_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileKeyValueStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode local storage file")
}

func TestFileKV_Closed(t *testing.T) {
	kv, err := NewFileKeyValueStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	_, err = kv.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, kv.Set(context.Background(), "k", "v"), ErrStoreClosed)
}
