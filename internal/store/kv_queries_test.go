// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetValueQuery(t *testing.T) {
	query, args, err := buildGetValueQuery("@auth_token")
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM kv_store WHERE key = ?", query)
	assert.Equal(t, []any{"@auth_token"}, args)
}

func Test_buildUpsertValueQuery(t *testing.T) {
	query, args, err := buildUpsertValueQuery("k", "v")
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO kv_store (key,value) VALUES (?,?)")
	assert.Contains(t, query, "ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	assert.Equal(t, []any{"k", "v"}, args)
}

func Test_buildDeleteValuesQuery(t *testing.T) {
	query, args, err := buildDeleteValuesQuery("a", "b", "c")
	require.NoError(t, err)

	// squirrel expands a slice into IN (?,?,?)
	assert.Equal(t, "DELETE FROM kv_store WHERE key IN (?,?,?)", query)
	assert.Equal(t, []any{"a", "b", "c"}, args)
}
