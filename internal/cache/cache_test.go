// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLookupMiss(t *testing.T) {
	store := openTestStore(t)
	_, found, err := store.Lookup(Key{InputDigest: "abc", Mode: "pseudo", Version: "auto"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveAndLookup(t *testing.T) {
	store := openTestStore(t)
	key := Key{InputDigest: DigestInput([]byte{1, 2, 3}), Mode: "pseudo", Version: "auto"}
	require.NoError(t, store.Save(key, "function f() {}\n"))

	out, found, err := store.Lookup(key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "function f() {}\n", out)

	// Different options miss.
	other := key
	other.Optimize = true
	_, found, err = store.Lookup(other)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveReplaces(t *testing.T) {
	store := openTestStore(t)
	key := Key{InputDigest: "d", Mode: "disasm", Version: "current"}
	require.NoError(t, store.Save(key, "old"))
	require.NoError(t, store.Save(key, "new"))

	out, found, err := store.Lookup(key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", out)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Save(Key{InputDigest: "x", Mode: "pseudo", Version: "auto"}, "y"))
	require.NoError(t, store.Clear())
	n, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDigestInputStable(t *testing.T) {
	assert.Equal(t, DigestInput([]byte("abc")), DigestInput([]byte("abc")))
	assert.NotEqual(t, DigestInput([]byte("abc")), DigestInput([]byte("abd")))
	assert.Len(t, DigestInput(nil), 64)
}
