// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package updater

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	c := NewChecker("1.0.0")

	cases := []struct {
		current, latest string
		want            bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.0.0", "2.0.0", true},
		{"v1.0.0", "v1.1.0", true},
		{"1.0.0", "1.0.0", false},
		{"2.0.0", "1.0.0", false},
		{"dev", "1.0.0", false},
		{"", "1.0.0", false},
	}
	for _, tc := range cases {
		got, err := c.compareVersions(tc.current, tc.latest)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s vs %s", tc.current, tc.latest)
	}
}

func TestCompareVersionsInvalid(t *testing.T) {
	c := NewChecker("1.0.0")
	_, err := c.compareVersions("1.0.0", "not-a-version")
	assert.Error(t, err)
}

func TestShouldCheckFreshCache(t *testing.T) {
	dir := t.TempDir()
	c := &Checker{currentVersion: "1.0.0", cacheDir: dir}

	data, err := json.Marshal(CacheData{LastCheck: time.Now(), LatestVersion: "1.0.0"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "last_update_check"), data, 0644))

	should, err := c.shouldCheck()
	require.NoError(t, err)
	assert.False(t, should)
}

func TestShouldCheckStaleCache(t *testing.T) {
	dir := t.TempDir()
	c := &Checker{currentVersion: "1.0.0", cacheDir: dir}

	data, err := json.Marshal(CacheData{LastCheck: time.Now().Add(-48 * time.Hour)})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "last_update_check"), data, 0644))

	should, err := c.shouldCheck()
	require.NoError(t, err)
	assert.True(t, should)
}

func TestShouldCheckMissingCache(t *testing.T) {
	c := &Checker{currentVersion: "1.0.0", cacheDir: t.TempDir()}
	should, err := c.shouldCheck()
	require.NoError(t, err)
	assert.True(t, should)
}

func TestUpdateCheckDisabledByEnv(t *testing.T) {
	t.Setenv("DQJS_NO_UPDATE_CHECK", "1")
	c := NewChecker("1.0.0")
	assert.True(t, c.isUpdateCheckDisabled())
}
