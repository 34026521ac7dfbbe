// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/dqjs/internal/config"
	"github.com/dotandev/dqjs/internal/decompiler"
)

func TestBuildOptions(t *testing.T) {
	cfg = &config.Config{}
	t.Cleanup(func() { cfg = nil })

	opts, err := buildOptions("pseudo", "auto")
	require.NoError(t, err)
	assert.Equal(t, decompiler.ModePseudo, opts.Mode)
	assert.Equal(t, decompiler.VersionAuto, opts.Version)

	opts, err = buildOptions("disasm", "legacy")
	require.NoError(t, err)
	assert.Equal(t, decompiler.ModeDisasm, opts.Mode)
	assert.Equal(t, decompiler.VersionLegacy, opts.Version)

	opts, err = buildOptions("", "current")
	require.NoError(t, err)
	assert.Equal(t, decompiler.ModePseudo, opts.Mode)
	assert.Equal(t, decompiler.VersionCurrent, opts.Version)
}

func TestBuildOptionsRejectsBadValues(t *testing.T) {
	cfg = &config.Config{}
	t.Cleanup(func() { cfg = nil })

	_, err := buildOptions("wat", "auto")
	assert.Error(t, err)

	_, err = buildOptions("pseudo", "v9")
	assert.Error(t, err)
}

func TestBuildOptionsAppliesLegacyMask(t *testing.T) {
	cfg = &config.Config{LegacyDebugMask: 0x0004}
	t.Cleanup(func() { cfg = nil })

	opts, err := buildOptions("pseudo", "legacy")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0004), opts.Legacy.DebugFlagMask)
}
