// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package decompiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/dqjs/internal/atoms"
	"github.com/dotandev/dqjs/internal/opcode"
)

func legacyOp(t *testing.T, name string) byte {
	t.Helper()
	b, ok := opcode.LegacyByName(name)
	require.True(t, ok, "legacy opcode %q", name)
	return b
}

// legacyFuncRecord encodes a legacy-dialect function value with no locals,
// closure vars, debug info or constant pool.
func legacyFuncRecord(nameAtomID uint32, bc []byte) []byte {
	out := []byte{14}             // legacy function tag
	out = append(out, 0x00, 0x00) // flags (no debug info)
	out = append(out, 0x00)       // js_mode
	out = append(out, leb(nameAtomID)...)
	for i := 0; i < 4; i++ { // arg/var/defined/stack counts
		out = append(out, leb(0)...)
	}
	out = append(out, leb(0)...) // closure var count
	out = append(out, leb(0)...) // cpool count
	out = append(out, leb(uint32(len(bc)))...)
	out = append(out, leb(0)...) // local count
	out = append(out, bc...)
	return out
}

func legacyArtifact(value []byte) []byte {
	out := []byte{atoms.LegacyVersion}
	out = append(out, leb(0)...)
	return append(out, value...)
}

func TestLegacyAutoDetect(t *testing.T) {
	bc := []byte{
		legacyOp(t, "push_i8"), 5,
		legacyOp(t, "return"),
	}
	out, err := Decompile(legacyArtifact(legacyFuncRecord(0, bc)), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "return 5;")
}

func TestLegacyDisasm(t *testing.T) {
	bc := []byte{
		legacyOp(t, "push_7"),
		legacyOp(t, "return"),
	}
	opts := DefaultOptions()
	opts.Mode = ModeDisasm
	out, err := Decompile(legacyArtifact(legacyFuncRecord(0, bc)), opts)
	require.NoError(t, err)
	assert.Contains(t, out, "00000 push_7")
	assert.Contains(t, out, "<fmt:none_int>")
	assert.Contains(t, out, "00001 return")
}

func TestLegacyFunctionNameFromRoster(t *testing.T) {
	// Legacy atom id 4 is the builtin keyword "if"; id 0 is the null atom.
	bc := []byte{legacyOp(t, "return_undef")}
	out, err := Decompile(legacyArtifact(legacyFuncRecord(4, bc)), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "function if()")
}

func TestCurrentOptionRejectsLegacyStream(t *testing.T) {
	opts := DefaultOptions()
	opts.Version = VersionCurrent
	_, err := Decompile(legacyArtifact(legacyFuncRecord(0, []byte{legacyOp(t, "return_undef")})), opts)
	assert.Error(t, err)
}
