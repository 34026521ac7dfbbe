// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package atoms

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/dqjs/internal/errors"
	"github.com/dotandev/dqjs/internal/reader"
)

func leb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}

// narrowString encodes s in the engine string format (narrow).
func narrowString(s string) []byte {
	out := leb(uint32(len(s)) << 1)
	return append(out, s...)
}

func TestAtomDisplay(t *testing.T) {
	assert.Equal(t, "<null>", Null().String())
	assert.Equal(t, "null", NewBuiltin(1).String())
	assert.Equal(t, "if", NewBuiltin(4).String())
	assert.Equal(t, "hello", NewString("hello").String())
	assert.Equal(t, "<sym:3:desc>", NewSymbol(3, "desc").String())
	assert.Equal(t, "<int:42>", NewTaggedInt(42).String())
	assert.Equal(t, "<atom:9>", NewRaw(9).String())
	// Out-of-range builtin falls back to the raw marker.
	assert.Equal(t, "<atom:100000>", NewBuiltin(100000).String())
}

func TestResolve(t *testing.T) {
	table := &Table{FirstAtom: BuiltinEndID(), User: []Atom{NewString("foo"), NewString("bar")}}

	a, err := table.Resolve(0)
	require.NoError(t, err)
	assert.True(t, a.IsNull())

	a, err = table.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, KindBuiltin, a.Kind)

	a, err = table.Resolve(BuiltinEndID() + 1)
	require.NoError(t, err)
	assert.Equal(t, "bar", a.Str)

	_, err = table.Resolve(BuiltinEndID() + 2)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidAtomIndex))
}

func TestReadAtomTaggedInt(t *testing.T) {
	table := &Table{FirstAtom: BuiltinEndID()}
	// (21<<1)|1 = 43 tags the integer 21.
	r := reader.New(leb(43))
	a, err := table.ReadAtom(r)
	require.NoError(t, err)
	assert.Equal(t, KindTaggedInt, a.Kind)
	assert.Equal(t, uint32(21), a.ID)
}

func TestReadTable(t *testing.T) {
	buf := []byte{Version}
	buf = append(buf, leb(3)...)
	// type 0: raw id
	buf = append(buf, 0)
	buf = append(buf, 0x2a, 0x00, 0x00, 0x00)
	// type 1: string
	buf = append(buf, 1)
	buf = append(buf, narrowString("userAtom")...)
	// type 4: symbol
	buf = append(buf, 4)
	buf = append(buf, narrowString("desc")...)

	table, err := ReadTable(reader.New(buf))
	require.NoError(t, err)
	assert.Equal(t, BuiltinEndID(), table.FirstAtom)
	require.Len(t, table.User, 3)
	assert.Equal(t, KindRaw, table.User[0].Kind)
	assert.Equal(t, uint32(42), table.User[0].ID)
	assert.Equal(t, "userAtom", table.User[1].Str)
	assert.Equal(t, KindSymbol, table.User[2].Kind)
	assert.Equal(t, byte(4), table.User[2].SymType)
}

func TestReadTableBadVersion(t *testing.T) {
	_, err := ReadTable(reader.New([]byte{0x02, 0x00}))
	assert.True(t, stderrors.Is(err, errors.ErrInvalidVersion))
}

func TestReadLegacyTable(t *testing.T) {
	buf := []byte{LegacyVersion}
	buf = append(buf, leb(1)...)
	buf = append(buf, narrowString("userVar")...)

	table, err := ReadLegacyTable(reader.New(buf))
	require.NoError(t, err)
	assert.Len(t, table.Atoms, len(legacyBuiltins)+1)
	assert.Equal(t, "null", table.Atoms[0])
	assert.Equal(t, "userVar", table.Atoms[len(table.Atoms)-1])

	// id 0 is the null atom, id 1 the first builtin, a large id degrades to Raw.
	a, err := table.ReadAtomID(reader.New(leb(0)))
	require.NoError(t, err)
	assert.True(t, a.IsNull())

	a, err = table.ReadAtomID(reader.New(leb(1)))
	require.NoError(t, err)
	assert.Equal(t, "null", a.Str)

	a, err = table.ReadAtomID(reader.New(leb(100000)))
	require.NoError(t, err)
	assert.Equal(t, KindRaw, a.Kind)

	adapted := table.Table()
	assert.Equal(t, uint32(1), adapted.FirstAtom)
	assert.Len(t, adapted.User, len(table.Atoms))
}

func TestReadStringWide(t *testing.T) {
	// "hi" as two 16-bit code units, header (2<<1)|1 = 5.
	buf := append(leb(5), 0x68, 0x00, 0x69, 0x00)
	s, err := ReadString(reader.New(buf))
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestReadStringWideSurrogate(t *testing.T) {
	// A lone surrogate 0xD800 decodes to the replacement character.
	buf := append(leb(3), 0x00, 0xd8)
	s, err := ReadString(reader.New(buf))
	require.NoError(t, err)
	assert.Equal(t, "�", s)
}

func TestReadStringTruncated(t *testing.T) {
	buf := leb(10 << 1)
	_, err := ReadString(reader.New(buf))
	assert.True(t, stderrors.Is(err, errors.ErrUnexpectedEOF))
}
