// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

// Package atoms resolves the interned identifier/string references the
// bytecode format calls atoms. Small ids address the engine's fixed builtin
// roster; larger ids address the per-file user atom table that follows the
// version byte. The current and legacy dialects encode atom references
// differently but converge on the same Table shape.
package atoms

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dotandev/dqjs/internal/errors"
	"github.com/dotandev/dqjs/internal/reader"
)

// Stream version bytes. The first byte of a bytecode artifact selects the
// dialect.
const (
	Version       byte = 23
	LegacyVersion byte = 1
)

// Kind discriminates the Atom union.
type Kind uint8

const (
	KindNull Kind = iota
	KindBuiltin
	KindString
	KindSymbol
	KindTaggedInt
	KindRaw
)

// Atom is a resolved atom reference.
type Atom struct {
	Kind Kind
	// ID holds the builtin id (1-based), tagged-int payload, or raw id.
	ID uint32
	// Str holds the string value or symbol description.
	Str string
	// SymType is the symbol type code for KindSymbol.
	SymType byte
}

func Null() Atom                 { return Atom{Kind: KindNull} }
func NewBuiltin(id uint32) Atom  { return Atom{Kind: KindBuiltin, ID: id} }
func NewString(s string) Atom    { return Atom{Kind: KindString, Str: s} }
func NewTaggedInt(v uint32) Atom { return Atom{Kind: KindTaggedInt, ID: v} }
func NewRaw(id uint32) Atom      { return Atom{Kind: KindRaw, ID: id} }

func NewSymbol(typ byte, desc string) Atom {
	return Atom{Kind: KindSymbol, SymType: typ, Str: desc}
}

// IsNull reports whether the atom is the null atom.
func (a Atom) IsNull() bool { return a.Kind == KindNull }

// String renders the display form: strings render literally, builtins render
// as the builtin name, everything else as a <kind:payload> marker.
func (a Atom) String() string {
	switch a.Kind {
	case KindNull:
		return "<null>"
	case KindBuiltin:
		if a.ID != 0 && int(a.ID) <= len(Builtins) {
			return Builtins[a.ID-1]
		}
		return fmt.Sprintf("<atom:%d>", a.ID)
	case KindString:
		return a.Str
	case KindSymbol:
		return fmt.Sprintf("<sym:%d:%s>", a.SymType, a.Str)
	case KindTaggedInt:
		return fmt.Sprintf("<int:%d>", a.ID)
	default:
		return fmt.Sprintf("<atom:%d>", a.ID)
	}
}

// Table maps encoded atom indices to resolved atoms. An index i resolves to
// the null atom if i == 0, to builtin i if i < FirstAtom, and to
// User[i-FirstAtom] otherwise.
type Table struct {
	FirstAtom uint32
	User      []Atom
}

// BuiltinEndID is the first atom id past the builtin range in the current
// dialect.
func BuiltinEndID() uint32 {
	return uint32(len(Builtins)) + 1
}

// Resolve maps an atom index into the merged builtin/user space.
func (t *Table) Resolve(idx uint32) (Atom, error) {
	if idx == 0 {
		return Null(), nil
	}
	if idx < t.FirstAtom {
		return NewBuiltin(idx), nil
	}
	off := idx - t.FirstAtom
	if int(off) >= len(t.User) {
		return Atom{}, errors.WrapInvalidAtomIndex(idx)
	}
	return t.User[off], nil
}

// ReadAtom decodes a current-dialect atom reference: a LEB128 whose low bit
// tags a small integer atom, with the remaining bits indexing the table.
func (t *Table) ReadAtom(r *reader.Reader) (Atom, error) {
	v, err := r.Leb128()
	if err != nil {
		return Atom{}, err
	}
	if v&1 == 1 {
		return NewTaggedInt(v >> 1), nil
	}
	return t.Resolve(v >> 1)
}

// ReadTable consumes a current-dialect header: the version byte and the
// user atom table.
func ReadTable(r *reader.Reader) (*Table, error) {
	version, err := r.U8()
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, errors.WrapInvalidVersion(version)
	}

	count, err := r.Leb128()
	if err != nil {
		return nil, err
	}
	user := make([]Atom, 0, count)
	for i := uint32(0); i < count; i++ {
		typ, err := r.U8()
		if err != nil {
			return nil, err
		}
		if typ == 0 {
			raw, err := r.U32()
			if err != nil {
				return nil, err
			}
			user = append(user, NewRaw(raw))
			continue
		}
		desc, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		if typ == 1 {
			user = append(user, NewString(desc))
		} else {
			user = append(user, NewSymbol(typ, desc))
		}
	}
	return &Table{FirstAtom: BuiltinEndID(), User: user}, nil
}

// LegacyTable holds the legacy dialect's flat atom list: the fixed builtin
// roster followed by the file-declared strings. Legacy atom ids are direct
// 1-based indices into it.
type LegacyTable struct {
	Atoms []string
}

// ReadLegacyTable consumes a legacy-dialect header.
func ReadLegacyTable(r *reader.Reader) (*LegacyTable, error) {
	version, err := r.U8()
	if err != nil {
		return nil, err
	}
	if version != LegacyVersion {
		return nil, errors.WrapInvalidVersion(version)
	}

	count, err := r.Leb128()
	if err != nil {
		return nil, err
	}
	list := make([]string, 0, len(legacyBuiltins)+int(count))
	list = append(list, legacyBuiltins...)
	for i := uint32(0); i < count; i++ {
		s, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return &LegacyTable{Atoms: list}, nil
}

// ReadAtomID decodes a legacy atom reference: a raw LEB128 id where 0 is the
// null atom and id-1 indexes the list. Out-of-range ids degrade to Raw.
func (t *LegacyTable) ReadAtomID(r *reader.Reader) (Atom, error) {
	id, err := r.Leb128()
	if err != nil {
		return Atom{}, err
	}
	if id == 0 {
		return Null(), nil
	}
	if int(id-1) < len(t.Atoms) {
		return NewString(t.Atoms[id-1]), nil
	}
	return NewRaw(id), nil
}

// Table adapts the flat legacy list to the common Table shape, with
// FirstAtom pinned to 1 so every id resolves through the user list.
func (t *LegacyTable) Table() *Table {
	user := make([]Atom, len(t.Atoms))
	for i, s := range t.Atoms {
		user[i] = NewString(s)
	}
	return &Table{FirstAtom: 1, User: user}
}

// ReadString decodes an engine string: a LEB128 header carrying
// (length<<1)|wide, then either UTF-8-ish bytes decoded lossily or
// little-endian 16-bit code units.
func ReadString(r *reader.Reader) (string, error) {
	header, err := r.Leb128()
	if err != nil {
		return "", err
	}
	wide := header&1 == 1
	length := int(header >> 1)
	if !wide {
		raw, err := r.Bytes(length)
		if err != nil {
			return "", err
		}
		return decodeLossy(raw), nil
	}
	raw, err := r.Bytes(length * 2)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		unit := rune(uint16(raw[i*2]) | uint16(raw[i*2+1])<<8)
		if utf16.IsSurrogate(unit) {
			b.WriteRune(utf8.RuneError)
			continue
		}
		b.WriteRune(unit)
	}
	return b.String(), nil
}

// decodeLossy interprets raw as UTF-8, replacing invalid sequences with the
// replacement character.
func decodeLossy(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range string(raw) {
		b.WriteRune(r)
	}
	return b.String()
}
