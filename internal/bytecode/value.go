// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

// Package bytecode deserializes the tagged, length-prefixed value tree a
// bytecode artifact embeds: function objects, constant pools, modules,
// typed arrays, regexps and bigints. Two on-disk dialects are supported;
// their tag spaces are numerically incompatible and are kept as parallel
// code paths that converge on the same Value shape.
package bytecode

import (
	"fmt"

	"github.com/dotandev/dqjs/internal/atoms"
)

// Value is one node of the decoded value tree. The supported tag set
// produces a pure tree; there are no back-references.
type Value interface {
	fmt.Stringer
	isValue()
}

type Null struct{}
type Undefined struct{}

type Bool struct{ V bool }
type Int32 struct{ V int32 }
type Float64 struct{ V float64 }
type String struct{ V string }

// Array holds array and template-object payloads.
type Array struct{ Items []Value }

// Property is one object entry. Insertion order is observable and preserved.
type Property struct {
	Name  atoms.Atom
	Value Value
}

type Object struct{ Props []Property }

// Module wraps the module's entry function object.
type Module struct {
	Name atoms.Atom
	Func Value
}

type RegExp struct {
	Pattern  string
	Bytecode string
}

type BigInt struct{ Bytes []byte }

type Symbol struct{ Atom atoms.Atom }

type ArrayBuffer struct{ Bytes []byte }

type TypedArray struct {
	Kind   byte
	Len    uint32
	Offset uint32
	Buffer Value
}

type Date struct{ Value Value }

// Unsupported marks a tag the dialect reads past but does not model.
type Unsupported struct{ Tag byte }

// VarDef describes one local variable slot.
type VarDef struct {
	Name       atoms.Atom
	ScopeLevel uint32
	ScopeNext  uint32
	Flags      byte
	// VarRefIdx is set when the current dialect marks the local captured.
	VarRefIdx *uint32
}

// ClosureVar describes one variable captured from an enclosing scope.
type ClosureVar struct {
	Name   atoms.Atom
	VarIdx uint32
	Flags  uint32
}

// FunctionBytecode is one embedded function record.
type FunctionBytecode struct {
	FuncName        atoms.Atom
	IsStrictMode    bool
	ArgCount        uint16
	VarCount        uint16
	DefinedArgCount uint16
	StackSize       uint16
	VarRefCount     uint16
	ClosureVarCount uint16
	CpoolCount      uint32
	ByteCodeLen     uint32
	Locals          []VarDef
	ClosureVars     []ClosureVar
	Cpool           []Value
	Bytecode        []byte
}

func (Null) isValue()              {}
func (Undefined) isValue()         {}
func (Bool) isValue()              {}
func (Int32) isValue()             {}
func (Float64) isValue()           {}
func (String) isValue()            {}
func (Array) isValue()             {}
func (Object) isValue()            {}
func (Module) isValue()            {}
func (RegExp) isValue()            {}
func (BigInt) isValue()            {}
func (Symbol) isValue()            {}
func (ArrayBuffer) isValue()       {}
func (TypedArray) isValue()        {}
func (Date) isValue()              {}
func (*FunctionBytecode) isValue() {}
func (Unsupported) isValue()       {}

func (Null) String() string      { return "null" }
func (Undefined) String() string { return "undefined" }
func (v Bool) String() string    { return fmt.Sprintf("%t", v.V) }
func (v Int32) String() string   { return fmt.Sprintf("%d", v.V) }
func (v Float64) String() string { return fmt.Sprintf("%v", v.V) }
func (v String) String() string  { return fmt.Sprintf("%q", v.V) }

func (v Array) String() string  { return fmt.Sprintf("<array:%d>", len(v.Items)) }
func (v Object) String() string { return fmt.Sprintf("<object:%d>", len(v.Props)) }
func (v Module) String() string { return fmt.Sprintf("<module:%s>", v.Name) }
func (v RegExp) String() string { return fmt.Sprintf("<regexp:%s>", v.Pattern) }
func (v BigInt) String() string { return fmt.Sprintf("<bigint:%d bytes>", len(v.Bytes)) }
func (v Symbol) String() string { return fmt.Sprintf("<symbol:%s>", v.Atom) }

func (v ArrayBuffer) String() string {
	return fmt.Sprintf("<arraybuffer:%d bytes>", len(v.Bytes))
}

func (v TypedArray) String() string {
	return fmt.Sprintf("<typedarray:%d len=%d>", v.Kind, v.Len)
}

func (Date) String() string { return "<date>" }

func (b *FunctionBytecode) String() string {
	return fmt.Sprintf("<function:%s>", b.FuncName)
}

func (v Unsupported) String() string { return fmt.Sprintf("<tag:%d>", v.Tag) }
