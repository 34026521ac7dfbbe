// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package bytecode

import (
	"github.com/dotandev/dqjs/internal/atoms"
	"github.com/dotandev/dqjs/internal/errors"
	"github.com/dotandev/dqjs/internal/reader"
)

// Decoder walks a current-dialect value tree by tag-dispatched recursive
// descent.
type Decoder struct {
	r     *reader.Reader
	atoms *atoms.Table
}

// NewDecoder creates a current-dialect decoder positioned after the atom
// table.
func NewDecoder(r *reader.Reader, table *atoms.Table) *Decoder {
	return &Decoder{r: r, atoms: table}
}

// ReadValue consumes one tagged value.
func (d *Decoder) ReadValue() (Value, error) {
	tag, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNull:
		return Null{}, nil
	case tagUndefined:
		return Undefined{}, nil
	case tagBoolFalse:
		return Bool{V: false}, nil
	case tagBoolTrue:
		return Bool{V: true}, nil
	case tagInt32:
		v, err := d.r.Sleb128()
		if err != nil {
			return nil, err
		}
		return Int32{V: v}, nil
	case tagFloat64:
		v, err := d.r.F64()
		if err != nil {
			return nil, err
		}
		return Float64{V: v}, nil
	case tagString:
		s, err := atoms.ReadString(d.r)
		if err != nil {
			return nil, err
		}
		return String{V: s}, nil
	case tagObject:
		return d.readObject()
	case tagArray, tagTemplateObject:
		return d.readArray(tag == tagTemplateObject)
	case tagRegExp:
		pattern, err := atoms.ReadString(d.r)
		if err != nil {
			return nil, err
		}
		bc, err := atoms.ReadString(d.r)
		if err != nil {
			return nil, err
		}
		return RegExp{Pattern: pattern, Bytecode: bc}, nil
	case tagBigInt:
		length, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		raw, err := d.r.Bytes(int(length))
		if err != nil {
			return nil, err
		}
		return BigInt{Bytes: raw}, nil
	case tagSymbol:
		a, err := d.atoms.ReadAtom(d.r)
		if err != nil {
			return nil, err
		}
		return Symbol{Atom: a}, nil
	case tagArrayBuffer:
		length, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		// Max byte length for resizable buffers; unused here.
		if _, err := d.r.Leb128(); err != nil {
			return nil, err
		}
		raw, err := d.r.Bytes(int(length))
		if err != nil {
			return nil, err
		}
		return ArrayBuffer{Bytes: raw}, nil
	case tagTypedArray:
		return d.readTypedArray()
	case tagDate:
		inner, err := d.ReadValue()
		if err != nil {
			return nil, err
		}
		return Date{Value: inner}, nil
	case tagModule:
		return d.readModule()
	case tagFunctionBytecode:
		return d.readFunction()
	case tagSharedArrayBuffer, tagObjectValue, tagObjectReference, tagMap, tagSet:
		return nil, errors.WrapUnsupportedTag(tag)
	default:
		return Unsupported{Tag: tag}, nil
	}
}

func (d *Decoder) readObject() (Value, error) {
	count, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	props := make([]Property, 0, count)
	for i := uint32(0); i < count; i++ {
		name, err := d.atoms.ReadAtom(d.r)
		if err != nil {
			return nil, err
		}
		val, err := d.ReadValue()
		if err != nil {
			return nil, err
		}
		props = append(props, Property{Name: name, Value: val})
	}
	return Object{Props: props}, nil
}

func (d *Decoder) readArray(template bool) (Value, error) {
	length, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	items := make([]Value, 0, length)
	for i := uint32(0); i < length; i++ {
		item, err := d.ReadValue()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if template {
		// Template objects carry a trailing raw-strings value.
		if _, err := d.ReadValue(); err != nil {
			return nil, err
		}
	}
	return Array{Items: items}, nil
}

func (d *Decoder) readTypedArray() (Value, error) {
	kind, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	length, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	offset, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	buffer, err := d.ReadValue()
	if err != nil {
		return nil, err
	}
	return TypedArray{Kind: kind, Len: length, Offset: offset, Buffer: buffer}, nil
}

func (d *Decoder) readModule() (Value, error) {
	name, err := d.atoms.ReadAtom(d.r)
	if err != nil {
		return nil, err
	}

	reqCount, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < reqCount; i++ {
		if _, err := d.atoms.ReadAtom(d.r); err != nil {
			return nil, err
		}
	}

	exportCount, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < exportCount; i++ {
		exportType, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		if _, err := d.r.Leb128(); err != nil {
			return nil, err
		}
		if exportType != 0 {
			if _, err := d.atoms.ReadAtom(d.r); err != nil {
				return nil, err
			}
		}
		if _, err := d.atoms.ReadAtom(d.r); err != nil {
			return nil, err
		}
	}

	starCount, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < starCount; i++ {
		if _, err := d.r.Leb128(); err != nil {
			return nil, err
		}
	}

	importCount, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < importCount; i++ {
		if _, err := d.r.Leb128(); err != nil {
			return nil, err
		}
		if _, err := d.atoms.ReadAtom(d.r); err != nil {
			return nil, err
		}
		if _, err := d.r.Leb128(); err != nil {
			return nil, err
		}
	}

	// has_tla
	if _, err := d.r.U8(); err != nil {
		return nil, err
	}

	fn, err := d.ReadValue()
	if err != nil {
		return nil, err
	}
	return Module{Name: name, Func: fn}, nil
}

func (d *Decoder) readFunction() (Value, error) {
	if _, err := d.r.U16(); err != nil { // flags
		return nil, err
	}
	strict, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	funcName, err := d.atoms.ReadAtom(d.r)
	if err != nil {
		return nil, err
	}

	var counts [6]uint32
	for i := range counts {
		counts[i], err = d.r.Leb128()
		if err != nil {
			return nil, err
		}
	}
	cpoolCount, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	byteCodeLen, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	localCount, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}

	locals := make([]VarDef, 0, localCount)
	for i := uint32(0); i < localCount; i++ {
		name, err := d.atoms.ReadAtom(d.r)
		if err != nil {
			return nil, err
		}
		scopeLevel, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		scopeNext, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		if scopeNext > 0 {
			scopeNext--
		}
		flags, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		def := VarDef{Name: name, ScopeLevel: scopeLevel, ScopeNext: scopeNext, Flags: flags}
		if flags&0x40 != 0 {
			idx, err := d.r.Leb128()
			if err != nil {
				return nil, err
			}
			def.VarRefIdx = &idx
		}
		locals = append(locals, def)
	}

	closureVarCount := counts[5]
	closureVars := make([]ClosureVar, 0, closureVarCount)
	for i := uint32(0); i < closureVarCount; i++ {
		name, err := d.atoms.ReadAtom(d.r)
		if err != nil {
			return nil, err
		}
		varIdx, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		flags, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		closureVars = append(closureVars, ClosureVar{Name: name, VarIdx: varIdx, Flags: flags})
	}

	cpool := make([]Value, 0, cpoolCount)
	for i := uint32(0); i < cpoolCount; i++ {
		v, err := d.ReadValue()
		if err != nil {
			return nil, err
		}
		cpool = append(cpool, v)
	}

	raw, err := d.r.Bytes(int(byteCodeLen))
	if err != nil {
		return nil, err
	}

	return &FunctionBytecode{
		FuncName:        funcName,
		IsStrictMode:    strict != 0,
		ArgCount:        uint16(counts[0]),
		VarCount:        uint16(counts[1]),
		DefinedArgCount: uint16(counts[2]),
		StackSize:       uint16(counts[3]),
		VarRefCount:     uint16(counts[4]),
		ClosureVarCount: uint16(counts[5]),
		CpoolCount:      cpoolCount,
		ByteCodeLen:     byteCodeLen,
		Locals:          locals,
		ClosureVars:     closureVars,
		Cpool:           cpool,
		Bytecode:        raw,
	}, nil
}
