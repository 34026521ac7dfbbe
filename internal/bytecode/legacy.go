// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package bytecode

import (
	"github.com/dotandev/dqjs/internal/atoms"
	"github.com/dotandev/dqjs/internal/errors"
	"github.com/dotandev/dqjs/internal/reader"
)

// LegacyConfig tunes the parts of the legacy layout that are not derivable
// from the format alone.
type LegacyConfig struct {
	// DebugFlagMask selects the bit(s) of the function flags word that gate
	// the trailing debug-info block. The exact bitfield layout varies across
	// engine builds; the top bit is the observed default.
	DebugFlagMask uint16
}

// DefaultLegacyConfig returns the observed legacy layout parameters.
func DefaultLegacyConfig() LegacyConfig {
	return LegacyConfig{DebugFlagMask: 0x8000}
}

// LegacyDecoder walks a legacy-dialect value tree.
type LegacyDecoder struct {
	r     *reader.Reader
	atoms *atoms.LegacyTable
	cfg   LegacyConfig
}

// NewLegacyDecoder creates a legacy-dialect decoder positioned after the
// atom table.
func NewLegacyDecoder(r *reader.Reader, table *atoms.LegacyTable, cfg LegacyConfig) *LegacyDecoder {
	return &LegacyDecoder{r: r, atoms: table, cfg: cfg}
}

// ReadValue consumes one tagged value. Unknown legacy tags are fatal;
// shared-array-buffer and object-reference payloads are read past and
// recorded as Unsupported.
func (d *LegacyDecoder) ReadValue() (Value, error) {
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
		count, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		props := make([]Property, 0, count)
		for i := uint32(0); i < count; i++ {
			name, err := d.atoms.ReadAtomID(d.r)
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
	case tagArray, tagLegacyTemplateObject:
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
		if tag == tagLegacyTemplateObject {
			if _, err := d.ReadValue(); err != nil {
				return nil, err
			}
		}
		return Array{Items: items}, nil
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
	case tagLegacyFunctionBytecode:
		return d.readFunction()
	case tagLegacyModule:
		return d.readModule()
	case tagLegacyTypedArray:
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
	case tagLegacyArrayBuffer:
		length, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		raw, err := d.r.Bytes(int(length))
		if err != nil {
			return nil, err
		}
		return ArrayBuffer{Bytes: raw}, nil
	case tagLegacySharedArrayBuffer:
		// Length plus an in-process pointer; nothing usable on disk.
		if _, err := d.r.Leb128(); err != nil {
			return nil, err
		}
		if _, err := d.r.U64(); err != nil {
			return nil, err
		}
		return Unsupported{Tag: tag}, nil
	case tagLegacyDate:
		inner, err := d.ReadValue()
		if err != nil {
			return nil, err
		}
		return Date{Value: inner}, nil
	case tagLegacyObjectValue:
		// Transparent wrapper around the inner value.
		return d.ReadValue()
	case tagLegacyObjectReference:
		if _, err := d.r.Leb128(); err != nil {
			return nil, err
		}
		return Unsupported{Tag: tag}, nil
	default:
		return nil, errors.WrapUnsupportedTag(tag)
	}
}

func (d *LegacyDecoder) readModule() (Value, error) {
	name, err := d.atoms.ReadAtomID(d.r)
	if err != nil {
		return nil, err
	}

	reqCount, err := d.r.Leb128()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < reqCount; i++ {
		if _, err := d.atoms.ReadAtomID(d.r); err != nil {
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
			if _, err := d.atoms.ReadAtomID(d.r); err != nil {
				return nil, err
			}
		}
		if _, err := d.atoms.ReadAtomID(d.r); err != nil {
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
		if _, err := d.atoms.ReadAtomID(d.r); err != nil {
			return nil, err
		}
		if _, err := d.r.Leb128(); err != nil {
			return nil, err
		}
	}

	fn, err := d.ReadValue()
	if err != nil {
		return nil, err
	}
	return Module{Name: name, Func: fn}, nil
}

func (d *LegacyDecoder) readFunction() (Value, error) {
	flags, err := d.r.U16()
	if err != nil {
		return nil, err
	}
	if _, err := d.r.U8(); err != nil { // js_mode
		return nil, err
	}
	funcName, err := d.atoms.ReadAtomID(d.r)
	if err != nil {
		return nil, err
	}

	var counts [4]uint32
	for i := range counts {
		counts[i], err = d.r.Leb128()
		if err != nil {
			return nil, err
		}
	}
	closureVarCount, err := d.r.Leb128()
	if err != nil {
		return nil, err
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
		name, err := d.atoms.ReadAtomID(d.r)
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
		varFlags, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		locals = append(locals, VarDef{Name: name, ScopeLevel: scopeLevel, ScopeNext: scopeNext, Flags: varFlags})
	}

	closureVars := make([]ClosureVar, 0, closureVarCount)
	for i := uint32(0); i < closureVarCount; i++ {
		name, err := d.atoms.ReadAtomID(d.r)
		if err != nil {
			return nil, err
		}
		varIdx, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		cvFlags, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		closureVars = append(closureVars, ClosureVar{Name: name, VarIdx: varIdx, Flags: uint32(cvFlags)})
	}

	raw, err := d.r.Bytes(int(byteCodeLen))
	if err != nil {
		return nil, err
	}

	if flags&d.cfg.DebugFlagMask != 0 {
		if _, err := d.atoms.ReadAtomID(d.r); err != nil { // file
			return nil, err
		}
		if _, err := d.r.Leb128(); err != nil { // line
			return nil, err
		}
		mapLen, err := d.r.Leb128()
		if err != nil {
			return nil, err
		}
		if _, err := d.r.Bytes(int(mapLen)); err != nil {
			return nil, err
		}
	}

	cpool := make([]Value, 0, cpoolCount)
	for i := uint32(0); i < cpoolCount; i++ {
		v, err := d.ReadValue()
		if err != nil {
			return nil, err
		}
		cpool = append(cpool, v)
	}

	return &FunctionBytecode{
		FuncName:        funcName,
		ArgCount:        uint16(counts[0]),
		VarCount:        uint16(counts[1]),
		DefinedArgCount: uint16(counts[2]),
		StackSize:       uint16(counts[3]),
		ClosureVarCount: uint16(closureVarCount),
		CpoolCount:      cpoolCount,
		ByteCodeLen:     byteCodeLen,
		Locals:          locals,
		ClosureVars:     closureVars,
		Cpool:           cpool,
		Bytecode:        raw,
	}, nil
}
