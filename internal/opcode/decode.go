// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package opcode

import (
	"encoding/binary"

	"github.com/dotandev/dqjs/internal/errors"
)

// Decode consumes a current-dialect bytecode stream into instructions.
func Decode(bc []byte) ([]Instr, error) {
	return decode(bc, Lookup)
}

// DecodeLegacy consumes a legacy-dialect bytecode stream into instructions.
func DecodeLegacy(bc []byte) ([]Instr, error) {
	return decode(bc, LookupLegacy)
}

func decode(bc []byte, lookup func(byte) (OpInfo, bool)) ([]Instr, error) {
	var out []Instr
	pc := 0
	for pc < len(bc) {
		op := bc[pc]
		info, ok := lookup(op)
		if !ok {
			return nil, errors.WrapInvalidOpcode(op)
		}
		size := int(info.Size)
		if len(bc)-pc < size {
			return nil, errors.WrapTruncatedOpcode(pc, size, len(bc)-pc)
		}
		args := bc[pc+1 : pc+size]
		out = append(out, Instr{
			PC:      pc,
			Op:      op,
			Name:    info.Name,
			Size:    size,
			Fmt:     info.Fmt,
			Operand: parseOperand(info.Fmt, args),
			NPop:    info.NPop,
			NPush:   info.NPush,
		})
		pc += size
	}
	return out, nil
}

func parseOperand(fmt Fmt, args []byte) Operand {
	u16 := func(off int) uint16 { return binary.LittleEndian.Uint16(args[off:]) }
	u32 := func(off int) uint32 { return binary.LittleEndian.Uint32(args[off:]) }

	switch fmt {
	case FmtU8:
		return Operand{Kind: OpdU8, U: uint32(args[0])}
	case FmtLoc8:
		return Operand{Kind: OpdU8, U: uint32(args[0])}
	case FmtI8:
		return Operand{Kind: OpdI8, I: int32(int8(args[0]))}
	case FmtU16, FmtLoc, FmtArg, FmtVarRef:
		return Operand{Kind: OpdU16, U: uint32(u16(0))}
	case FmtI16:
		return Operand{Kind: OpdI16, I: int32(int16(u16(0)))}
	case FmtNPop:
		return Operand{Kind: OpdNPop, U: uint32(u16(0))}
	case FmtNPopU16:
		return Operand{Kind: OpdNPopU16, U: uint32(u16(0)), U3: u16(2)}
	case FmtLabel8:
		return Operand{Kind: OpdLabel, I: int32(int8(args[0]))}
	case FmtLabel16:
		return Operand{Kind: OpdLabel, I: int32(int16(u16(0)))}
	case FmtU32:
		return Operand{Kind: OpdU32, U: u32(0)}
	case FmtU32x2:
		return Operand{Kind: OpdU32x2, U: u32(0), U2: u32(4)}
	case FmtI32:
		return Operand{Kind: OpdI32, I: int32(u32(0))}
	case FmtLabel:
		return Operand{Kind: OpdLabelAbs, U: u32(0)}
	case FmtLabelU16:
		return Operand{Kind: OpdLabelU16, U: u32(0), U3: u16(4)}
	case FmtConst8:
		return Operand{Kind: OpdConst, U: uint32(args[0])}
	case FmtConst:
		return Operand{Kind: OpdConst, U: u32(0)}
	case FmtAtom:
		return Operand{Kind: OpdAtom, U: u32(0)}
	case FmtAtomU8:
		return Operand{Kind: OpdAtomU8, U: u32(0), U3: uint16(args[4])}
	case FmtAtomU16:
		return Operand{Kind: OpdAtomU16, U: u32(0), U3: u16(4)}
	case FmtAtomLabelU8:
		return Operand{Kind: OpdAtomLabelU8, U: u32(0), U2: u32(4), U3: uint16(args[8])}
	case FmtAtomLabelU16:
		return Operand{Kind: OpdAtomLabelU16, U: u32(0), U2: u32(4), U3: u16(8)}
	default:
		// none, none_int, none_loc, none_arg, none_var_ref, npopx
		return Operand{Kind: OpdNone}
	}
}

// LabelTarget computes the absolute branch target of an instruction, when
// it has one. Branch deltas are relative to the pc just past the opcode
// byte, except the atom_label formats where the label follows the 32-bit
// atom payload.
func LabelTarget(ins Instr) (int, bool) {
	switch ins.Operand.Kind {
	case OpdLabel:
		t := ins.PC + 1 + int(ins.Operand.I)
		if t < 0 {
			return 0, false
		}
		return t, true
	case OpdLabelAbs, OpdLabelU16:
		return ins.PC + 1 + int(ins.Operand.U), true
	case OpdAtomLabelU8, OpdAtomLabelU16:
		return ins.PC + 5 + int(ins.Operand.U2), true
	default:
		return 0, false
	}
}
