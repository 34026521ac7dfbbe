// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package decompiler

import (
	"fmt"
	"strings"

	"github.com/dotandev/dqjs/internal/atoms"
	"github.com/dotandev/dqjs/internal/bytecode"
	"github.com/dotandev/dqjs/internal/opcode"
)

// disassemble renders one function as a linear instruction listing.
func disassemble(
	fn *bytecode.FunctionBytecode,
	table *atoms.Table,
	instrs []opcode.Instr,
	funcName string,
) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s (args=%d, vars=%d, strict=%t)\n",
		funcName, fn.ArgCount, fn.VarCount, fn.IsStrictMode)
	b.WriteString("bytecode:\n")

	for _, ins := range instrs {
		fmt.Fprintf(&b, "%05d %-18s", ins.PC, ins.Name)
		writeOperand(&b, table, ins.Operand)
		switch ins.Fmt {
		case opcode.FmtNoneInt, opcode.FmtNoneLoc, opcode.FmtNoneArg, opcode.FmtNoneVarRef, opcode.FmtNPopX:
			fmt.Fprintf(&b, "       <fmt:%s>", ins.Fmt)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeOperand(b *strings.Builder, table *atoms.Table, opd opcode.Operand) {
	atomComment := func(idx uint32) string {
		a, err := table.Resolve(idx)
		if err != nil {
			a = atoms.NewRaw(idx)
		}
		return a.String()
	}

	switch opd.Kind {
	case opcode.OpdNone:
	case opcode.OpdI8, opcode.OpdI16, opcode.OpdI32, opcode.OpdLabel:
		fmt.Fprintf(b, "       %d", opd.I)
	case opcode.OpdU8, opcode.OpdU16, opcode.OpdU32, opcode.OpdConst, opcode.OpdLabelAbs, opcode.OpdNPop:
		fmt.Fprintf(b, "       %d", opd.U)
	case opcode.OpdU32x2:
		fmt.Fprintf(b, "       %d, %d", opd.U, opd.U2)
	case opcode.OpdLabelU16, opcode.OpdNPopU16:
		fmt.Fprintf(b, "       %d, %d", opd.U, opd.U3)
	case opcode.OpdAtom:
		fmt.Fprintf(b, "       %d ; %s", opd.U, atomComment(opd.U))
	case opcode.OpdAtomU8, opcode.OpdAtomU16:
		fmt.Fprintf(b, "       %d, %d ; %s", opd.U, opd.U3, atomComment(opd.U))
	case opcode.OpdAtomLabelU8, opcode.OpdAtomLabelU16:
		fmt.Fprintf(b, "       %d, %d, %d ; %s", opd.U, opd.U2, opd.U3, atomComment(opd.U))
	}
}
