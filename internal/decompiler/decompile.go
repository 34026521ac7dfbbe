// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

// Package decompiler reconstructs a textual representation of every
// function embedded in a bytecode artifact: either a linear disassembly or
// a best-effort pseudo-source rendering. The on-disk dialect is selected
// from the version byte unless pinned by the options.
package decompiler

import (
	"fmt"
	"strings"

	"github.com/dotandev/dqjs/internal/atoms"
	"github.com/dotandev/dqjs/internal/bytecode"
	"github.com/dotandev/dqjs/internal/opcode"
	"github.com/dotandev/dqjs/internal/reader"
)

// Mode selects the output form.
type Mode int

const (
	ModePseudo Mode = iota
	ModeDisasm
)

// Version selects the on-disk dialect.
type Version int

const (
	VersionAuto Version = iota
	VersionCurrent
	VersionLegacy
)

// Options configures one decompile call.
type Options struct {
	Mode        Mode
	Version     Version
	Deobfuscate bool
	Optimize    bool
	// Legacy tunes legacy-dialect layout parameters.
	Legacy bytecode.LegacyConfig
}

// DefaultOptions returns pseudo-mode auto-detecting options.
func DefaultOptions() Options {
	return Options{Legacy: bytecode.DefaultLegacyConfig()}
}

// Decompile decodes a bytecode artifact and renders every embedded
// function, entry function first, separated by blank lines. When the
// decoded tree holds no functions the top-level value's display form is
// returned instead.
func Decompile(data []byte, opts Options) (string, error) {
	if opts.Legacy.DebugFlagMask == 0 {
		opts.Legacy = bytecode.DefaultLegacyConfig()
	}

	r := reader.New(data)
	version := opts.Version
	if version == VersionAuto {
		if b, ok := r.PeekU8(); ok && b == atoms.LegacyVersion {
			version = VersionLegacy
		} else {
			version = VersionCurrent
		}
	}

	switch version {
	case VersionLegacy:
		table, err := atoms.ReadLegacyTable(r)
		if err != nil {
			return "", err
		}
		v, err := bytecode.NewLegacyDecoder(r, table, opts.Legacy).ReadValue()
		if err != nil {
			return "", err
		}
		return renderValue(v, opts, table.Table(), opcode.DecodeLegacy)
	default:
		table, err := atoms.ReadTable(r)
		if err != nil {
			return "", err
		}
		v, err := bytecode.NewDecoder(r, table).ReadValue()
		if err != nil {
			return "", err
		}
		return renderValue(v, opts, table, opcode.Decode)
	}
}

func renderValue(
	v bytecode.Value,
	opts Options,
	table *atoms.Table,
	decode func([]byte) ([]opcode.Instr, error),
) (string, error) {
	funcs := bytecode.CollectFunctionsEntryFirst(v)
	if len(funcs) == 0 {
		return v.String(), nil
	}
	return decompileFunctions(funcs, opts, table, decode)
}

func decompileFunctions(
	funcs []*bytecode.FunctionBytecode,
	opts Options,
	table *atoms.Table,
	decode func([]byte) ([]opcode.Instr, error),
) (string, error) {
	var out strings.Builder
	for idx, fn := range funcs {
		instrs, err := decode(fn.Bytecode)
		if err != nil {
			return "", err
		}
		funcName := displayFuncName(opts.Deobfuscate, fn, idx)

		var s string
		if opts.Mode == ModeDisasm {
			s = disassemble(fn, table, instrs, funcName)
		} else {
			s, err = pseudoDecompile(fn, table, instrs, funcName, opts.Optimize, opts.Deobfuscate)
			if err != nil {
				// Pseudo output is best-effort; keep the failure visible in
				// place of the function body.
				s = fmt.Sprintf("// Pseudo decompilation error: %v\n", err)
			}
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(s)
	}
	return out.String(), nil
}
