// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package decompiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dotandev/dqjs/internal/atoms"
	"github.com/dotandev/dqjs/internal/bytecode"
)

// sanitizeIdent rewrites s into a safe identifier: the first character must
// be an ASCII letter, underscore or dollar, later characters may add digits,
// and everything else becomes an underscore.
func sanitizeIdent(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(s))
	for i, ch := range s {
		ok := ch == '_' || ch == '$' ||
			(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
			(i > 0 && ch >= '0' && ch <= '9')
		if ok {
			b.WriteRune(ch)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// displayFuncName names a function for output. Anonymous functions get a
// synthetic closure name under deobfuscation; unresolved raw atoms render
// as atom_N either way.
func displayFuncName(deobfuscate bool, fn *bytecode.FunctionBytecode, idx int) string {
	if deobfuscate && fn.FuncName.IsNull() {
		return fmt.Sprintf("closure_%d", idx)
	}
	name := fn.FuncName.String()
	if rest, ok := strings.CutPrefix(name, "<atom:"); ok {
		if num, ok := strings.CutSuffix(rest, ">"); ok {
			if n, err := strconv.ParseUint(num, 10, 32); err == nil {
				return fmt.Sprintf("atom_%d", n)
			}
		}
	}
	return name
}

func locName(idx uint16) string {
	return fmt.Sprintf("loc%d", idx)
}

// argName resolves an argument slot through the locals table when possible.
func argName(fn *bytecode.FunctionBytecode, idx uint16) string {
	if int(idx) < len(fn.Locals) {
		return fn.Locals[idx].Name.String()
	}
	return fmt.Sprintf("arg%d", idx)
}

// varRefName resolves a closure-variable slot to its captured name,
// sanitized, falling back to a positional name.
func varRefName(fn *bytecode.FunctionBytecode, idx uint16) string {
	if int(idx) < len(fn.ClosureVars) {
		a := fn.ClosureVars[idx].Name
		var raw string
		switch a.Kind {
		case atoms.KindNull:
			raw = ""
		case atoms.KindString:
			raw = a.Str
		default:
			raw = a.String()
		}
		if raw != "" {
			if s := sanitizeIdent(raw); s != "_" {
				return s
			}
		}
	}
	return fmt.Sprintf("var_ref%d", idx)
}

// closureName names the function a fclosure operand loads from the
// constant pool.
func closureName(deobfuscate bool, fn *bytecode.FunctionBytecode, idx uint16) string {
	if int(idx) < len(fn.Cpool) {
		if closure, ok := fn.Cpool[idx].(*bytecode.FunctionBytecode); ok {
			return displayFuncName(deobfuscate, closure, int(idx))
		}
	}
	return fmt.Sprintf("<fclosure%d>", idx)
}
