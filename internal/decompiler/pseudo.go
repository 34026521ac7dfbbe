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

// pseudoEmitter symbolically executes one function over a per-block operand
// stack of string expressions, producing a flat statement list. The stack
// does not flow across blocks; every block starts empty.
type pseudoEmitter struct {
	fn          *bytecode.FunctionBytecode
	atoms       *atoms.Table
	deobfuscate bool
	stack       []string
	stmts       []Stmt
}

func (e *pseudoEmitter) push(s string) {
	e.stack = append(e.stack, s)
}

func (e *pseudoEmitter) pop(fallback string) string {
	if len(e.stack) == 0 {
		return fallback
	}
	v := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v
}

func (e *pseudoEmitter) top(fallback string) string {
	if len(e.stack) == 0 {
		return fallback
	}
	return e.stack[len(e.stack)-1]
}

func (e *pseudoEmitter) emitStmt(s Stmt) {
	e.stmts = append(e.stmts, s)
}

// resolveAtomInline resolves an atom operand for statement emission,
// degrading to an inline comment on failure because pseudo output is
// best-effort.
func (e *pseudoEmitter) resolveAtomInline(idx uint32) string {
	a, err := e.atoms.Resolve(idx)
	if err != nil {
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("// Atom resolution error: %v", err)})
		return "<invalid_atom>"
	}
	return a.String()
}

// suffixIndex parses names like put_loc3 into (3, true).
func suffixIndex(name, prefix string) (uint16, bool) {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	var n uint32
	for _, ch := range rest {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + uint32(ch-'0')
		if n > 0xffff {
			return 0, false
		}
	}
	return uint16(n), true
}

func binaryOp(name string) (string, bool) {
	switch name {
	case "add":
		return "+", true
	case "sub":
		return "-", true
	case "mul":
		return "*", true
	case "div":
		return "/", true
	case "mod":
		return "%", true
	case "and":
		return "&", true
	case "or":
		return "|", true
	case "xor":
		return "^", true
	case "shl":
		return "<<", true
	case "sar":
		return ">>", true
	case "shr":
		return ">>>", true
	case "eq":
		return "==", true
	case "neq":
		return "!=", true
	case "strict_eq":
		return "===", true
	case "strict_neq":
		return "!==", true
	case "lt":
		return "<", true
	case "lte":
		return "<=", true
	case "gt":
		return ">", true
	case "gte":
		return ">=", true
	}
	return "", false
}

func (e *pseudoEmitter) emit(ins opcode.Instr) error {
	if op, ok := binaryOp(ins.Name); ok {
		rhs := e.pop("<rhs>")
		lhs := e.pop("<lhs>")
		e.push(fmt.Sprintf("(%s %s %s)", lhs, op, rhs))
		return nil
	}

	switch ins.Name {
	case "push_i8", "push_i16", "push_i32":
		e.push(fmt.Sprintf("%d", ins.Operand.I))
	case "push_u8", "push_u16", "push_u32":
		e.push(fmt.Sprintf("%d", ins.Operand.U))
	case "push_minus1":
		e.push("-1")
	case "push_true":
		e.push("true")
	case "push_false":
		e.push("false")
	case "push_this":
		e.push("this")
	case "push_empty_string":
		e.push(`""`)
	case "undefined":
		e.push("undefined")
	case "null":
		e.push("null")
	case "push_const", "push_const8":
		idx := ins.Operand.U
		if int(idx) < len(e.fn.Cpool) {
			e.push(e.fn.Cpool[idx].String())
		} else {
			e.push(fmt.Sprintf("<const:%d>", idx))
		}
	case "push_atom_value":
		a, err := e.atoms.Resolve(ins.Operand.U)
		if err != nil {
			return err
		}
		if a.Kind == atoms.KindString {
			e.push(fmt.Sprintf("%q", a.Str))
		} else {
			e.push(a.String())
		}
	case "fclosure", "fclosure8":
		e.push(closureName(e.deobfuscate, e.fn, uint16(ins.Operand.U)))
	case "get_loc0_loc1":
		e.push(locName(0))
		e.push(locName(1))
	case "get_arg":
		e.push(argName(e.fn, uint16(ins.Operand.U)))
	case "get_loc", "get_loc8", "get_loc_check":
		e.push(locName(uint16(ins.Operand.U)))
	case "get_var_ref", "get_var_ref_check":
		e.push(varRefName(e.fn, uint16(ins.Operand.U)))
	case "set_var_ref", "set_var_ref_check":
		rhs := e.pop("<rhs>")
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s = %s", varRefName(e.fn, uint16(ins.Operand.U)), rhs)})
		e.push(rhs)
	case "put_var_ref", "put_var_ref_check", "put_var_ref_check_init":
		rhs := e.pop("<rhs>")
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s = %s", varRefName(e.fn, uint16(ins.Operand.U)), rhs)})
	case "drop":
		e.pop("")
	case "dup":
		e.push(e.top("<dup>"))
	case "swap":
		if n := len(e.stack); n >= 2 {
			e.stack[n-1], e.stack[n-2] = e.stack[n-2], e.stack[n-1]
		}
	case "nip":
		if n := len(e.stack); n >= 2 {
			e.stack = append(e.stack[:n-2], e.stack[n-1])
		}
	case "post_inc":
		value := e.pop("<value>")
		e.push(value)
		e.push(fmt.Sprintf("%s + 1", value))
	case "is_undefined":
		val := e.pop("<val>")
		e.push(fmt.Sprintf("%s === undefined", val))
	case "to_object":
		val := e.pop("<val>")
		e.push(fmt.Sprintf("Object(%s)", val))
	case "to_propkey2":
		val2 := e.pop("<val2>")
		val1 := e.pop("<val1>")
		e.push(fmt.Sprintf("String(%s)", val1))
		e.push(fmt.Sprintf("String(%s)", val2))
	case "inc_loc":
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s++", locName(uint16(ins.Operand.U)))})
	case "dec_loc":
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s--", locName(uint16(ins.Operand.U)))})
	case "regexp":
		flags := e.pop("<flags>")
		pattern := e.pop("<pattern>")
		if strings.HasPrefix(flags, `"`) && strings.HasSuffix(flags, `"`) && len(flags) < 20 && !strings.Contains(flags, `\u`) {
			e.push(fmt.Sprintf("new RegExp(%s, %s)", pattern, flags))
		} else {
			e.push(fmt.Sprintf("new RegExp(%s)", pattern))
		}
	case "in":
		prop := e.pop("<prop>")
		obj := e.pop("<obj>")
		e.push(fmt.Sprintf("(%s in %s)", prop, obj))
	case "object":
		e.push("{}")
	case "special_object":
		e.push(fmt.Sprintf("<special_object_%d>", ins.Operand.U))
	case "instanceof":
		ctor := e.pop("<constructor>")
		obj := e.pop("<obj>")
		e.push(fmt.Sprintf("(%s instanceof %s)", obj, ctor))
	case "typeof":
		value := e.pop("<value>")
		e.push(fmt.Sprintf("typeof %s", value))
	case "define_field":
		value := e.pop("<value>")
		obj := e.pop("<obj>")
		prop := e.resolveAtomInline(ins.Operand.U)
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s.%s = %s", obj, prop, value)})
		e.push(obj)
	case "set_name":
		obj := e.pop("<obj>")
		name := e.resolveAtomInline(ins.Operand.U)
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s.name = %q", obj, name)})
		e.push(obj)
	case "define_class":
		parent := e.pop("<parent_ctor>")
		name := e.resolveAtomInline(ins.Operand.U)
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("class %s extends %s", name, parent)})
		e.push("<ctor>")
		e.push("<proto>")
	case "define_method":
		method := e.pop("<method>")
		obj := e.pop("<obj>")
		name := e.resolveAtomInline(ins.Operand.U)
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s.%s = %s", obj, name, method)})
		e.push(obj)
	case "close_loc":
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("close %s", locName(uint16(ins.Operand.U)))})
	case "check_ctor":
		e.emitStmt(ExprStmt{Text: "check_ctor"})
	case "not":
		v := e.pop("<v>")
		e.push(fmt.Sprintf("(~%s)", v))
	case "lnot":
		v := e.pop("<v>")
		e.push(fmt.Sprintf("(!%s)", v))
	case "call", "tail_call", "call_method", "tail_call_method", "call_constructor", "array_from":
		e.emitCall(int(ins.Operand.U))
	case "put_loc", "put_loc8", "put_loc_check":
		rhs := e.pop("<rhs>")
		e.emitStmt(AssignStmt{LHS: locName(uint16(ins.Operand.U)), RHS: rhs})
	case "set_loc", "set_loc8":
		rhs := e.top("<rhs>")
		e.emitStmt(AssignStmt{LHS: locName(uint16(ins.Operand.U)), RHS: rhs})
	case "set_loc_uninitialized":
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s = undefined", locName(uint16(ins.Operand.U)))})
	case "put_arg":
		rhs := e.pop("<rhs>")
		e.emitStmt(AssignStmt{LHS: argName(e.fn, uint16(ins.Operand.U)), RHS: rhs})
	case "set_arg":
		rhs := e.top("<rhs>")
		e.emitStmt(AssignStmt{LHS: argName(e.fn, uint16(ins.Operand.U)), RHS: rhs})
	case "get_var", "get_var_undef":
		a, err := e.atoms.Resolve(ins.Operand.U)
		if err != nil {
			return err
		}
		e.push(a.String())
	case "put_var", "put_var_init":
		rhs := e.pop("<rhs>")
		a, err := e.atoms.Resolve(ins.Operand.U)
		if err != nil {
			return err
		}
		e.emitStmt(AssignStmt{LHS: a.String(), RHS: rhs})
	case "get_field", "get_field2":
		a, err := e.atoms.Resolve(ins.Operand.U)
		if err != nil {
			return err
		}
		obj := e.pop("<obj>")
		e.push(fmt.Sprintf("%s.%s", obj, a))
	case "put_field":
		rhs := e.pop("<rhs>")
		obj := e.pop("<obj>")
		a, err := e.atoms.Resolve(ins.Operand.U)
		if err != nil {
			return err
		}
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s.%s = %s", obj, a, rhs)})
	case "get_array_el", "get_array_el2":
		prop := e.pop("<prop>")
		obj := e.pop("<obj>")
		value := fmt.Sprintf("%s[%s]", obj, prop)
		if ins.Name == "get_array_el2" {
			e.push(obj)
		}
		e.push(value)
	case "put_array_el":
		rhs := e.pop("<rhs>")
		index := e.pop("<index>")
		obj := e.pop("<obj>")
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s[%s] = %s", obj, index, rhs)})
	case "get_length":
		obj := e.pop("<obj>")
		e.push(fmt.Sprintf("%s.length", obj))
	case "return":
		e.emitStmt(ReturnStmt{Value: e.pop("undefined"), HasValue: true})
	case "return_undef":
		e.emitStmt(ReturnStmt{})
	case "ret":
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("ret %s", e.pop("undefined"))})
	case "throw":
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("throw %s", e.pop("<value>"))})
	case "if_false", "if_true", "if_false8", "if_true8":
		cond := e.pop("<cond>")
		target, _ := opcode.LabelTarget(ins)
		e.emitStmt(CondGotoStmt{
			Cond:    cond,
			IfFalse: strings.Contains(ins.Name, "false"),
			Target:  target,
		})
	case "goto", "goto8", "goto16":
		target, _ := opcode.LabelTarget(ins)
		e.emitStmt(GotoStmt{Target: target})
	case "gosub":
		target, _ := opcode.LabelTarget(ins)
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("gosub L%d", target)})
	case "catch":
		e.push("<exception>")
	case "for_of_start":
		e.pop("")
		e.push("<iterator>")
		e.push("<method>")
		e.push("<done>")
	case "for_of_next":
		done := e.pop("<done>")
		method := e.pop("<method>")
		iterator := e.pop("<iterator>")
		e.push(iterator)
		e.push(method)
		e.push(done)
		e.push("<value>")
		e.push("<done>")
	case "iterator_close":
		e.pop("")
		e.pop("")
		e.pop("")
	case "insert2":
		a := e.pop("<a>")
		obj := e.pop("<obj>")
		e.push(a)
		e.push(obj)
		e.push(a)
	case "insert3":
		a := e.pop("<a>")
		prop := e.pop("<prop>")
		obj := e.pop("<obj>")
		e.push(a)
		e.push(obj)
		e.push(prop)
		e.push(a)
	case "insert4":
		a := e.pop("<a>")
		prop := e.pop("<prop>")
		obj := e.pop("<obj>")
		this := e.pop("<this>")
		e.push(a)
		e.push(this)
		e.push(obj)
		e.push(prop)
		e.push(a)
	default:
		return e.emitPattern(ins)
	}
	return nil
}

// emitPattern handles the numeric-suffix opcode families the short opcode
// space expands (get_loc0..3 and friends), then falls back to a generic
// stack-effect placeholder.
func (e *pseudoEmitter) emitPattern(ins opcode.Instr) error {
	name := ins.Name
	if idx, ok := suffixIndex(name, "push_"); ok {
		e.push(fmt.Sprintf("%d", idx))
		return nil
	}
	if idx, ok := suffixIndex(name, "get_arg"); ok {
		e.push(argName(e.fn, idx))
		return nil
	}
	if idx, ok := suffixIndex(name, "get_loc"); ok {
		e.push(locName(idx))
		return nil
	}
	if idx, ok := suffixIndex(name, "get_var_ref"); ok {
		e.push(varRefName(e.fn, idx))
		return nil
	}
	if idx, ok := suffixIndex(name, "set_var_ref"); ok {
		rhs := e.pop("<rhs>")
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s = %s", varRefName(e.fn, idx), rhs)})
		e.push(rhs)
		return nil
	}
	if idx, ok := suffixIndex(name, "put_var_ref"); ok {
		rhs := e.pop("<rhs>")
		e.emitStmt(ExprStmt{Text: fmt.Sprintf("%s = %s", varRefName(e.fn, idx), rhs)})
		return nil
	}
	if idx, ok := suffixIndex(name, "put_loc"); ok {
		rhs := e.pop("<rhs>")
		e.emitStmt(AssignStmt{LHS: locName(idx), RHS: rhs})
		return nil
	}
	if idx, ok := suffixIndex(name, "set_loc"); ok {
		rhs := e.top("<rhs>")
		e.emitStmt(AssignStmt{LHS: locName(idx), RHS: rhs})
		return nil
	}
	if idx, ok := suffixIndex(name, "put_arg"); ok {
		rhs := e.pop("<rhs>")
		e.emitStmt(AssignStmt{LHS: argName(e.fn, idx), RHS: rhs})
		return nil
	}
	if idx, ok := suffixIndex(name, "set_arg"); ok {
		rhs := e.top("<rhs>")
		e.emitStmt(AssignStmt{LHS: argName(e.fn, idx), RHS: rhs})
		return nil
	}
	if argc, ok := suffixIndex(name, "call"); ok {
		e.emitCall(int(argc))
		return nil
	}

	// Unknown opcode: honor its declared stack effect and leave a marker.
	for i := 0; i < int(ins.NPop); i++ {
		e.pop("")
	}
	placeholder := fmt.Sprintf("<%s>", name)
	for i := 0; i < int(ins.NPush); i++ {
		e.push(placeholder)
	}
	e.emitStmt(ExprStmt{Text: placeholder})
	return nil
}

func (e *pseudoEmitter) emitCall(argc int) {
	args := make([]string, argc)
	for i := argc - 1; i >= 0; i-- {
		args[i] = e.pop("<arg>")
	}
	callee := e.pop("<func>")
	e.push(fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")))
}

// pseudoDecompile renders one function as best-effort pseudo source.
func pseudoDecompile(
	fn *bytecode.FunctionBytecode,
	table *atoms.Table,
	instrs []opcode.Instr,
	funcName string,
	optimize bool,
	deobfuscate bool,
) (string, error) {
	e := &pseudoEmitter{fn: fn, atoms: table, deobfuscate: deobfuscate}
	for _, blk := range BuildCFG(instrs) {
		e.emitStmt(LabelStmt{PC: blk.StartPC})
		e.stack = e.stack[:0]
		for _, ins := range blk.Instrs {
			if err := e.emit(ins); err != nil {
				return "", err
			}
		}
	}

	stmts := dropUnreferencedLabels(e.stmts)
	stmts = structureWhile(stmts)
	stmts = structureIfElse(stmts)
	stmts = dropUnreferencedLabels(stmts)

	if optimize {
		stmts = optimizeStmts(stmts)

		real := 0
		var lastReturn *ReturnStmt
		for _, s := range stmts {
			if _, ok := s.(LabelStmt); ok {
				continue
			}
			real++
			if r, ok := s.(ReturnStmt); ok {
				lastReturn = &r
			}
		}
		if real == 0 {
			return "", nil
		}
		if real == 1 && lastReturn != nil {
			if _, ok := stmts[len(stmts)-1].(ReturnStmt); ok {
				if lastReturn.HasValue {
					return fmt.Sprintf("function %s() { return %s; }\n", funcName, lastReturn.Value), nil
				}
				return fmt.Sprintf("function %s() { return; }\n", funcName), nil
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "function %s() {\n", funcName)
	b.WriteString(renderStmts(stmts, 2))
	b.WriteString("}\n")
	return b.String(), nil
}
