// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package bytecode

// CollectFunctions walks the value tree in depth-first pre-order and
// returns every embedded function record: a function first, then the
// functions inside its constant pool.
func CollectFunctions(v Value) []*FunctionBytecode {
	var out []*FunctionBytecode
	collect(v, &out)
	return out
}

func collect(v Value, out *[]*FunctionBytecode) {
	switch n := v.(type) {
	case *FunctionBytecode:
		*out = append(*out, n)
		for _, c := range n.Cpool {
			collect(c, out)
		}
	case Array:
		for _, item := range n.Items {
			collect(item, out)
		}
	case Object:
		for _, p := range n.Props {
			collect(p.Value, out)
		}
	case Module:
		collect(n.Func, out)
	case TypedArray:
		collect(n.Buffer, out)
	case Date:
		collect(n.Value, out)
	}
}

// ModuleEntryFunction returns the entry function when the top-level value
// is a module wrapping a function record.
func ModuleEntryFunction(v Value) *FunctionBytecode {
	m, ok := v.(Module)
	if !ok {
		return nil
	}
	fn, ok := m.Func.(*FunctionBytecode)
	if !ok {
		return nil
	}
	return fn
}

// CollectFunctionsEntryFirst collects every function and moves the module
// entry function, if any, to the front.
func CollectFunctionsEntryFirst(v Value) []*FunctionBytecode {
	funcs := CollectFunctions(v)
	entry := ModuleEntryFunction(v)
	if entry == nil {
		return funcs
	}
	ordered := make([]*FunctionBytecode, 0, len(funcs))
	ordered = append(ordered, entry)
	for _, f := range funcs {
		if f != entry {
			ordered = append(ordered, f)
		}
	}
	return ordered
}
