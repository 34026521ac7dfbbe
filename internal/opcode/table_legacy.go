// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package opcode

// legacyTable is the hand-maintained opcode descriptor list for the
// legacy dialect. Legacy opcode bytes index it directly.
var legacyTable = []OpInfo{
	{Name: "invalid", Size: 1, NPop: 0, NPush: 0, Fmt: FmtNone},
	{Name: "push_i32", Size: 5, NPop: 0, NPush: 1, Fmt: FmtI32},
	{Name: "push_const", Size: 5, NPop: 0, NPush: 1, Fmt: FmtConst},
	{Name: "fclosure", Size: 5, NPop: 0, NPush: 1, Fmt: FmtConst},
	{Name: "push_atom_value", Size: 5, NPop: 0, NPush: 1, Fmt: FmtAtom},
	{Name: "private_symbol", Size: 5, NPop: 0, NPush: 1, Fmt: FmtAtom},
	{Name: "undefined", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNone},
	{Name: "null", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNone},
	{Name: "push_this", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNone},
	{Name: "push_false", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNone},
	{Name: "push_true", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNone},
	{Name: "object", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNone},
	{Name: "special_object", Size: 2, NPop: 0, NPush: 1, Fmt: FmtU8},
	{Name: "rest", Size: 3, NPop: 0, NPush: 1, Fmt: FmtU16},
	{Name: "drop", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNone},
	{Name: "nip", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "nip1", Size: 1, NPop: 3, NPush: 2, Fmt: FmtNone},
	{Name: "dup", Size: 1, NPop: 1, NPush: 2, Fmt: FmtNone},
	{Name: "dup1", Size: 1, NPop: 2, NPush: 3, Fmt: FmtNone},
	{Name: "dup2", Size: 1, NPop: 2, NPush: 4, Fmt: FmtNone},
	{Name: "dup3", Size: 1, NPop: 3, NPush: 6, Fmt: FmtNone},
	{Name: "insert2", Size: 1, NPop: 2, NPush: 3, Fmt: FmtNone},
	{Name: "insert3", Size: 1, NPop: 3, NPush: 4, Fmt: FmtNone},
	{Name: "insert4", Size: 1, NPop: 4, NPush: 5, Fmt: FmtNone},
	{Name: "perm3", Size: 1, NPop: 3, NPush: 3, Fmt: FmtNone},
	{Name: "perm4", Size: 1, NPop: 4, NPush: 4, Fmt: FmtNone},
	{Name: "perm5", Size: 1, NPop: 5, NPush: 5, Fmt: FmtNone},
	{Name: "swap", Size: 1, NPop: 2, NPush: 2, Fmt: FmtNone},
	{Name: "swap2", Size: 1, NPop: 4, NPush: 4, Fmt: FmtNone},
	{Name: "rot3l", Size: 1, NPop: 3, NPush: 3, Fmt: FmtNone},
	{Name: "rot3r", Size: 1, NPop: 3, NPush: 3, Fmt: FmtNone},
	{Name: "rot4l", Size: 1, NPop: 4, NPush: 4, Fmt: FmtNone},
	{Name: "rot5l", Size: 1, NPop: 5, NPush: 5, Fmt: FmtNone},
	{Name: "call_constructor", Size: 3, NPop: 2, NPush: 1, Fmt: FmtNPop},
	{Name: "call", Size: 3, NPop: 1, NPush: 1, Fmt: FmtNPop},
	{Name: "tail_call", Size: 3, NPop: 1, NPush: 0, Fmt: FmtNPop},
	{Name: "call_method", Size: 3, NPop: 2, NPush: 1, Fmt: FmtNPop},
	{Name: "tail_call_method", Size: 3, NPop: 2, NPush: 0, Fmt: FmtNPop},
	{Name: "array_from", Size: 3, NPop: 0, NPush: 1, Fmt: FmtNPop},
	{Name: "apply", Size: 3, NPop: 3, NPush: 1, Fmt: FmtU16},
	{Name: "return", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNone},
	{Name: "return_undef", Size: 1, NPop: 0, NPush: 0, Fmt: FmtNone},
	{Name: "check_ctor_return", Size: 1, NPop: 1, NPush: 2, Fmt: FmtNone},
	{Name: "check_ctor", Size: 1, NPop: 0, NPush: 0, Fmt: FmtNone},
	{Name: "check_brand", Size: 1, NPop: 2, NPush: 2, Fmt: FmtNone},
	{Name: "add_brand", Size: 1, NPop: 2, NPush: 0, Fmt: FmtNone},
	{Name: "return_async", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNone},
	{Name: "throw", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNone},
	{Name: "throw_error", Size: 6, NPop: 0, NPush: 0, Fmt: FmtAtomU8},
	{Name: "eval", Size: 5, NPop: 1, NPush: 1, Fmt: FmtNPopU16},
	{Name: "apply_eval", Size: 3, NPop: 2, NPush: 1, Fmt: FmtU16},
	{Name: "regexp", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "get_super", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "import", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "check_var", Size: 5, NPop: 0, NPush: 1, Fmt: FmtAtom},
	{Name: "get_var_undef", Size: 5, NPop: 0, NPush: 1, Fmt: FmtAtom},
	{Name: "get_var", Size: 5, NPop: 0, NPush: 1, Fmt: FmtAtom},
	{Name: "put_var", Size: 5, NPop: 1, NPush: 0, Fmt: FmtAtom},
	{Name: "put_var_init", Size: 5, NPop: 1, NPush: 0, Fmt: FmtAtom},
	{Name: "put_var_strict", Size: 5, NPop: 2, NPush: 0, Fmt: FmtAtom},
	{Name: "get_ref_value", Size: 1, NPop: 2, NPush: 3, Fmt: FmtNone},
	{Name: "put_ref_value", Size: 1, NPop: 3, NPush: 0, Fmt: FmtNone},
	{Name: "define_var", Size: 6, NPop: 0, NPush: 0, Fmt: FmtAtomU8},
	{Name: "check_define_var", Size: 6, NPop: 0, NPush: 0, Fmt: FmtAtomU8},
	{Name: "define_func", Size: 6, NPop: 1, NPush: 0, Fmt: FmtAtomU8},
	{Name: "get_field", Size: 5, NPop: 1, NPush: 1, Fmt: FmtAtom},
	{Name: "get_field2", Size: 5, NPop: 1, NPush: 2, Fmt: FmtAtom},
	{Name: "put_field", Size: 5, NPop: 2, NPush: 0, Fmt: FmtAtom},
	{Name: "get_private_field", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "put_private_field", Size: 1, NPop: 3, NPush: 0, Fmt: FmtNone},
	{Name: "define_private_field", Size: 1, NPop: 3, NPush: 1, Fmt: FmtNone},
	{Name: "get_array_el", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "get_array_el2", Size: 1, NPop: 2, NPush: 2, Fmt: FmtNone},
	{Name: "put_array_el", Size: 1, NPop: 3, NPush: 0, Fmt: FmtNone},
	{Name: "get_super_value", Size: 1, NPop: 3, NPush: 1, Fmt: FmtNone},
	{Name: "put_super_value", Size: 1, NPop: 4, NPush: 0, Fmt: FmtNone},
	{Name: "define_field", Size: 5, NPop: 2, NPush: 1, Fmt: FmtAtom},
	{Name: "set_name", Size: 5, NPop: 1, NPush: 1, Fmt: FmtAtom},
	{Name: "set_name_computed", Size: 1, NPop: 2, NPush: 2, Fmt: FmtNone},
	{Name: "set_proto", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "set_home_object", Size: 1, NPop: 2, NPush: 2, Fmt: FmtNone},
	{Name: "define_array_el", Size: 1, NPop: 3, NPush: 2, Fmt: FmtNone},
	{Name: "append", Size: 1, NPop: 3, NPush: 2, Fmt: FmtNone},
	{Name: "copy_data_properties", Size: 2, NPop: 3, NPush: 3, Fmt: FmtU8},
	{Name: "define_method", Size: 6, NPop: 2, NPush: 1, Fmt: FmtAtomU8},
	{Name: "define_method_computed", Size: 2, NPop: 3, NPush: 1, Fmt: FmtU8},
	{Name: "define_class", Size: 6, NPop: 2, NPush: 2, Fmt: FmtAtomU8},
	{Name: "define_class_computed", Size: 6, NPop: 3, NPush: 3, Fmt: FmtAtomU8},
	{Name: "get_loc", Size: 3, NPop: 0, NPush: 1, Fmt: FmtLoc},
	{Name: "put_loc", Size: 3, NPop: 1, NPush: 0, Fmt: FmtLoc},
	{Name: "set_loc", Size: 3, NPop: 1, NPush: 1, Fmt: FmtLoc},
	{Name: "get_arg", Size: 3, NPop: 0, NPush: 1, Fmt: FmtArg},
	{Name: "put_arg", Size: 3, NPop: 1, NPush: 0, Fmt: FmtArg},
	{Name: "set_arg", Size: 3, NPop: 1, NPush: 1, Fmt: FmtArg},
	{Name: "get_var_ref", Size: 3, NPop: 0, NPush: 1, Fmt: FmtVarRef},
	{Name: "put_var_ref", Size: 3, NPop: 1, NPush: 0, Fmt: FmtVarRef},
	{Name: "set_var_ref", Size: 3, NPop: 1, NPush: 1, Fmt: FmtVarRef},
	{Name: "set_loc_uninitialized", Size: 3, NPop: 0, NPush: 0, Fmt: FmtLoc},
	{Name: "get_loc_check", Size: 3, NPop: 0, NPush: 1, Fmt: FmtLoc},
	{Name: "put_loc_check", Size: 3, NPop: 1, NPush: 0, Fmt: FmtLoc},
	{Name: "put_loc_check_init", Size: 3, NPop: 1, NPush: 0, Fmt: FmtLoc},
	{Name: "get_var_ref_check", Size: 3, NPop: 0, NPush: 1, Fmt: FmtVarRef},
	{Name: "put_var_ref_check", Size: 3, NPop: 1, NPush: 0, Fmt: FmtVarRef},
	{Name: "put_var_ref_check_init", Size: 3, NPop: 1, NPush: 0, Fmt: FmtVarRef},
	{Name: "close_loc", Size: 3, NPop: 0, NPush: 0, Fmt: FmtLoc},
	{Name: "if_false", Size: 5, NPop: 1, NPush: 0, Fmt: FmtLabel},
	{Name: "if_true", Size: 5, NPop: 1, NPush: 0, Fmt: FmtLabel},
	{Name: "goto", Size: 5, NPop: 0, NPush: 0, Fmt: FmtLabel},
	{Name: "catch", Size: 5, NPop: 0, NPush: 1, Fmt: FmtLabel},
	{Name: "gosub", Size: 5, NPop: 0, NPush: 0, Fmt: FmtLabel},
	{Name: "ret", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNone},
	{Name: "to_object", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "to_propkey", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "to_propkey2", Size: 1, NPop: 2, NPush: 2, Fmt: FmtNone},
	{Name: "with_get_var", Size: 10, NPop: 1, NPush: 0, Fmt: FmtAtomLabelU8},
	{Name: "with_put_var", Size: 10, NPop: 2, NPush: 1, Fmt: FmtAtomLabelU8},
	{Name: "with_delete_var", Size: 10, NPop: 1, NPush: 0, Fmt: FmtAtomLabelU8},
	{Name: "with_make_ref", Size: 10, NPop: 1, NPush: 0, Fmt: FmtAtomLabelU8},
	{Name: "with_get_ref", Size: 10, NPop: 1, NPush: 0, Fmt: FmtAtomLabelU8},
	{Name: "with_get_ref_undef", Size: 10, NPop: 1, NPush: 0, Fmt: FmtAtomLabelU8},
	{Name: "make_loc_ref", Size: 7, NPop: 0, NPush: 2, Fmt: FmtAtomU16},
	{Name: "make_arg_ref", Size: 7, NPop: 0, NPush: 2, Fmt: FmtAtomU16},
	{Name: "make_var_ref_ref", Size: 7, NPop: 0, NPush: 2, Fmt: FmtAtomU16},
	{Name: "make_var_ref", Size: 5, NPop: 0, NPush: 2, Fmt: FmtAtom},
	{Name: "for_in_start", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "for_of_start", Size: 1, NPop: 1, NPush: 3, Fmt: FmtNone},
	{Name: "for_await_of_start", Size: 1, NPop: 1, NPush: 3, Fmt: FmtNone},
	{Name: "for_in_next", Size: 1, NPop: 1, NPush: 3, Fmt: FmtNone},
	{Name: "for_of_next", Size: 2, NPop: 3, NPush: 5, Fmt: FmtU8},
	{Name: "iterator_check_object", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "iterator_get_value_done", Size: 1, NPop: 1, NPush: 2, Fmt: FmtNone},
	{Name: "iterator_close", Size: 1, NPop: 3, NPush: 0, Fmt: FmtNone},
	{Name: "iterator_close_return", Size: 1, NPop: 4, NPush: 4, Fmt: FmtNone},
	{Name: "iterator_next", Size: 1, NPop: 4, NPush: 4, Fmt: FmtNone},
	{Name: "iterator_call", Size: 2, NPop: 4, NPush: 5, Fmt: FmtU8},
	{Name: "initial_yield", Size: 1, NPop: 0, NPush: 0, Fmt: FmtNone},
	{Name: "yield", Size: 1, NPop: 1, NPush: 2, Fmt: FmtNone},
	{Name: "yield_star", Size: 1, NPop: 1, NPush: 2, Fmt: FmtNone},
	{Name: "async_yield_star", Size: 1, NPop: 1, NPush: 2, Fmt: FmtNone},
	{Name: "await", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "neg", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "plus", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "dec", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "inc", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "post_dec", Size: 1, NPop: 1, NPush: 2, Fmt: FmtNone},
	{Name: "post_inc", Size: 1, NPop: 1, NPush: 2, Fmt: FmtNone},
	{Name: "dec_loc", Size: 2, NPop: 0, NPush: 0, Fmt: FmtLoc8},
	{Name: "inc_loc", Size: 2, NPop: 0, NPush: 0, Fmt: FmtLoc8},
	{Name: "add_loc", Size: 2, NPop: 1, NPush: 0, Fmt: FmtLoc8},
	{Name: "not", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "lnot", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "typeof", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "delete", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "delete_var", Size: 5, NPop: 0, NPush: 1, Fmt: FmtAtom},
	{Name: "mul", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "div", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "mod", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "add", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "sub", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "pow", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "shl", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "sar", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "shr", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "lt", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "lte", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "gt", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "gte", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "instanceof", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "in", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "eq", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "neq", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "strict_eq", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "strict_neq", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "and", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "xor", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "or", Size: 1, NPop: 2, NPush: 1, Fmt: FmtNone},
	{Name: "is_undefined_or_null", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "nop", Size: 1, NPop: 0, NPush: 0, Fmt: FmtNone},
	{Name: "push_minus1", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneInt},
	{Name: "push_0", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneInt},
	{Name: "push_1", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneInt},
	{Name: "push_2", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneInt},
	{Name: "push_3", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneInt},
	{Name: "push_4", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneInt},
	{Name: "push_5", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneInt},
	{Name: "push_6", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneInt},
	{Name: "push_7", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneInt},
	{Name: "push_i8", Size: 2, NPop: 0, NPush: 1, Fmt: FmtI8},
	{Name: "push_i16", Size: 3, NPop: 0, NPush: 1, Fmt: FmtI16},
	{Name: "push_const8", Size: 2, NPop: 0, NPush: 1, Fmt: FmtConst8},
	{Name: "fclosure8", Size: 2, NPop: 0, NPush: 1, Fmt: FmtConst8},
	{Name: "push_empty_string", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNone},
	{Name: "get_loc8", Size: 2, NPop: 0, NPush: 1, Fmt: FmtLoc8},
	{Name: "put_loc8", Size: 2, NPop: 1, NPush: 0, Fmt: FmtLoc8},
	{Name: "set_loc8", Size: 2, NPop: 1, NPush: 1, Fmt: FmtLoc8},
	{Name: "get_loc0", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneLoc},
	{Name: "get_loc1", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneLoc},
	{Name: "get_loc2", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneLoc},
	{Name: "get_loc3", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneLoc},
	{Name: "put_loc0", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneLoc},
	{Name: "put_loc1", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneLoc},
	{Name: "put_loc2", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneLoc},
	{Name: "put_loc3", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneLoc},
	{Name: "set_loc0", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneLoc},
	{Name: "set_loc1", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneLoc},
	{Name: "set_loc2", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneLoc},
	{Name: "set_loc3", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneLoc},
	{Name: "get_arg0", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneArg},
	{Name: "get_arg1", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneArg},
	{Name: "get_arg2", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneArg},
	{Name: "get_arg3", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneArg},
	{Name: "put_arg0", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneArg},
	{Name: "put_arg1", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneArg},
	{Name: "put_arg2", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneArg},
	{Name: "put_arg3", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneArg},
	{Name: "set_arg0", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneArg},
	{Name: "set_arg1", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneArg},
	{Name: "set_arg2", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneArg},
	{Name: "set_arg3", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneArg},
	{Name: "get_var_ref0", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneVarRef},
	{Name: "get_var_ref1", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneVarRef},
	{Name: "get_var_ref2", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneVarRef},
	{Name: "get_var_ref3", Size: 1, NPop: 0, NPush: 1, Fmt: FmtNoneVarRef},
	{Name: "put_var_ref0", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneVarRef},
	{Name: "put_var_ref1", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneVarRef},
	{Name: "put_var_ref2", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneVarRef},
	{Name: "put_var_ref3", Size: 1, NPop: 1, NPush: 0, Fmt: FmtNoneVarRef},
	{Name: "set_var_ref0", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneVarRef},
	{Name: "set_var_ref1", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneVarRef},
	{Name: "set_var_ref2", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneVarRef},
	{Name: "set_var_ref3", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNoneVarRef},
	{Name: "get_length", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "if_false8", Size: 2, NPop: 1, NPush: 0, Fmt: FmtLabel8},
	{Name: "if_true8", Size: 2, NPop: 1, NPush: 0, Fmt: FmtLabel8},
	{Name: "goto8", Size: 2, NPop: 0, NPush: 0, Fmt: FmtLabel8},
	{Name: "goto16", Size: 3, NPop: 0, NPush: 0, Fmt: FmtLabel16},
	{Name: "call0", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNPopX},
	{Name: "call1", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNPopX},
	{Name: "call2", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNPopX},
	{Name: "call3", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNPopX},
	{Name: "is_undefined", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "is_null", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "typeof_is_undefined", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
	{Name: "typeof_is_function", Size: 1, NPop: 1, NPush: 1, Fmt: FmtNone},
}
