// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package bytecode

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/dqjs/internal/atoms"
	"github.com/dotandev/dqjs/internal/errors"
	"github.com/dotandev/dqjs/internal/reader"
)

func leb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}

func narrowString(s string) []byte {
	out := leb(uint32(len(s)) << 1)
	return append(out, s...)
}

func currentDecoder(payload []byte) *Decoder {
	table := &atoms.Table{FirstAtom: atoms.BuiltinEndID()}
	return NewDecoder(reader.New(payload), table)
}

func TestDecodePrimitives(t *testing.T) {
	cases := []struct {
		payload []byte
		want    Value
	}{
		{[]byte{1}, Null{}},
		{[]byte{2}, Undefined{}},
		{[]byte{3}, Bool{V: false}},
		{[]byte{4}, Bool{V: true}},
		{[]byte{5, 0x2a}, Int32{V: 42}},
	}
	for _, tc := range cases {
		v, err := currentDecoder(tc.payload).ReadValue()
		require.NoError(t, err)
		assert.Equal(t, tc.want, v)
	}
}

func TestDecodeFloat64(t *testing.T) {
	payload := append([]byte{6}, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x3f)
	v, err := currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	assert.Equal(t, Float64{V: 1.5}, v)
}

func TestDecodeString(t *testing.T) {
	payload := append([]byte{7}, narrowString("hello")...)
	v, err := currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	assert.Equal(t, String{V: "hello"}, v)
}

func TestDecodeObjectPreservesOrder(t *testing.T) {
	payload := []byte{8}
	payload = append(payload, leb(2)...)
	// Builtin atom 2 (shifted encoding 2<<1), then int 1.
	payload = append(payload, leb(2<<1)...)
	payload = append(payload, 5, 1)
	// Builtin atom 1, then int 2.
	payload = append(payload, leb(1<<1)...)
	payload = append(payload, 5, 2)

	v, err := currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	obj, ok := v.(Object)
	require.True(t, ok)
	require.Len(t, obj.Props, 2)
	assert.Equal(t, uint32(2), obj.Props[0].Name.ID)
	assert.Equal(t, uint32(1), obj.Props[1].Name.ID)
}

func TestDecodeArrayAndTemplate(t *testing.T) {
	payload := []byte{9}
	payload = append(payload, leb(2)...)
	payload = append(payload, 5, 1, 5, 2)
	v, err := currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	arr, ok := v.(Array)
	require.True(t, ok)
	assert.Len(t, arr.Items, 2)

	// A template object reads the same payload plus a trailing raw value.
	payload = []byte{11}
	payload = append(payload, leb(1)...)
	payload = append(payload, 5, 1) // item
	payload = append(payload, 1)    // trailing raw value: null
	v, err = currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	arr, ok = v.(Array)
	require.True(t, ok)
	assert.Len(t, arr.Items, 1)
}

func TestDecodeRegExp(t *testing.T) {
	payload := []byte{17}
	payload = append(payload, narrowString("a+")...)
	payload = append(payload, narrowString("")...)
	v, err := currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	re, ok := v.(RegExp)
	require.True(t, ok)
	assert.Equal(t, "a+", re.Pattern)
	assert.Equal(t, "<regexp:a+>", re.String())
}

func TestDecodeBigInt(t *testing.T) {
	payload := []byte{10}
	payload = append(payload, leb(3)...)
	payload = append(payload, 0x01, 0x02, 0x03)
	v, err := currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	bi, ok := v.(BigInt)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, bi.Bytes)
}

func TestDecodeArrayBufferReadsMaxLength(t *testing.T) {
	payload := []byte{15}
	payload = append(payload, leb(2)...)  // byte length
	payload = append(payload, leb(16)...) // max byte length, discarded
	payload = append(payload, 0xaa, 0xbb)
	v, err := currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	buf, ok := v.(ArrayBuffer)
	require.True(t, ok)
	assert.Equal(t, []byte{0xaa, 0xbb}, buf.Bytes)
}

func TestDecodeTypedArray(t *testing.T) {
	payload := []byte{14, 0x02}
	payload = append(payload, leb(4)...)
	payload = append(payload, leb(0)...)
	inner := []byte{15}
	inner = append(inner, leb(1)...)
	inner = append(inner, leb(1)...)
	inner = append(inner, 0xff)
	payload = append(payload, inner...)

	v, err := currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	ta, ok := v.(TypedArray)
	require.True(t, ok)
	assert.Equal(t, byte(2), ta.Kind)
	assert.Equal(t, uint32(4), ta.Len)
	_, ok = ta.Buffer.(ArrayBuffer)
	assert.True(t, ok)
}

func TestDecodeUnsupportedCurrentTags(t *testing.T) {
	for _, tag := range []byte{16, 19, 20, 21, 22} {
		_, err := currentDecoder([]byte{tag}).ReadValue()
		assert.True(t, stderrors.Is(err, errors.ErrUnsupportedTag), "tag %d", tag)
	}
}

func TestDecodeUnknownCurrentTagDegrades(t *testing.T) {
	v, err := currentDecoder([]byte{0x7f}).ReadValue()
	require.NoError(t, err)
	u, ok := v.(Unsupported)
	require.True(t, ok)
	assert.Equal(t, byte(0x7f), u.Tag)
	assert.Equal(t, "<tag:127>", u.String())
}

func TestDecodeTruncatedValue(t *testing.T) {
	_, err := currentDecoder([]byte{5}).ReadValue()
	assert.True(t, stderrors.Is(err, errors.ErrUnexpectedEOF))
}

func TestDecodeCurrentFunction(t *testing.T) {
	payload := []byte{12}
	payload = append(payload, 0x00, 0x00) // flags
	payload = append(payload, 0x01)       // strict
	payload = append(payload, leb(0)...)  // name atom: null
	payload = append(payload, leb(2)...)  // arg_count
	payload = append(payload, leb(3)...)  // var_count
	payload = append(payload, leb(2)...)  // defined_arg_count
	payload = append(payload, leb(8)...)  // stack_size
	payload = append(payload, leb(0)...)  // var_ref_count
	payload = append(payload, leb(1)...)  // closure_var_count
	payload = append(payload, leb(1)...)  // cpool_count
	payload = append(payload, leb(2)...)  // byte_code_len
	payload = append(payload, leb(1)...)  // local_count
	// local: atom null, scope_level 1, scope_next 1 (stored as 2), flags 0x40, var_ref_idx 7
	payload = append(payload, leb(0)...)
	payload = append(payload, leb(1)...)
	payload = append(payload, leb(2)...)
	payload = append(payload, 0x40)
	payload = append(payload, leb(7)...)
	// closure var: atom null, var_idx 3, flags 5
	payload = append(payload, leb(0)...)
	payload = append(payload, leb(3)...)
	payload = append(payload, leb(5)...)
	// cpool: one null value
	payload = append(payload, 1)
	// bytecode
	payload = append(payload, 0xB5, 0x28)

	v, err := currentDecoder(payload).ReadValue()
	require.NoError(t, err)
	fn, ok := v.(*FunctionBytecode)
	require.True(t, ok)
	assert.True(t, fn.IsStrictMode)
	assert.Equal(t, uint16(2), fn.ArgCount)
	assert.Equal(t, uint16(3), fn.VarCount)
	assert.Equal(t, uint16(8), fn.StackSize)
	assert.Equal(t, uint16(1), fn.ClosureVarCount)
	require.Len(t, fn.Locals, 1)
	assert.Equal(t, uint32(1), fn.Locals[0].ScopeNext)
	require.NotNil(t, fn.Locals[0].VarRefIdx)
	assert.Equal(t, uint32(7), *fn.Locals[0].VarRefIdx)
	require.Len(t, fn.ClosureVars, 1)
	assert.Equal(t, uint32(3), fn.ClosureVars[0].VarIdx)
	require.Len(t, fn.Cpool, 1)
	assert.Equal(t, []byte{0xB5, 0x28}, fn.Bytecode)
}

func TestCollectFunctionsEntryFirst(t *testing.T) {
	inner := &FunctionBytecode{FuncName: atoms.NewString("inner")}
	entry := &FunctionBytecode{FuncName: atoms.NewString("entry"), Cpool: []Value{inner}}
	tree := Module{Name: atoms.NewString("mod"), Func: entry}

	funcs := CollectFunctionsEntryFirst(tree)
	require.Len(t, funcs, 2)
	assert.Equal(t, "entry", funcs[0].FuncName.Str)
	assert.Equal(t, "inner", funcs[1].FuncName.Str)
}
