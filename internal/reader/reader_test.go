// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package reader

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/dqjs/internal/errors"
)

// encodeLeb128 produces the canonical unsigned LEB128 encoding of v.
func encodeLeb128(v uint32) []byte {
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

// encodeSleb128 produces the canonical signed LEB128 encoding of v.
func encodeSleb128(v int32) []byte {
	var out []byte
	val := int64(v)
	for {
		b := byte(val & 0x7f)
		val >>= 7
		done := (val == 0 && b&0x40 == 0) || (val == -1 && b&0x40 != 0)
		if !done {
			b |= 0x80
		}
		out = append(out, b)
		if done {
			return out
		}
	}
}

func TestPrimitives(t *testing.T) {
	r := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09})

	b, ok := r.PeekU8()
	require.True(t, ok)
	assert.Equal(t, byte(0x01), b)
	assert.Equal(t, 9, r.Remaining())

	u8, err := r.U8()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), u8)

	u16, err := r.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0302), u16)

	u32, err := r.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x07060504), u32)

	assert.Equal(t, 2, r.Remaining())
	_, err = r.U32()
	assert.True(t, stderrors.Is(err, errors.ErrUnexpectedEOF))
}

func TestF64(t *testing.T) {
	// 1.5 in little-endian IEEE-754
	r := New([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x3f})
	v, err := r.F64()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestBytes(t *testing.T) {
	r := New([]byte{1, 2, 3})
	s, err := r.Bytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, s)

	_, err = r.Bytes(2)
	assert.True(t, stderrors.Is(err, errors.ErrUnexpectedEOF))
}

func TestLeb128RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 300, 16383, 16384, 1<<21 - 1, 1 << 28, 0xffffffff}
	for _, v := range values {
		r := New(encodeLeb128(v))
		got, err := r.Leb128()
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, 0, r.Remaining())
	}
}

func TestLeb128Overflow(t *testing.T) {
	// Five continuation bytes push the shift to 35 before any terminator.
	r := New([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	_, err := r.Leb128()
	assert.True(t, stderrors.Is(err, errors.ErrUnexpectedEOF))
}

func TestLeb128Truncated(t *testing.T) {
	r := New([]byte{0x80})
	_, err := r.Leb128()
	assert.True(t, stderrors.Is(err, errors.ErrUnexpectedEOF))
}

func TestSleb128RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 63, 64, -64, -65, 127, 128, -128, 42, -123456, 2147483647, -2147483648}
	for _, v := range values {
		r := New(encodeSleb128(v))
		got, err := r.Sleb128()
		require.NoError(t, err)
		assert.Equal(t, v, got, "value %d", v)
		assert.Equal(t, 0, r.Remaining())
	}
}

func TestSleb128Overlong(t *testing.T) {
	// Ten continuation bytes reach shift 70.
	buf := make([]byte, 10)
	for i := range buf {
		buf[i] = 0x80
	}
	r := New(buf)
	_, err := r.Sleb128()
	assert.True(t, stderrors.Is(err, errors.ErrInvalidSleb128))
}

func TestSleb128SignExtension(t *testing.T) {
	// 0x7f is a single byte with the sign bit (0x40) set: -1.
	r := New([]byte{0x7f})
	v, err := r.Sleb128()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)
}
