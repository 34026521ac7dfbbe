// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

// Package reader provides a bounded cursor over a byte slice with the
// primitive extractors the bytecode format needs: little-endian integers,
// raw byte runs, and LEB128/SLEB128 variable-length integers.
package reader

import (
	"encoding/binary"
	"math"

	"github.com/dotandev/dqjs/internal/errors"
)

// Reader is a forward-only cursor over a fixed byte slice.
type Reader struct {
	buf []byte
	pos int
}

// New creates a Reader positioned at the start of buf.
func New(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// PeekU8 returns the next byte without consuming it. The second return
// value is false when the input is exhausted.
func (r *Reader) PeekU8() (byte, bool) {
	if r.pos >= len(r.buf) {
		return 0, false
	}
	return r.buf[r.pos], true
}

// U8 reads one byte.
func (r *Reader) U8() (byte, error) {
	if r.Remaining() < 1 {
		return 0, errors.ErrUnexpectedEOF
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, errors.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, errors.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, errors.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// F64 reads a little-endian IEEE-754 float64.
func (r *Reader) F64() (float64, error) {
	bits, err := r.U64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// Bytes reads n raw bytes. The returned slice aliases the underlying buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, errors.ErrUnexpectedEOF
	}
	s := r.buf[r.pos : r.pos+n]
	r.pos += n
	return s, nil
}

// Leb128 reads an unsigned LEB128 value of at most 32 bits. Encodings that
// still carry a continuation bit once the shift reaches 32 fail.
func (r *Reader) Leb128() (uint32, error) {
	var result uint32
	var shift uint
	for {
		b, err := r.U8()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 32 {
			return 0, errors.ErrUnexpectedEOF
		}
	}
}

// Sleb128 reads a signed LEB128 value of at most 32 bits, sign-extending
// from the last payload byte. Overlong encodings fail with ErrInvalidSleb128.
func (r *Reader) Sleb128() (int32, error) {
	var result int64
	var shift uint
	var b byte
	for {
		var err error
		b, err = r.U8()
		if err != nil {
			return 0, err
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
		if shift >= 64 {
			return 0, errors.ErrInvalidSleb128
		}
	}
	if shift < 64 && b&0x40 != 0 {
		result |= ^int64(0) << shift
	}
	return int32(result), nil
}
