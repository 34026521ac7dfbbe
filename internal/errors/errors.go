// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrUnexpectedEOF     = errors.New("unexpected end of input")
	ErrInvalidVersion    = errors.New("invalid bytecode version")
	ErrUnsupportedTag    = errors.New("unsupported tag")
	ErrInvalidSleb128    = errors.New("invalid sleb128")
	ErrInvalidOpcode     = errors.New("invalid opcode")
	ErrTruncatedOpcode   = errors.New("truncated opcode")
	ErrInvalidAtomIndex  = errors.New("invalid atom index")
	ErrInvalidConstIndex = errors.New("invalid constant pool index")
)

// Wrap functions for consistent error wrapping

func WrapInvalidVersion(version byte) error {
	return fmt.Errorf("%w: %d", ErrInvalidVersion, version)
}

func WrapUnsupportedTag(tag byte) error {
	return fmt.Errorf("%w: %d", ErrUnsupportedTag, tag)
}

func WrapInvalidOpcode(op byte) error {
	return fmt.Errorf("%w: 0x%02x", ErrInvalidOpcode, op)
}

func WrapTruncatedOpcode(pc, size, remaining int) error {
	return fmt.Errorf("%w at pc=%d (opcode size=%d, remaining=%d)", ErrTruncatedOpcode, pc, size, remaining)
}

func WrapInvalidAtomIndex(idx uint32) error {
	return fmt.Errorf("%w: %d", ErrInvalidAtomIndex, idx)
}

func WrapInvalidConstIndex(idx uint32) error {
	return fmt.Errorf("%w: %d", ErrInvalidConstIndex, idx)
}
