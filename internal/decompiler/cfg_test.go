// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package decompiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/dqjs/internal/opcode"
)

func decodeBC(t *testing.T, bc []byte) []opcode.Instr {
	t.Helper()
	instrs, err := opcode.Decode(bc)
	require.NoError(t, err)
	return instrs
}

func TestBuildCFGSingleBlock(t *testing.T) {
	blocks := BuildCFG(decodeBC(t, []byte{
		op(t, "push_1"),
		op(t, "push_2"),
		op(t, "add"),
		op(t, "return"),
	}))
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].StartPC)
	assert.Len(t, blocks[0].Instrs, 4)
	assert.Empty(t, blocks[0].Succs)
}

func TestBuildCFGConditional(t *testing.T) {
	// push_true(0); if_false8(1)->5; push_1(3); return(4); push_2(5); return(6)
	blocks := BuildCFG(decodeBC(t, []byte{
		op(t, "push_true"),
		op(t, "if_false8"), 3,
		op(t, "push_1"),
		op(t, "return"),
		op(t, "push_2"),
		op(t, "return"),
	}))
	require.Len(t, blocks, 3)

	assert.Equal(t, 0, blocks[0].StartPC)
	assert.ElementsMatch(t, []int{5, 3}, blocks[0].Succs)

	assert.Equal(t, 3, blocks[1].StartPC)
	assert.Empty(t, blocks[1].Succs)

	assert.Equal(t, 5, blocks[2].StartPC)
	assert.Empty(t, blocks[2].Succs)
}

func TestBuildCFGGotoSuccessor(t *testing.T) {
	// goto8(0)->3; nop(2); return_undef(3)
	blocks := BuildCFG(decodeBC(t, []byte{
		op(t, "goto8"), 2,
		op(t, "nop"),
		op(t, "return_undef"),
	}))
	require.Len(t, blocks, 3)
	// The goto block jumps straight to pc 3, skipping the fallthrough.
	assert.Equal(t, []int{3}, blocks[0].Succs)
	// The unreachable nop block falls through.
	assert.Equal(t, []int{3}, blocks[1].Succs)
	assert.Empty(t, blocks[2].Succs)
}

func TestCFGPartition(t *testing.T) {
	// Every instruction lands in exactly one block, in order, with no gaps.
	instrs := decodeBC(t, []byte{
		op(t, "get_loc"), 0, 0,
		op(t, "push_i8"), 10,
		op(t, "lt"),
		op(t, "if_false8"), 5,
		op(t, "inc_loc"), 0,
		op(t, "goto8"), 0xf5,
		op(t, "return_undef"),
	})
	blocks := BuildCFG(instrs)

	var flat []opcode.Instr
	for _, blk := range blocks {
		require.NotEmpty(t, blk.Instrs)
		assert.Equal(t, blk.StartPC, blk.Instrs[0].PC)
		flat = append(flat, blk.Instrs...)
	}
	require.Len(t, flat, len(instrs))
	for i := range instrs {
		assert.Equal(t, instrs[i].PC, flat[i].PC)
	}
}

func TestBuildCFGEmpty(t *testing.T) {
	assert.Nil(t, BuildCFG(nil))
}
