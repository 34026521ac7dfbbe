// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package decompiler

import (
	"sort"

	"github.com/dotandev/dqjs/internal/opcode"
)

// BasicBlock is a maximal straight-line instruction run, entered only at
// its first instruction and exited only at its last.
type BasicBlock struct {
	StartPC int
	Instrs  []opcode.Instr
	// Succs lists successor blocks by start pc.
	Succs []int
}

func isGoto(name string) bool {
	return name == "goto" || name == "goto8" || name == "goto16"
}

func isCondBranch(name string) bool {
	return name == "if_false" || name == "if_true" || name == "if_false8" || name == "if_true8"
}

func isTerminator(name string) bool {
	return name == "return" || name == "return_undef" || name == "throw"
}

// BuildCFG partitions the instruction list into basic blocks. Leaders are
// pc 0, every branch target, and every pc following a branch, return or
// throw; each leader owns the instructions up to the next leader.
func BuildCFG(instrs []opcode.Instr) []BasicBlock {
	if len(instrs) == 0 {
		return nil
	}

	leaderSet := map[int]bool{instrs[0].PC: true}
	for idx, ins := range instrs {
		if target, ok := opcode.LabelTarget(ins); ok {
			leaderSet[target] = true
			if idx+1 < len(instrs) {
				leaderSet[instrs[idx+1].PC] = true
			}
		}
		if isTerminator(ins.Name) && idx+1 < len(instrs) {
			leaderSet[instrs[idx+1].PC] = true
		}
	}

	leaders := make([]int, 0, len(leaderSet))
	for pc := range leaderSet {
		leaders = append(leaders, pc)
	}
	sort.Ints(leaders)

	blockIndex := make(map[int]int, len(leaders))
	blocks := make([]BasicBlock, len(leaders))
	for i, pc := range leaders {
		blockIndex[pc] = i
		blocks[i] = BasicBlock{StartPC: pc}
	}

	current := 0
	nextLeader := 1
	for _, ins := range instrs {
		if nextLeader < len(leaders) && ins.PC == leaders[nextLeader] {
			current = blockIndex[ins.PC]
			nextLeader++
		}
		blocks[current].Instrs = append(blocks[current].Instrs, ins)
	}

	for i := range blocks {
		if len(blocks[i].Instrs) == 0 {
			continue
		}
		last := blocks[i].Instrs[len(blocks[i].Instrs)-1]
		var succs []int
		switch {
		case isGoto(last.Name):
			if target, ok := opcode.LabelTarget(last); ok {
				if bi, ok := blockIndex[target]; ok {
					succs = append(succs, blocks[bi].StartPC)
				}
			}
		case isCondBranch(last.Name):
			if target, ok := opcode.LabelTarget(last); ok {
				if bi, ok := blockIndex[target]; ok {
					succs = append(succs, blocks[bi].StartPC)
				}
			}
			if i+1 < len(blocks) {
				succs = append(succs, blocks[i+1].StartPC)
			}
		case isTerminator(last.Name):
			// no successors
		default:
			if i+1 < len(blocks) {
				succs = append(succs, blocks[i+1].StartPC)
			}
		}
		blocks[i].Succs = succs
	}

	return blocks
}
