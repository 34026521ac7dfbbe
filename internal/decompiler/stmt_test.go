// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package decompiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStmts(t *testing.T) {
	stmts := []Stmt{
		LabelStmt{PC: 0},
		AssignStmt{LHS: "loc0", RHS: "1"},
		ExprStmt{Text: "f(loc0)"},
		CondGotoStmt{Cond: "loc0", IfFalse: true, Target: 9},
		GotoStmt{Target: 3},
		ReturnStmt{Value: "loc0", HasValue: true},
		ReturnStmt{},
	}
	out := renderStmts(stmts, 2)
	assert.Equal(t, "  L0:\n  loc0 = 1;\n  f(loc0);\n  if (!loc0) goto L9;\n  goto L3;\n  return loc0;\n  return;\n", out)
}

func TestRenderNested(t *testing.T) {
	stmts := []Stmt{
		WhileStmt{Cond: "x", Body: []Stmt{
			IfElseStmt{Cond: "y", Then: []Stmt{ExprStmt{Text: "a()"}}, Else: nil},
		}},
	}
	out := renderStmts(stmts, 0)
	assert.Equal(t, "while (x) {\n  if (y) {\n    a();\n  }\n}\n", out)
}

func TestStructureWhile(t *testing.T) {
	stmts := []Stmt{
		LabelStmt{PC: 0},
		CondGotoStmt{Cond: "(loc0 < 10)", IfFalse: true, Target: 12},
		ExprStmt{Text: "loc0++"},
		GotoStmt{Target: 0},
		LabelStmt{PC: 12},
		ReturnStmt{},
	}
	out := structureWhile(stmts)
	require.Len(t, out, 2)
	w, ok := out[0].(WhileStmt)
	require.True(t, ok)
	assert.Equal(t, "(loc0 < 10)", w.Cond)
	require.Len(t, w.Body, 1)
}

func TestStructureWhileRejectsWrongEndLabel(t *testing.T) {
	stmts := []Stmt{
		LabelStmt{PC: 0},
		CondGotoStmt{Cond: "c", IfFalse: true, Target: 12},
		GotoStmt{Target: 0},
		LabelStmt{PC: 99},
	}
	out := structureWhile(stmts)
	assert.Equal(t, len(stmts), len(out))
}

func TestStructureIfElseWithGoto(t *testing.T) {
	stmts := []Stmt{
		CondGotoStmt{Cond: "c", IfFalse: true, Target: 10},
		ExprStmt{Text: "a()"},
		GotoStmt{Target: 20},
		LabelStmt{PC: 10},
		ExprStmt{Text: "b()"},
		LabelStmt{PC: 20},
	}
	out := structureIfElse(stmts)
	require.Len(t, out, 1)
	ie, ok := out[0].(IfElseStmt)
	require.True(t, ok)
	assert.Equal(t, "c", ie.Cond)
	assert.Len(t, ie.Then, 1)
	assert.Len(t, ie.Else, 1)
}

func TestStructureIfElseReturnVariant(t *testing.T) {
	stmts := []Stmt{
		CondGotoStmt{Cond: "c", IfFalse: true, Target: 5},
		ReturnStmt{Value: "1", HasValue: true},
		LabelStmt{PC: 5},
		ReturnStmt{Value: "2", HasValue: true},
	}
	out := structureIfElse(stmts)
	require.Len(t, out, 1)
	ie, ok := out[0].(IfElseStmt)
	require.True(t, ok)
	assert.Len(t, ie.Then, 1)
	assert.Len(t, ie.Else, 1)
}

func TestPatternIdempotence(t *testing.T) {
	stmts := []Stmt{
		LabelStmt{PC: 0},
		CondGotoStmt{Cond: "c", IfFalse: true, Target: 12},
		ExprStmt{Text: "loc0++"},
		GotoStmt{Target: 0},
		LabelStmt{PC: 12},
		CondGotoStmt{Cond: "d", IfFalse: true, Target: 30},
		ExprStmt{Text: "a()"},
		GotoStmt{Target: 40},
		LabelStmt{PC: 30},
		ExprStmt{Text: "b()"},
		LabelStmt{PC: 40},
		ReturnStmt{},
	}
	once := structureIfElse(structureWhile(stmts))
	twice := structureIfElse(structureWhile(once))
	assert.Equal(t, renderStmts(once, 0), renderStmts(twice, 0))
}

func TestOptimizeGotoLabelReturn(t *testing.T) {
	stmts := []Stmt{
		GotoStmt{Target: 4},
		LabelStmt{PC: 4},
		ReturnStmt{Value: "v", HasValue: true},
	}
	out := optimizeStmts(stmts)
	require.Len(t, out, 1)
	_, ok := out[0].(ReturnStmt)
	assert.True(t, ok)
}

func TestOptimizeDuplicateLabels(t *testing.T) {
	stmts := []Stmt{
		LabelStmt{PC: 4},
		LabelStmt{PC: 4},
		ReturnStmt{},
	}
	out := optimizeStmts(stmts)
	assert.Len(t, out, 2)
}

func TestDropUnreferencedLabels(t *testing.T) {
	stmts := []Stmt{
		LabelStmt{PC: 0},
		GotoStmt{Target: 8},
		LabelStmt{PC: 4},
		LabelStmt{PC: 8},
	}
	out := dropUnreferencedLabels(stmts)
	require.Len(t, out, 2)
	_, ok := out[0].(GotoStmt)
	assert.True(t, ok)
	l, ok := out[1].(LabelStmt)
	require.True(t, ok)
	assert.Equal(t, 8, l.PC)
}
