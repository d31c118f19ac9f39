// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package script

import (
	"slices"

	"github.com/gomlx/exceptions"
)

// Constant creates a scalar constant node in the graph g.
//
// Inside an If branch, the constant is created in the branch being traced.
func Constant(g *Graph, value float64) *Node {
	if g == nil {
		exceptions.Panicf("Constant: graph is nil")
	}
	return newNode(g, OpTypeConstant).setAttr("value", value)
}

// unary records an op with one input.
func unary(opType OpType, x *Node) *Node {
	return newNode(graphOf(opType, x), opType, x)
}

// binary records an op with two inputs.
func binary(opType OpType, lhs, rhs *Node) *Node {
	return newNode(graphOf(opType, lhs, rhs), opType, lhs, rhs)
}

// Identity returns a new node with the same value as x.
func Identity(x *Node) *Node { return unary(OpTypeIdentity, x) }

// Abs returns the element-wise absolute value of x.
func Abs(x *Node) *Node { return unary(OpTypeAbs, x) }

// Neg returns -x.
func Neg(x *Node) *Node { return unary(OpTypeNeg, x) }

// Exp returns e^x.
func Exp(x *Node) *Node { return unary(OpTypeExp, x) }

// Sqrt returns the element-wise square root of x.
func Sqrt(x *Node) *Node { return unary(OpTypeSqrt, x) }

// Relu returns max(x, 0).
func Relu(x *Node) *Node { return unary(OpTypeRelu, x) }

// Add returns lhs + rhs.
func Add(lhs, rhs *Node) *Node { return binary(OpTypeAdd, lhs, rhs) }

// Sub returns lhs - rhs.
func Sub(lhs, rhs *Node) *Node { return binary(OpTypeSub, lhs, rhs) }

// Mul returns lhs * rhs.
func Mul(lhs, rhs *Node) *Node { return binary(OpTypeMul, lhs, rhs) }

// Div returns lhs / rhs.
func Div(lhs, rhs *Node) *Node { return binary(OpTypeDiv, lhs, rhs) }

// Max returns the element-wise maximum of lhs and rhs.
func Max(lhs, rhs *Node) *Node { return binary(OpTypeMax, lhs, rhs) }

// LessOrEqual returns the boolean lhs <= rhs.
func LessOrEqual(lhs, rhs *Node) *Node { return binary(OpTypeLessOrEqual, lhs, rhs) }

// Greater returns the boolean lhs > rhs.
func Greater(lhs, rhs *Node) *Node { return binary(OpTypeGreater, lhs, rhs) }

// Where selects onTrue where cond is true, onFalse otherwise.
func Where(cond, onTrue, onFalse *Node) *Node {
	return newNode(graphOf(OpTypeWhere, cond, onTrue, onFalse), OpTypeWhere, cond, onTrue, onFalse)
}

// reduce records a reduction over the given axes. No axes means all axes.
func reduce(opType OpType, x *Node, keepDims bool, axes []int) *Node {
	node := unary(opType, x)
	if len(axes) > 0 {
		node.setAttr("axes", slices.Clone(axes))
	}
	if keepDims {
		node.setAttr("keepdims", 1)
	}
	return node
}

// ReduceSum sums x over the given axes. If no axes are given, it reduces over all axes.
func ReduceSum(x *Node, axes ...int) *Node { return reduce(OpTypeReduceSum, x, false, axes) }

// ReduceAndKeepSum is like ReduceSum, but keeps the reduced axes with dimension 1.
func ReduceAndKeepSum(x *Node, axes ...int) *Node { return reduce(OpTypeReduceSum, x, true, axes) }

// ReduceAndKeepMax takes the maximum of x over the given axes, keeping the reduced axes with dimension 1.
func ReduceAndKeepMax(x *Node, axes ...int) *Node { return reduce(OpTypeReduceMax, x, true, axes) }

// If records a conditional: thenBranch and elseBranch are each traced into their own subgraph,
// and the returned node takes the value of one of them depending on cond.
//
// The branch functions may use any node visible where If is called.
func If(cond *Node, thenBranch, elseBranch func() *Node) *Node {
	g := graphOf(OpTypeIf, cond)
	region := g.region()
	if thenBranch == nil || elseBranch == nil {
		exceptions.Panicf("If: both branches must be given")
	}
	branches := []*Graph{region.newBranch("then"), region.newBranch("else")}
	for ii, fn := range []func() *Node{thenBranch, elseBranch} {
		branch := branches[ii]
		region.traceRegion(branch, func() {
			output := fn()
			if output == nil {
				exceptions.Panicf("If: %s branch returned nil", branch.name)
			}
			branch.finish([]*Node{output})
		})
	}
	node := newNode(region, OpTypeIf, cond)
	node.branches = branches
	return node
}
