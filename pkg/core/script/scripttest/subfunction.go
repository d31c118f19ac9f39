// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package scripttest holds sample script functions and test utilities for packages that
// depend on the script package.
//
// The sample functions use one another as sub-functions, in a custom opset named "this".
package scripttest

import (
	"testing"

	. "github.com/gomlx/torchlib/pkg/core/script"
	"github.com/stretchr/testify/require"
)

// This is the custom opset "this" of the sample functions.
var This = CustomOpset("this", 1)

// MySelu(X, alpha, gamma) = gamma * (alpha*e^X - alpha) if X <= 0, gamma * X otherwise.
var MySelu = MustCompile(This, func(x, alpha, gamma *Node) *Node {
	neg := Mul(gamma, Sub(Mul(alpha, Exp(x)), alpha))
	pos := Mul(gamma, x)
	return Where(LessOrEqual(x, Constant(x.Graph(), 0)), neg, pos)
}).SetName("MySelu")

// MyElu calls MySelu with alpha=1.
var MyElu = MustCompile(This, func(x, beta *Node) *Node {
	alpha := Constant(x.Graph(), 1)
	return MySelu.Call1(x, alpha, beta)
}).SetName("MyElu")

// MyEluB is MyElu, with the result stored in a local variable first.
var MyEluB = MustCompile(This, func(x, beta *Node) *Node {
	alpha := Constant(x.Graph(), 1)
	res := MySelu.Call1(x, alpha, beta)
	return res
}).SetName("MyEluB")

// MyEluC is MyElu, with the result passed through an Identity op.
var MyEluC = MustCompile(This, func(x, beta *Node) *Node {
	alpha := Constant(x.Graph(), 1)
	res := Identity(MySelu.Call1(x, alpha, beta))
	return res
}).SetName("MyEluC")

// IfMyEluD calls MyEluB if beta > 0, MyEluC otherwise.
var IfMyEluD = MustCompile(This, func(x, beta *Node) *Node {
	zero := Constant(x.Graph(), 0)
	return If(Greater(beta, zero),
		func() *Node { return MyEluB.Call1(x, beta) },
		func() *Node { return MyEluC.Call1(x, beta) })
}).SetName("IfMyEluD")

// OpTypes returns the op types of the nodes of g, in order, excluding parameters.
func OpTypes(g *Graph) []OpType {
	var ops []OpType
	for _, node := range g.Nodes() {
		if node.OpType() != OpTypeParameter {
			ops = append(ops, node.OpType())
		}
	}
	return ops
}

// Callees returns the names of the functions called in g, including in its branches, in order.
func Callees(g *Graph) []string {
	var names []string
	for _, node := range g.Nodes() {
		if node.OpType() == OpTypeCall {
			names = append(names, node.Callee().Name())
		}
		for _, branch := range node.Branches() {
			names = append(names, Callees(branch)...)
		}
	}
	return names
}

// RequireGraph builds the graph of a Callable (tracing it if needed, with the given attributes)
// and fails the test if it fails.
func RequireGraph(t *testing.T, fn Callable, attrs ...any) *Graph {
	t.Helper()
	switch f := fn.(type) {
	case *Function:
		require.Empty(t, attrs, "compiled function %q takes no attributes", f.Name())
		return f.Graph()
	case *TracedFunction:
		g, err := f.Build(attrs...)
		require.NoErrorf(t, err, "failed to trace %q", f.Name())
		return g
	}
	require.FailNowf(t, "unknown callable", "%T", fn)
	return nil
}
