// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package script traces Go functions into small dataflow graphs of operators.
//
// A "script function" is a plain Go function that takes *Node parameters and returns one or
// more *Node. Compile calls it once with parameter nodes, and every op called in its body
// (Add, Exp, Where, calls to other compiled functions, ...) records a Node in the Graph:
//
//	var this = script.CustomOpset("this", 1)
//
//	var MySelu = script.MustCompile(this, func(x, alpha, gamma *script.Node) *script.Node {
//		neg := script.Mul(gamma, script.Sub(script.Mul(alpha, script.Exp(x)), alpha))
//		pos := script.Mul(gamma, x)
//		return script.Where(script.LessOrEqual(x, script.Constant(x.Graph(), 0)), neg, pos)
//	})
//
// Trace instead wraps a function without calling it: the graph is only built when it is
// called from another script function (its body is inlined) or when TracedFunction.Build is
// called. Traced functions may also take non-node "attribute" parameters.
//
// ## Error Handling
//
// Like the graph building in GoMLX, ops don't return errors: they panic (with
// exceptions.Panicf) on invalid inputs. Compile and TracedFunction.Build catch those panics
// and return them as errors, with their stack trace.
//
// The package only records the structure of the computation: there is no shape or type
// inference, no execution and no serialization.
package script

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
)

// NodeId is a unique id of a Node within a Graph (including its branches).
type NodeId int

// Graph holds the nodes recorded while tracing a function.
//
// Branches of an If op are also Graphs, with a parent: nodes in a branch may use nodes of any
// of its ancestors.
type Graph struct {
	name   string
	opset  Opset
	parent *Graph
	root   *Graph

	nodes      []*Node
	parameters []*Node
	outputs    []*Node

	// Fields used only on the root graph.
	numNodes int
	tracing  bool
	current  *Graph
}

// newGraph creates a root graph, ready for tracing.
func newGraph(name string, opset Opset) *Graph {
	g := &Graph{
		name:    name,
		opset:   opset,
		tracing: true,
	}
	g.root = g
	g.current = g
	return g
}

// newBranch creates a subgraph of g, used as a branch of an If op.
func (g *Graph) newBranch(name string) *Graph {
	return &Graph{
		name:   name,
		opset:  g.opset,
		parent: g,
		root:   g.root,
	}
}

// Name of the graph. For graphs created by Compile it is the name of the function.
func (g *Graph) Name() string { return g.name }

// Opset the graph was compiled with.
func (g *Graph) Opset() Opset { return g.opset }

// Parent graph, if g is the branch of an If op. Otherwise nil.
func (g *Graph) Parent() *Graph { return g.parent }

// Nodes returns the nodes of the graph, in creation order. Parameters are included.
// Nodes of branches are not included, see Node.Branches.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Parameters returns the parameter nodes, in the order of the function inputs.
func (g *Graph) Parameters() []*Node { return g.parameters }

// Outputs returns the output nodes. They are only set after tracing is finished.
func (g *Graph) Outputs() []*Node { return g.outputs }

// IsTracing returns whether ops can still be added to the graph.
func (g *Graph) IsTracing() bool { return g.root.tracing }

// NumNodes returns the number of nodes in the graph, including the ones in branches.
func (g *Graph) NumNodes() int { return g.root.numNodes }

// sees returns whether node can be used as an input of ops added to g:
// it must belong to g or one of its ancestors.
func (g *Graph) sees(node *Node) bool {
	for r := g; r != nil; r = r.parent {
		if node.graph == r {
			return true
		}
	}
	return false
}

// region returns the graph where new nodes are currently being added.
// It panics if the graph is no longer tracing.
func (g *Graph) region() *Graph {
	root := g.root
	if !root.tracing {
		exceptions.Panicf("graph %q has finished tracing, no more ops can be added", root.name)
	}
	return root.current
}

// traceRegion calls fn with r as the current region, restoring the previous region afterward.
func (g *Graph) traceRegion(r *Graph, fn func()) {
	root := g.root
	previous := root.current
	root.current = r
	defer func() { root.current = previous }()
	fn()
}

// finish marks the end of tracing: no more nodes can be added.
func (g *Graph) finish(outputs []*Node) {
	for ii, output := range outputs {
		if output == nil {
			exceptions.Panicf("graph %q output #%d is nil", g.name, ii)
		}
		if !g.sees(output) {
			exceptions.Panicf("graph %q output #%d (%s) belongs to a different graph %q",
				g.name, ii, output, output.graph.name)
		}
	}
	g.outputs = outputs
	if g.root == g {
		g.tracing = false
		g.current = nil
	}
}

// String returns a multi-line listing of the graph.
func (g *Graph) String() string {
	var sb strings.Builder
	params := make([]string, len(g.parameters))
	for ii, p := range g.parameters {
		params[ii] = p.Ref()
	}
	_, _ = fmt.Fprintf(&sb, "%s[%s](%s) {\n", g.name, g.opset, strings.Join(params, ", "))
	g.writeBody(&sb, "  ")
	sb.WriteString("}")
	return sb.String()
}

// writeBody writes the nodes (except parameters) and the outputs of g, with the given indentation.
func (g *Graph) writeBody(sb *strings.Builder, indent string) {
	for _, node := range g.nodes {
		if node.opType == OpTypeParameter {
			continue
		}
		_, _ = fmt.Fprintf(sb, "%s%s\n", indent, node.statement())
		for _, branch := range node.branches {
			_, _ = fmt.Fprintf(sb, "%s  %s:\n", indent, branch.name)
			branch.writeBody(sb, indent+"    ")
		}
	}
	outputs := make([]string, len(g.outputs))
	for ii, output := range g.outputs {
		outputs[ii] = output.Ref()
	}
	_, _ = fmt.Fprintf(sb, "%sreturn %s\n", indent, strings.Join(outputs, ", "))
}
