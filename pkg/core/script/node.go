// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package script

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Node is the result of one op recorded in a Graph.
type Node struct {
	graph  *Graph
	id     NodeId
	opType OpType
	domain string
	inputs []*Node
	attrs  map[string]any

	// name of a parameter node.
	name string

	// callee of a OpTypeCall node.
	callee Callable

	// branches of a OpTypeIf node: "then" and "else".
	branches []*Graph
}

// Graph the node belongs to. For nodes created inside an If branch, it is the branch subgraph.
func (n *Node) Graph() *Graph { return n.graph }

// Id of the node, unique within the root graph.
func (n *Node) Id() NodeId { return n.id }

// OpType of the op that created the node.
func (n *Node) OpType() OpType { return n.opType }

// Domain of the opset of the op. It is "" for standard ops, and the callee's domain for calls.
func (n *Node) Domain() string { return n.domain }

// Inputs of the node.
func (n *Node) Inputs() []*Node { return n.inputs }

// Name of the node, only set for parameters.
func (n *Node) Name() string { return n.name }

// Attr returns the value of the attribute key, and whether it was set.
func (n *Node) Attr(key string) (value any, found bool) {
	value, found = n.attrs[key]
	return
}

// Callee returns the function called by a OpTypeCall node, or nil for other nodes.
func (n *Node) Callee() Callable { return n.callee }

// Branches returns the subgraphs of a OpTypeIf node, or nil for other nodes.
func (n *Node) Branches() []*Graph { return n.branches }

// Ref returns the short reference to the node used in graph listings, e.g. "%3" or "%x0".
func (n *Node) Ref() string {
	if n.opType == OpTypeParameter {
		return "%" + n.name
	}
	return fmt.Sprintf("%%%d", n.id)
}

// opName is the name of the op, qualified by its domain if not the default one.
func (n *Node) opName() string {
	switch {
	case n.opType == OpTypeCall && n.domain == "":
		return n.callee.Name()
	case n.opType == OpTypeCall:
		return fmt.Sprintf("%s.%s", n.domain, n.callee.Name())
	case n.domain != "":
		return fmt.Sprintf("%s.%s", n.domain, n.opType)
	default:
		return n.opType.String()
	}
}

// statement renders the node as in "%3 = Exp(%x0)".
func (n *Node) statement() string {
	inputs := make([]string, len(n.inputs))
	for ii, input := range n.inputs {
		inputs[ii] = input.Ref()
	}
	var attrs string
	if len(n.attrs) > 0 {
		keys := make([]string, 0, len(n.attrs))
		for key := range n.attrs {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		parts := make([]string, len(keys))
		for ii, key := range keys {
			parts[ii] = fmt.Sprintf("%s=%v", key, n.attrs[key])
		}
		attrs = fmt.Sprintf("{%s}", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s = %s%s(%s)", n.Ref(), n.opName(), attrs, strings.Join(inputs, ", "))
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "Node(nil)"
	}
	return n.statement()
}

// newNode records a new node in the current region of g's root graph.
// All inputs must be visible from that region.
func newNode(g *Graph, opType OpType, inputs ...*Node) *Node {
	region := g.region()
	for ii, input := range inputs {
		if input == nil {
			exceptions.Panicf("%s: input #%d is nil", opType, ii)
		}
		if input.graph.root != region.root {
			exceptions.Panicf("%s: input #%d (%s) belongs to graph %q, but op is being added to graph %q",
				opType, ii, input, input.graph.root.name, region.root.name)
		}
		if !region.sees(input) {
			exceptions.Panicf("%s: input #%d (%s) belongs to branch %q, not visible from %q",
				opType, ii, input, input.graph.name, region.name)
		}
	}
	root := region.root
	node := &Node{
		graph:  region,
		id:     NodeId(root.numNodes),
		opType: opType,
		inputs: inputs,
	}
	root.numNodes++
	region.nodes = append(region.nodes, node)
	return node
}

// graphOf returns the graph of the first node, panicking if there are no nodes.
func graphOf(opType OpType, nodes ...*Node) *Graph {
	if len(nodes) == 0 {
		exceptions.Panicf("%s: requires at least one input", opType)
	}
	if nodes[0] == nil {
		exceptions.Panicf("%s: input #0 is nil", opType)
	}
	return nodes[0].graph
}

// setAttr sets an attribute of the node. It returns the node itself, so it can be cascaded.
func (n *Node) setAttr(key string, value any) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[key] = value
	return n
}

// newParameter adds a parameter to the root graph g.
func newParameter(g *Graph, name string) *Node {
	node := newNode(g, OpTypeParameter)
	node.name = name
	g.parameters = append(g.parameters, node)
	if klog.V(3).Enabled() {
		klog.Infof("script: graph %q parameter %s", g.name, node.Ref())
	}
	return node
}
