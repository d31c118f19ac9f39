// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package script

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Mode in which a function was compiled.
type Mode int

const (
	// ModeScript functions are traced into a Graph when compiled, see Compile.
	ModeScript Mode = iota

	// ModeTraceOnly functions are only traced when used, see Trace.
	ModeTraceOnly
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeScript:
		return "script"
	case ModeTraceOnly:
		return "trace_only"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Callable is implemented by the compiled forms of a script function: *Function and *TracedFunction.
type Callable interface {
	fmt.Stringer

	// Name of the function.
	Name() string

	// ID uniquely identifies this compiled function.
	ID() uuid.UUID

	// Opset the function was compiled with.
	Opset() Opset

	// Mode the function was compiled with.
	Mode() Mode

	// Call the function from within another script function being traced.
	// It returns the output nodes.
	Call(args ...any) []*Node
}

var (
	nodeType  = reflect.TypeOf((*Node)(nil))
	graphType = reflect.TypeOf((*Graph)(nil))
)

// Function is a script function compiled eagerly: its graph was traced by Compile.
type Function struct {
	name  string
	id    uuid.UUID
	opset Opset
	graph *Graph

	numInputs     int
	inputIsGraph  bool
	outputAsSlice bool
}

// Compile traces fn into a Graph, and returns the compiled Function.
//
// fn must be a Go function whose inputs are all *Node, and that returns one or more *Node (or
// a single []*Node). If the function has no inputs, it must take a single *Graph parameter
// instead, to be able to create constants.
//
// Errors raised by the ops while tracing are returned, with their stack trace.
func Compile(opset Opset, fn any) (*Function, error) {
	fnV := reflect.ValueOf(fn)
	if !fnV.IsValid() || fnV.Kind() != reflect.Func {
		return nil, errors.Errorf("script.Compile requires a function, got %T", fn)
	}
	if fnV.IsNil() {
		return nil, errors.Errorf("script.Compile requires a function, got nil %T", fn)
	}
	fnT := fnV.Type()
	f := &Function{
		name:  funcName(fnV),
		id:    uuid.New(),
		opset: opset,
	}

	// Verify signature.
	if fnT.IsVariadic() {
		return nil, errors.Errorf("script function %q can not be variadic, got %s", f.name, fnT)
	}
	if fnT.NumOut() < 1 {
		return nil, errors.Errorf("script function %q must return at least one *Node, got %s", f.name, fnT)
	}
	f.numInputs = fnT.NumIn()
	for ii := range fnT.NumIn() {
		if fnT.In(ii) == graphType {
			if fnT.NumIn() != 1 {
				return nil, errors.Errorf("*Graph parameter only accepted if it is the only input, got function type %s instead", fnT)
			}
			f.inputIsGraph = true
			f.numInputs = 0
			break
		}
		if fnT.In(ii) != nodeType {
			return nil, errors.Errorf("script function %q input parameter %d is not of type *Node, got %s",
				f.name, ii, fnT.In(ii))
		}
	}
	for ii := range fnT.NumOut() {
		if fnT.Out(ii).Kind() == reflect.Slice && fnT.Out(ii).Elem() == nodeType {
			if fnT.NumOut() != 1 {
				return nil, errors.Errorf("[]*Node is only accepted as output if it is the only output, got function type %s instead", fnT)
			}
			f.outputAsSlice = true
			break
		}
		if fnT.Out(ii) != nodeType {
			return nil, errors.Errorf("script function %q output parameter %d is not of type *Node, got %s",
				f.name, ii, fnT.Out(ii))
		}
	}

	// Trace.
	g := newGraph(f.name, opset)
	err := exceptions.TryCatch[error](func() {
		var args []reflect.Value
		if f.inputIsGraph {
			args = []reflect.Value{reflect.ValueOf(g)}
		} else {
			for ii := range f.numInputs {
				args = append(args, reflect.ValueOf(newParameter(g, fmt.Sprintf("x%d", ii))))
			}
		}
		g.finish(collectOutputs(f.name, fnV.Call(args)))
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "while compiling script function %q", f.name)
	}
	f.graph = g
	if klog.V(1).Enabled() {
		klog.Infof("script: compiled %q (%s): %d nodes", f.name, opset, g.NumNodes())
	}
	return f, nil
}

// MustCompile is like Compile, but panics on errors.
// It is convenient to declare script functions as package variables.
func MustCompile(opset Opset, fn any) *Function {
	f, err := Compile(opset, fn)
	if err != nil {
		panic(err)
	}
	return f
}

// collectOutputs converts the values returned by a script function to nodes.
func collectOutputs(name string, results []reflect.Value) []*Node {
	if len(results) == 1 && results[0].Kind() == reflect.Slice {
		outputs := results[0].Interface().([]*Node)
		if len(outputs) == 0 {
			exceptions.Panicf("script function %q returned no outputs", name)
		}
		return outputs
	}
	outputs := make([]*Node, len(results))
	for ii, result := range results {
		outputs[ii] = result.Interface().(*Node)
	}
	return outputs
}

// funcName returns the unqualified name of the Go function.
func funcName(fnV reflect.Value) string {
	fullName := runtime.FuncForPC(fnV.Pointer()).Name()
	if idx := strings.LastIndex(fullName, "/"); idx >= 0 {
		fullName = fullName[idx+1:]
	}
	if idx := strings.Index(fullName, "."); idx >= 0 {
		fullName = fullName[idx+1:]
	}
	return fullName
}

// SetName changes the name of the function (and of its graph).
// It returns the function itself, so calls can be cascaded.
func (f *Function) SetName(name string) *Function {
	f.name = name
	f.graph.name = name
	return f
}

// Name implements Callable.
func (f *Function) Name() string { return f.name }

// ID implements Callable.
func (f *Function) ID() uuid.UUID { return f.id }

// Opset implements Callable.
func (f *Function) Opset() Opset { return f.opset }

// Mode implements Callable. It is always ModeScript.
func (f *Function) Mode() Mode { return ModeScript }

// Graph traced when the function was compiled.
func (f *Function) Graph() *Graph { return f.graph }

// NumInputs returns the number of inputs of the function.
func (f *Function) NumInputs() int { return f.numInputs }

// NumOutputs returns the number of outputs of the function.
func (f *Function) NumOutputs() int { return len(f.graph.outputs) }

// String implements fmt.Stringer.
func (f *Function) String() string {
	return fmt.Sprintf("Function(%s[%s], inputs=%d, outputs=%d)", f.name, f.opset, f.numInputs, f.NumOutputs())
}

// Call implements Callable: it records a call to f in the graph being traced.
//
// All args must be *Node, one per input of f. If f has a single output, the call node is
// returned. Otherwise one OpTypeCallOutput node is returned per output.
//
// Functions that take a *Graph take no args, and the call can't be recorded without
// a graph: use CallIn instead.
func (f *Function) Call(args ...any) []*Node {
	if f.inputIsGraph || f.numInputs == 0 {
		exceptions.Panicf("%q takes no inputs, use CallIn to call it", f.name)
	}
	if len(args) != f.numInputs {
		exceptions.Panicf("%q takes %d inputs, called with %d", f.name, f.numInputs, len(args))
	}
	inputs := make([]*Node, len(args))
	for ii, arg := range args {
		node, ok := arg.(*Node)
		if !ok || node == nil {
			exceptions.Panicf("%q input #%d must be a non-nil *Node, got %T", f.name, ii, arg)
		}
		inputs[ii] = node
	}
	return f.call(inputs[0].graph, inputs)
}

// CallIn records a call to f in the graph g. It is needed for functions with no inputs.
func (f *Function) CallIn(g *Graph, inputs ...*Node) []*Node {
	if len(inputs) != f.numInputs {
		exceptions.Panicf("%q takes %d inputs, called with %d", f.name, f.numInputs, len(inputs))
	}
	return f.call(g, inputs)
}

// Call1 is like Call, but for functions with exactly one output.
func (f *Function) Call1(args ...*Node) *Node {
	if f.NumOutputs() != 1 {
		exceptions.Panicf("%q has %d outputs, Call1 requires exactly one", f.name, f.NumOutputs())
	}
	anyArgs := make([]any, len(args))
	for ii, arg := range args {
		anyArgs[ii] = arg
	}
	return f.Call(anyArgs...)[0]
}

func (f *Function) call(g *Graph, inputs []*Node) []*Node {
	if g == nil {
		exceptions.Panicf("%q: calling requires a graph", f.name)
	}
	node := newNode(g, OpTypeCall, inputs...)
	node.domain = f.opset.Domain
	node.callee = f
	numOutputs := f.NumOutputs()
	if numOutputs == 1 {
		return []*Node{node}
	}
	outputs := make([]*Node, numOutputs)
	for ii := range outputs {
		outputs[ii] = newNode(g, OpTypeCallOutput, node).setAttr("index", ii)
	}
	return outputs
}
