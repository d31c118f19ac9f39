// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package script

import (
	"fmt"
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// TracedFunction wraps a function that is only traced when used: when called from another
// script function its body is inlined in the caller's graph, see Call.
//
// Besides *Node, the parameters of a traced function can be "attributes", values fixed at
// tracing time: bool, integers, floats, string or slices of those.
type TracedFunction struct {
	name  string
	id    uuid.UUID
	opset Opset
	fnV   reflect.Value

	// checked is set once the signature has been validated.
	checked bool
}

// Trace wraps fn as a TracedFunction. fn is not called, and its signature is only validated
// when it is first used. It fails only if fn is not a function.
func Trace(opset Opset, fn any) (*TracedFunction, error) {
	fnV := reflect.ValueOf(fn)
	if !fnV.IsValid() || fnV.Kind() != reflect.Func || fnV.IsNil() {
		return nil, errors.Errorf("script.Trace requires a function, got %T", fn)
	}
	t := &TracedFunction{
		name:  funcName(fnV),
		id:    uuid.New(),
		opset: opset,
		fnV:   fnV,
	}
	klog.V(1).Infof("script: wrapped %q (%s) for tracing", t.name, opset)
	return t, nil
}

// MustTrace is like Trace, but panics on errors.
func MustTrace(opset Opset, fn any) *TracedFunction {
	t, err := Trace(opset, fn)
	if err != nil {
		panic(err)
	}
	return t
}

// SetName changes the name of the function.
// It returns the function itself, so calls can be cascaded.
func (t *TracedFunction) SetName(name string) *TracedFunction {
	t.name = name
	return t
}

// Name implements Callable.
func (t *TracedFunction) Name() string { return t.name }

// ID implements Callable.
func (t *TracedFunction) ID() uuid.UUID { return t.id }

// Opset implements Callable.
func (t *TracedFunction) Opset() Opset { return t.opset }

// Mode implements Callable. It is always ModeTraceOnly.
func (t *TracedFunction) Mode() Mode { return ModeTraceOnly }

// String implements fmt.Stringer.
func (t *TracedFunction) String() string {
	return fmt.Sprintf("TracedFunction(%s[%s], %s)", t.name, t.opset, t.fnV.Type())
}

// isAttributeType returns whether values of type t can be given as attributes.
func isAttributeType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return t.Elem().Kind() != reflect.Slice && isAttributeType(t.Elem())
	default:
		return false
	}
}

// checkSignature panics if the function signature is not supported.
func (t *TracedFunction) checkSignature() {
	if t.checked {
		return
	}
	fnT := t.fnV.Type()
	if fnT.IsVariadic() {
		exceptions.Panicf("traced function %q can not be variadic, got %s", t.name, fnT)
	}
	for ii := range fnT.NumIn() {
		if fnT.In(ii) != nodeType && !isAttributeType(fnT.In(ii)) {
			exceptions.Panicf("traced function %q input parameter %d must be a *Node or an attribute, got %s",
				t.name, ii, fnT.In(ii))
		}
	}
	if fnT.NumOut() < 1 {
		exceptions.Panicf("traced function %q must return at least one *Node, got %s", t.name, fnT)
	}
	for ii := range fnT.NumOut() {
		out := fnT.Out(ii)
		if out.Kind() == reflect.Slice && out.Elem() == nodeType && fnT.NumOut() == 1 {
			break
		}
		if out != nodeType {
			exceptions.Panicf("traced function %q output parameter %d is not of type *Node, got %s",
				t.name, ii, out)
		}
	}
	t.checked = true
}

// attributeValue converts attr to the parameter type paramT.
func (t *TracedFunction) attributeValue(ii int, paramT reflect.Type, attr any) reflect.Value {
	v := reflect.ValueOf(attr)
	if !v.IsValid() {
		exceptions.Panicf("traced function %q attribute #%d is nil, expected %s", t.name, ii, paramT)
	}
	if v.Type() == paramT {
		return v
	}
	// Numbers must not be converted to strings (as runes) and vice-versa.
	isString := v.Kind() == reflect.String
	if !v.Type().ConvertibleTo(paramT) || isString != (paramT.Kind() == reflect.String) {
		exceptions.Panicf("traced function %q attribute #%d of type %T can not be converted to %s",
			t.name, ii, attr, paramT)
	}
	return v.Convert(paramT)
}

// Call implements Callable: the body of the function is traced (inlined) into the graph
// being traced, and its outputs are returned.
//
// args are given in the order of the parameters: *Node for node parameters, values for attributes.
func (t *TracedFunction) Call(args ...any) []*Node {
	t.checkSignature()
	fnT := t.fnV.Type()
	if len(args) != fnT.NumIn() {
		exceptions.Panicf("traced function %q takes %d arguments, called with %d", t.name, fnT.NumIn(), len(args))
	}
	values := make([]reflect.Value, len(args))
	for ii, arg := range args {
		if fnT.In(ii) == nodeType {
			node, ok := arg.(*Node)
			if !ok || node == nil {
				exceptions.Panicf("traced function %q argument #%d must be a non-nil *Node, got %T", t.name, ii, arg)
			}
			values[ii] = reflect.ValueOf(node)
			continue
		}
		values[ii] = t.attributeValue(ii, fnT.In(ii), arg)
	}
	klog.V(2).Infof("script: inlining traced function %q", t.name)
	return collectOutputs(t.name, t.fnV.Call(values))
}

// Build traces the function into a standalone Graph: node parameters become graph parameters,
// and attribute parameters are filled, in order, from attrs.
func (t *TracedFunction) Build(attrs ...any) (g *Graph, err error) {
	g = newGraph(t.name, t.opset)
	err = exceptions.TryCatch[error](func() {
		t.checkSignature()
		fnT := t.fnV.Type()
		values := make([]reflect.Value, fnT.NumIn())
		attrIdx := 0
		for ii := range fnT.NumIn() {
			if fnT.In(ii) == nodeType {
				values[ii] = reflect.ValueOf(newParameter(g, fmt.Sprintf("x%d", ii)))
				continue
			}
			if attrIdx >= len(attrs) {
				exceptions.Panicf("traced function %q requires attribute for input parameter %d, only %d attributes given",
					t.name, ii, len(attrs))
			}
			values[ii] = t.attributeValue(attrIdx, fnT.In(ii), attrs[attrIdx])
			attrIdx++
		}
		if attrIdx != len(attrs) {
			exceptions.Panicf("traced function %q takes %d attributes, %d given", t.name, attrIdx, len(attrs))
		}
		g.finish(collectOutputs(t.name, t.fnV.Call(values)))
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "while tracing function %q", t.name)
	}
	return g, nil
}
