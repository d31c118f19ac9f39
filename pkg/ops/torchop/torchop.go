// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package torchop compiles ATen op implementations written as script functions, and registers
// them in a registry.
//
// It's a two-step process, that can be done explicitly:
//
//	fn, err := torchop.Compile(addImpl, script.ModeScript)
//	if err != nil { ... }
//	torchop.Register(reg, "aten::add", registry.VariantPublic, fn)
//
// Or with the Op builder, convenient to declare ops as package variables:
//
//	var AtenAdd = torchop.Op("aten::add").MustDefine(func(self, other *script.Node) *script.Node {
//		return script.Add(self, other)
//	})
//
// Ops are registered in Default, unless a registry is given with OpBuilder.In.
package torchop

import (
	"reflect"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/torchlib/pkg/core/script"
	"github.com/gomlx/torchlib/pkg/ops/registry"
	"k8s.io/klog/v2"
)

// Registry of compiled ATen implementations.
type Registry = registry.Registry[script.Callable]

// OverloadedFunction holds the compiled implementations of one ATen op.
type OverloadedFunction = registry.OverloadedFunction[script.Callable]

// Domain and Version of the opset ATen implementations are compiled into.
const (
	Domain  = "pkg.onnxscript.torch_lib"
	Version = 1
)

// Opset ATen implementations are compiled into.
var Opset = script.CustomOpset(Domain, Version)

// Default is the process-wide registry, populated by the packages that define ops
// (see package aten) during initialization.
var Default = NewRegistry()

// NewRegistry creates a new empty Registry. Useful for tests.
func NewRegistry() *Registry {
	return registry.New[script.Callable]()
}

// Compile a function definition into a callable in the given mode.
//
// With script.ModeScript fn must be a Go function, otherwise it panics: it is a programming error.
// Its graph is traced immediately and errors from the tracing are returned unchanged.
//
// With script.ModeTraceOnly fn is wrapped to be traced when used, see script.Trace.
func Compile(fn any, mode script.Mode) (script.Callable, error) {
	switch mode {
	case script.ModeScript:
		if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
			exceptions.Panicf("torchop.Compile requires a function definition, got %T", fn)
		}
		f, err := script.Compile(Opset, fn)
		if err != nil {
			return nil, err
		}
		return f, nil
	case script.ModeTraceOnly:
		t, err := script.Trace(Opset, fn)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	exceptions.Panicf("torchop.Compile: invalid mode %s", mode)
	return nil, nil
}

// Register a compiled callable under the ATen op name in reg.
// If reg is nil, Default is used.
func Register(reg *Registry, name string, variant registry.Variant, fn script.Callable) {
	if reg == nil {
		reg = Default
	}
	if strings.HasPrefix(opBaseName(name), "_") && variant == registry.VariantPublic {
		klog.Warningf("torchop: %q looks private (starts with \"_\") but is registered as %s", name, variant)
	}
	reg.Register(fn, name, variant)
	klog.V(1).Infof("torchop: registered %s %s implementation %q for %q", fn.Mode(), variant, fn.Name(), name)
}

// opBaseName returns the op name without its namespace, e.g. "add" for "aten::add".
func opBaseName(name string) string {
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		return name[idx+2:]
	}
	return name
}
