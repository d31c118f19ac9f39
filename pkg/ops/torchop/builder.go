// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package torchop

import (
	"github.com/gomlx/torchlib/pkg/core/script"
	"github.com/gomlx/torchlib/pkg/ops/registry"
)

// OpBuilder configures how an ATen op implementation is compiled and registered.
// Create it with Op, configure it, and finish with Define or MustDefine.
type OpBuilder struct {
	name    string
	reg     *Registry
	variant registry.Variant
	mode    script.Mode
	fnName  string
}

// Op starts the definition of an implementation of the ATen op name, e.g. "aten::add".
//
// By default, it is registered as a public overload in Default, compiled with script.ModeScript.
func Op(name string) *OpBuilder {
	return &OpBuilder{
		name:    name,
		variant: registry.VariantPublic,
		mode:    script.ModeScript,
	}
}

// In sets the registry where to register the implementation. If nil, Default is used.
func (b *OpBuilder) In(reg *Registry) *OpBuilder {
	b.reg = reg
	return b
}

// Variant sets the variant of the implementation. Default is registry.VariantPublic.
func (b *OpBuilder) Variant(variant registry.Variant) *OpBuilder {
	b.variant = variant
	return b
}

// Private registers the implementation as a private helper.
// It should be used for all ops whose name starts with "_".
func (b *OpBuilder) Private() *OpBuilder {
	return b.Variant(registry.VariantPrivate)
}

// Complex registers the implementation as the one supporting complex inputs.
func (b *OpBuilder) Complex() *OpBuilder {
	return b.Variant(registry.VariantComplex)
}

// TraceOnly sets the implementation to be only traced when used, instead of compiled,
// see script.Trace.
func (b *OpBuilder) TraceOnly() *OpBuilder {
	b.mode = script.ModeTraceOnly
	return b
}

// Named sets the name of the compiled function. Default is the name of the Go function.
func (b *OpBuilder) Named(fnName string) *OpBuilder {
	b.fnName = fnName
	return b
}

// Define compiles fn and registers it. It returns the compiled callable.
//
// Errors from compiling fn are returned, and nothing is registered.
func (b *OpBuilder) Define(fn any) (script.Callable, error) {
	callable, err := Compile(fn, b.mode)
	if err != nil {
		return nil, err
	}
	if b.fnName != "" {
		switch f := callable.(type) {
		case *script.Function:
			f.SetName(b.fnName)
		case *script.TracedFunction:
			f.SetName(b.fnName)
		}
	}
	Register(b.reg, b.name, b.variant, callable)
	return callable, nil
}

// MustDefine is like Define, but panics on errors.
func (b *OpBuilder) MustDefine(fn any) script.Callable {
	callable, err := b.Define(fn)
	if err != nil {
		panic(err)
	}
	return callable
}
