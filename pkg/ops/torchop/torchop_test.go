// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package torchop

import (
	"testing"

	"github.com/gomlx/torchlib/pkg/core/script"
	"github.com/gomlx/torchlib/pkg/ops/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add(self, other *script.Node) *script.Node { return script.Add(self, other) }

func TestCompileAndRegister(t *testing.T) {
	reg := NewRegistry()
	fn, err := Compile(add, script.ModeScript)
	require.NoError(t, err)
	assert.Equal(t, Opset, fn.Opset())
	assert.Equal(t, "add", fn.Name())

	Register(reg, "aten::add", registry.VariantPublic, fn)
	assert.True(t, reg.Has("aten::add"))
	assert.Equal(t, []script.Callable{fn}, reg.MustLookup("aten::add").Overloads)
	assert.False(t, reg.Has("aten::sub"))

	// Precondition: the eager path requires a function.
	assert.Panics(t, func() { _, _ = Compile("add", script.ModeScript) })
	assert.Panics(t, func() { _, _ = Compile(nil, script.ModeScript) })
	assert.Panics(t, func() { _, _ = Compile(add, script.Mode(7)) })

	// Tracing errors are returned as they are.
	_, err = Compile(func(x *script.Node) *script.Node { return script.Add(x, nil) }, script.ModeScript)
	assert.ErrorContains(t, err, "input #1 is nil")

	// The trace-only path wraps anything that is a function, and doesn't call it.
	called := false
	traced, err := Compile(func(x *script.Node, alpha float64) *script.Node {
		called = true
		return x
	}, script.ModeTraceOnly)
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, script.ModeTraceOnly, traced.Mode())
	_, err = Compile(3, script.ModeTraceOnly)
	assert.Error(t, err)
}

func TestOpBuilder(t *testing.T) {
	reg := NewRegistry()
	f := Op("op::x").In(reg).MustDefine(add)
	g := Op("op::x").In(reg).Named("add_again").MustDefine(add)
	assert.Equal(t, "add_again", g.Name())
	o := reg.MustLookup("op::x")
	assert.Equal(t, []script.Callable{f, g}, o.Overloads)
	assert.Empty(t, o.Privates)
	assert.Empty(t, o.Complex)

	p := Op("op::_helper").In(reg).Private().MustDefine(add)
	assert.Equal(t, []script.Callable{p}, reg.MustLookup("op::_helper").Privates)

	c := Op("op::x").In(reg).Complex().TraceOnly().MustDefine(
		func(self, other *script.Node) *script.Node {
			return script.Add(self, other)
		})
	assert.Equal(t, script.ModeTraceOnly, c.Mode())
	assert.Equal(t, []script.Callable{c}, reg.MustLookup("op::x").Complex)
	assert.Len(t, reg.MustLookup("op::x").Overloads, 2)

	v := Op("op::y").In(reg).Variant(registry.VariantComplex).Named("y").MustDefine(add)
	assert.Equal(t, "y", v.Name())
	assert.Equal(t, []script.Callable{v}, reg.MustLookup("op::y").Complex)

	// Nothing is registered if compilation fails.
	_, err := Op("op::bad").In(reg).Define(func(x int) *script.Node { return nil })
	require.Error(t, err)
	assert.False(t, reg.Has("op::bad"))
	assert.Panics(t, func() {
		_ = Op("op::bad").In(reg).MustDefine(func(x int) *script.Node { return nil })
	})
	assert.False(t, reg.Has("op::bad"))
	assert.Equal(t, []string{"op::_helper", "op::x", "op::y"}, reg.SortedNames())
}

func TestCallRegisteredOp(t *testing.T) {
	reg := NewRegistry()
	Op("aten::mul").In(reg).MustDefine(func(self, other *script.Node) *script.Node {
		return script.Mul(self, other)
	})
	Op("aten::square").In(reg).TraceOnly().MustDefine(func(self *script.Node) *script.Node {
		return script.Mul(self, self)
	})

	// Ops can be used from other ops by looking them up.
	mul := reg.MustLookup("aten::mul").Overloads[0]
	square := reg.MustLookup("aten::square").Overloads[0]
	cube := Op("aten::cube").In(reg).MustDefine(func(self *script.Node) *script.Node {
		return mul.Call(square.Call(self)[0], self)[0]
	})
	g := cube.(*script.Function).Graph()
	require.Len(t, g.Outputs(), 1)
	call := g.Outputs()[0]
	assert.Equal(t, script.OpTypeCall, call.OpType())
	assert.Equal(t, Domain, call.Domain())
	assert.Same(t, mul, call.Callee())
	// The traced square is inlined.
	assert.Equal(t, script.OpTypeMul, call.Inputs()[0].OpType())
}

func TestOpBaseName(t *testing.T) {
	assert.Equal(t, "add", opBaseName("aten::add"))
	assert.Equal(t, "_softmax", opBaseName("aten::_softmax"))
	assert.Equal(t, "plain", opBaseName("plain"))
}
