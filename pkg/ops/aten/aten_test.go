// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package aten

import (
	"testing"

	"github.com/gomlx/torchlib/pkg/core/script"
	"github.com/gomlx/torchlib/pkg/core/script/scripttest"
	"github.com/gomlx/torchlib/pkg/ops/registry"
	"github.com/gomlx/torchlib/pkg/ops/torchop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	reg := torchop.Default
	for _, name := range []string{
		"aten::add", "aten::sub", "aten::mul", "aten::div", "aten::neg", "aten::exp", "aten::abs",
		"aten::where", "aten::relu", "aten::elu", "aten::selu", "aten::clamp", "aten::_softmax",
		"aten::softmax",
	} {
		assert.True(t, reg.Has(name), "%q not registered", name)
	}
	assert.False(t, reg.Has("aten::matmul"))

	add := reg.MustLookup("aten::add")
	assert.Equal(t, []script.Callable{Add, AddAlpha}, add.Overloads)
	assert.Equal(t, []script.Callable{AddComplex}, add.Complex)
	assert.Empty(t, add.Privates)

	abs := reg.MustLookup("aten::abs")
	assert.Equal(t, []script.Callable{Abs}, abs.Variant(registry.VariantPublic))
	assert.Equal(t, []script.Callable{AbsComplex}, abs.Variant(registry.VariantComplex))

	softmax := reg.MustLookup("aten::_softmax")
	assert.Equal(t, []script.Callable{softmaxHelper}, softmax.Privates)
	assert.Empty(t, softmax.Overloads)

	for name, o := range reg.All() {
		for _, v := range registry.VariantValues() {
			for _, fn := range o.Variant(v) {
				assert.Equal(t, torchop.Opset, fn.Opset(), "%s implementation of %q", v, name)
			}
		}
	}
}

func TestGraphs(t *testing.T) {
	g := scripttest.RequireGraph(t, AbsComplex)
	assert.Equal(t, []script.OpType{script.OpTypeMul, script.OpTypeReduceSum, script.OpTypeSqrt},
		scripttest.OpTypes(g))

	g = scripttest.RequireGraph(t, AddAlpha, 1.0)
	assert.Equal(t, []script.OpType{script.OpTypeAdd}, scripttest.OpTypes(g))
	g = scripttest.RequireGraph(t, AddAlpha, 2.0)
	assert.Equal(t, []script.OpType{script.OpTypeConstant, script.OpTypeMul, script.OpTypeAdd},
		scripttest.OpTypes(g))

	g = scripttest.RequireGraph(t, Selu)
	require.Len(t, g.Outputs(), 1)
	assert.Equal(t, script.OpTypeMul, g.Outputs()[0].OpType())

	g = scripttest.RequireGraph(t, Clamp, 0, 6)
	assert.Equal(t, script.OpTypeNeg, g.Outputs()[0].OpType())

	// The public softmax inlines its private helper.
	g = scripttest.RequireGraph(t, Softmax, -1)
	assert.Equal(t, []script.OpType{
		script.OpTypeReduceMax, script.OpTypeSub, script.OpTypeExp, script.OpTypeReduceSum, script.OpTypeDiv,
	}, scripttest.OpTypes(g))
	assert.Empty(t, scripttest.Callees(g))

	// Script ops called from other script functions are recorded as calls.
	mulAdd := script.MustCompile(torchop.Opset, func(x, y, z *script.Node) *script.Node {
		return Add.Call(Mul.Call(x, y)[0], z)[0]
	})
	assert.Equal(t, []string{"aten_mul", "aten_add"}, scripttest.Callees(mulAdd.Graph()))
}
