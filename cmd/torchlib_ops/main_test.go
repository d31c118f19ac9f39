// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/torchlib/pkg/core/script"
	"github.com/gomlx/torchlib/pkg/ops/registry"
	"github.com/gomlx/torchlib/pkg/ops/torchop"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *torchop.Registry {
	reg := torchop.NewRegistry()
	torchop.Op("aten::add").In(reg).Named("aten_add").MustDefine(
		func(self, other *script.Node) *script.Node { return script.Add(self, other) })
	torchop.Op("aten::add").In(reg).Complex().Named("aten_add_complex").MustDefine(
		func(self, other *script.Node) *script.Node { return script.Add(self, other) })
	torchop.Op("aten::_scale").In(reg).Private().TraceOnly().Named("aten__scale").MustDefine(
		func(self *script.Node, factor float64) *script.Node {
			return script.Mul(self, script.Constant(self.Graph(), factor))
		})
	return reg
}

func TestReports(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	reg := testRegistry()

	var buf bytes.Buffer
	summary(&buf, reg)
	out := buf.String()
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "# implementations")
	assert.Contains(t, out, "# trace_only")
	assert.Contains(t, out, torchop.Opset.String())

	buf.Reset()
	listOps(&buf, reg)
	out = buf.String()
	assert.Contains(t, out, "aten::add")
	assert.Contains(t, out, "aten::_scale")
	assert.Contains(t, out, "complex")

	buf.Reset()
	require.NoError(t, opDetail(&buf, reg, "aten::add"))
	out = buf.String()
	assert.Contains(t, out, "aten_add_complex")
	assert.Contains(t, out, "return %2")

	buf.Reset()
	require.NoError(t, opDetail(&buf, reg, "aten::_scale"))
	assert.Contains(t, buf.String(), "(traced when used)")

	err := opDetail(&buf, reg, "aten::matmul")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestDescribeGraph(t *testing.T) {
	reg := testRegistry()
	fn := reg.MustLookup("aten::add").Overloads[0]
	assert.Equal(t,
		"aten_add[pkg.onnxscript.torch_lib@1](%x0, %x1) {\n"+
			"  %2 = Add(%x0, %x1)\n"+
			"  return %2\n"+
			"}", describeGraph(fn))
}
