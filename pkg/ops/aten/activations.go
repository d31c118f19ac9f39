// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package aten

import (
	"github.com/gomlx/torchlib/pkg/core/script"
	"github.com/gomlx/torchlib/pkg/ops/torchop"
)

// Constants of the SELU activation.
const (
	SeluAlpha = 1.6732632423543772848170429916717
	SeluScale = 1.0507009873554804934193349852946
)

var (
	Relu = torchop.Op("aten::relu").Named("aten_relu").MustDefine(
		func(self *script.Node) *script.Node { return script.Relu(self) })

	// Elu is alpha*(e^x - 1) for x <= 0, x otherwise.
	Elu = torchop.Op("aten::elu").TraceOnly().Named("aten_elu").MustDefine(
		func(self *script.Node, alpha float64) *script.Node {
			g := self.Graph()
			neg := script.Mul(script.Constant(g, alpha), script.Sub(script.Exp(self), script.Constant(g, 1)))
			return script.Where(script.LessOrEqual(self, script.Constant(g, 0)), neg, self)
		})

	Selu = torchop.Op("aten::selu").Named("aten_selu").MustDefine(
		func(self *script.Node) *script.Node {
			g := self.Graph()
			alpha := script.Constant(g, SeluAlpha)
			neg := script.Mul(alpha, script.Sub(script.Exp(self), script.Constant(g, 1)))
			elu := script.Where(script.LessOrEqual(self, script.Constant(g, 0)), neg, self)
			return script.Mul(script.Constant(g, SeluScale), elu)
		})

	// Clamp limits self to [min, max].
	Clamp = torchop.Op("aten::clamp").TraceOnly().Named("aten_clamp").MustDefine(
		func(self *script.Node, minValue, maxValue float64) *script.Node {
			g := self.Graph()
			low := script.Max(self, script.Constant(g, minValue))
			return script.Neg(script.Max(script.Neg(low), script.Constant(g, -maxValue)))
		})
)

var (
	// softmaxHelper is the numerically stable softmax over the axis dim.
	softmaxHelper = torchop.Op("aten::_softmax").Private().TraceOnly().Named("aten__softmax").MustDefine(
		func(self *script.Node, dim int, halfToFloat bool) *script.Node {
			shifted := script.Sub(self, script.ReduceAndKeepMax(self, dim))
			exp := script.Exp(shifted)
			return script.Div(exp, script.ReduceAndKeepSum(exp, dim))
		})

	Softmax = torchop.Op("aten::softmax").TraceOnly().Named("aten_softmax").MustDefine(
		func(self *script.Node, dim int) *script.Node {
			return softmaxHelper.Call(self, dim, false)[0]
		})
)
