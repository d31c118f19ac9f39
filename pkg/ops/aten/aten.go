// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package aten implements a set of ATen ops as script functions, registered in torchop.Default
// when the package is initialized.
//
// Import it for its side effect, and query torchop.Default:
//
//	import _ "github.com/gomlx/torchlib/pkg/ops/aten"
//
//	overloads := torchop.Default.MustLookup("aten::add").Overloads
//
// Complex tensors are represented as real tensors with an extra trailing axis of dimension 2,
// holding the real and imaginary parts.
package aten

import (
	"github.com/gomlx/torchlib/pkg/core/script"
	"github.com/gomlx/torchlib/pkg/ops/torchop"
)

// Elementwise arithmetic.
var (
	Add = torchop.Op("aten::add").Named("aten_add").MustDefine(
		func(self, other *script.Node) *script.Node { return script.Add(self, other) })

	// AddAlpha is aten::add with an alpha multiplier: self + alpha*other.
	AddAlpha = torchop.Op("aten::add").TraceOnly().Named("aten_add_alpha").MustDefine(
		func(self, other *script.Node, alpha float64) *script.Node {
			if alpha == 1 {
				return script.Add(self, other)
			}
			return script.Add(self, script.Mul(other, script.Constant(self.Graph(), alpha)))
		})

	// AddComplex adds the real and imaginary parts independently.
	AddComplex = torchop.Op("aten::add").Complex().Named("aten_add_complex").MustDefine(
		func(self, other *script.Node) *script.Node { return script.Add(self, other) })

	Sub = torchop.Op("aten::sub").Named("aten_sub").MustDefine(
		func(self, other *script.Node) *script.Node { return script.Sub(self, other) })

	Mul = torchop.Op("aten::mul").Named("aten_mul").MustDefine(
		func(self, other *script.Node) *script.Node { return script.Mul(self, other) })

	Div = torchop.Op("aten::div").Named("aten_div").MustDefine(
		func(self, other *script.Node) *script.Node { return script.Div(self, other) })

	Neg = torchop.Op("aten::neg").Named("aten_neg").MustDefine(
		func(self *script.Node) *script.Node { return script.Neg(self) })

	Exp = torchop.Op("aten::exp").Named("aten_exp").MustDefine(
		func(self *script.Node) *script.Node { return script.Exp(self) })

	Abs = torchop.Op("aten::abs").Named("aten_abs").MustDefine(
		func(self *script.Node) *script.Node { return script.Abs(self) })

	// AbsComplex returns the magnitude sqrt(re^2 + im^2) of a complex tensor.
	AbsComplex = torchop.Op("aten::abs").Complex().Named("aten_abs_complex").MustDefine(
		func(self *script.Node) *script.Node { return script.Sqrt(script.ReduceSum(script.Mul(self, self), -1)) })

	Where = torchop.Op("aten::where").Named("aten_where").MustDefine(
		func(condition, self, other *script.Node) *script.Node { return script.Where(condition, self, other) })
)
