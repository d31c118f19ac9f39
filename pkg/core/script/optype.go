// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package script

// OpType enumerates the operations a Node can record.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota
	OpTypeParameter
	OpTypeConstant
	OpTypeIdentity

	OpTypeAbs
	OpTypeAdd
	OpTypeDiv
	OpTypeExp
	OpTypeGreater
	OpTypeLessOrEqual
	OpTypeMax
	OpTypeMul
	OpTypeNeg
	OpTypeReduceMax
	OpTypeReduceSum
	OpTypeRelu
	OpTypeSqrt
	OpTypeSub
	OpTypeWhere

	// OpTypeIf holds two branch subgraphs, see If.
	OpTypeIf

	// OpTypeCall is a call to another compiled Function.
	OpTypeCall

	// OpTypeCallOutput selects one of the outputs of a OpTypeCall node, for callees
	// with more than one output.
	OpTypeCallOutput
)
