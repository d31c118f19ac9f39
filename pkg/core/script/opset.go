// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package script

import "fmt"

// Opset identifies a set of operators: a domain and a version.
//
// Standard ops (Add, Exp, Where, ...) belong to the default domain "". Compiled functions
// belong to the opset they were compiled with, and calls to them are recorded under that domain.
type Opset struct {
	Domain  string
	Version int
}

// DefaultOpsetVersion is the version of the standard opset used by the ops in this package.
const DefaultOpsetVersion = 18

// DefaultOpset is the opset of the standard ops.
var DefaultOpset = Opset{Domain: "", Version: DefaultOpsetVersion}

// CustomOpset returns an Opset for a user defined domain.
func CustomOpset(domain string, version int) Opset {
	return Opset{Domain: domain, Version: version}
}

// IsDefault returns whether o is the standard opset domain.
func (o Opset) IsDefault() bool {
	return o.Domain == ""
}

// String implements fmt.Stringer.
func (o Opset) String() string {
	domain := o.Domain
	if domain == "" {
		domain = "ai.onnx"
	}
	return fmt.Sprintf("%s@%d", domain, o.Version)
}
