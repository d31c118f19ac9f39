// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package registry

import "k8s.io/klog/v2"

// Variant selects the bucket of an OverloadedFunction an implementation is registered into.
type Variant int

//go:generate go tool enumer -type=Variant -trimprefix=Variant -transform=snake -values -text -output=gen_variant_enumer.go variant.go

const (
	// VariantPublic is a regular overload, exposed to users of the op.
	VariantPublic Variant = iota

	// VariantPrivate is a helper implementation not exposed to users.
	// By convention their names start with "_".
	VariantPrivate

	// VariantComplex is an implementation that supports complex-valued inputs.
	VariantComplex
)

// VariantFromFlags converts the boolean flags used by older registration APIs to a Variant.
//
// The complex flag is checked first: if both private and complex are set the result is
// VariantComplex. Since that combination is most likely a mistake, it is logged as a warning.
func VariantFromFlags(private, complex bool) Variant {
	switch {
	case complex:
		if private {
			klog.Warningf("both private and complex flags set, registering as %s", VariantComplex)
		}
		return VariantComplex
	case private:
		return VariantPrivate
	default:
		return VariantPublic
	}
}
