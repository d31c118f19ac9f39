// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package registry maps operator names (e.g. "aten::add") to the set of implementations
// registered for them.
//
// Each name holds one OverloadedFunction, with three buckets selected by a Variant:
// public overloads, private helpers and complex-number variants. Implementations are kept
// in insertion order and are never deduplicated or removed.
//
// The registry is generic on the implementation type F, and it makes no assumption about it:
// it doesn't even check that it is a function.
//
// A Registry is not safe for concurrent use. Registration is expected to happen during
// package initialization, and queries afterward.
package registry

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrNotFound is returned (wrapped) by Registry.Lookup when a name is not registered.
var ErrNotFound = errors.New("operator not registered")

// OverloadedFunction holds all implementations registered under one operator name.
type OverloadedFunction[F any] struct {
	// Name of the op, e.g. "aten::add".
	Name string

	// Overloads are the public implementations.
	Overloads []F

	// Privates are implementations not exposed to users.
	Privates []F

	// Complex are implementations that support complex-valued inputs.
	Complex []F
}

// newOverloadedFunction creates an empty record for name.
func newOverloadedFunction[F any](name string) *OverloadedFunction[F] {
	return &OverloadedFunction[F]{Name: name}
}

// bucket returns a pointer to the slice holding the given variant.
func (o *OverloadedFunction[F]) bucket(variant Variant) *[]F {
	switch variant {
	case VariantPublic:
		return &o.Overloads
	case VariantPrivate:
		return &o.Privates
	case VariantComplex:
		return &o.Complex
	}
	exceptions.Panicf("invalid variant %s registering implementation for %q", variant, o.Name)
	return nil
}

// Variant returns the implementations registered for the given variant.
// The returned slice is owned by the OverloadedFunction and should not be modified.
func (o *OverloadedFunction[F]) Variant(variant Variant) []F {
	return *o.bucket(variant)
}

// Len returns the total number of implementations, across all variants.
func (o *OverloadedFunction[F]) Len() int {
	return len(o.Overloads) + len(o.Privates) + len(o.Complex)
}

// String implements fmt.Stringer.
func (o *OverloadedFunction[F]) String() string {
	return fmt.Sprintf("OverloadedFunction(%q, overloads=%d, privates=%d, complex=%d)",
		o.Name, len(o.Overloads), len(o.Privates), len(o.Complex))
}

// Registry maps operator names to their OverloadedFunction.
//
// There is at most one OverloadedFunction per name, created on the first registration.
type Registry[F any] struct {
	registry map[string]*OverloadedFunction[F]
}

// New creates an empty Registry.
func New[F any]() *Registry[F] {
	return &Registry[F]{
		registry: make(map[string]*OverloadedFunction[F]),
	}
}

// Register appends fn to the bucket of the given variant of the op name.
// The OverloadedFunction for name is created if it doesn't exist yet.
//
// It panics if variant is not a valid Variant.
func (r *Registry[F]) Register(fn F, name string, variant Variant) {
	if !variant.IsAVariant() {
		exceptions.Panicf("invalid variant %s registering implementation for %q", variant, name)
	}
	o, found := r.registry[name]
	if !found {
		o = newOverloadedFunction[F](name)
		r.registry[name] = o
	}
	b := o.bucket(variant)
	*b = append(*b, fn)
	if klog.V(2).Enabled() {
		klog.Infof("registry: registered %s implementation #%d for %q", variant, len(*b), name)
	}
}

// RegisterWithFlags registers fn using the boolean flags of older registration APIs.
// See VariantFromFlags on how the flags are combined.
func (r *Registry[F]) RegisterWithFlags(fn F, name string, private, complex bool) {
	r.Register(fn, name, VariantFromFlags(private, complex))
}

// Has returns whether name has been registered.
func (r *Registry[F]) Has(name string) bool {
	_, found := r.registry[name]
	return found
}

// Lookup returns the OverloadedFunction registered under name.
// If name is not registered, it returns an error wrapping ErrNotFound.
func (r *Registry[F]) Lookup(name string) (*OverloadedFunction[F], error) {
	o, found := r.registry[name]
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "lookup of %q", name)
	}
	return o, nil
}

// MustLookup is like Lookup, but panics if name is not registered.
func (r *Registry[F]) MustLookup(name string) *OverloadedFunction[F] {
	o, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return o
}

// Len returns the number of registered names.
func (r *Registry[F]) Len() int {
	return len(r.registry)
}

// Names iterates over the registered names, in no particular order.
//
// It iterates over the live registry: registering during the iteration is not supported.
func (r *Registry[F]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range r.registry {
			if !yield(name) {
				return
			}
		}
	}
}

// All iterates over the registered (name, OverloadedFunction) pairs, in no particular order.
//
// It iterates over the live registry: registering during the iteration is not supported.
func (r *Registry[F]) All() iter.Seq2[string, *OverloadedFunction[F]] {
	return func(yield func(string, *OverloadedFunction[F]) bool) {
		for name, o := range r.registry {
			if !yield(name, o) {
				return
			}
		}
	}
}

// SortedNames returns a sorted copy of the registered names.
func (r *Registry[F]) SortedNames() []string {
	return slices.Sorted(maps.Keys(r.registry))
}

// String implements fmt.Stringer. Names are listed sorted.
func (r *Registry[F]) String() string {
	var sb strings.Builder
	sb.WriteString("Registry{")
	for ii, name := range r.SortedNames() {
		if ii > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.registry[name].String())
	}
	sb.WriteString("}")
	return sb.String()
}
