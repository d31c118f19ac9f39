// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package registry

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// impl is a stand-in for an implementation: pointers make identity comparisons easy.
type impl struct{ name string }

func TestRegistry(t *testing.T) {
	r := New[*impl]()
	f, g := &impl{"f"}, &impl{"g"}

	// Nothing registered.
	assert.False(t, r.Has("op::x"))
	_, err := r.Lookup("op::x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"op::x"`)
	assert.Panics(t, func() { _ = r.MustLookup("op::x") })
	assert.Equal(t, 0, r.Len())

	// Public overload.
	r.Register(f, "op::x", VariantPublic)
	require.True(t, r.Has("op::x"))
	o, err := r.Lookup("op::x")
	require.NoError(t, err)
	assert.Equal(t, "op::x", o.Name)
	assert.Equal(t, []*impl{f}, o.Overloads)
	assert.Empty(t, o.Privates)
	assert.Empty(t, o.Complex)

	// Insertion order is kept, and there is no deduplication.
	r.Register(g, "op::x", VariantPublic)
	r.Register(f, "op::x", VariantPublic)
	assert.Equal(t, []*impl{f, g, f}, r.MustLookup("op::x").Overloads)
	assert.Equal(t, 3, r.MustLookup("op::x").Len())
	assert.Equal(t, 1, r.Len())
}

func TestRegistryVariants(t *testing.T) {
	r := New[*impl]()
	f, g := &impl{"f"}, &impl{"g"}

	r.Register(f, "op::private", VariantPrivate)
	o := r.MustLookup("op::private")
	assert.Equal(t, []*impl{f}, o.Privates)
	assert.Empty(t, o.Overloads)
	assert.Empty(t, o.Complex)

	r.Register(f, "op::complex", VariantComplex)
	o = r.MustLookup("op::complex")
	assert.Equal(t, []*impl{f}, o.Complex)
	assert.Equal(t, []*impl{f}, o.Variant(VariantComplex))
	assert.Empty(t, o.Variant(VariantPublic))
	assert.Empty(t, o.Variant(VariantPrivate))

	// Invalid variants are programming errors.
	assert.Panics(t, func() { r.Register(g, "op::invalid", Variant(7)) })
	assert.False(t, r.Has("op::invalid"))
}

func TestRegisterWithFlags(t *testing.T) {
	r := New[*impl]()
	f, g, h := &impl{"f"}, &impl{"g"}, &impl{"h"}

	r.RegisterWithFlags(f, "op::x", false, true)
	r.RegisterWithFlags(g, "op::x", true, true)
	r.RegisterWithFlags(h, "op::x", true, false)
	o := r.MustLookup("op::x")

	// complex is checked before private.
	assert.Equal(t, []*impl{f, g}, o.Complex)
	assert.Equal(t, []*impl{h}, o.Privates)
	assert.Empty(t, o.Overloads)

	assert.Equal(t, VariantPublic, VariantFromFlags(false, false))
	assert.Equal(t, VariantPrivate, VariantFromFlags(true, false))
	assert.Equal(t, VariantComplex, VariantFromFlags(false, true))
	assert.Equal(t, VariantComplex, VariantFromFlags(true, true))
}

func TestRegistryIteration(t *testing.T) {
	r := New[*impl]()
	a, b := &impl{"a"}, &impl{"b"}
	r.Register(a, "a", VariantPublic)
	r.Register(b, "b", VariantPrivate)
	r.Register(b, "b", VariantPublic)

	names := slices.Collect(r.Names())
	assert.ElementsMatch(t, []string{"a", "b"}, names)
	assert.Equal(t, []string{"a", "b"}, r.SortedNames())

	seen := make(map[string]*OverloadedFunction[*impl])
	for name, o := range r.All() {
		_, duplicate := seen[name]
		require.False(t, duplicate, "name %q yielded twice", name)
		seen[name] = o
	}
	require.Len(t, seen, 2)
	assert.Equal(t, []*impl{a}, seen["a"].Overloads)
	assert.Equal(t, []*impl{b}, seen["b"].Privates)

	// Early break.
	count := 0
	for range r.Names() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestScenario(t *testing.T) {
	r := New[*impl]()
	f := &impl{"add"}
	r.Register(f, "aten::add", VariantPublic)
	assert.True(t, r.Has("aten::add"))
	assert.Equal(t, []*impl{f}, r.MustLookup("aten::add").Overloads)
	assert.False(t, r.Has("aten::sub"))
	_, err := r.Lookup("aten::sub")
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.Equal(t,
		`Registry{OverloadedFunction("aten::add", overloads=1, privates=0, complex=0)}`,
		r.String())
}

func TestVariantText(t *testing.T) {
	assert.Equal(t, "public", VariantPublic.String())
	assert.Equal(t, "private", VariantPrivate.String())
	assert.Equal(t, "complex", VariantComplex.String())
	assert.Equal(t, "Variant(5)", Variant(5).String())

	v, err := VariantString("Complex")
	require.NoError(t, err)
	assert.Equal(t, VariantComplex, v)
	_, err = VariantString("protected")
	assert.Error(t, err)

	var parsed Variant
	require.NoError(t, parsed.UnmarshalText([]byte("private")))
	assert.Equal(t, VariantPrivate, parsed)
	assert.Equal(t, []string{"public", "private", "complex"}, VariantStrings())
}
