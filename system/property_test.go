package system

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

// Invariant 4 (spec §8): digest is a pure function of the ordered sequence
// of accepted constraints. Two systems fed the same constraints in the same
// order produce identical digests at every prefix length.
func TestPropertyDigestIsPureFunctionOfConstraintSequence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("identical constraint sequences digest identically at every prefix", prop.ForAll(
		func(vals []uint64) bool {
			a, b := New(), New()
			for _, v := range vals {
				ca := BooleanConstraint{V: variable.Const(field.FromUint64(v % 2))}
				cb := BooleanConstraint{V: variable.Const(field.FromUint64(v % 2))}
				_ = a.AddConstraint(ca)
				_ = b.AddConstraint(cb)
				if a.Digest() != b.Digest() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt64Range(0, 1)),
	))

	properties.TestingRun(t)
}

// Invariant 1 (spec §8): num_constraints() increments by exactly 1 per
// accepted constraint.
func TestPropertyConstraintCountMonotone(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("num_constraints increments by exactly 1 per accepted constraint", prop.ForAll(
		func(n int) bool {
			s := New()
			for i := 0; i < n; i++ {
				before := s.NumConstraints()
				if err := s.AddConstraint(EqualConstraint{A: variable.Const(field.Zero()), B: variable.Const(field.Zero())}); err != nil {
					return false
				}
				if s.NumConstraints() != before+1 {
					return false
				}
			}
			return s.NumConstraints() == uint32(n)
		},
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}

// Invariant 6 (spec §8): canonicalize(a+b) == canonicalize(b+a).
func TestPropertyCanonicalizeCommutes(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("canonicalize is insensitive to term order", prop.ForAll(
		func(c1, c2 uint64, id1, id2 uint32) bool {
			id1, id2 = id1%5+1, id2%5+1
			a := variable.Add(
				variable.Scale(field.FromUint64(c1), variable.Ext(id1)),
				variable.Scale(field.FromUint64(c2), variable.Ext(id2)),
			)
			b := variable.Add(
				variable.Scale(field.FromUint64(c2), variable.Ext(id2)),
				variable.Scale(field.FromUint64(c1), variable.Ext(id1)),
			)

			ca, cb := variable.Canonicalize(a), variable.Canonicalize(b)
			if len(ca.Terms) != len(cb.Terms) {
				return false
			}
			for i := range ca.Terms {
				if ca.Terms[i].ExtID != cb.Terms[i].ExtID || !field.Equal(ca.Terms[i].Coeff, cb.Terms[i].Coeff) {
					return false
				}
			}
			return true
		},
		gen.UInt64Range(0, 1000), gen.UInt64Range(0, 1000), gen.UInt32Range(0, 100), gen.UInt32Range(0, 100),
	))

	properties.TestingRun(t)
}
