package system

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

var fieldElementComparer = cmp.Comparer(func(a, b field.Element) bool { return field.Equal(a, b) })

// Two systems built from the same three-term sum, one with the sum written
// left-to-right and one right-to-left, must compute identical witnesses —
// canonicalization erases the syntactic order (spec §4.1).
func TestWitnessStableUnderTermReordering(t *testing.T) {
	values := func(idx uint32) field.Element {
		switch idx {
		case 1:
			return field.FromUint64(2)
		case 2:
			return field.FromUint64(3)
		case 3:
			return field.Neg(field.FromUint64(5))
		}
		return field.Zero()
	}

	build := func(sum variable.Expr) [][3]field.Element {
		s := New()
		require.NoError(t, s.AddConstraint(EqualConstraint{A: sum, B: variable.Const(field.Zero())}))
		s.SetPublicInputSize(3)
		w, err := s.ComputeWitness(values)
		require.NoError(t, err)
		return w
	}

	forward := build(variable.Add(variable.Ext(1), variable.Ext(2), variable.Ext(3)))
	backward := build(variable.Add(variable.Ext(3), variable.Ext(2), variable.Ext(1)))

	if diff := cmp.Diff(forward, backward, fieldElementComparer); diff != "" {
		t.Fatalf("witness differs under term reordering (-forward +backward):\n%s", diff)
	}
}
