package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BaoNinh2808/plonk-cs/constraint"
	"github.com/BaoNinh2808/plonk-cs/constraint/gatevector"
	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/poseidon"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

func TestGenericBothConstantsNonzeroMFails(t *testing.T) {
	s := New()
	err := s.AddConstraint(GenericConstraint{
		L: variable.Const(field.FromUint64(2)),
		R: variable.Const(field.FromUint64(3)),
		O: variable.Zero(),
		M: field.One(),
		C: field.Zero(),
	})
	require.ErrorIs(t, err, ErrNonConstantRequired)
}

func TestGenericBothConstantsZeroMAssertsTrivially(t *testing.T) {
	s := New()
	// 2 + 3 - 5 = 0, no variables at all: must hold eagerly.
	err := s.AddConstraint(GenericConstraint{
		L: variable.Const(field.FromUint64(2)),
		R: variable.Const(field.FromUint64(3)),
		O: variable.Zero(),
		M: field.Zero(),
		C: field.Neg(field.FromUint64(5)),
	})
	require.NoError(t, err)
	require.Len(t, s.gates, 0)
}

func TestGenericBothConstantsZeroMFailsWhenUnsatisfied(t *testing.T) {
	s := New()
	err := s.AddConstraint(GenericConstraint{
		L: variable.Const(field.FromUint64(2)),
		R: variable.Const(field.FromUint64(3)),
		O: variable.Zero(),
		M: field.Zero(),
		C: field.Zero(),
	})
	var af *AssertFailureError
	require.ErrorAs(t, err, &af)
}

func TestGenericOneConstOneVarFoldsMTerm(t *testing.T) {
	s := New()
	// l=2 (const), r=x, m=3, c=0: m*l*r folds into r's selector, giving
	// sr = 1 + 3*2 = 7 and a constant of 2.
	require.NoError(t, s.AddConstraint(GenericConstraint{
		L: variable.Const(field.FromUint64(2)),
		R: variable.Ext(1),
		O: variable.Zero(),
		M: field.FromUint64(3),
		C: field.Zero(),
	}))
	s.SetPublicInputSize(1)

	sink := &gatevector.Slice{}
	s.FinalizeAndEmit(sink)
	require.Len(t, sink.Gates, 2)

	g := sink.Gates[1]
	// sr = 1 (coeff of R itself) + m*l*rCoeff(=1) = 1 + 3*2*1 = 7
	require.True(t, field.Equal(g.Coeffs[1], field.FromUint64(7)))
	require.True(t, field.Equal(g.Coeffs[4], field.FromUint64(2)))
	require.True(t, g.Coeffs[3].IsZero())
}

func TestPoseidonGateCount(t *testing.T) {
	s := New()
	params := poseidon.TestParams(3)

	// 4 states: one initial plus one per of the 3 rounds.
	state := make([][3]variable.V, 4)
	for i := range state {
		state[i] = [3]variable.V{
			variable.ExternalVar(uint32(i*3 + 1)),
			variable.ExternalVar(uint32(i*3 + 2)),
			variable.ExternalVar(uint32(i*3 + 3)),
		}
	}

	require.NoError(t, s.AddConstraint(PoseidonConstraint{State: state, Params: params}))
	require.Len(t, s.gates, 4) // 3 rounds + 1 final

	require.EqualValues(t, constraint.KindPoseidonRound, s.gates[0].Kind)
	require.EqualValues(t, constraint.KindPoseidonRound, s.gates[2].Kind)
	require.EqualValues(t, constraint.KindPoseidonFinal, s.gates[3].Kind)
}

func TestECAddGateShape(t *testing.T) {
	s := New()
	require.NoError(t, s.AddConstraint(ECAddConstraint{
		P1: ECPoint{X: variable.Ext(1), Y: variable.Ext(2)},
		P2: ECPoint{X: variable.Ext(3), Y: variable.Ext(4)},
		P3: ECPoint{X: variable.Ext(5), Y: variable.Ext(6)},
	}))
	require.Len(t, s.gates, 2)
	require.EqualValues(t, constraint.KindECAddY, s.gates[0].Kind)
	require.EqualValues(t, constraint.KindECAddX, s.gates[1].Kind)
	require.Equal(t, 0, s.gates[0].NCoeff)
}

// Invariant 3 (spec §8): after finalization, the sink sees exactly
// n+next_row calls; the first n are kind 1 with ascending row.
func TestInvariantFinalizeSinkShape(t *testing.T) {
	s := New()
	require.NoError(t, s.AddConstraint(R1CSConstraint{A: variable.Ext(1), B: variable.Ext(2), C: variable.Ext(3)}))
	s.SetPublicInputSize(3)

	sink := &gatevector.Slice{}
	nextRowBefore := s.nextRow
	s.FinalizeAndEmit(sink)

	require.Len(t, sink.Gates, 3+int(nextRowBefore))
	for i := 0; i < 3; i++ {
		require.EqualValues(t, 1, sink.Gates[i].GateKind)
		require.EqualValues(t, i, sink.Gates[i].Row)
	}
}

// Invariant 2 (spec §8): every variable's equivalence-class length equals
// its occurrence count across rows.
func TestInvariantEquivalenceClassLenMatchesOccurrences(t *testing.T) {
	s := New()
	require.NoError(t, s.AddConstraint(EqualConstraint{A: variable.Ext(1), B: variable.Ext(1)}))

	occurrences := make(map[uint64]int)
	for _, row := range s.rows {
		for _, sl := range row {
			if sl.set {
				occurrences[sl.v.ID]++
			}
		}
	}
	require.Equal(t, occurrences[1], s.equiv.Len(variable.ExternalVar(1)))
}
