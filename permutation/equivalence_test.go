package permutation

import (
	"testing"

	"github.com/BaoNinh2808/plonk-cs/constraint"
	"github.com/BaoNinh2808/plonk-cs/variable"
	"github.com/stretchr/testify/require"
)

func TestFirstOccurrenceSelfLoops(t *testing.T) {
	c := New()
	v := variable.ExternalVar(1)
	row := constraint.AfterPublicInput(0)

	prev := c.Wire(v, row, 0)
	require.Equal(t, constraint.Position{Row: row, Col: 0}, prev)
	require.Equal(t, 1, c.Len(v))
}

func TestSecondOccurrenceBackPointsToFirst(t *testing.T) {
	c := New()
	v := variable.ExternalVar(1)
	row0 := constraint.AfterPublicInput(0)
	row1 := constraint.AfterPublicInput(1)

	c.Wire(v, row0, 0)
	prev := c.Wire(v, row1, 2)

	require.Equal(t, constraint.Position{Row: row0, Col: 0}, prev)
	require.Equal(t, 2, c.Len(v))
}

func TestUnknownVariableHasNoPositions(t *testing.T) {
	c := New()
	require.False(t, c.Known(variable.ExternalVar(9)))
	require.Equal(t, 0, c.Len(variable.ExternalVar(9)))
}
