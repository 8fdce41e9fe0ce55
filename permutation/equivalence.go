// Package permutation tracks, for every variable, the list of wire
// positions it occupies — the data the PLONK copy-permutation argument is
// built from (spec §4.3).
package permutation

import (
	"github.com/BaoNinh2808/plonk-cs/constraint"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

// Classes maps a variable to its positions, most recent occurrence first.
type Classes struct {
	classes map[variable.V][]constraint.Position
}

// New returns an empty equivalence-class map.
func New() *Classes {
	return &Classes{classes: make(map[variable.V][]constraint.Position)}
}

// Wire records that v occupies (row, col), and returns the previous
// position v occupied — the back-pointer the gate stores for this wire
// (spec §4.3). A variable's first occurrence back-points to itself.
func (c *Classes) Wire(v variable.V, row constraint.Row, col uint8) constraint.Position {
	here := constraint.Position{Row: row, Col: col}

	prev := here
	if positions, ok := c.classes[v]; ok && len(positions) > 0 {
		prev = positions[0]
	}

	c.classes[v] = append([]constraint.Position{here}, c.classes[v]...)
	return prev
}

// Positions returns every position recorded for v, most recent first.
func (c *Classes) Positions(v variable.V) []constraint.Position {
	return c.classes[v]
}

// Len returns the number of occurrences recorded for v.
func (c *Classes) Len(v variable.V) int {
	return len(c.classes[v])
}

// Known reports whether v has ever been wired.
func (c *Classes) Known(v variable.V) bool {
	_, ok := c.classes[v]
	return ok
}
