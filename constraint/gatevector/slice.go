// Package gatevector provides a minimal in-memory constraint.Sink, the
// concrete body spec §6.1 leaves up to the caller. It is what the tests and
// the plonkcs-stats CLI bind the builder's finalize step to.
package gatevector

import "github.com/BaoNinh2808/plonk-cs/field"

// Raw mirrors exactly the arguments a Sink.AddRaw call carries, so that
// recorded gates can be asserted on in tests without re-deriving the wire
// layout from a constraint.Gate.
type Raw struct {
	GateKind             uint8
	Row, LRow, RRow, ORow uint64
	LCol, RCol, OCol     uint8
	Coeffs               []field.Element
}

// Slice is a Sink that appends every call to an in-memory slice, in call
// order.
type Slice struct {
	Gates []Raw
}

// AddRaw implements constraint.Sink.
func (s *Slice) AddRaw(gateKind uint8,
	row, lrow uint64, lcol uint8,
	rrow uint64, rcol uint8,
	orow uint64, ocol uint8,
	coeffs []field.Element) {

	cp := make([]field.Element, len(coeffs))
	copy(cp, coeffs)
	s.Gates = append(s.Gates, Raw{
		GateKind: gateKind,
		Row:      row, LRow: lrow, RRow: rrow, ORow: orow,
		LCol: lcol, RCol: rcol, OCol: ocol,
		Coeffs: cp,
	})
}
