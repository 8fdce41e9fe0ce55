// Package system is the constraint-lowering compiler: it accepts high-level
// constraints over a prime field and lowers them into PLONK gates, tracking
// the copy-permutation equivalence classes, internal-variable table, and a
// circuit fingerprint as it goes (spec §4).
package system

import (
	"github.com/rs/zerolog"

	"github.com/BaoNinh2808/plonk-cs/constraint"
	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/internal/logger"
	"github.com/BaoNinh2808/plonk-cs/internalvar"
	"github.com/BaoNinh2808/plonk-cs/permutation"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

// slot is one wire of a row's witness template: an optional variable (spec
// §3 Option<V>).
type slot struct {
	v   variable.V
	set bool
}

// System is the single mutable value the builder owns; no hidden globals
// (spec §9). The zero value is not usable — construct with New.
type System struct {
	log *zerolog.Logger

	equiv     *permutation.Classes
	internals *internalvar.Table

	rows  [][3]slot
	gates []constraint.Gate

	finalized bool
	nextRow   uint32

	digest      *digestAccumulator
	constraints uint32

	publicInputSize    *uint32
	auxiliaryInputSize uint32
}

// New returns an empty constraint system.
func New() *System {
	return &System{
		log:       logger.Logger(),
		equiv:     permutation.New(),
		internals: internalvar.New(),
		digest:    newDigestAccumulator(),
	}
}

// NumConstraints returns the number of constraints accepted so far (spec
// §6.5).
func (s *System) NumConstraints() uint32 {
	return s.constraints
}

// Digest returns the MD5-of-SHA-256 circuit fingerprint of every constraint
// accepted so far, in order (spec §4.9). Pure function of that ordered
// sequence: two systems fed the same constraints in the same order produce
// identical digests at every prefix length (spec §8 invariant 4).
func (s *System) Digest() [16]byte {
	return s.digest.sum()
}

// SetPublicInputSize fixes n, the number of external variables 1..n wired
// as public-input rows at finalization. May be called exactly once (spec
// §3, §4.8).
func (s *System) SetPublicInputSize(n uint32) {
	if s.publicInputSize != nil {
		panicPublicInputSizeAlreadySet()
	}
	s.publicInputSize = &n
	s.log.Debug().Uint32("n", n).Msg("public input size set")
}

// SetAuxiliaryInputSize records the number of external variables beyond the
// public input section (spec §3). May be called any number of times; the
// last call wins, mirroring GetAuxiliaryInputSize's role as a plain
// accessor rather than a one-shot configuration switch.
func (s *System) SetAuxiliaryInputSize(n uint32) {
	s.auxiliaryInputSize = n
}

// GetPublicInputSize returns the configured public input size, or 0 if
// unset.
func (s *System) GetPublicInputSize() uint32 {
	if s.publicInputSize == nil {
		return 0
	}
	return *s.publicInputSize
}

// GetAuxiliaryInputSize returns the configured auxiliary input size.
func (s *System) GetAuxiliaryInputSize() uint32 {
	return s.auxiliaryInputSize
}

// wire records that v occupies (row,col) and returns the back-pointer to
// its previous occurrence (spec §4.3).
func (s *System) wire(v variable.V, row constraint.Row, col uint8) constraint.Position {
	return s.equiv.Wire(v, row, col)
}

// rowSlots is the three optional variables placed at a row, used both to
// build the witness template and to decide which wire() calls to make.
type rowSlots [3]*variable.V

// addRow appends one gate (still row-relative) and its witness template
// (spec §4.4). Panics if the system is already finalized — add_constraint
// on a finalized system is a programmer error (spec invariant 4).
func (s *System) addRow(kind uint8, slots rowSlots, coeffs [5]field.Element, ncoeff int) constraint.Gate {
	if s.finalized {
		panicFinalized()
	}

	row := constraint.AfterPublicInput(s.nextRow)

	var ts [3]slot
	var lp, rp, op constraint.Position
	for col, vp := range slots {
		if vp == nil {
			continue
		}
		ts[col] = slot{v: *vp, set: true}
		prev := s.wire(*vp, row, uint8(col))
		switch col {
		case 0:
			lp = prev
		case 1:
			rp = prev
		case 2:
			op = prev
		}
	}

	g := constraint.Gate{
		Kind: kind, Row: row,
		LRow: lp.Row, LCol: lp.Col,
		RRow: rp.Row, RCol: rp.Col,
		ORow: op.Row, OCol: op.Col,
		Coeffs: coeffs, NCoeff: ncoeff,
	}

	s.gates = append(s.gates, g)
	s.rows = append(s.rows, ts)
	s.nextRow++

	return g
}

// addRowSelfLoopCol2 is addRow specialized for EC_endoscale's kind-8 rows,
// whose third column has no variable at all: its back-pointer self-loops to
// its own (row, col 2) rather than going through the equivalence classes
// (spec §4.7, §9 open question — "downstream must not read it").
func (s *System) addRowSelfLoopCol2(kind uint8, col0, col1 variable.V) constraint.Gate {
	if s.finalized {
		panicFinalized()
	}

	row := constraint.AfterPublicInput(s.nextRow)

	lp := s.wire(col0, row, 0)
	rp := s.wire(col1, row, 1)
	op := constraint.Position{Row: row, Col: 2}

	g := constraint.Gate{
		Kind: kind, Row: row,
		LRow: lp.Row, LCol: lp.Col,
		RRow: rp.Row, RCol: rp.Col,
		ORow: op.Row, OCol: op.Col,
	}

	s.gates = append(s.gates, g)
	s.rows = append(s.rows, [3]slot{{v: col0, set: true}, {v: col1, set: true}, {}})
	s.nextRow++

	return g
}
