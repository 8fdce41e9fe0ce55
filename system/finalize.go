package system

import (
	"github.com/BaoNinh2808/plonk-cs/constraint"
	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

// FinalizeAndEmit synthesizes the public-input gates, then streams every
// gate — public-input gates first in ascending row, then user gates in
// insertion order — into sink exactly once each (spec §4.8, §6.1). Panics
// if public input size was never set, or if the system was already
// finalized; add_constraint after this call is a programmer error.
func (s *System) FinalizeAndEmit(sink constraint.Sink) {
	if s.publicInputSize == nil {
		panicPublicInputSizeNotSet()
	}
	if s.finalized {
		panicDoubleFinalize()
	}

	n := *s.publicInputSize

	for r := uint32(0); r < n; r++ {
		row := constraint.PublicInput(r)
		v := variable.ExternalVar(r + 1)
		prev := s.wire(v, row, 0)

		sink.AddRaw(
			constraint.KindGeneric,
			row.ToAbsolute(n), prev.Row.ToAbsolute(n), prev.Col,
			row.ToAbsolute(n), 1,
			row.ToAbsolute(n), 2,
			[]field.Element{field.One(), field.Zero(), field.Zero(), field.Zero(), field.Zero()},
		)
	}

	for _, g := range s.gates {
		var coeffs []field.Element
		if g.NCoeff > 0 {
			coeffs = g.Coeffs[:]
		}
		sink.AddRaw(
			g.Kind,
			g.Row.ToAbsolute(n), g.LRow.ToAbsolute(n), g.LCol,
			g.RRow.ToAbsolute(n), g.RCol,
			g.ORow.ToAbsolute(n), g.OCol,
			coeffs,
		)
	}

	s.log.Debug().Uint32("public_input_size", n).Uint32("rows", s.nextRow).Msg("finalized")
	s.finalized = true
}
