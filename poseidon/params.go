// Package poseidon supplies the round-constants table the Poseidon gate
// lowering reads from (spec §6.3). Generating cryptographically sound
// constants is outside a constraint *builder*'s concerns — same boundary
// the spec draws around proof generation — so this package only carries the
// shape and a small deterministic test vector.
package poseidon

import "github.com/BaoNinh2808/plonk-cs/field"

// Params supplies round_constants[i][0..2] for i in [0, R]. R is implied by
// the length of RoundConstants minus one, and must match the state length
// passed to a Poseidon constraint (spec §4.7, §6.3).
type Params struct {
	RoundConstants [][3]field.Element
}

// Rounds returns R, the number of round transitions this Params supports.
func (p Params) Rounds() int {
	if len(p.RoundConstants) == 0 {
		return 0
	}
	return len(p.RoundConstants) - 1
}

// TestParams returns a small, deterministic round-constants table, useful
// for exercising the Poseidon lowering path without pulling in a production
// constants generator. Not suitable for a real circuit.
func TestParams(rounds int) Params {
	rc := make([][3]field.Element, rounds+1)
	for i := range rc {
		rc[i] = [3]field.Element{
			field.FromUint64(uint64(3*i + 1)),
			field.FromUint64(uint64(3*i + 2)),
			field.FromUint64(uint64(3*i + 3)),
		}
	}
	return Params{RoundConstants: rc}
}
