package constraint

import "github.com/BaoNinh2808/plonk-cs/field"

// Gate kind numbering. Bit-exact with the downstream prover (spec §3); never
// renumber these.
const (
	KindPoseidonFinal  uint8 = 0
	KindGeneric        uint8 = 1
	KindPoseidonRound  uint8 = 2
	KindECAddY         uint8 = 3
	KindECAddX         uint8 = 4
	KindECScaleXtBYt   uint8 = 5
	KindECScaleXpL1Yp  uint8 = 6
	KindECScaleXsXtYs  uint8 = 7
	KindECEndoscale0   uint8 = 8
	KindECEndoscale1   uint8 = 9
	KindECEndoscale2   uint8 = 10
	KindECEndoscale3   uint8 = 11
)

// Gate is one row of the arithmetization, still expressed in Row-relative
// (not-yet-absolute) terms. lrow/lcol, rrow/rcol, orow/ocol are the previous
// occurrences of the variables placed at this row's three columns — the
// copy-permutation back-pointers (spec §3).
type Gate struct {
	Kind uint8
	Row  Row

	LRow Row
	LCol uint8
	RRow Row
	RCol uint8
	ORow Row
	OCol uint8

	// Coeffs is emitted with NCoeff entries, 0 or 5 depending on Kind
	// (spec §6.1).
	Coeffs [5]field.Element
	NCoeff int
}

// Sink is the single collaborator the builder calls during finalization
// (spec §6.1). Implementations must treat the call sequence as contractual:
// all public-input gates in ascending row, then all user gates in insertion
// order, each called exactly once.
type Sink interface {
	AddRaw(gateKind uint8,
		row, lrow uint64, lcol uint8,
		rrow uint64, rcol uint8,
		orow uint64, ocol uint8,
		coeffs []field.Element)
}
