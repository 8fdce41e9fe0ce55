package system

import (
	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/internalvar"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

// reducedKind tags the result of reduce_lincom: either the reduction
// collapsed to a bare constant, or to a single scaled variable (spec §4.5).
type reducedKind uint8

const (
	reducedConstant reducedKind = iota
	reducedVar
)

type reduced struct {
	kind reducedKind
	// s is the scalar: the constant value itself when kind ==
	// reducedConstant, or the coefficient on v when kind == reducedVar.
	s field.Element
	v variable.V
}

// emitGeneric appends a plain Generic gate with the given five selectors
// and up to three wires, filling any unused slot with the first present
// variable (spec invariants require every occupied slot to name a real,
// already-known variable; a zero selector makes the filler's identity
// arithmetically inert — see DESIGN.md for this open-question resolution).
func (s *System) emitGeneric(coeffs [5]field.Element, l, r, o *variable.V) {
	filler := l
	if filler == nil {
		filler = r
	}
	if filler == nil {
		filler = o
	}
	if l == nil {
		l = filler
	}
	if r == nil {
		r = filler
	}
	if o == nil {
		o = filler
	}
	s.addRow(1, rowSlots{l, r, o}, coeffs, 5)
}

// reduceLincom is the central transform (spec §4.5): it collapses an
// arbitrary linear combination over external variables into either a bare
// constant or a single (scalar, variable) pair, spilling every combination
// of two or more variables, and any single variable plus a constant, through
// fresh internal wires via Generic gates.
func (s *System) reduceLincom(x variable.Expr) reduced {
	c := variable.Canonicalize(x)

	if len(c.Terms) == 0 {
		if c.HadConstant {
			return reduced{kind: reducedConstant, s: c.Constant}
		}
		return reduced{kind: reducedConstant, s: field.Zero()}
	}

	if len(c.Terms) == 1 && !c.HadConstant {
		t := c.Terms[0]
		return reduced{kind: reducedVar, s: t.Coeff, v: variable.ExternalVar(t.ExtID)}
	}

	if len(c.Terms) == 1 && c.HadConstant {
		t := c.Terms[0]
		xi := variable.ExternalVar(t.ExtID)
		res := s.internals.Create(
			[]internalvar.WeightedVar{{Coeff: t.Coeff, Var: xi}},
			c.Constant, true,
		)
		// s*x + 0*_ + (-1)*res + 0*x*y + c = 0
		s.emitGeneric(
			[5]field.Element{t.Coeff, field.Zero(), field.Neg(field.One()), field.Zero(), c.Constant},
			&xi, nil, &res,
		)
		return reduced{kind: reducedVar, s: field.One(), v: res}
	}

	// More than one term: fold the tail completely, then fuse the head in.
	head := c.Terms[0]
	tailReduced := s.completelyReduce(c.Terms[1:])

	xi := variable.ExternalVar(head.ExtID)
	constant := field.Zero()
	hasConstant := c.HadConstant
	if hasConstant {
		constant = c.Constant
	}

	res := s.internals.Create(
		[]internalvar.WeightedVar{
			{Coeff: head.Coeff, Var: xi},
			{Coeff: tailReduced.s, Var: tailReduced.v},
		},
		constant, hasConstant,
	)
	s.emitGeneric(
		[5]field.Element{head.Coeff, tailReduced.s, field.Neg(field.One()), field.Zero(), constant},
		&xi, &tailReduced.v, &res,
	)
	return reduced{kind: reducedVar, s: field.One(), v: res}
}

// completelyReduce right-folds a (non-empty) sorted term list into a single
// (scalar, variable) pair, one Generic gate per fold. The chain is
// right-leaning (the head is fused last): this ordering is preserved
// intentionally because the circuit digest and gate count depend on it
// (spec §4.5).
func (s *System) completelyReduce(terms []variable.Term) reduced {
	last := terms[len(terms)-1]
	acc := reduced{kind: reducedVar, s: last.Coeff, v: variable.ExternalVar(last.ExtID)}

	for i := len(terms) - 2; i >= 0; i-- {
		t := terms[i]
		xi := variable.ExternalVar(t.ExtID)

		res := s.internals.Create(
			[]internalvar.WeightedVar{
				{Coeff: t.Coeff, Var: xi},
				{Coeff: acc.s, Var: acc.v},
			},
			field.Zero(), false,
		)
		s.emitGeneric(
			[5]field.Element{t.Coeff, acc.s, field.Neg(field.One()), field.Zero(), field.Zero()},
			&xi, &acc.v, &res,
		)
		acc = reduced{kind: reducedVar, s: field.One(), v: res}
	}

	return acc
}

// reduceToV collapses x to a single raw variable with coefficient one,
// spilling a pinning gate when the reduction left a residual scalar or a
// bare constant (spec §4.6).
func (s *System) reduceToV(x variable.Expr) variable.V {
	r := s.reduceLincom(x)

	if r.kind == reducedVar {
		if field.Equal(r.s, field.One()) {
			return r.v
		}
		sv := s.internals.Create(
			[]internalvar.WeightedVar{{Coeff: r.s, Var: r.v}},
			field.Zero(), false,
		)
		// s*v + 0 + (-1)*sv + 0 + 0 = 0
		s.emitGeneric(
			[5]field.Element{r.s, field.Zero(), field.Neg(field.One()), field.Zero(), field.Zero()},
			&r.v, nil, &sv,
		)
		return sv
	}

	cv := s.internals.Create(nil, r.s, true)
	// 1*cv + 0 + 0 + 0 + (-s) = 0
	s.emitGeneric(
		[5]field.Element{field.One(), field.Zero(), field.Zero(), field.Zero(), field.Neg(r.s)},
		&cv, nil, nil,
	)
	return cv
}
