package variable

import (
	"golang.org/x/exp/slices"

	"github.com/BaoNinh2808/plonk-cs/field"
)

// Term is one monomial of a linear combination: coeff * external-variable.
// ExtID is 1-based, matching spec §3's "External(u32) supplied by the
// caller; index >= 1".
type Term struct {
	Coeff field.Element
	ExtID uint32
}

// Expr is a symbolic expression tree over external variables, built with
// Const, Ext, Add and Scale. It is the input type accepted by Equal,
// Boolean, Square and R1CS (spec §4.7); Implementation freedom for the tree
// shape is total per spec §4.1 — here it is flattened eagerly, so Expr is
// already "canonical enough" to Add/Scale cheaply.
type Expr struct {
	constant    field.Element
	hasConstant bool
	terms       []Term
}

// Const builds a constant expression.
func Const(c field.Element) Expr {
	return Expr{constant: c, hasConstant: true}
}

// Zero is the empty expression, equal to the additive identity.
func Zero() Expr {
	return Expr{}
}

// Ext builds a single external-variable expression with coefficient one.
func Ext(id uint32) Expr {
	return Expr{terms: []Term{{Coeff: field.One(), ExtID: id}}}
}

// Add flattens the sum of any number of expressions. The result is not
// canonicalized (sorted/fused); call Canonicalize for that.
func Add(exprs ...Expr) Expr {
	var res Expr
	for _, e := range exprs {
		if e.hasConstant {
			if res.hasConstant {
				res.constant = field.Add(res.constant, e.constant)
			} else {
				res.constant = e.constant
				res.hasConstant = true
			}
		}
		res.terms = append(res.terms, e.terms...)
	}
	return res
}

// Scale returns s*e.
func Scale(s field.Element, e Expr) Expr {
	res := Expr{hasConstant: e.hasConstant}
	if e.hasConstant {
		res.constant = field.Mul(s, e.constant)
	}
	res.terms = make([]Term, len(e.terms))
	for i, t := range e.terms {
		res.terms[i] = Term{Coeff: field.Mul(s, t.Coeff), ExtID: t.ExtID}
	}
	return res
}

// Canonicalized is the result of Canonicalize: terms sorted by ExtID
// ascending, duplicate ids fused by summation (left-to-right, spec §4.1),
// zero coefficients retained.
type Canonicalized struct {
	Terms       []Term
	HadConstant bool
	Constant    field.Element
}

// Canonicalize sorts terms by external id, fuses runs of equal id by
// summing coefficients, and separates out the constant. Fusion is
// associative, applied left-to-right; a coefficient that fuses to zero is
// kept (spec §4.1: "the hash is insensitive only to algebraic equality-up-
// to-reordering, not to cancellation").
func Canonicalize(e Expr) Canonicalized {
	terms := make([]Term, len(e.terms))
	copy(terms, e.terms)
	slices.SortStableFunc(terms, func(a, b Term) int { return int(a.ExtID) - int(b.ExtID) })

	fused := make([]Term, 0, len(terms))
	for _, t := range terms {
		if n := len(fused); n > 0 && fused[n-1].ExtID == t.ExtID {
			fused[n-1].Coeff = field.Add(fused[n-1].Coeff, t.Coeff)
			continue
		}
		fused = append(fused, t)
	}

	return Canonicalized{
		Terms:       fused,
		HadConstant: e.hasConstant,
		Constant:    e.constant,
	}
}
