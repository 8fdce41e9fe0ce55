package system

import (
	"github.com/BaoNinh2808/plonk-cs/constraint"
	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/poseidon"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

// Constraint is the single dispatch entry every high-level constraint kind
// implements. The source language this builder is modeled on uses an
// extensible sum type for constraints; in this closed-world Go
// reimplementation that becomes one interface with an enumerated set of
// implementations (spec §9 design note).
type Constraint interface {
	lower(s *System) error
}

// AddConstraint feeds c into the digest, then lowers it into gates,
// internal variables, and equivalence-class entries. Panics if the system
// is already finalized (spec §4.8 invariant 4); returns an error for
// unsatisfiable constant operands or unsupported constraint shapes (spec
// §7).
func (s *System) AddConstraint(c Constraint) error {
	if s.finalized {
		panicFinalized()
	}
	if err := c.lower(s); err != nil {
		return err
	}
	s.constraints++
	return nil
}

// --- Equal ---

// EqualConstraint asserts a == b.
type EqualConstraint struct {
	A, B variable.Expr
}

func (c EqualConstraint) lower(s *System) error {
	s.digest.feedTag("equal")
	s.digest.feedExpr(c.A)
	s.digest.feedExpr(c.B)

	ra := s.reduceLincom(c.A)
	rb := s.reduceLincom(c.B)

	switch {
	case ra.kind == reducedVar && rb.kind == reducedVar:
		// Open question (spec §9): the source emits the same gate whether
		// ra.v == rb.v or not; preserved here rather than optimized into a
		// permutation-only check.
		s.emitGeneric([5]field.Element{ra.s, field.Neg(rb.s), field.Zero(), field.Zero(), field.Zero()}, &ra.v, &rb.v, nil)
	case ra.kind == reducedVar && rb.kind == reducedConstant:
		s.emitGeneric([5]field.Element{ra.s, field.Zero(), field.Zero(), field.Zero(), field.Neg(rb.s)}, &ra.v, nil, nil)
	case ra.kind == reducedConstant && rb.kind == reducedVar:
		s.emitGeneric([5]field.Element{field.Neg(rb.s), field.Zero(), field.Zero(), field.Zero(), ra.s}, &rb.v, nil, nil)
	default:
		if !field.Equal(ra.s, rb.s) {
			return &AssertFailureError{Kind: "equal"}
		}
	}
	return nil
}

// --- Boolean ---

// BooleanConstraint asserts v*(v-1) == 0.
type BooleanConstraint struct {
	V variable.Expr
}

func (c BooleanConstraint) lower(s *System) error {
	s.digest.feedTag("boolean")
	s.digest.feedExpr(c.V)

	r := s.reduceLincom(c.V)
	if r.kind == reducedConstant {
		if !field.Equal(r.s, field.Square(r.s)) {
			return &AssertFailureError{Kind: "boolean"}
		}
		return nil
	}

	// -s*v + s^2*v*v = 0
	s.emitGeneric(
		[5]field.Element{field.Neg(r.s), field.Zero(), field.Zero(), field.Square(r.s), field.Zero()},
		&r.v, &r.v, nil,
	)
	return nil
}

// --- Square ---

// SquareConstraint asserts x*x == z.
type SquareConstraint struct {
	X, Z variable.Expr
}

func (c SquareConstraint) lower(s *System) error {
	s.digest.feedTag("square")
	s.digest.feedExpr(c.X)
	s.digest.feedExpr(c.Z)

	rx := s.reduceLincom(c.X)
	rz := s.reduceLincom(c.Z)

	switch {
	case rx.kind == reducedVar && rz.kind == reducedVar:
		m := field.Square(rx.s)
		s.emitGeneric([5]field.Element{field.Zero(), field.Zero(), field.Neg(rz.s), m, field.Zero()}, &rx.v, &rx.v, &rz.v)
	case rx.kind == reducedVar && rz.kind == reducedConstant:
		m := field.Square(rx.s)
		s.emitGeneric([5]field.Element{field.Zero(), field.Zero(), field.Zero(), m, field.Neg(rz.s)}, &rx.v, &rx.v, nil)
	case rx.kind == reducedConstant && rz.kind == reducedVar:
		c2 := field.Square(rx.s)
		s.emitGeneric([5]field.Element{field.Neg(rz.s), field.Zero(), field.Zero(), field.Zero(), c2}, &rz.v, nil, nil)
	default:
		if !field.Equal(field.Square(rx.s), rz.s) {
			return &AssertFailureError{Kind: "square"}
		}
	}
	return nil
}

// --- R1CS ---

// R1CSConstraint asserts a*b == c.
type R1CSConstraint struct {
	A, B, C variable.Expr
}

func (c R1CSConstraint) lower(s *System) error {
	s.digest.feedTag("r1cs")
	s.digest.feedExpr(c.A)
	s.digest.feedExpr(c.B)
	s.digest.feedExpr(c.C)

	ra := s.reduceLincom(c.A)
	rb := s.reduceLincom(c.B)
	rc := s.reduceLincom(c.C)

	aVar := ra.kind == reducedVar
	bVar := rb.kind == reducedVar
	cVar := rc.kind == reducedVar

	switch {
	case aVar && bVar && cVar:
		sm := field.Neg(field.Mul(ra.s, rb.s))
		s.emitGeneric([5]field.Element{field.Zero(), field.Zero(), rc.s, sm, field.Zero()}, &ra.v, &rb.v, &rc.v)
	case aVar && bVar && !cVar:
		sm := field.Mul(ra.s, rb.s)
		s.emitGeneric([5]field.Element{field.Zero(), field.Zero(), field.Zero(), sm, field.Neg(rc.s)}, &ra.v, &rb.v, nil)
	case aVar && !bVar && cVar:
		sl := field.Mul(ra.s, rb.s)
		s.emitGeneric([5]field.Element{sl, field.Zero(), field.Neg(rc.s), field.Zero(), field.Zero()}, &ra.v, nil, &rc.v)
	case !aVar && bVar && cVar:
		sr := field.Mul(ra.s, rb.s)
		s.emitGeneric([5]field.Element{field.Zero(), sr, field.Neg(rc.s), field.Zero(), field.Zero()}, nil, &rb.v, &rc.v)
	case aVar && !bVar && !cVar:
		sl := field.Mul(ra.s, rb.s)
		s.emitGeneric([5]field.Element{sl, field.Zero(), field.Zero(), field.Zero(), field.Neg(rc.s)}, &ra.v, nil, nil)
	case !aVar && bVar && !cVar:
		sl := field.Mul(ra.s, rb.s)
		s.emitGeneric([5]field.Element{sl, field.Zero(), field.Zero(), field.Zero(), field.Neg(rc.s)}, &rb.v, nil, nil)
	case !aVar && !bVar && cVar:
		sl := field.Neg(rc.s)
		s.emitGeneric([5]field.Element{sl, field.Zero(), field.Zero(), field.Zero(), field.Mul(ra.s, rb.s)}, &rc.v, nil, nil)
	default:
		if !field.Equal(field.Mul(ra.s, rb.s), rc.s) {
			return &AssertFailureError{Kind: "r1cs"}
		}
	}
	return nil
}

// --- Generic ---

// GenericConstraint is the raw PLONK gate relation: L + R + O + M*L*R + C ==
// 0, where L, R, O are first independently reduced (spec §4.7). Each of L,
// R, O may already carry an arbitrary coefficient via variable.Scale before
// being passed in.
type GenericConstraint struct {
	L, R, O variable.Expr
	M, C    field.Element
}

func (c GenericConstraint) lower(s *System) error {
	s.digest.feedTag("basic")
	s.digest.feedExpr(c.L)
	s.digest.feedExpr(c.R)
	s.digest.feedExpr(c.O)
	// m, c are bare scalars, not expressions; feed them the same way a
	// one-term, variable-free canonical form would be fed.
	s.digest.feedCoeffID(c.M, 0)
	s.digest.feedCoeffID(c.C, 0)

	rl := s.reduceLincom(c.L)
	rr := s.reduceLincom(c.R)
	ro := s.reduceLincom(c.O)

	cAcc := c.C
	var sl, sr, so field.Element
	var lv, rv, ov variable.V
	var haveL, haveR, haveO bool

	if rl.kind == reducedConstant {
		cAcc = field.Add(cAcc, rl.s)
	} else {
		sl, lv, haveL = rl.s, rl.v, true
	}
	if rr.kind == reducedConstant {
		cAcc = field.Add(cAcc, rr.s)
	} else {
		sr, rv, haveR = rr.s, rr.v, true
	}
	if ro.kind == reducedConstant {
		cAcc = field.Add(cAcc, ro.s)
	} else {
		so, ov, haveO = ro.s, ro.v, true
	}

	var sm field.Element
	switch {
	case rl.kind == reducedConstant && rr.kind == reducedConstant:
		if !c.M.IsZero() {
			return ErrNonConstantRequired
		}
	case rl.kind == reducedConstant && rr.kind != reducedConstant:
		sr = field.Add(sr, field.Mul(c.M, field.Mul(rl.s, rr.s)))
	case rl.kind != reducedConstant && rr.kind == reducedConstant:
		sl = field.Add(sl, field.Mul(c.M, field.Mul(rr.s, rl.s)))
	default:
		sm = field.Mul(c.M, field.Mul(rl.s, rr.s))
	}

	if !haveL && !haveR && !haveO {
		if !cAcc.IsZero() {
			return &AssertFailureError{Kind: "basic"}
		}
		return nil
	}

	var lp, rp, op *variable.V
	if haveL {
		lp = &lv
	}
	if haveR {
		rp = &rv
	}
	if haveO {
		op = &ov
	}
	s.emitGeneric([5]field.Element{sl, sr, so, sm, cAcc}, lp, rp, op)
	return nil
}

// --- Poseidon ---

// PoseidonConstraint asserts a Poseidon permutation trace: State has
// len(Params.RoundConstants) entries, State[i] -> State[i+1] for each
// round, ending in a final (zero-selector) transition (spec §4.7, §6.3).
type PoseidonConstraint struct {
	State  [][3]variable.V
	Params poseidon.Params
}

func (c PoseidonConstraint) lower(s *System) error {
	s.digest.feedTag("poseidon")
	for _, st := range c.State {
		for _, v := range st {
			s.digest.feedCoeffID(field.One(), v.ID)
		}
	}

	r := c.Params.Rounds()
	for i := 0; i < r; i++ {
		rc := c.Params.RoundConstants[i+1]
		s0, s1, s2 := c.State[i][0], c.State[i][1], c.State[i][2]
		s.addRow(constraint.KindPoseidonRound, rowSlots{&s0, &s1, &s2}, [5]field.Element{rc[0], rc[1], rc[2], field.Zero(), field.Zero()}, 5)
	}
	s0, s1, s2 := c.State[r][0], c.State[r][1], c.State[r][2]
	s.addRow(constraint.KindPoseidonFinal, rowSlots{&s0, &s1, &s2}, [5]field.Element{}, 5)
	return nil
}

// --- EC_add ---

// ECPoint is an affine point given as two reducible linear combinations.
type ECPoint struct {
	X, Y variable.Expr
}

// ECAddConstraint asserts p1 + p2 == p3 on the (unspecified here) curve;
// the arithmetic relation itself lives downstream, this builder only wires
// the coordinates (spec §4.7).
type ECAddConstraint struct {
	P1, P2, P3 ECPoint
}

func (c ECAddConstraint) lower(s *System) error {
	s.digest.feedTag("ec_add")
	for _, p := range []ECPoint{c.P1, c.P2, c.P3} {
		s.digest.feedExpr(p.X)
		s.digest.feedExpr(p.Y)
	}

	x1, y1 := s.reduceToV(c.P1.X), s.reduceToV(c.P1.Y)
	x2, y2 := s.reduceToV(c.P2.X), s.reduceToV(c.P2.Y)
	x3, y3 := s.reduceToV(c.P3.X), s.reduceToV(c.P3.Y)

	s.addRow(constraint.KindECAddY, rowSlots{&y1, &y2, &y3}, [5]field.Element{}, 0)
	s.addRow(constraint.KindECAddX, rowSlots{&x1, &x2, &x3}, [5]field.Element{}, 0)
	return nil
}

// --- EC_scale ---

// ScaleRound is one round of double-and-add scalar multiplication, given as
// reducible coordinate/bit expressions (spec §4.7).
type ScaleRound struct {
	Xt, B, Yt    variable.Expr
	Xp, L1, Yp   variable.Expr
	Xs, Xt2, Ys  variable.Expr
}

// ECScaleConstraint asserts a scalar-multiplication trace.
type ECScaleConstraint struct {
	State []ScaleRound
}

func (c ECScaleConstraint) lower(s *System) error {
	s.digest.feedTag("ec_scale")
	for _, rnd := range c.State {
		for _, e := range []variable.Expr{rnd.Xt, rnd.B, rnd.Yt, rnd.Xp, rnd.L1, rnd.Yp, rnd.Xs, rnd.Xt2, rnd.Ys} {
			s.digest.feedExpr(e)
		}
	}

	for _, rnd := range c.State {
		xt, b, yt := s.reduceToV(rnd.Xt), s.reduceToV(rnd.B), s.reduceToV(rnd.Yt)
		xp, l1, yp := s.reduceToV(rnd.Xp), s.reduceToV(rnd.L1), s.reduceToV(rnd.Yp)
		xs, xt2, ys := s.reduceToV(rnd.Xs), s.reduceToV(rnd.Xt2), s.reduceToV(rnd.Ys)

		s.addRow(constraint.KindECScaleXtBYt, rowSlots{&xt, &b, &yt}, [5]field.Element{}, 0)
		s.addRow(constraint.KindECScaleXpL1Yp, rowSlots{&xp, &l1, &yp}, [5]field.Element{}, 0)
		s.addRow(constraint.KindECScaleXsXtYs, rowSlots{&xs, &xt2, &ys}, [5]field.Element{}, 0)
	}
	return nil
}

// --- EC_endoscale ---

// EndoRound is one round of endomorphism-accelerated scalar multiplication
// (spec §4.7, §6.4). Row0 has only two real wires; the third column of
// that row is left unoccupied (spec §9 open question).
type EndoRound struct {
	Row0 [2]variable.Expr
	Row1 [3]variable.Expr
	Row2 [3]variable.Expr
	Row3 [3]variable.Expr
}

// ECEndoscaleConstraint asserts an endoscale scalar-multiplication trace.
type ECEndoscaleConstraint struct {
	State []EndoRound
}

func (c ECEndoscaleConstraint) lower(s *System) error {
	s.digest.feedTag("ec_endoscale")
	for _, rnd := range c.State {
		s.digest.feedExpr(rnd.Row0[0])
		s.digest.feedExpr(rnd.Row0[1])
		for _, row := range [][3]variable.Expr{rnd.Row1, rnd.Row2, rnd.Row3} {
			for _, e := range row {
				s.digest.feedExpr(e)
			}
		}
	}

	for _, rnd := range c.State {
		a, b := s.reduceToV(rnd.Row0[0]), s.reduceToV(rnd.Row0[1])
		s.addRowSelfLoopCol2(constraint.KindECEndoscale0, a, b)

		for idx, row := range [][3]variable.Expr{rnd.Row1, rnd.Row2, rnd.Row3} {
			v0, v1, v2 := s.reduceToV(row[0]), s.reduceToV(row[1]), s.reduceToV(row[2])
			kind := constraint.KindECEndoscale1
			switch idx {
			case 1:
				kind = constraint.KindECEndoscale2
			case 2:
				kind = constraint.KindECEndoscale3
			}
			s.addRow(kind, rowSlots{&v0, &v1, &v2}, [5]field.Element{}, 0)
		}
	}
	return nil
}
