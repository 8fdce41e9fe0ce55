package system

import (
	"fmt"

	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

// ExternalValues supplies the value of an external variable by its 1-based
// index (spec §6.5 compute_witness(f)).
type ExternalValues func(idx uint32) field.Element

// ComputeWitness fills the dense row x 3 assignment: public-input rows
// first, then every regular row, resolving internal variables lazily
// against their recorded formulas (spec §4.10). Does not finalize the
// system — compute_witness and finalize_and_emit are independent terminal
// operations (spec §3 lifecycle).
func (s *System) ComputeWitness(f ExternalValues) ([][3]field.Element, error) {
	n := s.GetPublicInputSize()
	res := make([][3]field.Element, uint64(n)+uint64(s.nextRow))

	for i := uint32(0); i < n; i++ {
		res[i][0] = f(i + 1)
	}

	memo := make(map[uint64]field.Element)

	var evalInternal func(id uint64) (field.Element, error)
	evalVar := func(v variable.V) (field.Element, error) {
		if v.Kind == variable.External {
			return f(uint32(v.ID)), nil
		}
		return evalInternal(v.ID)
	}

	evalInternal = func(id uint64) (field.Element, error) {
		if v, ok := memo[id]; ok {
			return v, nil
		}
		rec, ok := s.internals.Lookup(id)
		if !ok {
			return field.Element{}, fmt.Errorf("%w: internal(%d)", ErrUnknownInternalVar, id)
		}

		acc := field.Zero()
		if rec.HasConst {
			acc = rec.Constant
		}
		for _, t := range rec.Terms {
			val, err := evalVar(t.Var)
			if err != nil {
				return field.Element{}, err
			}
			acc = field.Add(acc, field.Mul(t.Coeff, val))
		}

		memo[id] = acc
		return acc, nil
	}

	for j, row := range s.rows {
		i := uint64(n) + uint64(j)
		for k := 0; k < 3; k++ {
			sl := row[k]
			if !sl.set {
				continue
			}
			val, err := evalVar(sl.v)
			if err != nil {
				return nil, err
			}
			res[i][k] = val
		}
	}

	return res, nil
}
