// Package internalvar allocates and records builder-introduced variables:
// fresh ids, and the linear-combination formula that defines each one.
package internalvar

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

// Record is how an internal variable's value is defined: sum(coeff * value
// of referenced var) + constant offset (spec §3).
type Record struct {
	Terms    []WeightedVar
	Constant field.Element
	HasConst bool
}

// WeightedVar is one summand of an internal variable's formula. The
// referenced variable may itself be external or internal; the dependency
// graph among internal variables is a DAG by construction (spec invariant
// 5) because an id can only be referenced after it is allocated.
type WeightedVar struct {
	Coeff field.Element
	Var   variable.V
}

// Table owns the monotone internal-id counter and every internal var's
// formula. The zero value is not usable — construct with New.
type Table struct {
	next    uint64
	records map[uint64]Record
	// defined tracks which ids have a recorded formula, addressed densely
	// by the monotone id rather than a map[uint64]bool — ids are handed out
	// sequentially from zero, so a bitset stays compact for the lifetime of
	// a single builder.
	defined *bitset.BitSet
}

// New returns an empty table.
func New() *Table {
	return &Table{
		records: make(map[uint64]Record),
		defined: bitset.New(1024),
	}
}

// Create allocates a fresh internal variable and records its formula.
func (t *Table) Create(terms []WeightedVar, constant field.Element, hasConstant bool) variable.V {
	id := t.next
	t.next++

	cp := make([]WeightedVar, len(terms))
	copy(cp, terms)
	t.records[id] = Record{Terms: cp, Constant: constant, HasConst: hasConstant}
	t.defined.Set(uint(id))

	return variable.InternalVar(id)
}

// Lookup returns the formula for id, and whether it is defined.
func (t *Table) Lookup(id uint64) (Record, bool) {
	if !t.defined.Test(uint(id)) {
		return Record{}, false
	}
	r, ok := t.records[id]
	return r, ok
}

// NextID previews the id the next Create call will allocate, without
// allocating it.
func (t *Table) NextID() uint64 {
	return t.next
}

func (r Record) String() string {
	return fmt.Sprintf("terms=%d hasConst=%v", len(r.Terms), r.HasConst)
}
