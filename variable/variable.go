// Package variable represents the two kinds of wire a constraint can name —
// externally-supplied and builder-allocated — and the linear combinations
// built from them.
package variable

import "fmt"

// Kind tags a Variable as either caller-supplied or builder-allocated.
type Kind uint8

const (
	// External variables are supplied by the caller at proving time,
	// indexed from 1.
	External Kind = iota
	// Internal variables are allocated by the builder while lowering a
	// constraint.
	Internal
)

// V is a tagged variable reference. The zero value is not a valid Variable;
// always construct through ExternalVar or InternalVar.
type V struct {
	Kind Kind
	// ID holds the external index (1-based) when Kind == External, or the
	// internal id when Kind == Internal.
	ID uint64
}

// ExternalVar tags a caller-supplied variable. idx must be >= 1.
func ExternalVar(idx uint32) V {
	return V{Kind: External, ID: uint64(idx)}
}

// InternalVar tags a builder-allocated variable.
func InternalVar(id uint64) V {
	return V{Kind: Internal, ID: id}
}

// Less imposes a total order over variables: External before Internal, then
// by id.
func (v V) Less(o V) bool {
	if v.Kind != o.Kind {
		return v.Kind < o.Kind
	}
	return v.ID < o.ID
}

func (v V) String() string {
	if v.Kind == External {
		return fmt.Sprintf("ext(%d)", v.ID)
	}
	return fmt.Sprintf("int(%d)", v.ID)
}
