package system

import (
	"errors"
	"fmt"
)

// Semantic and unsupported-input errors (spec §7): reported to the caller,
// never panicked.
var (
	// ErrNonConstantRequired is returned by a Generic constraint whose l
	// and r both reduce to constants while m != 0 (spec §4.7).
	ErrNonConstantRequired = errors.New("plonk-cs: generic constraint requires a non-constant operand for its multiplicative term")

	// ErrUnsupportedConstraint is returned for a constraint kind outside
	// the enumeration in spec §4.7.
	ErrUnsupportedConstraint = errors.New("plonk-cs: unsupported constraint kind")

	// ErrUnknownInternalVar indicates an internal variable referenced
	// during witness computation has no recorded formula — an invariant
	// violation, not a normal runtime condition (spec §4.10 step 3).
	ErrUnknownInternalVar = errors.New("plonk-cs: internal variable referenced with no recorded formula")
)

// AssertFailureError reports that a constraint trivially reduced to a false
// statement over constants (spec §4.7, §8 scenario S6).
type AssertFailureError struct {
	Kind string
}

func (e *AssertFailureError) Error() string {
	return fmt.Sprintf("plonk-cs: %s constraint over constant operands does not hold", e.Kind)
}

// Usage errors are programmer bugs (spec §7) and panic rather than return an
// error, matching the teacher's own treatment of misuse
// (frontend.AddPublicVariable panics if called after Define()).

func panicFinalized() {
	panic("plonk-cs: add_constraint called on a finalized constraint system")
}

func panicDoubleFinalize() {
	panic("plonk-cs: finalize_and_emit called twice on the same constraint system")
}

func panicPublicInputSizeNotSet() {
	panic("plonk-cs: finalize_and_emit called before set_public_input_size")
}

func panicPublicInputSizeAlreadySet() {
	panic("plonk-cs: set_public_input_size called twice")
}
