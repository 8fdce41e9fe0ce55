// Package field adapts a concrete gnark-crypto scalar field element to the
// narrow contract the constraint system builder needs: add/sub/mul/neg/
// square, equality, the additive/multiplicative identities, and a
// fixed-length little-endian byte encoding stable across runs and platforms.
//
// The builder itself is field-agnostic; this package pins it to the BN254
// scalar field, the curve the rest of the retrieval pack's gnark forks target
// by default.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ByteLen is L = ceil(log2(p)/8) for the BN254 scalar field: the width the
// digest accumulator feeds per coefficient (spec §6.2).
const ByteLen = fr.Bytes

// Element is a single scalar field element.
type Element struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// FromUint64 embeds a small non-negative integer into the field.
func FromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// FromBigInt embeds an arbitrary-precision integer, reducing mod p.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.inner.SetBigInt(v)
	return e
}

// Add returns a+b.
func Add(a, b Element) Element {
	var r Element
	r.inner.Add(&a.inner, &b.inner)
	return r
}

// Sub returns a-b.
func Sub(a, b Element) Element {
	var r Element
	r.inner.Sub(&a.inner, &b.inner)
	return r
}

// Mul returns a*b.
func Mul(a, b Element) Element {
	var r Element
	r.inner.Mul(&a.inner, &b.inner)
	return r
}

// Neg returns -a.
func Neg(a Element) Element {
	var r Element
	r.inner.Neg(&a.inner)
	return r
}

// Square returns a*a.
func Square(a Element) Element {
	var r Element
	r.inner.Square(&a.inner)
	return r
}

// Equal reports whether a == b.
func Equal(a, b Element) bool {
	return a.inner.Equal(&b.inner)
}

// IsZero reports whether a is the additive identity.
func (e Element) IsZero() bool {
	return e.inner.IsZero()
}

// String renders the element in decimal, for debugging and log lines only.
func (e Element) String() string {
	return e.inner.String()
}

// ToBytesLE renders the canonical little-endian encoding, width ByteLen. This
// is the exact byte sequence the digest accumulator hashes per coefficient
// (spec §4.9, §6.2); gnark-crypto's Bytes() is big-endian, so the bytes are
// copied out in reverse order rather than reinterpreted, to keep the conversion
// obviously correct under review.
func (e Element) ToBytesLE() [ByteLen]byte {
	be := e.inner.Bytes()
	var le [ByteLen]byte
	for i := 0; i < ByteLen; i++ {
		le[i] = be[ByteLen-1-i]
	}
	return le
}
