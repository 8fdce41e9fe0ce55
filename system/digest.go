package system

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

// digestSeed is fed once, at construction, ahead of any constraint (spec §3).
const digestSeed = "plonk_constraint_system"

// digestAccumulator rolls a SHA-256 hash over every accepted constraint, in
// order. It is not a cryptographic digest — it is a deduplication
// fingerprint (spec §9) — so the exact byte layout below (coefficient
// little-endian of width field.ByteLen, then 8-byte little-endian id) must
// never change, or downstream caching breaks.
//
// crypto/sha256 and crypto/md5 are used directly rather than a third-party
// hash package: spec §4.9 mandates the exact SHA-256-then-MD5 construction
// bit-for-bit, and gnark-crypto does not ship either primitive — there is no
// ecosystem alternative to "be" here, only the two stdlib algorithms the
// spec names.
type digestAccumulator struct {
	h hash.Hash
}

func newDigestAccumulator() *digestAccumulator {
	d := &digestAccumulator{h: sha256.New()}
	d.h.Write([]byte(digestSeed))
	return d
}

func (d *digestAccumulator) feedTag(tag string) {
	d.h.Write([]byte(tag))
}

func (d *digestAccumulator) feedCoeffID(coeff field.Element, id uint64) {
	bs := coeff.ToBytesLE()
	d.h.Write(bs[:])
	var idBytes [8]byte
	binary.LittleEndian.PutUint64(idBytes[:], id)
	d.h.Write(idBytes[:])
}

// feedCanonical feeds a canonicalized expression: the constant first (as a
// synthetic id-0 term) if present, then every real term in ascending id
// order (spec §4.9).
func (d *digestAccumulator) feedCanonical(c variable.Canonicalized) {
	if c.HadConstant {
		d.feedCoeffID(c.Constant, 0)
	}
	for _, t := range c.Terms {
		d.feedCoeffID(t.Coeff, uint64(t.ExtID))
	}
}

func (d *digestAccumulator) feedExpr(e variable.Expr) {
	d.feedCanonical(variable.Canonicalize(e))
}

// sum returns the MD5 of the running SHA-256 state's raw 32-byte output.
// hash.Hash.Sum does not mutate the accumulator, so this may be called at
// any point without perturbing subsequent feeds (spec §3: "digest may be
// called at any time").
func (d *digestAccumulator) sum() [16]byte {
	sha := d.h.Sum(nil)
	return md5.Sum(sha)
}
