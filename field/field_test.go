package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := FromUint64(3)
	b := FromUint64(5)

	require.True(t, Equal(Add(a, b), FromUint64(8)))
	require.True(t, Equal(Mul(a, b), FromUint64(15)))
	require.True(t, Equal(Sub(b, a), FromUint64(2)))
	require.True(t, Equal(Square(b), FromUint64(25)))
	require.True(t, Equal(Add(a, Neg(a)), Zero()))
	require.True(t, Zero().IsZero())
	require.False(t, One().IsZero())
}

func TestToBytesLERoundTrips(t *testing.T) {
	v := FromBigInt(big.NewInt(123456789))
	le := v.ToBytesLE()

	// little-endian: least significant byte first.
	var reconstructed big.Int
	be := make([]byte, len(le))
	for i, bt := range le {
		be[len(le)-1-i] = bt
	}
	reconstructed.SetBytes(be)
	require.Equal(t, big.NewInt(123456789), &reconstructed)
}

func TestToBytesLEStableWidth(t *testing.T) {
	require.Equal(t, ByteLen, len(Zero().ToBytesLE()))
	require.Equal(t, ByteLen, len(FromUint64(^uint64(0)).ToBytesLE()))
}
