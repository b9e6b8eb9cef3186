package babybear

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	f := &Field{}

	three := f.FromInterface(3)
	four := f.FromInterface(4)

	require.Equal(t, f.FromInterface(7), f.Add(three, four))
	require.Equal(t, f.FromInterface(12), f.Mul(three, four))
	require.Equal(t, f.FromInterface(1), f.Sub(four, three))
	sum := f.Add(three, f.Neg(three))
	require.True(t, sum.IsZero())
	require.Equal(t, f.FromInterface(P-1), f.Sub(three, four))
}

func TestInverse(t *testing.T) {
	f := &Field{}

	for _, v := range []uint64{1, 2, 3, 1 << 20, P - 1} {
		e := f.FromInterface(v)
		inv, ok := f.Inverse(e)
		require.True(t, ok)
		require.True(t, f.IsOne(f.Mul(inv, e)))
	}

	_, ok := f.Inverse(f.FromInterface(0))
	require.False(t, ok)
}

func TestReduction(t *testing.T) {
	f := &Field{}

	reduced := f.FromInterface(P)
	require.True(t, reduced.IsZero())
	require.True(t, f.IsOne(f.FromInterface(P+1)))

	v, ok := f.Uint64(f.FromInterface(uint64(P)*3 + 5))
	require.True(t, ok)
	require.Equal(t, uint64(5), v)
}
