package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromInterface(t *testing.T) {
	want := big.NewInt(42)

	require.Equal(t, *want, FromInterface(42))
	require.Equal(t, *want, FromInterface(uint8(42)))
	require.Equal(t, *want, FromInterface(int64(42)))
	require.Equal(t, *want, FromInterface("42"))
	require.Equal(t, *want, FromInterface("0x2a"))
	require.Equal(t, *want, FromInterface([]byte{42}))
	require.Equal(t, *want, FromInterface(big.NewInt(42)))
	require.Equal(t, *want, FromInterface(*big.NewInt(42)))
}

func TestFromInterfaceUnsupported(t *testing.T) {
	require.Panics(t, func() { FromInterface(struct{}{}) })
	require.Panics(t, func() { FromInterface("not a number") })
}
