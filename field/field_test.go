package field

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"

	"github.com/curiousg23/halo2-hello-world/field/babybear"
	"github.com/curiousg23/halo2-hello-world/field/bn254"
)

func TestGetFieldFromOrder(t *testing.T) {
	f := GetFieldFromOrder(ecc.BN254.ScalarField())
	require.IsType(t, &bn254.Field{}, f)

	f = GetFieldFromOrder(babybear.ScalarField)
	require.IsType(t, &babybear.Field{}, f)

	require.Panics(t, func() { GetFieldFromOrder(big.NewInt(97)) })
}
