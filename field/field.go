// Package field defines the arithmetic engine interface used for all cell
// values, together with the concrete engines this module ships.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/curiousg23/halo2-hello-world/field/babybear"
	"github.com/curiousg23/halo2-hello-world/field/bn254"
)

// Field is the arithmetic engine all circuit values live in. Cell values are
// represented as constraint.Element and are only meaningful together with the
// engine that produced them.
type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

// GetFieldFromOrder returns the engine for the field of the given order.
func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(babybear.ScalarField) == 0 {
		return &babybear.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
