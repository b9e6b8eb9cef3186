// Package bn254 implements the arithmetic engine for the bn254 scalar field,
// backed by gnark-crypto. Elements are kept in Montgomery form; the four fr
// limbs are stored in the first four limbs of constraint.Element.
package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"

	"github.com/curiousg23/halo2-hello-world/utils"
)

var ScalarField = fr.Modulus()

type Field struct{}

func toElement(e fr.Element) constraint.Element {
	return constraint.Element{e[0], e[1], e[2], e[3]}
}

func fromElement(c constraint.Element) fr.Element {
	return fr.Element{c[0], c[1], c[2], c[3]}
}

func (engine *Field) FromInterface(i interface{}) constraint.Element {
	switch v := i.(type) {
	case nil:
		return constraint.Element{}
	case constraint.Element:
		// already in engine representation
		return v
	case fr.Element:
		return toElement(v)
	}
	var e fr.Element
	if _, err := e.SetInterface(i); err != nil {
		b := utils.FromInterface(i)
		e.SetBigInt(&b)
	}
	return toElement(e)
}

func (engine *Field) ToBigInt(c constraint.Element) *big.Int {
	e := fromElement(c)
	r := new(big.Int)
	e.BigInt(r)
	return r
}

func (engine *Field) Mul(a, b constraint.Element) constraint.Element {
	ea := fromElement(a)
	eb := fromElement(b)
	ea.Mul(&ea, &eb)
	return toElement(ea)
}

func (engine *Field) Add(a, b constraint.Element) constraint.Element {
	ea := fromElement(a)
	eb := fromElement(b)
	ea.Add(&ea, &eb)
	return toElement(ea)
}

func (engine *Field) Sub(a, b constraint.Element) constraint.Element {
	ea := fromElement(a)
	eb := fromElement(b)
	ea.Sub(&ea, &eb)
	return toElement(ea)
}

func (engine *Field) Neg(a constraint.Element) constraint.Element {
	e := fromElement(a)
	e.Neg(&e)
	return toElement(e)
}

func (engine *Field) Inverse(a constraint.Element) (constraint.Element, bool) {
	e := fromElement(a)
	if e.IsZero() {
		return a, false
	}
	e.Inverse(&e)
	return toElement(e), true
}

func (engine *Field) IsOne(a constraint.Element) bool {
	e := fromElement(a)
	return e.IsOne()
}

func (engine *Field) One() constraint.Element {
	var e fr.Element
	e.SetOne()
	return toElement(e)
}

func (engine *Field) String(a constraint.Element) string {
	e := fromElement(a)
	return e.String()
}

func (engine *Field) Uint64(a constraint.Element) (uint64, bool) {
	r := engine.ToBigInt(a)
	if !r.IsUint64() {
		return 0, false
	}
	return r.Uint64(), true
}

func (engine *Field) Field() *big.Int {
	return new(big.Int).Set(ScalarField)
}

func (engine *Field) FieldBitLen() int {
	return fr.Bits
}
