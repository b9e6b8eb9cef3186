// Package halo2hello defines a plonkish circuit proving knowledge of a
// private x satisfying a*x^2 + b*x = c for public a, b, c.
//
// The public inputs live in one instance column, rows 0 to 2; x is the sole
// private witness. Chips for addition and multiplication are in chips/, the
// column and gate model in plonk/, synthesis in circuit/, and the mock
// proving backend in dev/.
package halo2hello

import (
	"github.com/consensys/gnark/constraint"

	"github.com/curiousg23/halo2-hello-world/dev"
	"github.com/curiousg23/halo2-hello-world/field"
)

// DefaultK sizes the circuit at 2^DefaultK rows, enough for the solution
// circuit's six regions with room to spare.
const DefaultK = 5

// Rows of the public inputs in the instance column. The solution cell is
// bound to RowC, so c doubles as the claimed result.
const (
	RowA = iota
	RowB
	RowC
	NbPublicInputs
)

// MakeInstance builds the instance column for one proving attempt.
func MakeInstance(f field.Field, a, b, c interface{}) [][]constraint.Element {
	return [][]constraint.Element{{
		f.FromInterface(a),
		f.FromInterface(b),
		f.FromInterface(c),
	}}
}

// Solve synthesizes the solution circuit for the given public (a, b, c) and
// private x, then verifies the resulting instance. A nil return means x
// solves the equation for exactly this public tuple.
func Solve(k uint32, f field.Field, a, b, c, x interface{}) error {
	prover, err := dev.Run(k, &SolutionCircuit{X: x}, f, MakeInstance(f, a, b, c))
	if err != nil {
		return err
	}
	return prover.Verify()
}
