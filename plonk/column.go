// Package plonk models the configure-time side of a plonkish circuit: typed
// column handles, selectors, gate polynomials and the constraint system that
// collects them. Witness assignment lives in the circuit package.
package plonk

import "fmt"

// ColumnType distinguishes the three column kinds. The kind of a column is
// fixed at allocation and never changes.
type ColumnType uint8

const (
	// Advice columns hold prover-supplied witness and intermediate values.
	Advice ColumnType = iota
	// Instance columns hold public inputs supplied by the verifier.
	Instance
	// Fixed columns hold values baked into the circuit definition.
	Fixed
)

func (t ColumnType) String() string {
	switch t {
	case Advice:
		return "advice"
	case Instance:
		return "instance"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Column is a handle to a column allocated by a ConstraintSystem. Columns of
// different types are numbered independently.
type Column struct {
	Index int
	Type  ColumnType
}

func (c Column) String() string {
	return fmt.Sprintf("%s[%d]", c.Type, c.Index)
}

// Selector is a handle to a virtual fixed column holding 0/1 values. An
// active selector row turns on the gates that query it; inactive rows impose
// no constraint.
type Selector struct {
	Index int
}

// Rotation is a row offset relative to the row a gate is evaluated at.
// Rotations wrap around the end of the column.
type Rotation int

const (
	// RotationCur queries the current row.
	RotationCur Rotation = 0
	// RotationNext queries the next row.
	RotationNext Rotation = 1
)
