// Package circuit implements the synthesis side of a plonkish circuit: the
// cell assignment backing store, the region layouter with its row cursor,
// and the Circuit interface tying configuration and synthesis together.
package circuit

import (
	"errors"

	"github.com/consensys/gnark/constraint"

	"github.com/curiousg23/halo2-hello-world/plonk"
)

var (
	// ErrNotEnoughRows is returned when synthesis requires more rows than
	// the circuit was allocated with.
	ErrNotEnoughRows = errors.New("not enough rows available, try a larger k")

	// ErrCellAlreadyAssigned is returned when a cell is assigned twice.
	ErrCellAlreadyAssigned = errors.New("cell already assigned")

	// ErrCellNotAssigned is returned when a cell is read before any chip
	// assigned it. This is a circuit programming error, not a bad witness.
	ErrCellNotAssigned = errors.New("cell read before assignment")

	// ErrEqualityNotEnabled is returned when a copy constraint involves a
	// column that was not enabled for equality at configure time.
	ErrEqualityNotEnabled = errors.New("column not enabled for equality")

	// ErrInvalidInstance is returned when an instance cell outside the
	// supplied public input is referenced.
	ErrInvalidInstance = errors.New("instance cell out of bounds")
)

// Circuit is the contract every circuit implements. Configure declares
// columns, selectors and gates on the constraint system; Synthesize fills an
// assignment through the layouter. Implementations keep their configuration
// on the circuit struct between the two calls.
type Circuit interface {
	Configure(meta *plonk.ConstraintSystem) error
	Synthesize(l *Layouter) error
}

// Cell identifies one cell of the circuit by column and absolute row.
type Cell struct {
	Column plonk.Column
	Row    int
}

// AssignedCell is a handle to a cell that has been assigned a value during
// synthesis. It is how chip outputs travel to later chip inputs.
type AssignedCell struct {
	cell  Cell
	value constraint.Element
}

// Cell returns the position of the assigned cell.
func (a AssignedCell) Cell() Cell {
	return a.cell
}

// Value returns the value the cell was assigned.
func (a AssignedCell) Value() constraint.Element {
	return a.value
}

// Copy is a declared equality between two cells, enforced independent of
// their positions.
type Copy struct {
	Left  Cell
	Right Cell
}
