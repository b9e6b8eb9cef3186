package circuit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark/constraint"

	"github.com/curiousg23/halo2-hello-world/field"
	"github.com/curiousg23/halo2-hello-world/plonk"
)

// Assignment is the full value table of one circuit instance: every advice,
// fixed and selector cell across all regions, plus the verifier-supplied
// instance columns and the declared copy constraints. It is built by a
// single synthesis pass and never mutated afterwards.
type Assignment struct {
	field field.Field
	n     int

	advice         [][]constraint.Element
	adviceAssigned []*bitset.BitSet

	fixed         [][]constraint.Element
	fixedAssigned []*bitset.BitSet

	selectors [][]bool

	instance [][]constraint.Element

	copies []Copy
}

// NewAssignment allocates the value table for a circuit with 2^k rows. The
// instance argument carries one slice of public values per instance column;
// each slice must fit in the row count.
func NewAssignment(cs *plonk.ConstraintSystem, k uint32, instance [][]constraint.Element) (*Assignment, error) {
	n := 1 << k
	if len(instance) != cs.NbInstanceColumns() {
		return nil, fmt.Errorf("expected %d instance columns, got %d", cs.NbInstanceColumns(), len(instance))
	}
	for i, col := range instance {
		if len(col) > n {
			return nil, fmt.Errorf("instance column %d: %d values for %d rows: %w", i, len(col), n, ErrNotEnoughRows)
		}
	}

	a := &Assignment{
		field:          cs.Field(),
		n:              n,
		advice:         make([][]constraint.Element, cs.NbAdviceColumns()),
		adviceAssigned: make([]*bitset.BitSet, cs.NbAdviceColumns()),
		fixed:          make([][]constraint.Element, cs.NbFixedColumns()),
		fixedAssigned:  make([]*bitset.BitSet, cs.NbFixedColumns()),
		selectors:      make([][]bool, cs.NbSelectors()),
		instance:       instance,
	}
	for i := range a.advice {
		a.advice[i] = make([]constraint.Element, n)
		a.adviceAssigned[i] = bitset.New(uint(n))
	}
	for i := range a.fixed {
		a.fixed[i] = make([]constraint.Element, n)
		a.fixedAssigned[i] = bitset.New(uint(n))
	}
	for i := range a.selectors {
		a.selectors[i] = make([]bool, n)
	}
	return a, nil
}

// NbRows returns the total row count of the assignment.
func (a *Assignment) NbRows() int {
	return a.n
}

// Field returns the arithmetic engine of the assignment.
func (a *Assignment) Field() field.Field {
	return a.field
}

func (a *Assignment) assignAdvice(c plonk.Column, row int, v constraint.Element) error {
	if c.Type != plonk.Advice {
		panic(fmt.Sprintf("advice assignment to %v", c))
	}
	if row >= a.n {
		return fmt.Errorf("advice %v row %d: %w", c, row, ErrNotEnoughRows)
	}
	if a.adviceAssigned[c.Index].Test(uint(row)) {
		return fmt.Errorf("advice %v row %d: %w", c, row, ErrCellAlreadyAssigned)
	}
	a.advice[c.Index][row] = v
	a.adviceAssigned[c.Index].Set(uint(row))
	return nil
}

func (a *Assignment) assignFixed(c plonk.Column, row int, v constraint.Element) error {
	if c.Type != plonk.Fixed {
		panic(fmt.Sprintf("fixed assignment to %v", c))
	}
	if row >= a.n {
		return fmt.Errorf("fixed %v row %d: %w", c, row, ErrNotEnoughRows)
	}
	if a.fixedAssigned[c.Index].Test(uint(row)) {
		return fmt.Errorf("fixed %v row %d: %w", c, row, ErrCellAlreadyAssigned)
	}
	a.fixed[c.Index][row] = v
	a.fixedAssigned[c.Index].Set(uint(row))
	return nil
}

func (a *Assignment) enableSelector(s plonk.Selector, row int) error {
	if row >= a.n {
		return fmt.Errorf("selector %d row %d: %w", s.Index, row, ErrNotEnoughRows)
	}
	a.selectors[s.Index][row] = true
	return nil
}

func (a *Assignment) addCopy(left, right Cell) {
	a.copies = append(a.copies, Copy{Left: left, Right: right})
}

// Advice returns the value of an advice cell, or ErrCellNotAssigned if no
// chip has assigned it yet.
func (a *Assignment) Advice(c plonk.Column, row int) (constraint.Element, error) {
	if row >= a.n {
		return constraint.Element{}, fmt.Errorf("advice %v row %d: %w", c, row, ErrNotEnoughRows)
	}
	if !a.adviceAssigned[c.Index].Test(uint(row)) {
		return constraint.Element{}, fmt.Errorf("advice %v row %d: %w", c, row, ErrCellNotAssigned)
	}
	return a.advice[c.Index][row], nil
}

// AdviceOrZero returns the value of an advice cell, reading unassigned cells
// as zero. Rows wrap; this is the view gate evaluation uses.
func (a *Assignment) AdviceOrZero(colIdx, row int) constraint.Element {
	return a.advice[colIdx][((row%a.n)+a.n)%a.n]
}

// FixedOrZero returns the value of a fixed cell, reading unassigned cells as
// zero. Rows wrap.
func (a *Assignment) FixedOrZero(colIdx, row int) constraint.Element {
	return a.fixed[colIdx][((row%a.n)+a.n)%a.n]
}

// SelectorOn reports whether the selector is active on the given row.
func (a *Assignment) SelectorOn(selIdx, row int) bool {
	return a.selectors[selIdx][((row%a.n)+a.n)%a.n]
}

// Instance returns the public value at the given instance cell, or
// ErrInvalidInstance if the verifier supplied no value there.
func (a *Assignment) Instance(c plonk.Column, row int) (constraint.Element, error) {
	if c.Type != plonk.Instance {
		panic(fmt.Sprintf("instance query on %v", c))
	}
	if row < 0 || row >= len(a.instance[c.Index]) {
		return constraint.Element{}, fmt.Errorf("instance %v row %d: %w", c, row, ErrInvalidInstance)
	}
	return a.instance[c.Index][row], nil
}

// InstanceOrZero returns the public value at an instance cell, reading
// positions beyond the supplied values as zero. Rows wrap.
func (a *Assignment) InstanceOrZero(colIdx, row int) constraint.Element {
	row = ((row % a.n) + a.n) % a.n
	if row >= len(a.instance[colIdx]) {
		return constraint.Element{}
	}
	return a.instance[colIdx][row]
}

// Copies returns the copy constraints declared during synthesis.
func (a *Assignment) Copies() []Copy {
	return a.copies
}

// CellValue resolves the value of a cell for copy constraint checking,
// whatever column kind it lives in. Unassigned advice and fixed cells read
// as zero.
func (a *Assignment) CellValue(cell Cell) constraint.Element {
	switch cell.Column.Type {
	case plonk.Advice:
		return a.AdviceOrZero(cell.Column.Index, cell.Row)
	case plonk.Instance:
		return a.InstanceOrZero(cell.Column.Index, cell.Row)
	case plonk.Fixed:
		return a.FixedOrZero(cell.Column.Index, cell.Row)
	default:
		panic(fmt.Sprintf("cell in %v", cell.Column))
	}
}
