package circuit

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/curiousg23/halo2-hello-world/field"
	"github.com/curiousg23/halo2-hello-world/plonk"
)

// Layouter hands out regions of rows to chip invocations, single pass and in
// call order. The row cursor is owned here and only ever advances, so two
// regions never overlap.
type Layouter struct {
	cs     *plonk.ConstraintSystem
	asg    *Assignment
	cursor int
}

func NewLayouter(cs *plonk.ConstraintSystem, asg *Assignment) *Layouter {
	return &Layouter{cs: cs, asg: asg}
}

// Field returns the arithmetic engine of the circuit being synthesized.
func (l *Layouter) Field() field.Field {
	return l.cs.Field()
}

// NbRowsUsed returns the number of rows consumed by regions so far.
func (l *Layouter) NbRowsUsed() int {
	return l.cursor
}

// AssignRegion reserves a fresh region starting at the current cursor and
// runs fn to populate it. The region's height is one past the largest offset
// fn touches; the cursor advances past it when fn returns without error.
func (l *Layouter) AssignRegion(name string, fn func(r *Region) error) error {
	r := &Region{layouter: l, name: name, start: l.cursor}
	if err := fn(r); err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	l.cursor += r.rows
	return nil
}

// ConstrainInstance binds an already-assigned cell to a public instance
// cell. Both columns must have equality enabled.
func (l *Layouter) ConstrainInstance(cell Cell, instance plonk.Column, row int) error {
	if instance.Type != plonk.Instance {
		panic(fmt.Sprintf("ConstrainInstance against %v", instance))
	}
	if !l.cs.EqualityEnabled(cell.Column) {
		return fmt.Errorf("%v: %w", cell.Column, ErrEqualityNotEnabled)
	}
	if !l.cs.EqualityEnabled(instance) {
		return fmt.Errorf("%v: %w", instance, ErrEqualityNotEnabled)
	}
	if _, err := l.asg.Instance(instance, row); err != nil {
		return err
	}
	l.asg.addCopy(cell, Cell{Column: instance, Row: row})
	return nil
}

// Region is a contiguous span of rows reserved for one chip invocation. All
// offsets are relative to the region start.
type Region struct {
	layouter *Layouter
	name     string
	start    int
	rows     int
}

func (r *Region) touch(offset int) {
	if offset+1 > r.rows {
		r.rows = offset + 1
	}
}

// AssignAdvice assigns a value into an advice cell of the region and returns
// a handle to it.
func (r *Region) AssignAdvice(c plonk.Column, offset int, v constraint.Element) (AssignedCell, error) {
	row := r.start + offset
	if err := r.layouter.asg.assignAdvice(c, row, v); err != nil {
		return AssignedCell{}, err
	}
	r.touch(offset)
	return AssignedCell{cell: Cell{Column: c, Row: row}, value: v}, nil
}

// AssignFixed assigns a value into a fixed cell of the region.
func (r *Region) AssignFixed(c plonk.Column, offset int, v constraint.Element) (AssignedCell, error) {
	row := r.start + offset
	if err := r.layouter.asg.assignFixed(c, row, v); err != nil {
		return AssignedCell{}, err
	}
	r.touch(offset)
	return AssignedCell{cell: Cell{Column: c, Row: row}, value: v}, nil
}

// AssignAdviceFromInstance copies a public instance value into an advice
// cell and copy-constrains the two, making the instance value authoritative.
func (r *Region) AssignAdviceFromInstance(instance plonk.Column, instanceRow int, c plonk.Column, offset int) (AssignedCell, error) {
	if !r.layouter.cs.EqualityEnabled(instance) {
		return AssignedCell{}, fmt.Errorf("%v: %w", instance, ErrEqualityNotEnabled)
	}
	if !r.layouter.cs.EqualityEnabled(c) {
		return AssignedCell{}, fmt.Errorf("%v: %w", c, ErrEqualityNotEnabled)
	}
	v, err := r.layouter.asg.Instance(instance, instanceRow)
	if err != nil {
		return AssignedCell{}, err
	}
	cell, err := r.AssignAdvice(c, offset, v)
	if err != nil {
		return AssignedCell{}, err
	}
	r.layouter.asg.addCopy(cell.Cell(), Cell{Column: instance, Row: instanceRow})
	return cell, nil
}

// CopyAdvice assigns the value of an existing cell into an advice cell of
// the region and copy-constrains the two. Both columns must have equality
// enabled.
func (r *Region) CopyAdvice(from AssignedCell, c plonk.Column, offset int) (AssignedCell, error) {
	if !r.layouter.cs.EqualityEnabled(from.Cell().Column) {
		return AssignedCell{}, fmt.Errorf("%v: %w", from.Cell().Column, ErrEqualityNotEnabled)
	}
	if !r.layouter.cs.EqualityEnabled(c) {
		return AssignedCell{}, fmt.Errorf("%v: %w", c, ErrEqualityNotEnabled)
	}
	cell, err := r.AssignAdvice(c, offset, from.Value())
	if err != nil {
		return AssignedCell{}, err
	}
	r.layouter.asg.addCopy(cell.Cell(), from.Cell())
	return cell, nil
}

// EnableSelector activates a selector on one row of the region, turning on
// the gates that query it there.
func (r *Region) EnableSelector(s plonk.Selector, offset int) error {
	if err := r.layouter.asg.enableSelector(s, r.start+offset); err != nil {
		return err
	}
	r.touch(offset)
	return nil
}
