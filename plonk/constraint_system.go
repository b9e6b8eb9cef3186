package plonk

import (
	"fmt"

	"github.com/curiousg23/halo2-hello-world/field"
)

// Gate is a named set of polynomial identities, registered once at configure
// time. Every polynomial must evaluate to zero on every row of any accepted
// assignment.
type Gate struct {
	Name  string
	Polys []Expression
}

// ConstraintSystem collects the column set, selectors, gates and equality
// declarations of a circuit. It is populated once, by the circuit's
// Configure, and read-only afterwards.
type ConstraintSystem struct {
	field field.Field

	nbAdvice   int
	nbInstance int
	nbFixed    int
	nbSelector int

	gates    []Gate
	equality map[Column]struct{}
}

func NewConstraintSystem(f field.Field) *ConstraintSystem {
	return &ConstraintSystem{
		field:    f,
		equality: make(map[Column]struct{}),
	}
}

// Field returns the arithmetic engine the circuit is defined over.
func (cs *ConstraintSystem) Field() field.Field {
	return cs.field
}

// AdviceColumn allocates a new advice column.
func (cs *ConstraintSystem) AdviceColumn() Column {
	c := Column{Index: cs.nbAdvice, Type: Advice}
	cs.nbAdvice++
	return c
}

// InstanceColumn allocates a new instance column.
func (cs *ConstraintSystem) InstanceColumn() Column {
	c := Column{Index: cs.nbInstance, Type: Instance}
	cs.nbInstance++
	return c
}

// FixedColumn allocates a new fixed column.
func (cs *ConstraintSystem) FixedColumn() Column {
	c := Column{Index: cs.nbFixed, Type: Fixed}
	cs.nbFixed++
	return c
}

// Selector allocates a new selector.
func (cs *ConstraintSystem) Selector() Selector {
	s := Selector{Index: cs.nbSelector}
	cs.nbSelector++
	return s
}

// EnableEquality allows cells of the given column to participate in copy
// constraints.
func (cs *ConstraintSystem) EnableEquality(c Column) {
	cs.equality[c] = struct{}{}
}

// EqualityEnabled reports whether the given column was enabled for copy
// constraints.
func (cs *ConstraintSystem) EqualityEnabled(c Column) bool {
	_, ok := cs.equality[c]
	return ok
}

// QueryAdvice returns an expression reading the given advice column at the
// given rotation. It panics if the column is not an advice column, since
// that is a circuit definition bug.
func (cs *ConstraintSystem) QueryAdvice(c Column, rot Rotation) Expression {
	if c.Type != Advice {
		panic(fmt.Sprintf("QueryAdvice on %v", c))
	}
	return AdviceQuery{Column: c, Rotation: rot}
}

// QueryInstance returns an expression reading the given instance column at
// the given rotation.
func (cs *ConstraintSystem) QueryInstance(c Column, rot Rotation) Expression {
	if c.Type != Instance {
		panic(fmt.Sprintf("QueryInstance on %v", c))
	}
	return InstanceQuery{Column: c, Rotation: rot}
}

// QueryFixed returns an expression reading the given fixed column at the
// given rotation.
func (cs *ConstraintSystem) QueryFixed(c Column, rot Rotation) Expression {
	if c.Type != Fixed {
		panic(fmt.Sprintf("QueryFixed on %v", c))
	}
	return FixedQuery{Column: c, Rotation: rot}
}

// QuerySelector returns an expression reading the given selector on the
// current row.
func (cs *ConstraintSystem) QuerySelector(s Selector) Expression {
	return SelectorQuery{Selector: s}
}

// CreateGate registers a named gate. The polynomials are required to hold on
// every row; a gate that should only constrain some rows must gate itself on
// a selector.
func (cs *ConstraintSystem) CreateGate(name string, polys ...Expression) {
	cs.gates = append(cs.gates, Gate{Name: name, Polys: polys})
}

// Gates returns the registered gates.
func (cs *ConstraintSystem) Gates() []Gate {
	return cs.gates
}

func (cs *ConstraintSystem) NbAdviceColumns() int   { return cs.nbAdvice }
func (cs *ConstraintSystem) NbInstanceColumns() int { return cs.nbInstance }
func (cs *ConstraintSystem) NbFixedColumns() int    { return cs.nbFixed }
func (cs *ConstraintSystem) NbSelectors() int       { return cs.nbSelector }
