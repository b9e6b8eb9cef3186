package plonk

import "github.com/consensys/gnark/constraint"

// Expression is a polynomial over column queries, selectors and constants.
// A gate declares one or more expressions that must evaluate to zero on
// every row of the circuit.
type Expression interface {
	// Degree returns the degree of the expression as a multivariate
	// polynomial in the queried cells.
	Degree() int
}

// Constant represents a constant value within an expression.
type Constant struct {
	Value constraint.Element
}

// AdviceQuery reads the advice cell at the given rotation from the current row.
type AdviceQuery struct {
	Column   Column
	Rotation Rotation
}

// InstanceQuery reads the instance cell at the given rotation from the current row.
type InstanceQuery struct {
	Column   Column
	Rotation Rotation
}

// FixedQuery reads the fixed cell at the given rotation from the current row.
type FixedQuery struct {
	Column   Column
	Rotation Rotation
}

// SelectorQuery reads the selector value on the current row, as a field
// element (one when active, zero otherwise).
type SelectorQuery struct {
	Selector Selector
}

// Sum is the addition of zero or more expressions.
type Sum struct {
	Terms []Expression
}

// Sub is the subtraction of the later expressions from the first.
type Sub struct {
	Terms []Expression
}

// Product is the product of zero or more expressions.
type Product struct {
	Terms []Expression
}

// NewConstant constructs an expression representing a given constant.
func NewConstant(v constraint.Element) Expression {
	return Constant{Value: v}
}

// NewSum sums zero or more expressions together.
func NewSum(exprs ...Expression) Expression {
	return Sum{Terms: exprs}
}

// NewSub subtracts the subsequent expressions from the first.
func NewSub(exprs ...Expression) Expression {
	return Sub{Terms: exprs}
}

// NewProduct returns the product of zero or more expressions.
func NewProduct(exprs ...Expression) Expression {
	return Product{Terms: exprs}
}

func (e Constant) Degree() int      { return 0 }
func (e AdviceQuery) Degree() int   { return 1 }
func (e InstanceQuery) Degree() int { return 1 }
func (e FixedQuery) Degree() int    { return 1 }
func (e SelectorQuery) Degree() int { return 1 }

func (e Sum) Degree() int { return maxDegree(e.Terms) }
func (e Sub) Degree() int { return maxDegree(e.Terms) }

func (e Product) Degree() int {
	d := 0
	for _, t := range e.Terms {
		d += t.Degree()
	}
	return d
}

func maxDegree(exprs []Expression) int {
	d := 0
	for _, t := range exprs {
		if td := t.Degree(); td > d {
			d = td
		}
	}
	return d
}
