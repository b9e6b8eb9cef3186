// Package dev provides a mock proving backend: it synthesizes a circuit into
// a full cell assignment and checks every gate row and copy constraint
// against it. A circuit accepted here is exactly one whose declared
// polynomial identities and copy constraints all hold.
package dev

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/curiousg23/halo2-hello-world/circuit"
	"github.com/curiousg23/halo2-hello-world/field"
	"github.com/curiousg23/halo2-hello-world/logger"
	"github.com/curiousg23/halo2-hello-world/plonk"
)

// ErrInvalidProof is returned by Verify when any constraint is violated.
// Which constraint failed is deliberately not reported to the caller.
var ErrInvalidProof = errors.New("invalid proof")

// MockProver holds a synthesized circuit instance ready for verification.
type MockProver struct {
	cs    *plonk.ConstraintSystem
	asg   *circuit.Assignment
	field field.Field
}

// Run configures the circuit, allocates an assignment with 2^k rows for the
// given public instance, and synthesizes the witness into it. Synthesis
// errors (such as row exhaustion) propagate unchanged; a witness that merely
// fails the circuit's equation still synthesizes fine and is only caught by
// Verify.
func Run(k uint32, c circuit.Circuit, f field.Field, instance [][]constraint.Element) (*MockProver, error) {
	cs := plonk.NewConstraintSystem(f)
	if err := c.Configure(cs); err != nil {
		return nil, fmt.Errorf("configure: %w", err)
	}
	asg, err := circuit.NewAssignment(cs, k, instance)
	if err != nil {
		return nil, err
	}
	l := circuit.NewLayouter(cs, asg)
	if err := c.Synthesize(l); err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Info().
		Int("nbRows", l.NbRowsUsed()).
		Int("nbGates", len(cs.Gates())).
		Int("nbCopies", len(asg.Copies())).
		Msg("synthesized")

	return &MockProver{cs: cs, asg: asg, field: f}, nil
}

// Verify evaluates every gate polynomial on every row and every copy
// constraint against the assignment. It returns ErrInvalidProof on the
// first violation and nil if the instance is fully consistent.
func (p *MockProver) Verify() error {
	log := logger.Logger()
	n := p.asg.NbRows()

	for _, g := range p.cs.Gates() {
		for _, poly := range g.Polys {
			for row := 0; row < n; row++ {
				if v := p.eval(poly, row); !v.IsZero() {
					log.Debug().Str("gate", g.Name).Int("row", row).Msg("gate polynomial nonzero")
					return ErrInvalidProof
				}
			}
		}
	}

	for _, cp := range p.asg.Copies() {
		if p.asg.CellValue(cp.Left) != p.asg.CellValue(cp.Right) {
			log.Debug().
				Str("left", fmt.Sprintf("%v@%d", cp.Left.Column, cp.Left.Row)).
				Str("right", fmt.Sprintf("%v@%d", cp.Right.Column, cp.Right.Row)).
				Msg("copy constraint violated")
			return ErrInvalidProof
		}
	}

	return nil
}

// Assignment returns the synthesized assignment, for inspection in tests.
func (p *MockProver) Assignment() *circuit.Assignment {
	return p.asg
}

// ConstraintSystem returns the configured constraint system.
func (p *MockProver) ConstraintSystem() *plonk.ConstraintSystem {
	return p.cs
}

func (p *MockProver) eval(e plonk.Expression, row int) constraint.Element {
	switch t := e.(type) {
	case plonk.Constant:
		return t.Value
	case plonk.AdviceQuery:
		return p.asg.AdviceOrZero(t.Column.Index, row+int(t.Rotation))
	case plonk.InstanceQuery:
		return p.asg.InstanceOrZero(t.Column.Index, row+int(t.Rotation))
	case plonk.FixedQuery:
		return p.asg.FixedOrZero(t.Column.Index, row+int(t.Rotation))
	case plonk.SelectorQuery:
		if p.asg.SelectorOn(t.Selector.Index, row) {
			return p.field.One()
		}
		return constraint.Element{}
	case plonk.Sum:
		acc := constraint.Element{}
		for _, term := range t.Terms {
			acc = p.field.Add(acc, p.eval(term, row))
		}
		return acc
	case plonk.Sub:
		if len(t.Terms) == 0 {
			return constraint.Element{}
		}
		acc := p.eval(t.Terms[0], row)
		for _, term := range t.Terms[1:] {
			acc = p.field.Sub(acc, p.eval(term, row))
		}
		return acc
	case plonk.Product:
		acc := p.field.One()
		for _, term := range t.Terms {
			acc = p.field.Mul(acc, p.eval(term, row))
		}
		return acc
	default:
		panic(fmt.Sprintf("unknown expression %T", e))
	}
}
