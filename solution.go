package halo2hello

import (
	"github.com/consensys/gnark/constraint"

	"github.com/curiousg23/halo2-hello-world/chips/add"
	"github.com/curiousg23/halo2-hello-world/chips/mul"
	"github.com/curiousg23/halo2-hello-world/circuit"
	"github.com/curiousg23/halo2-hello-world/field"
	"github.com/curiousg23/halo2-hello-world/plonk"
)

// SolutionConfig is the full column set of the solution circuit: one advice
// column shared by all chips, one instance column for (a, b, c), and the two
// chip configs.
type SolutionConfig struct {
	Advice   plonk.Column
	Instance plonk.Column
	Add      add.Config
	Mul      mul.Config
}

// ConfigureSolution wires the chips onto the shared advice column and
// enables equality on the instance column so public values can be copied
// into the circuit and the result bound back to them.
func ConfigureSolution(meta *plonk.ConstraintSystem, advice, instance plonk.Column) SolutionConfig {
	addConfig := add.Configure(meta, advice)
	mulConfig := mul.Configure(meta, advice)
	meta.EnableEquality(instance)

	return SolutionConfig{
		Advice:   advice,
		Instance: instance,
		Add:      addConfig,
		Mul:      mulConfig,
	}
}

// SolutionChip sequences the add and mul chips to evaluate the quadratic.
type SolutionChip struct {
	config SolutionConfig
	add    *add.Chip
	mul    *mul.Chip
}

func NewSolutionChip(config SolutionConfig, f field.Field) *SolutionChip {
	return &SolutionChip{
		config: config,
		add:    add.NewChip(config.Add, f),
		mul:    mul.NewChip(config.Mul, f),
	}
}

// LoadPrivate brings the private witness into the circuit as an advice cell.
// Nothing constrains the value itself; it only becomes meaningful through
// the chips that consume it.
func (chip *SolutionChip) LoadPrivate(l *circuit.Layouter, x constraint.Element) (circuit.AssignedCell, error) {
	var cell circuit.AssignedCell
	err := l.AssignRegion("load private", func(r *circuit.Region) error {
		var err error
		cell, err = r.AssignAdvice(chip.config.Advice, 0, x)
		return err
	})
	return cell, err
}

// LoadPublic copies a, b, c from the instance column into advice cells, one
// copy constraint each, so the verifier-supplied values are authoritative
// over whatever the prover assigns.
func (chip *SolutionChip) LoadPublic(l *circuit.Layouter) ([NbPublicInputs]circuit.AssignedCell, error) {
	var cells [NbPublicInputs]circuit.AssignedCell
	err := l.AssignRegion("load public", func(r *circuit.Region) error {
		for i := 0; i < NbPublicInputs; i++ {
			var err error
			cells[i], err = r.AssignAdviceFromInstance(chip.config.Instance, i, chip.config.Advice, i)
			if err != nil {
				return err
			}
		}
		return nil
	})
	return cells, err
}

// SolveQuadratic computes a*x^2 + b*x chip by chip and returns the cell
// holding the sum. The chip order is fixed by the data dependencies: each
// call consumes cells produced by earlier ones.
func (chip *SolutionChip) SolveQuadratic(l *circuit.Layouter, a, b, x circuit.AssignedCell) (circuit.AssignedCell, error) {
	x2, err := chip.mul.Mul(l, x, x)
	if err != nil {
		return circuit.AssignedCell{}, err
	}
	bx, err := chip.mul.Mul(l, b, x)
	if err != nil {
		return circuit.AssignedCell{}, err
	}
	ax2, err := chip.mul.Mul(l, a, x2)
	if err != nil {
		return circuit.AssignedCell{}, err
	}
	return chip.add.Add(l, ax2, bx)
}

// ExposePublic binds an advice cell to a row of the instance column.
func (chip *SolutionChip) ExposePublic(l *circuit.Layouter, cell circuit.AssignedCell, row int) error {
	return l.ConstrainInstance(cell.Cell(), chip.config.Instance, row)
}

// SolutionCircuit is the top-level circuit. X is the private witness; it
// accepts anything field.Field.FromInterface does. The public (a, b, c) are
// per-proof instance values, not compile-time constants: the verifier
// supplies them independently of the proof.
type SolutionCircuit struct {
	X interface{}

	config SolutionConfig
}

// Configure declares the circuit's single advice column, single instance
// column, and the chip gates.
func (c *SolutionCircuit) Configure(meta *plonk.ConstraintSystem) error {
	advice := meta.AdviceColumn()
	instance := meta.InstanceColumn()
	c.config = ConfigureSolution(meta, advice, instance)
	return nil
}

// Synthesize assigns the witness: loads x and the public inputs, evaluates
// a*x^2 + b*x, and constrains the result equal to the instance cell
// holding c.
func (c *SolutionCircuit) Synthesize(l *circuit.Layouter) error {
	chip := NewSolutionChip(c.config, l.Field())

	x, err := chip.LoadPrivate(l, l.Field().FromInterface(c.X))
	if err != nil {
		return err
	}
	abc, err := chip.LoadPublic(l)
	if err != nil {
		return err
	}
	solution, err := chip.SolveQuadratic(l, abc[RowA], abc[RowB], x)
	if err != nil {
		return err
	}
	return chip.ExposePublic(l, solution, RowC)
}
