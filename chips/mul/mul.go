// Package mul implements the multiplication chip: a three-row region whose
// gate enforces lhs * rhs = out whenever its selector is active.
package mul

import (
	"github.com/curiousg23/halo2-hello-world/circuit"
	"github.com/curiousg23/halo2-hello-world/field"
	"github.com/curiousg23/halo2-hello-world/plonk"
)

// Config carries the columns the chip operates on and its selector.
type Config struct {
	Advice plonk.Column
	sMul   plonk.Selector
}

// Configure registers the multiplication gate on the constraint system and
// returns the chip's config.
func Configure(meta *plonk.ConstraintSystem, advice plonk.Column) Config {
	meta.EnableEquality(advice)
	sMul := meta.Selector()

	// | advice | s_mul |
	// |--------|-------|
	// | lhs    |   1   |
	// | rhs    |       |
	// | out    |       |
	lhs := meta.QueryAdvice(advice, plonk.RotationCur)
	rhs := meta.QueryAdvice(advice, plonk.RotationNext)
	out := meta.QueryAdvice(advice, plonk.Rotation(2))
	s := meta.QuerySelector(sMul)

	// When s_mul = 0, any values are allowed in lhs, rhs, out.
	// When s_mul != 0, lhs * rhs = out.
	meta.CreateGate("mul", plonk.NewProduct(s, plonk.NewSub(plonk.NewProduct(lhs, rhs), out)))

	return Config{Advice: advice, sMul: sMul}
}

// Chip assigns multiplication regions against a configured constraint system.
type Chip struct {
	config Config
	field  field.Field
}

func NewChip(config Config, f field.Field) *Chip {
	return &Chip{config: config, field: f}
}

// Mul allocates a new region computing a * b and returns a handle to the
// output cell.
func (chip *Chip) Mul(l *circuit.Layouter, a, b circuit.AssignedCell) (circuit.AssignedCell, error) {
	var out circuit.AssignedCell
	err := l.AssignRegion("mul", func(r *circuit.Region) error {
		if err := r.EnableSelector(chip.config.sMul, 0); err != nil {
			return err
		}
		lhs, err := r.CopyAdvice(a, chip.config.Advice, 0)
		if err != nil {
			return err
		}
		rhs, err := r.CopyAdvice(b, chip.config.Advice, 1)
		if err != nil {
			return err
		}
		out, err = r.AssignAdvice(chip.config.Advice, 2, chip.field.Mul(lhs.Value(), rhs.Value()))
		return err
	})
	return out, err
}
