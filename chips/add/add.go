// Package add implements the addition chip: a three-row region whose gate
// enforces lhs + rhs = out whenever its selector is active.
package add

import (
	"github.com/curiousg23/halo2-hello-world/circuit"
	"github.com/curiousg23/halo2-hello-world/field"
	"github.com/curiousg23/halo2-hello-world/plonk"
)

// Config carries the columns the chip operates on and its selector.
type Config struct {
	Advice plonk.Column
	sAdd   plonk.Selector
}

// Configure registers the addition gate on the constraint system and returns
// the chip's config. The advice column is shared with other chips; equality
// is enabled on it so operands can be copied in from earlier regions.
func Configure(meta *plonk.ConstraintSystem, advice plonk.Column) Config {
	meta.EnableEquality(advice)
	sAdd := meta.Selector()

	// The region layout, selector on the first row:
	//
	// | advice | s_add |
	// |--------|-------|
	// | lhs    |   1   |
	// | rhs    |       |
	// | out    |       |
	lhs := meta.QueryAdvice(advice, plonk.RotationCur)
	rhs := meta.QueryAdvice(advice, plonk.RotationNext)
	out := meta.QueryAdvice(advice, plonk.Rotation(2))
	s := meta.QuerySelector(sAdd)

	// When s_add = 0, any values are allowed in lhs, rhs, out.
	// When s_add != 0, lhs + rhs = out.
	meta.CreateGate("add", plonk.NewProduct(s, plonk.NewSub(plonk.NewSum(lhs, rhs), out)))

	return Config{Advice: advice, sAdd: sAdd}
}

// Chip assigns addition regions against a configured constraint system.
type Chip struct {
	config Config
	field  field.Field
}

func NewChip(config Config, f field.Field) *Chip {
	return &Chip{config: config, field: f}
}

// Add allocates a new region computing a + b and returns a handle to the
// output cell. The operands are copy-constrained into the region, so the
// gate constrains the same values the handles refer to.
func (chip *Chip) Add(l *circuit.Layouter, a, b circuit.AssignedCell) (circuit.AssignedCell, error) {
	var out circuit.AssignedCell
	err := l.AssignRegion("add", func(r *circuit.Region) error {
		if err := r.EnableSelector(chip.config.sAdd, 0); err != nil {
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
		out, err = r.AssignAdvice(chip.config.Advice, 2, chip.field.Add(lhs.Value(), rhs.Value()))
		return err
	})
	return out, err
}
