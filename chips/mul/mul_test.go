package mul

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/curiousg23/halo2-hello-world/circuit"
	"github.com/curiousg23/halo2-hello-world/dev"
	"github.com/curiousg23/halo2-hello-world/field"
	"github.com/curiousg23/halo2-hello-world/plonk"
)

// mulTestCircuit loads two private values and feeds them to the chip.
type mulTestCircuit struct {
	Lhs, Rhs interface{}

	config Config
	out    constraint.Element
}

func (c *mulTestCircuit) Configure(meta *plonk.ConstraintSystem) error {
	c.config = Configure(meta, meta.AdviceColumn())
	return nil
}

func (c *mulTestCircuit) Synthesize(l *circuit.Layouter) error {
	f := l.Field()
	var lhs, rhs circuit.AssignedCell
	err := l.AssignRegion("load", func(r *circuit.Region) error {
		var err error
		if lhs, err = r.AssignAdvice(c.config.Advice, 0, f.FromInterface(c.Lhs)); err != nil {
			return err
		}
		rhs, err = r.AssignAdvice(c.config.Advice, 1, f.FromInterface(c.Rhs))
		return err
	})
	if err != nil {
		return err
	}
	out, err := NewChip(c.config, f).Mul(l, lhs, rhs)
	if err != nil {
		return err
	}
	c.out = out.Value()
	return nil
}

// rawMulCircuit fills one chip region by hand so the gate can be probed with
// arbitrary, possibly inconsistent, values.
type rawMulCircuit struct {
	Out      interface{}
	Selector bool

	config Config
}

func (c *rawMulCircuit) Configure(meta *plonk.ConstraintSystem) error {
	c.config = Configure(meta, meta.AdviceColumn())
	return nil
}

func (c *rawMulCircuit) Synthesize(l *circuit.Layouter) error {
	f := l.Field()
	return l.AssignRegion("raw mul", func(r *circuit.Region) error {
		if c.Selector {
			if err := r.EnableSelector(c.config.sMul, 0); err != nil {
				return err
			}
		}
		if _, err := r.AssignAdvice(c.config.Advice, 0, f.FromInterface(2)); err != nil {
			return err
		}
		if _, err := r.AssignAdvice(c.config.Advice, 1, f.FromInterface(3)); err != nil {
			return err
		}
		_, err := r.AssignAdvice(c.config.Advice, 2, f.FromInterface(c.Out))
		return err
	})
}

func TestMulChip(t *testing.T) {
	f := field.GetFieldFromOrder(ecc.BN254.ScalarField())

	c := &mulTestCircuit{Lhs: 3, Rhs: 4}
	prover, err := dev.Run(3, c, f, nil)
	require.NoError(t, err)
	require.Equal(t, f.FromInterface(12), c.out)
	require.NoError(t, prover.Verify())
}

func TestMulGateSelector(t *testing.T) {
	f := field.GetFieldFromOrder(ecc.BN254.ScalarField())

	prover, err := dev.Run(3, &rawMulCircuit{Out: 6, Selector: true}, f, nil)
	require.NoError(t, err)
	require.NoError(t, prover.Verify())

	prover, err = dev.Run(3, &rawMulCircuit{Out: 7, Selector: false}, f, nil)
	require.NoError(t, err)
	require.NoError(t, prover.Verify())

	prover, err = dev.Run(3, &rawMulCircuit{Out: 7, Selector: true}, f, nil)
	require.NoError(t, err)
	require.ErrorIs(t, prover.Verify(), dev.ErrInvalidProof)
}

func TestMulChipProperty(t *testing.T) {
	f := field.GetFieldFromOrder(ecc.BN254.ScalarField())

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("out == lhs * rhs and the instance verifies", prop.ForAll(
		func(lhs, rhs uint64) bool {
			c := &mulTestCircuit{Lhs: lhs, Rhs: rhs}
			prover, err := dev.Run(3, c, f, nil)
			if err != nil {
				return false
			}
			want := f.Mul(f.FromInterface(lhs), f.FromInterface(rhs))
			return c.out == want && prover.Verify() == nil
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
