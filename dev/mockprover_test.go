package dev

import (
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/curiousg23/halo2-hello-world/circuit"
	"github.com/curiousg23/halo2-hello-world/field/babybear"
	"github.com/curiousg23/halo2-hello-world/plonk"
)

// constGateCircuit pins an advice cell to a constant with a selector-gated
// gate: s * (advice - constant) = 0.
type constGateCircuit struct {
	Constant interface{}
	Value    interface{}

	advice plonk.Column
	s      plonk.Selector
}

func (c *constGateCircuit) Configure(meta *plonk.ConstraintSystem) error {
	c.advice = meta.AdviceColumn()
	c.s = meta.Selector()

	f := meta.Field()
	meta.CreateGate("const", plonk.NewProduct(
		meta.QuerySelector(c.s),
		plonk.NewSub(meta.QueryAdvice(c.advice, plonk.RotationCur), plonk.NewConstant(f.FromInterface(c.Constant))),
	))
	return nil
}

func (c *constGateCircuit) Synthesize(l *circuit.Layouter) error {
	return l.AssignRegion("pin", func(r *circuit.Region) error {
		if err := r.EnableSelector(c.s, 0); err != nil {
			return err
		}
		_, err := r.AssignAdvice(c.advice, 0, l.Field().FromInterface(c.Value))
		return err
	})
}

// instanceBindCircuit copy-constrains a witness cell to instance row 0.
type instanceBindCircuit struct {
	Value interface{}

	advice   plonk.Column
	instance plonk.Column
}

func (c *instanceBindCircuit) Configure(meta *plonk.ConstraintSystem) error {
	c.advice = meta.AdviceColumn()
	c.instance = meta.InstanceColumn()
	meta.EnableEquality(c.advice)
	meta.EnableEquality(c.instance)
	return nil
}

func (c *instanceBindCircuit) Synthesize(l *circuit.Layouter) error {
	var cell circuit.AssignedCell
	err := l.AssignRegion("load", func(r *circuit.Region) error {
		var err error
		cell, err = r.AssignAdvice(c.advice, 0, l.Field().FromInterface(c.Value))
		return err
	})
	if err != nil {
		return err
	}
	return l.ConstrainInstance(cell.Cell(), c.instance, 0)
}

func TestGateEvaluation(t *testing.T) {
	f := &babybear.Field{}

	prover, err := Run(3, &constGateCircuit{Constant: 5, Value: 5}, f, nil)
	require.NoError(t, err)
	require.NoError(t, prover.Verify())

	prover, err = Run(3, &constGateCircuit{Constant: 5, Value: 6}, f, nil)
	require.NoError(t, err)
	require.ErrorIs(t, prover.Verify(), ErrInvalidProof)
}

func TestCopyConstraintCheck(t *testing.T) {
	f := &babybear.Field{}
	public := [][]constraint.Element{{f.FromInterface(3)}}

	prover, err := Run(3, &instanceBindCircuit{Value: 3}, f, public)
	require.NoError(t, err)
	require.NoError(t, prover.Verify())

	prover, err = Run(3, &instanceBindCircuit{Value: 4}, f, public)
	require.NoError(t, err)
	require.ErrorIs(t, prover.Verify(), ErrInvalidProof)
}

func TestEmptyCircuitVerifies(t *testing.T) {
	f := &babybear.Field{}

	prover, err := Run(2, &emptyCircuit{}, f, nil)
	require.NoError(t, err)
	require.NoError(t, prover.Verify())
}

type emptyCircuit struct{}

func (c *emptyCircuit) Configure(meta *plonk.ConstraintSystem) error { return nil }
func (c *emptyCircuit) Synthesize(l *circuit.Layouter) error         { return nil }
