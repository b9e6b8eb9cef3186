// Package test provides assertion helpers for circuit tests.
package test

import (
	"testing"

	"github.com/consensys/gnark/constraint"

	"github.com/curiousg23/halo2-hello-world/circuit"
	"github.com/curiousg23/halo2-hello-world/dev"
	"github.com/curiousg23/halo2-hello-world/field"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// ProveSucceeded synthesizes the circuit against the instance and requires
// verification to pass.
func (a *Assert) ProveSucceeded(k uint32, c circuit.Circuit, f field.Field, instance [][]constraint.Element) {
	a.t.Helper()
	prover, err := dev.Run(k, c, f, instance)
	if err != nil {
		a.t.Fatalf("synthesis: %v", err)
	}
	if err := prover.Verify(); err != nil {
		a.t.Fatalf("should verify: %v", err)
	}
}

// ProveFailed synthesizes the circuit against the instance and requires
// synthesis to succeed but verification to fail.
func (a *Assert) ProveFailed(k uint32, c circuit.Circuit, f field.Field, instance [][]constraint.Element) {
	a.t.Helper()
	prover, err := dev.Run(k, c, f, instance)
	if err != nil {
		a.t.Fatalf("synthesis: %v", err)
	}
	if err := prover.Verify(); err == nil {
		a.t.Fatal("should fail verification")
	}
}
