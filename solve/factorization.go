// Package solve provides the factorization primitives behind the LQ game
// solvers. Control-cost blocks are symmetric positive definite and get a
// Cholesky factorization; the per-timestep aggregate response matrix is a
// general square matrix and gets a QR factorization, which degrades more
// gracefully when the instance is close to degenerate. Factorizations are
// computed once and reused for every solve at that timestep, so no explicit
// inverse is ever formed.
package solve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ControlCostFactor is a Cholesky factorization of one player's control-cost
// Hessian at one timestep.
type ControlCostFactor struct {
	chol mat.Cholesky
}

// FactorizeControlCost factorizes a symmetric positive-definite control-cost
// Hessian. A Hessian with a non-positive eigenvalue fails with
// ErrNotPositiveDefinite; that instance has no usable open-loop solution.
func FactorizeControlCost(h mat.Symmetric) (*ControlCostFactor, error) {
	var f ControlCostFactor
	if ok := f.chol.Factorize(h); !ok {
		return nil, ErrNotPositiveDefinite
	}
	return &f, nil
}

// SolveTo stores factor⁻¹·rhs into dst.
func (f *ControlCostFactor) SolveTo(dst *mat.Dense, rhs mat.Matrix) error {
	if err := f.chol.SolveTo(dst, rhs); err != nil {
		return fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
	}
	return nil
}

// SolveVecTo stores factor⁻¹·rhs into dst.
func (f *ControlCostFactor) SolveVecTo(dst *mat.VecDense, rhs mat.Vector) error {
	if err := f.chol.SolveVecTo(dst, rhs); err != nil {
		return fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
	}
	return nil
}

// AggregateFactor is a QR factorization of the aggregate response matrix at
// one timestep.
type AggregateFactor struct {
	qr mat.QR
}

// FactorizeAggregate factorizes a general square matrix. Singularity is not
// detected here; it surfaces as ErrSingularAggregate from the solves.
func FactorizeAggregate(a mat.Matrix) *AggregateFactor {
	var f AggregateFactor
	f.qr.Factorize(a)
	return &f
}

// SolveTo stores factor⁻¹·rhs into dst. A singular or near-singular
// factorization fails with ErrSingularAggregate.
func (f *AggregateFactor) SolveTo(dst *mat.Dense, rhs mat.Matrix) error {
	if err := f.qr.SolveTo(dst, false, rhs); err != nil {
		return fmt.Errorf("%w: %v", ErrSingularAggregate, err)
	}
	return nil
}

// SolveVecTo stores factor⁻¹·rhs into dst.
func (f *AggregateFactor) SolveVecTo(dst *mat.VecDense, rhs mat.Vector) error {
	if err := f.qr.SolveVecTo(dst, false, rhs); err != nil {
		return fmt.Errorf("%w: %v", ErrSingularAggregate, err)
	}
	return nil
}
