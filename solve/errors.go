package solve

import "errors"

var (
	// ErrNotPositiveDefinite indicates a control-cost Hessian that Cholesky
	// factorization rejected.
	ErrNotPositiveDefinite = errors.New("solve: control cost matrix is not positive definite")
	// ErrSingularAggregate indicates an aggregate response matrix that is
	// singular or too ill-conditioned to solve against.
	ErrSingularAggregate = errors.New("solve: aggregate response matrix is singular or badly conditioned")
)
