package cost

import (
	"testing"

	"github.com/MikFerrari/ilqgames/dynamics"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testDims(t *testing.T) dynamics.Dimensions {
	t.Helper()
	dims, err := dynamics.NewDimensions(3, []int{2, 1}, 4)
	require.NoError(t, err)
	return dims
}

func TestNewTermIsZero(t *testing.T) {
	term := NewTerm(3)
	require.Equal(t, 3, term.Hess.SymmetricDim())
	require.Equal(t, 3, term.Grad.Len())
	require.Zero(t, mat.Norm(term.Hess, 1))
	require.Zero(t, mat.Norm(term.Grad, 1))
}

func TestNewQuadraticization(t *testing.T) {
	dims := testDims(t)
	q, err := NewQuadraticization(dims, 0, NewTerm(3), NewTerm(2))
	require.NoError(t, err)
	require.Equal(t, 3, q.State.Hess.SymmetricDim())
	require.Equal(t, 2, q.Control.Hess.SymmetricDim())
}

func TestNewQuadraticizationRejectsBadShapes(t *testing.T) {
	dims := testDims(t)

	_, err := NewQuadraticization(dims, 2, NewTerm(3), NewTerm(1))
	require.Error(t, err, "player index out of range must be rejected")

	_, err = NewQuadraticization(dims, 0, NewTerm(2), NewTerm(2))
	require.Error(t, err, "wrong state dimension must be rejected")

	_, err = NewQuadraticization(dims, 0, NewTerm(3), NewTerm(1))
	require.Error(t, err, "wrong control dimension must be rejected")

	missingGrad := Term{Hess: mat.NewSymDense(3, nil)}
	_, err = NewQuadraticization(dims, 0, missingGrad, NewTerm(2))
	require.Error(t, err, "missing gradient must be rejected")

	mismatched := Term{Hess: mat.NewSymDense(3, nil), Grad: mat.NewVecDense(2, nil)}
	_, err = NewQuadraticization(dims, 0, mismatched, NewTerm(2))
	require.Error(t, err, "Hessian and gradient of different dimension must be rejected")
}

func TestNewQuadraticizationAllowsIndefiniteControlHessian(t *testing.T) {
	// Definiteness is a factorization-time failure, not a construction-time
	// one; the shape check must pass.
	dims := testDims(t)
	control := NewTerm(2)
	control.Hess.SetSym(0, 0, -1)
	_, err := NewQuadraticization(dims, 0, NewTerm(3), control)
	require.NoError(t, err)
}
