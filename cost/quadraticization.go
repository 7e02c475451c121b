// Package cost holds the per-player quadratic cost approximations consumed by
// the game solvers. Each player's cost at one timestep is approximated by a
// state term and a term for that player's own control; cross-player control
// coupling is never consulted by the open-loop recursion and is not modeled.
package cost

import (
	"fmt"

	"github.com/MikFerrari/ilqgames/dynamics"
	"gonum.org/v1/gonum/mat"
)

// Term is one quadratic cost term: a symmetric Hessian and a gradient taken
// at the current nominal point.
type Term struct {
	Hess *mat.SymDense
	Grad *mat.VecDense
}

// NewTerm returns a Term of the given dimension with zero Hessian and
// gradient.
func NewTerm(dim int) Term {
	return Term{
		Hess: mat.NewSymDense(dim, nil),
		Grad: mat.NewVecDense(dim, nil),
	}
}

// dim returns the Term's dimension, or -1 if Hessian and gradient disagree.
func (t Term) dim() int {
	if t.Hess == nil || t.Grad == nil {
		return -1
	}
	n := t.Hess.SymmetricDim()
	if t.Grad.Len() != n {
		return -1
	}
	return n
}

// Quadraticization is one player's quadratic cost approximation at one
// timestep. The own-control term is required: the recursion factorizes it at
// every non-terminal timestep, so a missing block is a caller error rather
// than a "no control cost" state.
type Quadraticization struct {
	// Cost with respect to the full state
	State Term
	// Cost with respect to this player's own control
	Control Term
}

// NewQuadraticization checks the term dimensions for the given player against
// dims and returns the assembled approximation. Positive definiteness of the
// control Hessian is not checked here; it surfaces at factorization time.
func NewQuadraticization(dims dynamics.Dimensions, player int, state, control Term) (Quadraticization, error) {
	if player < 0 || player >= dims.NumPlayers() {
		return Quadraticization{}, fmt.Errorf("cost: player index %d out of range [0, %d)", player, dims.NumPlayers())
	}
	if n := state.dim(); n != dims.StateDim() {
		return Quadraticization{}, fmt.Errorf("cost: state term for player %d has dimension %d, want %d", player, n, dims.StateDim())
	}
	if m := control.dim(); m != dims.ControlDim(player) {
		return Quadraticization{}, fmt.Errorf("cost: control term for player %d has dimension %d, want %d", player, m, dims.ControlDim(player))
	}
	return Quadraticization{State: state, Control: control}, nil
}
