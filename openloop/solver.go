// Package openloop solves time-varying, finite-horizon, multi-player
// linear-quadratic games for open-loop Nash equilibria, following the
// derivation in Basar and Olsder, chapter 6. Given a linearization of the
// joint dynamics and a quadratic approximation of every player's cost over
// one horizon, Solve runs a backward recursion over per-player costate pairs
// and a forward pass over the nominal deviation state, and returns one
// feedforward strategy per player. The feedback gains of the returned
// strategies are identically zero; the closed-loop variant of the recursion
// is a different solver.
//
// Dynamics are assumed to be of the form
//
//	dx[k+1] = A[k] dx[k] + Σ_i B[i][k] du[i][k]
//
// with no additive drift, which holds because everything here is a deviation
// from a nominal trajectory. Control penalties may carry linear terms, i.e.
// player i pays 0.5 duᵢᵀ Rᵢ (duᵢ + 2 rᵢ) for its own control.
package openloop

import (
	"fmt"

	"github.com/MikFerrari/ilqgames/cost"
	"github.com/MikFerrari/ilqgames/dynamics"
	"gonum.org/v1/gonum/mat"
)

// Solver computes open-loop Nash equilibrium strategies for one fixed game
// shape. It carries no state between calls; everything a Solve call computes
// is either returned or discarded.
type Solver struct {
	dims dynamics.Dimensions
}

// NewSolver returns a solver for games of the given dimensions.
func NewSolver(dims dynamics.Dimensions) *Solver {
	return &Solver{dims: dims}
}

// Solve computes each player's open-loop equilibrium strategy for one LQ game
// instance: a linearization and a per-player quadraticization for every
// timestep, and the initial deviation state.
//
// Malformed inputs fail with ErrContract before any numeric work. A control
// Hessian that is not positive definite, or an aggregate response matrix that
// cannot be solved against, fails wrapping the solve package's sentinels; the
// instance is numerically degenerate and the call is not retried internally.
func (s *Solver) Solve(lins []dynamics.Linearization, quads [][]cost.Quadraticization, x0 mat.Vector) ([]*Strategy, error) {
	if err := s.validate(lins, quads, x0); err != nil {
		return nil, err
	}

	horizon := s.dims.Horizon()
	numPlayers := s.dims.NumPlayers()

	strategies := make([]*Strategy, numPlayers)
	for i := 0; i < numPlayers; i++ {
		strategies[i] = NewStrategy(horizon, s.dims.StateDim(), s.dims.ControlDim(i))
	}

	// Seed the terminal costates straight from the final quadraticization;
	// the last timestep carries only a terminal cost.
	costates := newCostates(horizon, numPlayers)
	for i := 0; i < numPlayers; i++ {
		M := mat.NewDense(s.dims.StateDim(), s.dims.StateDim(), nil)
		M.Copy(quads[horizon-1][i].State.Hess)
		m := mat.VecDenseCopyOf(quads[horizon-1][i].State.Grad)
		costates[horizon-1][i] = costate{M: M, m: m}
	}

	caches := newStepCaches(horizon, numPlayers)
	if err := s.backward(lins, quads, costates, caches); err != nil {
		return nil, err
	}
	if err := s.forward(lins, costates, caches, x0, strategies); err != nil {
		return nil, err
	}
	return strategies, nil
}

// validate checks the caller contract: horizon lengths and every matrix and
// vector dimension, before any factorization happens.
func (s *Solver) validate(lins []dynamics.Linearization, quads [][]cost.Quadraticization, x0 mat.Vector) error {
	horizon := s.dims.Horizon()
	n := s.dims.StateDim()
	if len(lins) != horizon {
		return fmt.Errorf("%w: got %d linearizations for horizon %d", ErrContract, len(lins), horizon)
	}
	if len(quads) != horizon {
		return fmt.Errorf("%w: got %d quadraticizations for horizon %d", ErrContract, len(quads), horizon)
	}
	if x0 == nil {
		return fmt.Errorf("%w: initial state is required", ErrContract)
	}
	if x0.Len() != n {
		return fmt.Errorf("%w: initial state has length %d, want %d", ErrContract, x0.Len(), n)
	}
	for k := 0; k < horizon; k++ {
		if _, err := dynamics.NewLinearization(s.dims, lins[k].A, lins[k].Bs); err != nil {
			return fmt.Errorf("%w: timestep %d: %v", ErrContract, k, err)
		}
		if len(quads[k]) != s.dims.NumPlayers() {
			return fmt.Errorf("%w: timestep %d has %d quadraticizations for %d players", ErrContract, k, len(quads[k]), s.dims.NumPlayers())
		}
		for i := 0; i < s.dims.NumPlayers(); i++ {
			if _, err := cost.NewQuadraticization(s.dims, i, quads[k][i].State, quads[k][i].Control); err != nil {
				return fmt.Errorf("%w: timestep %d: %v", ErrContract, k, err)
			}
		}
	}
	return nil
}
