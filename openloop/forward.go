package openloop

import (
	"fmt"
	"math"

	"github.com/MikFerrari/ilqgames/dynamics"
	"github.com/MikFerrari/ilqgames/solve"
	"gonum.org/v1/gonum/mat"
)

// forward propagates the nominal deviation state from x0 through the cached
// aggregate factorizations and extracts each player's feedforward term. The
// costates are evaluated one step ahead of the running state, matching the
// backward recursion's convention, so each timestep's feedforward uses the
// freshly advanced state. Feedback gains are left at zero.
func (s *Solver) forward(lins []dynamics.Linearization, costates [][]costate, caches []stepCache, x0 mat.Vector, strategies []*Strategy) error {
	numPlayers := s.dims.NumPlayers()
	n := s.dims.StateDim()

	x := mat.VecDenseCopyOf(x0)
	for k := 0; k < s.dims.Horizon()-1; k++ {
		lin := lins[k]
		cache := &caches[k]

		intermediary := mat.NewVecDense(n, nil)
		intermediary.MulVec(lin.A, x)
		for i := 0; i < numPlayers; i++ {
			du := mat.NewVecDense(s.dims.ControlDim(i), nil)
			du.MulVec(cache.warpedBs[i], costates[k+1][i].m)
			du.AddVec(du, cache.warpedRs[i])
			dx := mat.NewVecDense(n, nil)
			dx.MulVec(lin.Bs[i], du)
			intermediary.SubVec(intermediary, dx)
		}

		next := mat.NewVecDense(n, nil)
		if err := cache.aggregate.SolveVecTo(next, intermediary); err != nil {
			return fmt.Errorf("openloop: timestep %d: %w", k, err)
		}
		if !isFinite(next) {
			return fmt.Errorf("openloop: timestep %d: nominal state is not finite: %w", k, solve.ErrSingularAggregate)
		}
		x = next

		// Optimal controls, stored sign-flipped as feedforward terms.
		for i := 0; i < numPlayers; i++ {
			pulled := mat.NewVecDense(n, nil)
			pulled.MulVec(costates[k+1][i].M, x)
			pulled.AddVec(pulled, costates[k+1][i].m)
			alpha := strategies[i].Alphas[k]
			alpha.MulVec(cache.warpedBs[i], pulled)
			alpha.AddVec(alpha, cache.warpedRs[i])
		}
	}
	return nil
}

// isFinite reports whether every entry of v is a finite number.
func isFinite(v *mat.VecDense) bool {
	for _, value := range v.RawVector().Data {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}
