package openloop

import (
	"fmt"
	"sync"

	"github.com/MikFerrari/ilqgames/cost"
	"github.com/MikFerrari/ilqgames/dynamics"
	"github.com/MikFerrari/ilqgames/solve"
	"gonum.org/v1/gonum/mat"
)

// backward runs the costate recursion from the second-to-last timestep down
// to the first, filling the costate arena and the per-timestep caches. Time
// order is strict: timestep k needs every player's finalized costate at k+1.
// Within one timestep the per-player control-cost factorizations touch only
// that player's own data, so they fan out across goroutines and the
// aggregate assembly joins them.
func (s *Solver) backward(lins []dynamics.Linearization, quads [][]cost.Quadraticization, costates [][]costate, caches []stepCache) error {
	numPlayers := s.dims.NumPlayers()
	n := s.dims.StateDim()

	for k := s.dims.Horizon() - 2; k >= 0; k-- {
		lin := lins[k]
		cache := &caches[k]

		// Warp each player's control response and control gradient through
		// its own control-cost factorization.
		var wg sync.WaitGroup
		playerErrs := make([]error, numPlayers)
		for i := 0; i < numPlayers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				factor, err := solve.FactorizeControlCost(quads[k][i].Control.Hess)
				if err != nil {
					playerErrs[i] = err
					return
				}
				warpedB := mat.NewDense(s.dims.ControlDim(i), n, nil)
				if err := factor.SolveTo(warpedB, lin.Bs[i].T()); err != nil {
					playerErrs[i] = err
					return
				}
				warpedR := mat.NewVecDense(s.dims.ControlDim(i), nil)
				if err := factor.SolveVecTo(warpedR, quads[k][i].Control.Grad); err != nil {
					playerErrs[i] = err
					return
				}
				cache.warpedBs[i] = warpedB
				cache.warpedRs[i] = warpedR
			}(i)
		}
		wg.Wait()
		for i, err := range playerErrs {
			if err != nil {
				return fmt.Errorf("openloop: timestep %d, player %d: %w", k, i, err)
			}
		}

		// Assemble the aggregate response matrix
		//   Λ = I + Σ_i B_i (R_i⁻¹ Bᵢᵀ) M[k+1][i]
		// and factorize it once; both passes solve against it at this
		// timestep. This coupling solve is what separates a simultaneous-move
		// game from a single-agent backward pass.
		lambda := identity(n)
		for i := 0; i < numPlayers; i++ {
			var response, coupled mat.Dense
			response.Mul(lin.Bs[i], cache.warpedBs[i])
			coupled.Mul(&response, costates[k+1][i].M)
			lambda.Add(lambda, &coupled)
		}
		cache.aggregate = solve.FactorizeAggregate(lambda)

		// Λ⁻¹A is shared by every player's Hessian update.
		lambdaInvA := mat.NewDense(n, n, nil)
		if err := cache.aggregate.SolveTo(lambdaInvA, lin.A); err != nil {
			return fmt.Errorf("openloop: timestep %d: %w", k, err)
		}

		for i := 0; i < numPlayers; i++ {
			next := costates[k+1][i]

			// M[k][i] = Q_i + Aᵀ M[k+1][i] Λ⁻¹A
			var t1, t2 mat.Dense
			t1.Mul(next.M, lambdaInvA)
			t2.Mul(lin.A.T(), &t1)
			M := mat.NewDense(n, n, nil)
			M.Add(quads[k][i].State.Hess, &t2)

			// Every player's best response pulls on player i's cost-to-go
			// gradient through the shared dynamics.
			intermediary := mat.NewVecDense(n, nil)
			for j := 0; j < numPlayers; j++ {
				du := mat.NewVecDense(s.dims.ControlDim(j), nil)
				du.MulVec(cache.warpedBs[j], next.m)
				du.AddVec(du, cache.warpedRs[j])
				dx := mat.NewVecDense(n, nil)
				dx.MulVec(lin.Bs[j], du)
				intermediary.SubVec(intermediary, dx)
			}
			coupled := mat.NewVecDense(n, nil)
			if err := cache.aggregate.SolveVecTo(coupled, intermediary); err != nil {
				return fmt.Errorf("openloop: timestep %d, player %d: %w", k, i, err)
			}

			// m[k][i] = q_i[k+1] + Aᵀ (m[k+1][i] + M[k+1][i] Λ⁻¹ intermediary).
			// The state gradient is read from the k+1 entry, not k; that is
			// the costate indexing convention of the derivation, not a typo.
			pulled := mat.NewVecDense(n, nil)
			pulled.MulVec(next.M, coupled)
			pulled.AddVec(next.m, pulled)
			m := mat.NewVecDense(n, nil)
			m.MulVec(lin.A.T(), pulled)
			m.AddVec(quads[k+1][i].State.Grad, m)

			costates[k][i] = costate{M: M, m: m}
		}
	}
	return nil
}

// identity returns the n×n identity matrix.
func identity(n int) *mat.Dense {
	eye := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		eye.Set(i, i, 1)
	}
	return eye
}
