package openloop

import (
	"github.com/MikFerrari/ilqgames/solve"
	"gonum.org/v1/gonum/mat"
)

// costate holds the quadratic and linear coefficients of one player's
// cost-to-go in the deviation state at one timestep. Once a timestep's pair
// is written by the backward pass it is never touched again.
type costate struct {
	M *mat.Dense
	m *mat.VecDense
}

// stepCache holds the per-timestep terms computed during the backward pass
// and reused by the forward pass: each player's warped control response
// R_i⁻¹ Bᵢᵀ and warped control gradient R_i⁻¹ rᵢ, and the factorized
// aggregate response matrix.
type stepCache struct {
	warpedBs  []*mat.Dense
	warpedRs  []*mat.VecDense
	aggregate *solve.AggregateFactor
}

// newStepCaches allocates the backward-pass arena: one cache per non-terminal
// timestep, with one warped-term slot per player. All of it is scoped to a
// single Solve call.
func newStepCaches(horizon, numPlayers int) []stepCache {
	caches := make([]stepCache, horizon-1)
	for k := range caches {
		caches[k].warpedBs = make([]*mat.Dense, numPlayers)
		caches[k].warpedRs = make([]*mat.VecDense, numPlayers)
	}
	return caches
}

// newCostates allocates the (timestep, player)-indexed costate arena.
func newCostates(horizon, numPlayers int) [][]costate {
	cs := make([][]costate, horizon)
	for k := range cs {
		cs[k] = make([]costate, numPlayers)
	}
	return cs
}
