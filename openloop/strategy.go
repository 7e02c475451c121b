package openloop

import (
	"gonum.org/v1/gonum/mat"
)

// Strategy is one player's time-indexed affine control law
//
//	u[k] = -P[k] x[k] - alpha[k]
//
// For open-loop equilibria the feedback gains P stay identically zero and the
// whole strategy lives in the feedforward terms alpha. The outer trajectory
// optimization owns the returned strategies and uses them to update its
// nominal controls.
type Strategy struct {
	// Feedback gains, one per timestep
	Ps []*mat.Dense
	// Feedforward terms, one per timestep
	Alphas []*mat.VecDense
}

// NewStrategy returns a zero strategy over the given horizon for a player
// with the given control dimension.
func NewStrategy(horizon, stateDim, controlDim int) *Strategy {
	s := &Strategy{
		Ps:     make([]*mat.Dense, horizon),
		Alphas: make([]*mat.VecDense, horizon),
	}
	for k := 0; k < horizon; k++ {
		s.Ps[k] = mat.NewDense(controlDim, stateDim, nil)
		s.Alphas[k] = mat.NewVecDense(controlDim, nil)
	}
	return s
}

// Horizon returns the number of timesteps the strategy covers.
func (s *Strategy) Horizon() int { return len(s.Alphas) }

// Control evaluates the strategy at timestep k for deviation state x.
func (s *Strategy) Control(k int, x mat.Vector) *mat.VecDense {
	m, _ := s.Ps[k].Dims()
	u := mat.NewVecDense(m, nil)
	u.MulVec(s.Ps[k], x)
	u.AddVec(u, s.Alphas[k])
	u.ScaleVec(-1, u)
	return u
}
