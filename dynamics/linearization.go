// Package dynamics holds the discrete-time linearized dynamics consumed by
// the game solvers. A Linearization describes one timestep of the system
//
//	x[k+1] = A x[k] + B[0] u[0][k] + ... + B[N-1] u[N-1][k]
//
// where x is the deviation from a nominal trajectory and u[i] is player i's
// deviation control. The linearizations themselves are produced elsewhere;
// this package only validates and propagates them.
package dynamics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Linearization is the linearized multi-player dynamics at one timestep.
type Linearization struct {
	// State transition matrix
	A *mat.Dense
	// One control input matrix per player
	Bs []*mat.Dense
}

// NewLinearization checks A and the per-player B blocks against dims and
// returns the assembled linearization.
func NewLinearization(dims Dimensions, A *mat.Dense, Bs []*mat.Dense) (Linearization, error) {
	n := dims.StateDim()
	if A == nil {
		return Linearization{}, fmt.Errorf("dynamics: state transition matrix is required")
	}
	if r, c := A.Dims(); r != n || c != n {
		return Linearization{}, fmt.Errorf("dynamics: state transition matrix is %dx%d, want %dx%d", r, c, n, n)
	}
	if len(Bs) != dims.NumPlayers() {
		return Linearization{}, fmt.Errorf("dynamics: got %d control input matrices for %d players", len(Bs), dims.NumPlayers())
	}
	for i, B := range Bs {
		if B == nil {
			return Linearization{}, fmt.Errorf("dynamics: control input matrix for player %d is required", i)
		}
		if r, c := B.Dims(); r != n || c != dims.ControlDim(i) {
			return Linearization{}, fmt.Errorf("dynamics: control input matrix for player %d is %dx%d, want %dx%d", i, r, c, n, dims.ControlDim(i))
		}
	}
	return Linearization{A: A, Bs: Bs}, nil
}

// Propagate evaluates the next deviation state given the current one and one
// control per player.
func (l Linearization) Propagate(x mat.Vector, us []mat.Vector) (*mat.VecDense, error) {
	n, _ := l.A.Dims()
	if x.Len() != n {
		return nil, fmt.Errorf("dynamics: state vector has length %d, want %d", x.Len(), n)
	}
	if len(us) != len(l.Bs) {
		return nil, fmt.Errorf("dynamics: got %d control vectors for %d players", len(us), len(l.Bs))
	}
	next := mat.NewVecDense(n, nil)
	next.MulVec(l.A, x)
	var tmp mat.VecDense
	for i, u := range us {
		_, m := l.Bs[i].Dims()
		if u.Len() != m {
			return nil, fmt.Errorf("dynamics: control vector for player %d has length %d, want %d", i, u.Len(), m)
		}
		tmp.MulVec(l.Bs[i], u)
		next.AddVec(next, &tmp)
	}
	return next, nil
}
