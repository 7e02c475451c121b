package openloop

import (
	"testing"

	"github.com/MikFerrari/ilqgames/cost"
	"github.com/MikFerrari/ilqgames/dynamics"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// constLinearizations repeats the same (A, Bs) at every timestep.
func constLinearizations(t *testing.T, dims dynamics.Dimensions, A *mat.Dense, Bs []*mat.Dense) []dynamics.Linearization {
	t.Helper()
	lin, err := dynamics.NewLinearization(dims, A, Bs)
	require.NoError(t, err)
	lins := make([]dynamics.Linearization, dims.Horizon())
	for k := range lins {
		lins[k] = lin
	}
	return lins
}

// quadGrid fills a full quadraticization grid from a per-(timestep, player)
// callback.
func quadGrid(t *testing.T, dims dynamics.Dimensions, build func(k, i int) (state, control cost.Term)) [][]cost.Quadraticization {
	t.Helper()
	quads := make([][]cost.Quadraticization, dims.Horizon())
	for k := range quads {
		quads[k] = make([]cost.Quadraticization, dims.NumPlayers())
		for i := range quads[k] {
			state, control := build(k, i)
			q, err := cost.NewQuadraticization(dims, i, state, control)
			require.NoError(t, err)
			quads[k][i] = q
		}
	}
	return quads
}

// scaledIdentityTerm returns a Term with Hessian w·I and zero gradient.
func scaledIdentityTerm(dim int, w float64) cost.Term {
	term := cost.NewTerm(dim)
	for i := 0; i < dim; i++ {
		term.Hess.SetSym(i, i, w)
	}
	return term
}

// rollout propagates x0 through the linearizations applying each strategy's
// control at the running state, returning the visited states after x0.
func rollout(t *testing.T, lins []dynamics.Linearization, strategies []*Strategy, x0 mat.Vector) []*mat.VecDense {
	t.Helper()
	x := mat.VecDenseCopyOf(x0)
	states := make([]*mat.VecDense, 0, len(lins)-1)
	for k := 0; k < len(lins)-1; k++ {
		us := make([]mat.Vector, len(strategies))
		for i, s := range strategies {
			us[i] = s.Control(k, x)
		}
		next, err := lins[k].Propagate(x, us)
		require.NoError(t, err)
		states = append(states, next)
		x = next
	}
	return states
}
