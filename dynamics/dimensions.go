package dynamics

import "fmt"

// Dimensions describes one game instance: how many players there are, the
// shared state dimension, each player's control dimension and the number of
// discrete timesteps. It is fixed for the lifetime of a solve and is passed
// explicitly wherever dimension queries are needed.
type Dimensions struct {
	stateDim    int
	controlDims []int
	horizon     int
}

// NewDimensions validates and returns a Dimensions descriptor. The horizon
// must cover at least two timesteps since the final one only carries a
// terminal cost.
func NewDimensions(stateDim int, controlDims []int, horizon int) (Dimensions, error) {
	if stateDim < 1 {
		return Dimensions{}, fmt.Errorf("dynamics: state dimension must be positive, got %d", stateDim)
	}
	if len(controlDims) < 1 {
		return Dimensions{}, fmt.Errorf("dynamics: need at least one player")
	}
	for i, u := range controlDims {
		if u < 1 {
			return Dimensions{}, fmt.Errorf("dynamics: control dimension for player %d must be positive, got %d", i, u)
		}
	}
	if horizon < 2 {
		return Dimensions{}, fmt.Errorf("dynamics: horizon must cover at least two timesteps, got %d", horizon)
	}
	dims := Dimensions{
		stateDim:    stateDim,
		controlDims: make([]int, len(controlDims)),
		horizon:     horizon,
	}
	copy(dims.controlDims, controlDims)
	return dims, nil
}

// NumPlayers returns the number of players.
func (d Dimensions) NumPlayers() int { return len(d.controlDims) }

// StateDim returns the shared state dimension.
func (d Dimensions) StateDim() int { return d.stateDim }

// ControlDim returns player i's control dimension.
func (d Dimensions) ControlDim(i int) int { return d.controlDims[i] }

// Horizon returns the number of discrete timesteps.
func (d Dimensions) Horizon() int { return d.horizon }

// TotalControlDim returns the summed control dimension over all players.
func (d Dimensions) TotalControlDim() int {
	total := 0
	for _, u := range d.controlDims {
		total += u
	}
	return total
}
