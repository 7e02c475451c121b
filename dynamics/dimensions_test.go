package dynamics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	dims, err := NewDimensions(4, []int{2, 1, 3}, 10)
	require.NoError(t, err)
	require.Equal(t, 3, dims.NumPlayers())
	require.Equal(t, 4, dims.StateDim())
	require.Equal(t, 2, dims.ControlDim(0))
	require.Equal(t, 1, dims.ControlDim(1))
	require.Equal(t, 3, dims.ControlDim(2))
	require.Equal(t, 10, dims.Horizon())
	require.Equal(t, 6, dims.TotalControlDim())
}

func TestNewDimensionsRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name        string
		stateDim    int
		controlDims []int
		horizon     int
	}{
		{"zero state dimension", 0, []int{1}, 5},
		{"no players", 2, nil, 5},
		{"zero control dimension", 2, []int{1, 0}, 5},
		{"degenerate horizon", 2, []int{1}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDimensions(tc.stateDim, tc.controlDims, tc.horizon)
			require.Error(t, err)
		})
	}
}

func TestDimensionsCopiesControlDims(t *testing.T) {
	controlDims := []int{2, 1}
	dims, err := NewDimensions(3, controlDims, 5)
	require.NoError(t, err)
	controlDims[0] = 99
	require.Equal(t, 2, dims.ControlDim(0))
}
