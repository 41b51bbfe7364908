package percolation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porenet/core"
	"github.com/katalvlaran/porenet/percolation"
)

// buildTwoPore constructs the canonical 2-pore/1-throat network: unit
// volumes everywhere, throat entry pressure 5.0.
func buildTwoPore(t *testing.T) *core.Network {
	t.Helper()
	net := core.NewNetwork(2, 1)
	p := core.NewPore(0, 0, 0)
	p.Volume = 1
	net.AddPore(p)
	p = core.NewPore(1, 0, 0)
	p.Volume = 1
	net.AddPore(p)
	th := core.NewThroat(1, 1, 1)
	_, err := net.AddThroat(0, 1, th)
	require.NoError(t, err)
	require.NoError(t, net.SetThroatEntryPressure(0, 5.0))

	return net
}

// TestNewEngine_NilNetwork rejects a nil network.
func TestNewEngine_NilNetwork(t *testing.T) {
	_, err := percolation.NewEngine(nil)
	assert.True(t, errors.Is(err, percolation.ErrNilNetwork))
}

// TestConfigure_Validation covers mode, boundary-set, and id validation.
func TestConfigure_Validation(t *testing.T) {
	net := buildTwoPore(t)
	eng, err := percolation.NewEngine(net)
	require.NoError(t, err)

	cases := []struct {
		name            string
		mode            percolation.Mode
		inlets, outlets []int
		err             error
	}{
		{"BadMode", percolation.Mode(9), []int{0}, []int{1}, percolation.ErrBadMode},
		{"EmptyInlets", percolation.Bond, nil, []int{1}, percolation.ErrEmptyInlets},
		{"EmptyOutlets", percolation.Bond, []int{0}, nil, percolation.ErrEmptyOutlets},
		{"InletOutOfRange", percolation.Bond, []int{5}, []int{1}, percolation.ErrPoreIndex},
		{"OutletNegative", percolation.Bond, []int{0}, []int{-1}, percolation.ErrPoreIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := eng.Configure(tc.mode, tc.inlets, tc.outlets)
			if !errors.Is(err, tc.err) {
				t.Errorf("Configure error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestStateMachine walks Unconfigured → Configured → Completed and checks
// every illegal transition fails with ErrInvalidState.
func TestStateMachine(t *testing.T) {
	net := buildTwoPore(t)
	eng, err := percolation.NewEngine(net)
	require.NoError(t, err)

	// Unconfigured: no Run, no queries, no Reset.
	_, err = eng.Run(percolation.Pressures(1, 7))
	assert.True(t, errors.Is(err, percolation.ErrInvalidState))
	_, err = eng.PercolationThreshold()
	assert.True(t, errors.Is(err, percolation.ErrInvalidState))
	_, err = eng.IsPercolating(5)
	assert.True(t, errors.Is(err, percolation.ErrInvalidState))
	_, err = eng.IntrusionCurve()
	assert.True(t, errors.Is(err, percolation.ErrInvalidState))
	assert.True(t, errors.Is(eng.Reset(), percolation.ErrInvalidState))

	// Configured: reconfiguring is allowed, queries still rejected.
	require.NoError(t, eng.Configure(percolation.Bond, []int{0}, []int{1}))
	require.NoError(t, eng.Configure(percolation.Bond, []int{0}, []int{1}))
	_, err = eng.Result()
	assert.True(t, errors.Is(err, percolation.ErrInvalidState))

	// Completed: Run and Configure are rejected until Reset.
	_, err = eng.Run(percolation.Pressures(1, 3, 5, 7))
	require.NoError(t, err)
	_, err = eng.Run(percolation.Pressures(1, 3, 5, 7))
	assert.True(t, errors.Is(err, percolation.ErrInvalidState))
	err = eng.Configure(percolation.Bond, []int{0}, []int{1})
	assert.True(t, errors.Is(err, percolation.ErrInvalidState))

	// Reset returns to Configured; a fresh Run succeeds and agrees.
	require.NoError(t, eng.Reset())
	_, err = eng.Result()
	assert.True(t, errors.Is(err, percolation.ErrInvalidState))
	res, err := eng.Run(percolation.Pressures(1, 3, 5, 7))
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Threshold)
}

// TestRun_ShortSweep rejects schedules with fewer than two distinct points.
func TestRun_ShortSweep(t *testing.T) {
	net := buildTwoPore(t)

	cases := []struct {
		name string
		s    percolation.Schedule
	}{
		{"OnePoint", percolation.Pressures(5)},
		{"NoPoints", percolation.Pressures()},
		{"AllDuplicates", percolation.Pressures(5, 5, 5)},
		{"OneStep", percolation.Steps(1)},
		{"ZeroSteps", percolation.Steps(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eng, err := percolation.NewEngine(net)
			require.NoError(t, err)
			require.NoError(t, eng.Configure(percolation.Bond, []int{0}, []int{1}))

			_, err = eng.Run(tc.s)
			assert.True(t, errors.Is(err, percolation.ErrShortSweep))

			// A failed Run leaves the engine Configured and result-free.
			_, err = eng.Result()
			assert.True(t, errors.Is(err, percolation.ErrInvalidState))
		})
	}
}

// TestRun_MissingPressure: a relevant entity without an entry pressure
// aborts the run, naming the entity, before any result state exists.
func TestRun_MissingPressure(t *testing.T) {
	net := core.NewNetwork(2, 1)
	net.AddPore(core.NewPore(0, 0, 0))
	net.AddPore(core.NewPore(1, 0, 0))
	_, err := net.AddThroat(0, 1, core.NewThroat(1, 1, 1))
	require.NoError(t, err)
	// Throat entry pressure deliberately left unset (NaN).

	eng, err := percolation.NewEngine(net)
	require.NoError(t, err)
	require.NoError(t, eng.Configure(percolation.Bond, []int{0}, []int{1}))

	_, err = eng.Run(percolation.Pressures(1, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, percolation.ErrMissingPressure))
	assert.True(t, strings.Contains(err.Error(), "throat 0"), "error should name the entity: %v", err)

	// Supplying the pressure makes the same engine runnable.
	require.NoError(t, net.SetThroatEntryPressure(0, 1.5))
	res, err := eng.Run(percolation.Pressures(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Threshold)
}

// TestRun_StepsSchedule spans [min, max] of the relevant pressures with
// equal spacing.
func TestRun_StepsSchedule(t *testing.T) {
	net := core.NewNetwork(3, 2)
	for i := 0; i < 3; i++ {
		net.AddPore(core.NewPore(float64(i), 0, 0))
	}
	_, _ = net.AddThroat(0, 1, core.NewThroat(1, 1, 1))
	_, _ = net.AddThroat(1, 2, core.NewThroat(1, 1, 1))
	require.NoError(t, net.SetThroatEntryPressure(0, 2))
	require.NoError(t, net.SetThroatEntryPressure(1, 10))

	eng, err := percolation.NewEngine(net)
	require.NoError(t, err)
	require.NoError(t, eng.Configure(percolation.Bond, []int{0}, []int{2}))

	res, err := eng.Run(percolation.Steps(5))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6, 8, 10}, res.Pressures)
	assert.Equal(t, 10.0, res.Threshold)
}

// TestWithProvider runs with a FuncProvider instead of table pressures.
func TestWithProvider(t *testing.T) {
	net := buildTwoPore(t)
	provider := percolation.FuncProvider{
		Throat: func(id int) (float64, bool) { return 3.0, true },
	}

	eng, err := percolation.NewEngine(net)
	require.NoError(t, err)
	require.NoError(t, eng.Configure(percolation.Bond, []int{0}, []int{1},
		percolation.WithProvider(provider)))

	res, err := eng.Run(percolation.Pressures(1, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Threshold, "provider overrides the table value 5.0")
}
