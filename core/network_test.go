package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/porenet/core"
)

// buildPath constructs a path network P0—P1—…—P(n-1) with unit geometry.
func buildPath(n int) *core.Network {
	net := core.NewNetwork(n, n-1)
	for i := 0; i < n; i++ {
		net.AddPore(core.NewPore(float64(i), 0, 0))
	}
	for i := 1; i < n; i++ {
		_, _ = net.AddThroat(i-1, i, core.NewThroat(1, 1, 1))
	}

	return net
}

// TestAddThroat_Errors verifies endpoint validation and deduplication.
func TestAddThroat_Errors(t *testing.T) {
	net := core.NewNetwork(0, 0)
	a := net.AddPore(core.NewPore(0, 0, 0))
	b := net.AddPore(core.NewPore(1, 0, 0))
	if _, err := net.AddThroat(a, b, core.NewThroat(1, 1, 1)); err != nil {
		t.Fatalf("AddThroat(a,b) error: %v", err)
	}

	cases := []struct {
		name string
		a, b int
		err  error
	}{
		{"UnknownA", -1, b, core.ErrPoreNotFound},
		{"UnknownB", a, 99, core.ErrPoreNotFound},
		{"SelfLoop", a, a, core.ErrSelfLoop},
		{"Duplicate", a, b, core.ErrDuplicateThroat},
		{"DuplicateReversed", b, a, core.ErrDuplicateThroat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := net.AddThroat(tc.a, tc.b, core.NewThroat(1, 1, 1))
			if !errors.Is(err, tc.err) {
				t.Errorf("AddThroat(%d,%d) error = %v; want %v", tc.a, tc.b, err, tc.err)
			}
		})
	}
}

// TestAddThroat_Canonicalizes checks that endpoints are stored lower-id-first
// regardless of argument order.
func TestAddThroat_Canonicalizes(t *testing.T) {
	net := core.NewNetwork(0, 0)
	net.AddPore(core.NewPore(0, 0, 0))
	net.AddPore(core.NewPore(1, 0, 0))

	id, err := net.AddThroat(1, 0, core.NewThroat(1, 1, 1))
	if err != nil {
		t.Fatalf("AddThroat error: %v", err)
	}
	th, err := net.Throat(id)
	if err != nil {
		t.Fatalf("Throat(%d) error: %v", id, err)
	}
	if th.PoreA != 0 || th.PoreB != 1 {
		t.Errorf("endpoints = (%d,%d); want (0,1)", th.PoreA, th.PoreB)
	}
	if tid, ok := net.HasThroat(1, 0); !ok || tid != id {
		t.Errorf("HasThroat(1,0) = (%d,%v); want (%d,true)", tid, ok, id)
	}
}

// TestAdjacency verifies Neighbors, IncidentThroats, Degree, and MeanDegree
// on a 3-pore path.
func TestAdjacency(t *testing.T) {
	net := buildPath(3)

	nb, err := net.Neighbors(1)
	if err != nil {
		t.Fatalf("Neighbors(1) error: %v", err)
	}
	if len(nb) != 2 || nb[0] != 0 || nb[1] != 2 {
		t.Errorf("Neighbors(1) = %v; want [0 2]", nb)
	}

	if d, _ := net.Degree(0); d != 1 {
		t.Errorf("Degree(0) = %d; want 1", d)
	}
	if d, _ := net.Degree(1); d != 2 {
		t.Errorf("Degree(1) = %d; want 2", d)
	}
	if got, want := net.MeanDegree(), 4.0/3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("MeanDegree = %v; want %v", got, want)
	}

	if _, err = net.Neighbors(7); !errors.Is(err, core.ErrPoreNotFound) {
		t.Errorf("Neighbors(7) error = %v; want ErrPoreNotFound", err)
	}
}

// TestEntryPressure_SetAndUnset checks the NaN "unset" convention and the
// setter validation.
func TestEntryPressure_SetAndUnset(t *testing.T) {
	net := buildPath(2)

	p, _ := net.Pore(0)
	if !math.IsNaN(p.EntryPressure) {
		t.Fatalf("fresh pore EntryPressure = %v; want NaN", p.EntryPressure)
	}

	if err := net.SetPoreEntryPressure(0, 2.5); err != nil {
		t.Fatalf("SetPoreEntryPressure error: %v", err)
	}
	p, _ = net.Pore(0)
	if p.EntryPressure != 2.5 {
		t.Errorf("EntryPressure = %v; want 2.5", p.EntryPressure)
	}

	if err := net.SetThroatEntryPressure(0, math.NaN()); !errors.Is(err, core.ErrBadPressure) {
		t.Errorf("NaN setter error = %v; want ErrBadPressure", err)
	}
	if err := net.SetPoreEntryPressure(9, 1); !errors.Is(err, core.ErrPoreNotFound) {
		t.Errorf("out-of-range setter error = %v; want ErrPoreNotFound", err)
	}
}

// TestConnectedComponents covers multi-component graphs and isolated pores.
func TestConnectedComponents(t *testing.T) {
	// Two components: {0,1,2} path and {3,4} pair, plus isolated pore 5.
	net := core.NewNetwork(6, 3)
	for i := 0; i < 6; i++ {
		net.AddPore(core.NewPore(float64(i), 0, 0))
	}
	_, _ = net.AddThroat(0, 1, core.NewThroat(1, 1, 1))
	_, _ = net.AddThroat(1, 2, core.NewThroat(1, 1, 1))
	_, _ = net.AddThroat(3, 4, core.NewThroat(1, 1, 1))

	comps := net.ConnectedComponents()
	if len(comps) != 3 {
		t.Fatalf("components = %d; want 3", len(comps))
	}
	if len(comps[0]) != 3 || len(comps[1]) != 2 || len(comps[2]) != 1 {
		t.Errorf("component sizes = %d,%d,%d; want 3,2,1",
			len(comps[0]), len(comps[1]), len(comps[2]))
	}
	if comps[2][0] != 5 {
		t.Errorf("isolated component = %v; want [5]", comps[2])
	}
}

// TestReachableFrom verifies reachability flags and seed handling.
func TestReachableFrom(t *testing.T) {
	net := core.NewNetwork(5, 2)
	for i := 0; i < 5; i++ {
		net.AddPore(core.NewPore(float64(i), 0, 0))
	}
	_, _ = net.AddThroat(0, 1, core.NewThroat(1, 1, 1))
	_, _ = net.AddThroat(3, 4, core.NewThroat(1, 1, 1))

	reached := net.ReachableFrom([]int{0, -3, 42})
	want := []bool{true, true, false, false, false}
	for i := range want {
		if reached[i] != want[i] {
			t.Errorf("reached[%d] = %v; want %v", i, reached[i], want[i])
		}
	}
}
