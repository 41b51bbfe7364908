// Package percolation implements the invasion engine state machine.
package percolation

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/porenet/cluster"
	"github.com/katalvlaran/porenet/core"
)

// state tracks the engine lifecycle: Unconfigured → Configured → Running →
// Completed. Running is internal to Run; callers only ever observe the
// other three.
type state int

const (
	stateUnconfigured state = iota
	stateConfigured
	stateRunning
	stateCompleted
)

// Engine runs one invasion-percolation sweep over a network. Construct with
// NewEngine, call Configure, then Run; results are frozen at completion and
// a second Run requires an explicit Reset first.
//
// The engine holds the network read-only; one network can back many engines.
// An Engine is not safe for concurrent use.
type Engine struct {
	net      *core.Network
	provider PressureProvider
	mode     Mode
	inlets   []int
	outlets  []int

	st  state
	res *Result
}

// Option configures an Engine during Configure.
type Option func(*Engine)

// WithProvider injects a custom entry-pressure source. Without it,
// Configure wires TablePressures over the engine's network.
func WithProvider(p PressureProvider) Option {
	return func(e *Engine) { e.provider = p }
}

// NewEngine constructs an unconfigured engine over n.
// Returns ErrNilNetwork for a nil network.
func NewEngine(n *core.Network) (*Engine, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}

	return &Engine{net: n}, nil
}

// Configure sets the percolation mode and the inlet/outlet pore sets,
// moving the engine to Configured. Both boundary sets must be non-empty and
// in range; all validation happens here so Run never starts a sweep it
// cannot finish for configuration reasons.
//
// Reconfiguring a Configured engine is allowed; reconfiguring a Completed
// engine requires Reset first (ErrInvalidState otherwise).
//
// Complexity: O(|inlets| + |outlets|).
func (e *Engine) Configure(mode Mode, inlets, outlets []int, opts ...Option) error {
	if e.st == stateCompleted || e.st == stateRunning {
		return ErrInvalidState
	}
	switch mode {
	case Site, Bond, Mixed:
	default:
		return ErrBadMode
	}
	if len(inlets) == 0 {
		return ErrEmptyInlets
	}
	if len(outlets) == 0 {
		return ErrEmptyOutlets
	}
	for _, sets := range [2][]int{inlets, outlets} {
		for _, id := range sets {
			if id < 0 || id >= e.net.PoreCount() {
				return fmt.Errorf("%w: %d", ErrPoreIndex, id)
			}
		}
	}

	e.mode = mode
	e.inlets = append([]int(nil), inlets...)
	e.outlets = append([]int(nil), outlets...)
	e.provider = TablePressures{Net: e.net}
	for _, apply := range opts {
		apply(e)
	}
	e.st = stateConfigured

	return nil
}

// Reset discards the results of a Completed engine and returns it to
// Configured, keeping mode, boundaries, and provider. Resetting a
// Configured engine is a no-op; an Unconfigured one fails.
func (e *Engine) Reset() error {
	switch e.st {
	case stateCompleted:
		e.res = nil
		e.st = stateConfigured

		return nil
	case stateConfigured:
		return nil
	default:
		return ErrInvalidState
	}
}

// Run executes one ascending pressure sweep and freezes the results.
//
// Algorithm, per sweep pressure p (ascending):
//  1. Admit every not-yet-admitted entity whose gate pressure is ≤ p
//     (gates depend on the mode; see gatePressures). Admission is driven
//     by cursors over gate-sorted entity orders, so each entity is
//     admitted and unioned exactly once across the whole sweep.
//  2. Union admitted throats' endpoints in the cluster tracker.
//  3. Mark every admitted entity whose cluster touches the inlet set as
//     invaded, recording p as its invasion threshold exactly once.
//  4. Record whether some cluster touches inlet and outlet simultaneously;
//     the first such p is the percolation threshold.
//
// Run is not re-entrant: a Completed engine fails with ErrInvalidState
// until Reset. All schedule and property validation happens before any
// sweep work, so a failed Run leaves no partial result behind.
//
// Complexity: O(E log E + (V+E)·α(V) + S·(V+E)) worst case, S sweep steps.
func (e *Engine) Run(s Schedule) (*Result, error) {
	if e.st != stateConfigured {
		return nil, ErrInvalidState
	}

	porePc, throatPc, err := e.entryPressures()
	if err != nil {
		return nil, err
	}
	pressures, err := e.materialize(s, porePc, throatPc)
	if err != nil {
		return nil, err
	}

	e.st = stateRunning
	res, err := e.sweep(pressures, porePc, throatPc)
	if err != nil {
		e.st = stateConfigured

		return nil, err
	}
	e.res = res
	e.st = stateCompleted

	return res, nil
}

// entryPressures collects the per-entity entry pressures the configured
// mode needs, failing with a wrapped ErrMissingPressure naming the first
// entity that lacks one. Bond mode skips pores, Site skips throats.
func (e *Engine) entryPressures() (porePc, throatPc []float64, err error) {
	if e.mode != Bond {
		porePc = make([]float64, e.net.PoreCount())
		for id := range porePc {
			pc, ok := e.provider.PoreEntryPressure(id)
			if !ok {
				return nil, nil, fmt.Errorf("%w: pore %d", ErrMissingPressure, id)
			}
			porePc[id] = pc
		}
	}
	if e.mode != Site {
		throatPc = make([]float64, e.net.ThroatCount())
		for id := range throatPc {
			pc, ok := e.provider.ThroatEntryPressure(id)
			if !ok {
				return nil, nil, fmt.Errorf("%w: throat %d", ErrMissingPressure, id)
			}
			throatPc[id] = pc
		}
	}

	return porePc, throatPc, nil
}

// materialize turns the schedule into the ascending sweep pressures.
// Explicit sequences are sorted and deduplicated; step counts span
// [min, max] of the mode-relevant entry pressures with equal spacing.
func (e *Engine) materialize(s Schedule, porePc, throatPc []float64) ([]float64, error) {
	if s.explicit != nil {
		if len(s.explicit) < 2 {
			return nil, ErrShortSweep
		}
		ps := append([]float64(nil), s.explicit...)
		sort.Float64s(ps)
		// Deduplicate in place.
		out := ps[:1]
		for _, p := range ps[1:] {
			if p != out[len(out)-1] {
				out = append(out, p)
			}
		}
		if len(out) < 2 {
			return nil, ErrShortSweep
		}

		return out, nil
	}

	if s.steps < 2 {
		return nil, ErrShortSweep
	}
	relevant := append(append([]float64(nil), porePc...), throatPc...)
	if len(relevant) == 0 {
		return nil, fmt.Errorf("%w: no entities to span a pressure range", ErrShortSweep)
	}
	lo, hi := relevant[0], relevant[0]
	for _, pc := range relevant {
		lo = math.Min(lo, pc)
		hi = math.Max(hi, pc)
	}
	ps := make([]float64, s.steps)
	for i := range ps {
		ps[i] = lo + (hi-lo)*float64(i)/float64(s.steps-1)
	}

	return ps, nil
}

// gatePressures derives per-entity admission gates from the mode:
//
//	Bond:  throats gated by their own pressure; a pore follows its
//	       cheapest incident throat (fluid only enters a pore through an
//	       admitted throat, so an isolated pore is never admitted).
//	Site:  pores gated by their own pressure, a throat by the larger of
//	       its endpoints (it conducts once both pores are admitted).
//	Mixed: pores as in Site, a throat by the largest of its own pressure
//	       and both endpoint pressures.
func (e *Engine) gatePressures(porePc, throatPc []float64) (poreGate, throatGate []float64) {
	poreGate = make([]float64, e.net.PoreCount())
	if e.mode == Bond {
		for i := range poreGate {
			poreGate[i] = math.Inf(1)
		}
	} else {
		copy(poreGate, porePc)
	}

	throatGate = make([]float64, e.net.ThroatCount())
	for tid := range throatGate {
		th, _ := e.net.Throat(tid)
		switch e.mode {
		case Bond:
			throatGate[tid] = throatPc[tid]
			poreGate[th.PoreA] = math.Min(poreGate[th.PoreA], throatPc[tid])
			poreGate[th.PoreB] = math.Min(poreGate[th.PoreB], throatPc[tid])
		case Site:
			throatGate[tid] = math.Max(porePc[th.PoreA], porePc[th.PoreB])
		case Mixed:
			throatGate[tid] = math.Max(throatPc[tid], math.Max(porePc[th.PoreA], porePc[th.PoreB]))
		}
	}

	return poreGate, throatGate
}

// sweep is the sequential threshold sweep; steps cannot be reordered
// because each step's admissions build on the cumulative cluster state.
func (e *Engine) sweep(pressures []float64, porePc, throatPc []float64) (*Result, error) {
	poreGate, throatGate := e.gatePressures(porePc, throatPc)

	// Ascending admission orders: a cursor per entity type walks these so
	// every entity is admitted exactly once over the whole sweep.
	poreOrder := sortedByGate(poreGate)
	throatOrder := sortedByGate(throatGate)

	tracker, err := cluster.New(e.net.PoreCount())
	if err != nil {
		return nil, err
	}
	for _, id := range e.inlets {
		if err = tracker.MarkInlet(id); err != nil {
			return nil, err
		}
	}
	for _, id := range e.outlets {
		if err = tracker.MarkOutlet(id); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Mode:           e.mode,
		Pressures:      pressures,
		PoreInvasion:   infSlice(e.net.PoreCount()),
		ThroatInvasion: infSlice(e.net.ThroatCount()),
		PercolatingAt:  make([]bool, len(pressures)),
		Threshold:      math.Inf(1),
	}

	var (
		activePores   []int // admitted, not yet invaded
		activeThroats []int
		pCur, tCur    int
	)
	for si, p := range pressures {
		// 1+2. Admit throats whose gate is reached and union endpoints.
		for tCur < len(throatOrder) && throatGate[throatOrder[tCur]] <= p {
			tid := throatOrder[tCur]
			th, _ := e.net.Throat(tid)
			if _, err = tracker.Union(th.PoreA, th.PoreB); err != nil {
				return nil, err
			}
			activeThroats = append(activeThroats, tid)
			tCur++
		}
		// Admit pores whose gate is reached.
		for pCur < len(poreOrder) && poreGate[poreOrder[pCur]] <= p {
			activePores = append(activePores, poreOrder[pCur])
			pCur++
		}

		// 3. Invade every admitted entity in an inlet-touching cluster.
		//    Once set, an invasion threshold never changes.
		keptP := activePores[:0]
		for _, id := range activePores {
			in, ferr := tracker.TouchesInlet(id)
			if ferr != nil {
				return nil, ferr
			}
			if in {
				res.PoreInvasion[id] = p
			} else {
				keptP = append(keptP, id)
			}
		}
		activePores = keptP

		keptT := activeThroats[:0]
		for _, tid := range activeThroats {
			th, _ := e.net.Throat(tid)
			in, ferr := tracker.TouchesInlet(th.PoreA)
			if ferr != nil {
				return nil, ferr
			}
			if in {
				res.ThroatInvasion[tid] = p
			} else {
				keptT = append(keptT, tid)
			}
		}
		activeThroats = keptT

		// 4. Breakthrough bookkeeping.
		res.PercolatingAt[si] = tracker.Percolating()
		if res.PercolatingAt[si] && math.IsInf(res.Threshold, 1) {
			res.Threshold = p
		}
	}

	res.Curve = intrusionCurve(e.net, e.inlets, res)

	return res, nil
}

// sortedByGate returns entity ids ordered by ascending gate pressure
// (stable, so equal gates keep id order).
func sortedByGate(gate []float64) []int {
	order := make([]int, len(gate))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return gate[order[i]] < gate[order[j]]
	})

	return order
}

// infSlice returns a length-n slice filled with +Inf ("never invaded").
func infSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Inf(1)
	}

	return s
}

// IsPercolating reports whether invasion up to pressure p connects the
// inlet set to the outlet set: false below the percolation threshold, true
// at and above it (monotone). Only valid on a Completed engine.
func (e *Engine) IsPercolating(p float64) (bool, error) {
	if e.st != stateCompleted {
		return false, ErrInvalidState
	}

	return p >= e.res.Threshold, nil
}

// PercolationThreshold returns the minimal sweep pressure at which inlet
// and outlet became connected, or +Inf if the sweep never percolated.
// Only valid on a Completed engine.
func (e *Engine) PercolationThreshold() (float64, error) {
	if e.st != stateCompleted {
		return 0, ErrInvalidState
	}

	return e.res.Threshold, nil
}

// IntrusionCurve returns a copy of the (pressure, saturation) curve.
// Only valid on a Completed engine.
func (e *Engine) IntrusionCurve() ([]Point, error) {
	if e.st != stateCompleted {
		return nil, ErrInvalidState
	}
	out := make([]Point, len(e.res.Curve))
	copy(out, e.res.Curve)

	return out, nil
}

// Result returns the frozen sweep results. The returned struct and its
// slices are owned by the engine and must be treated as read-only.
// Only valid on a Completed engine.
func (e *Engine) Result() (*Result, error) {
	if e.st != stateCompleted {
		return nil, ErrInvalidState
	}

	return e.res, nil
}
