package fsm

import "slices"

// Snapshot is a point-in-time copy of the machine's registry and runtime
// position, used by the validator and visualizer packages and for
// debugging. It shares nothing with the live machine.
type Snapshot struct {
	Name string

	Active     StateID
	Previous   StateID
	Initial    StateID
	InitialSet bool
	Paused     bool
	DwellTime  float64

	// States in registration order.
	States []StateInfo

	// Transitions in evaluation order: each state's locals (priority
	// order) grouped by state registration order, then the globals.
	Transitions []TransitionInfo
}

// StateInfo describes one registered state.
type StateInfo struct {
	ID       StateID
	Label    string
	Restart  StateID
	MinDwell float64
	Timeout  float64
	Lock     LockMode
	Tick     TickKind
	Tags     []string
}

// TransitionInfo describes one registered transition.
type TransitionInfo struct {
	From             StateID // StateNone for globals
	To               StateID
	FromLabel        string
	ToLabel          string
	Priority         int
	Global           bool
	Instant          bool
	MinDwellOverride float64
}

// Snapshot captures the machine's current configuration and position.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		Name:       m.name,
		Active:     m.Active(),
		Previous:   m.previous,
		Initial:    m.Initial(),
		InitialSet: m.initialSet,
		Paused:     m.paused,
		DwellTime:  m.dwell,
	}

	for _, id := range m.order {
		state := m.states[id]

		tags := state.Tags()
		slices.Sort(tags)

		snap.States = append(snap.States, StateInfo{
			ID:       state.id,
			Label:    state.label,
			Restart:  state.restart,
			MinDwell: state.minDwell,
			Timeout:  state.timeout,
			Lock:     state.lock,
			Tick:     state.tick,
			Tags:     tags,
		})
	}

	for _, id := range m.order {
		for _, transition := range m.locals[id] {
			snap.Transitions = append(snap.Transitions, m.transitionInfo(transition))
		}
	}

	for _, transition := range m.global {
		snap.Transitions = append(snap.Transitions, m.transitionInfo(transition))
	}

	return snap
}

func (m *Machine) transitionInfo(t *Transition) TransitionInfo {
	return TransitionInfo{
		From:             t.from,
		To:               t.to,
		FromLabel:        m.stateLabel(t.from),
		ToLabel:          m.stateLabel(t.to),
		Priority:         t.priority,
		Global:           t.Global(),
		Instant:          t.instant,
		MinDwellOverride: t.minDwellOverride,
	}
}
