// Package fsmtest provides testing utilities for frame-driven machines:
// an event recorder wired through the machine's hooks, scripted ticking
// helpers, and a canned fixture graph.
package fsmtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/playloop/fsm"
)

// EventKind categorizes recorded machine events.
type EventKind string

const (
	EventStateChanged        EventKind = "state_changed"
	EventTransitionTriggered EventKind = "transition_triggered"
	EventTimeoutFired        EventKind = "timeout_fired"
	EventTimeoutBlocked      EventKind = "timeout_blocked"
)

// Event records one machine notification.
type Event struct {
	Kind   EventKind
	From   fsm.StateID // state_changed, transition_triggered
	To     fsm.StateID // state_changed, transition_triggered, timeout_fired (restart)
	State  fsm.StateID // timeout_fired, timeout_blocked
	Global bool        // transition_triggered
}

// Recorder captures machine notifications in order. Attach it with
// machine.AddHooks(recorder.Hooks()) or fsm.WithHooks(recorder.Hooks()).
type Recorder struct {
	Events []Event
}

// Hooks returns hook callbacks that append to the recorder.
func (r *Recorder) Hooks() fsm.Hooks {
	return fsm.Hooks{
		OnStateChanged: func(from, to fsm.StateID) {
			r.Events = append(r.Events, Event{Kind: EventStateChanged, From: from, To: to})
		},
		OnTransitionTriggered: func(from, to fsm.StateID, global bool) {
			r.Events = append(r.Events, Event{
				Kind:   EventTransitionTriggered,
				From:   from,
				To:     to,
				Global: global,
			})
		},
		OnTimeoutFired: func(state, restart fsm.StateID) {
			r.Events = append(r.Events, Event{Kind: EventTimeoutFired, State: state, To: restart})
		},
		OnTimeoutBlocked: func(state fsm.StateID) {
			r.Events = append(r.Events, Event{Kind: EventTimeoutBlocked, State: state})
		},
	}
}

// Kinds returns the kinds of all recorded events, in order.
func (r *Recorder) Kinds() []EventKind {
	kinds := make([]EventKind, 0, len(r.Events))
	for _, event := range r.Events {
		kinds = append(kinds, event.Kind)
	}

	return kinds
}

// Changes returns only the state_changed events, in order.
func (r *Recorder) Changes() []Event {
	var changes []Event

	for _, event := range r.Events {
		if event.Kind == EventStateChanged {
			changes = append(changes, event)
		}
	}

	return changes
}

// Reset clears the recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

// Tick advances the machine by steps ticks of the given kind and delta.
func Tick(machine *fsm.Machine, kind fsm.TickKind, steps int, delta float64) {
	for range steps {
		machine.Update(kind, delta)
	}
}

// Fixture state ids used by NewPatrolMachine.
const (
	StateIdle fsm.StateID = iota
	StatePatrol
	StateChase
)

// PatrolInputs are the condition flags driving the fixture machine.
type PatrolInputs struct {
	SeesTarget bool
	Bored      bool
}

// NewPatrolMachine builds a small three-state machine used across package
// tests: Idle -> Patrol when bored, any state -> Chase when a target is
// seen, Chase times out back to Idle after one second.
func NewPatrolMachine(t *testing.T, inputs *PatrolInputs) (*fsm.Machine, *Recorder) {
	t.Helper()

	recorder := &Recorder{}
	machine := fsm.New(fsm.WithName("patrol-test"), fsm.WithHooks(recorder.Hooks()))

	_, err := machine.AddState(StateIdle, fsm.WithLabel("Idle"))
	require.NoError(t, err)

	_, err = machine.AddState(StatePatrol, fsm.WithLabel("Patrol"))
	require.NoError(t, err)

	_, err = machine.AddState(StateChase,
		fsm.WithLabel("Chase"),
		fsm.WithTimeout(1.0),
		fsm.WithRestart(StateIdle),
	)
	require.NoError(t, err)

	_, err = machine.AddTransition(StateIdle, StatePatrol, func() bool {
		return inputs.Bored
	})
	require.NoError(t, err)

	_, err = machine.AddGlobalTransition(StateChase, func() bool {
		return inputs.SeesTarget
	}, fsm.WithPriority(10), fsm.Instant())
	require.NoError(t, err)

	// The recorder should not see fixture construction.
	recorder.Reset()

	return machine, recorder
}
