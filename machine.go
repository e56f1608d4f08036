package fsm

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/playloop/fsm/animation"
	"github.com/playloop/fsm/evalpool"
)

// Machine owns a registry of states and transitions and drives the per-tick
// update. It is single-threaded and cooperative: the host calls Update once
// per relevant frame phase, and all mutation happens on that same thread
// between ticks. Hooks invoked during Update may mutate the machine, but
// re-entrant calls to Update itself are unsupported.
type Machine struct {
	name string

	states map[StateID]*State
	order  []StateID // registration order, drives Reset fallback and Snapshot
	locals map[StateID][]*Transition
	global []*Transition

	active         *State
	previous       StateID
	initial        StateID
	initialSet     bool
	initialRemoved bool
	paused         bool
	dwell          float64

	candidates *evalpool.Pool[*Transition]
	logger     Logger
	hooks      []Hooks
	player     animation.Player
}

type machineOptions struct {
	name   string
	logger Logger
	player animation.Player
	hooks  []Hooks
}

// Option configures a Machine.
type Option func(*machineOptions)

// WithName sets the machine name used in logs, metrics, and spans.
// Defaults to a short random name.
func WithName(name string) Option {
	return func(o *machineOptions) {
		o.name = name
	}
}

// WithLogger sets the diagnostic logger. Without one the machine is silent.
func WithLogger(logger Logger) Option {
	return func(o *machineOptions) {
		o.logger = logger
	}
}

// WithAnimationPlayer sets the playback collaborator invoked when entering
// a state that carries AnimationKey side data.
func WithAnimationPlayer(player animation.Player) Option {
	return func(o *machineOptions) {
		o.player = player
	}
}

// WithHooks attaches observer callbacks at construction time.
func WithHooks(hooks Hooks) Option {
	return func(o *machineOptions) {
		o.hooks = append(o.hooks, hooks)
	}
}

// New creates an empty Machine. Ticking an empty machine is a no-op; the
// first state added becomes both the active and the initial state.
func New(opts ...Option) *Machine {
	options := &machineOptions{}

	for _, opt := range opts {
		opt(options)
	}

	if options.name == "" {
		options.name = "fsm-" + uuid.NewString()[:8]
	}

	return &Machine{
		name:       options.name,
		states:     make(map[StateID]*State),
		locals:     make(map[StateID][]*Transition),
		previous:   StateNone,
		initial:    StateNone,
		candidates: evalpool.New[*Transition](evalpool.WithName(options.name)),
		logger:     options.logger,
		hooks:      options.hooks,
		player:     options.player,
	}
}

// Name returns the machine's name.
func (m *Machine) Name() string {
	return m.name
}

// AddState registers a new state. The first state ever added becomes both
// the active and the initial state, and its enter hook runs immediately.
// Every subsequent state's restart target defaults to the initial state id
// at the time of addition. Adding a duplicate id is a reported no-op.
func (m *Machine) AddState(id StateID, opts ...StateOption) (*State, error) {
	if id < 0 {
		err := WrapStateError(id, ErrInvalidStateID)
		m.logError("add_state", err)

		return nil, err
	}

	if _, exists := m.states[id]; exists {
		err := WrapStateError(id, ErrStateExists)
		m.logError("add_state", err)

		return nil, err
	}

	first := len(m.states) == 0

	state := &State{
		id:      id,
		label:   fmt.Sprintf("state_%d", id),
		restart: id,
		tags:    make(map[string]struct{}),
		data:    make(map[string]any),
	}

	if m.initialSet {
		state.restart = m.initial
	}

	for _, opt := range opts {
		opt(state)
	}

	m.states[id] = state
	m.order = append(m.order, id)

	if first {
		m.initial = id
		m.initialSet = true
		m.initialRemoved = false

		// First activation: no prior state to exit, and no change
		// notification before the machine has meaningfully started.
		m.enterState(state, triggerInitial, true)
	}

	return state, nil
}

// GetState returns the state registered under id. The state is shared by
// reference; mutating it affects the machine directly.
func (m *Machine) GetState(id StateID) (*State, bool) {
	state, ok := m.states[id]

	return state, ok
}

// RemoveState detaches a state and prunes every transition referencing it
// as source or target, including global transitions. Removing the active
// state forces a reset to the initial state; removing the initial state
// leaves the machine without one until SetInitial designates a new initial.
func (m *Machine) RemoveState(id StateID) error {
	if _, ok := m.states[id]; !ok {
		err := WrapStateError(id, ErrStateNotFound)
		m.logError("remove_state", err)

		return err
	}

	delete(m.states, id)
	m.order = slices.DeleteFunc(m.order, func(other StateID) bool {
		return other == id
	})

	delete(m.locals, id)

	for from, list := range m.locals {
		m.locals[from] = slices.DeleteFunc(list, func(t *Transition) bool {
			return t.to == id
		})
	}

	m.global = slices.DeleteFunc(m.global, func(t *Transition) bool {
		return t.to == id
	})

	if m.initial == id {
		m.initial = StateNone
		m.initialSet = false
		m.initialRemoved = true
	}

	if m.active != nil && m.active.id == id {
		m.active = nil
		m.dwell = 0

		// Reset reports its own failure; on error the machine stays
		// inert until a new initial is set.
		_ = m.Reset()
	}

	if m.previous == id {
		m.previous = StateNone
	}

	return nil
}

// SetInitial designates the initial state. The active state is unchanged.
func (m *Machine) SetInitial(id StateID) error {
	if _, ok := m.states[id]; !ok {
		err := WrapStateError(id, ErrStateNotFound)
		m.logError("set_initial", err)

		return err
	}

	m.initial = id
	m.initialSet = true
	m.initialRemoved = false

	return nil
}

// Initial returns the designated initial state id, or StateNone when the
// machine has none (empty machine, or the initial state was removed).
func (m *Machine) Initial() StateID {
	if !m.initialSet {
		return StateNone
	}

	return m.initial
}

// Active returns the active state id, or StateNone when the machine is
// empty or its active state was removed without a valid reset target.
func (m *Machine) Active() StateID {
	if m.active == nil {
		return StateNone
	}

	return m.active.id
}

// ActiveState returns the active state object, or nil.
func (m *Machine) ActiveState() *State {
	return m.active
}

// Previous returns the previously active state id, or StateNone.
func (m *Machine) Previous() StateID {
	return m.previous
}

// DwellTime returns the accumulated time, in seconds, since the active
// state was entered.
func (m *Machine) DwellTime() float64 {
	return m.dwell
}

// AddTransition registers a conditioned edge between two states. It fails
// if the target does not exist. The per-source list stays sorted by
// priority (descending) with insertion order breaking ties.
func (m *Machine) AddTransition(from, to StateID, condition Condition, opts ...TransitionOption) (*Transition, error) {
	// StateNone is the global-transition source sentinel; a local edge
	// registered under it would never be evaluated.
	if from < 0 {
		err := WrapTransitionError(from, to, ErrInvalidStateID)
		m.logError("add_transition", err)

		return nil, err
	}

	transition, err := m.newTransition(from, to, condition, opts)
	if err != nil {
		m.logError("add_transition", err)

		return nil, err
	}

	m.locals[from] = append(m.locals[from], transition)
	sortTransitions(m.locals[from])

	return transition, nil
}

// AddGlobalTransition registers an edge evaluated from every state, after
// that state's own local transitions.
func (m *Machine) AddGlobalTransition(to StateID, condition Condition, opts ...TransitionOption) (*Transition, error) {
	transition, err := m.newTransition(StateNone, to, condition, opts)
	if err != nil {
		m.logError("add_global_transition", err)

		return nil, err
	}

	m.global = append(m.global, transition)
	sortTransitions(m.global)

	return transition, nil
}

func (m *Machine) newTransition(
	from, to StateID,
	condition Condition,
	opts []TransitionOption,
) (*Transition, error) {
	if from != StateNone {
		if _, ok := m.states[from]; !ok {
			return nil, WrapTransitionError(from, to, ErrStateNotFound)
		}
	}

	if _, ok := m.states[to]; !ok {
		return nil, WrapTransitionError(from, to, ErrStateNotFound)
	}

	transition := &Transition{
		from:      from,
		to:        to,
		condition: condition,
	}

	for _, opt := range opts {
		opt(transition)
	}

	return transition, nil
}

// RemoveTransition removes the first registered edge from one state to
// another. Removing a missing edge is a reported error, so callers can
// distinguish "removed" from "was not there".
func (m *Machine) RemoveTransition(from, to StateID) error {
	list := m.locals[from]

	for i, transition := range list {
		if transition.to == to {
			m.locals[from] = slices.Delete(list, i, i+1)

			return nil
		}
	}

	err := WrapTransitionError(from, to, ErrTransitionNotFound)
	m.logError("remove_transition", err)

	return err
}

// RemoveGlobalTransition removes the first global edge targeting the state.
func (m *Machine) RemoveGlobalTransition(to StateID) error {
	for i, transition := range m.global {
		if transition.to == to {
			m.global = slices.Delete(m.global, i, i+1)

			return nil
		}
	}

	err := WrapTransitionError(StateNone, to, ErrTransitionNotFound)
	m.logError("remove_global_transition", err)

	return err
}

// ClearTransitions removes every local transition.
func (m *Machine) ClearTransitions() {
	m.locals = make(map[StateID][]*Transition)
}

// ClearGlobalTransitions removes every global transition.
func (m *Machine) ClearGlobalTransitions() {
	m.global = nil
}

// Transitions returns the local transitions registered for a source state,
// in evaluation order.
func (m *Machine) Transitions(from StateID) []*Transition {
	return slices.Clone(m.locals[from])
}

// GlobalTransitions returns the global transitions in evaluation order.
func (m *Machine) GlobalTransitions() []*Transition {
	return slices.Clone(m.global)
}

// sortTransitions orders a list by priority descending; the stable sort
// preserves insertion order between equal priorities, which guarantees
// deterministic resolution.
func sortTransitions(list []*Transition) {
	slices.SortStableFunc(list, func(a, b *Transition) int {
		return cmp.Compare(b.priority, a.priority)
	})
}

// stateLabel resolves a display label for logs and metrics.
func (m *Machine) stateLabel(id StateID) string {
	if id == StateNone {
		return "none"
	}

	if state, ok := m.states[id]; ok {
		return state.label
	}

	return fmt.Sprintf("state_%d", id)
}
