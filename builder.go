package fsm

import (
	"errors"
	"fmt"
)

// Builder provides a fluent API for declaring a machine's states and
// transitions up front. Build applies the declarations in order and
// aggregates every configuration error instead of stopping at the first.
type Builder struct {
	opts        []Option
	states      []builderState
	transitions []builderTransition
	initial     StateID
	initialSet  bool
}

type builderState struct {
	id   StateID
	opts []StateOption
}

type builderTransition struct {
	from      StateID // StateNone declares a global transition
	to        StateID
	condition Condition
	opts      []TransitionOption
}

// NewBuilder creates a machine builder. The machine options are applied
// when Build creates the machine.
func NewBuilder(name string, opts ...Option) *Builder {
	return &Builder{
		opts: append([]Option{WithName(name)}, opts...),
	}
}

// AddState declares a state.
func (b *Builder) AddState(id StateID, opts ...StateOption) *Builder {
	b.states = append(b.states, builderState{id: id, opts: opts})

	return b
}

// AddTransition declares a conditioned edge between two states.
func (b *Builder) AddTransition(from, to StateID, condition Condition, opts ...TransitionOption) *Builder {
	b.transitions = append(b.transitions, builderTransition{
		from:      from,
		to:        to,
		condition: condition,
		opts:      opts,
	})

	return b
}

// AddGlobalTransition declares an edge evaluated from any state.
func (b *Builder) AddGlobalTransition(to StateID, condition Condition, opts ...TransitionOption) *Builder {
	b.transitions = append(b.transitions, builderTransition{
		from:      StateNone,
		to:        to,
		condition: condition,
		opts:      opts,
	})

	return b
}

// WithInitial designates the initial state, overriding the default
// (the first declared state).
func (b *Builder) WithInitial(id StateID) *Builder {
	b.initial = id
	b.initialSet = true

	return b
}

// Build creates the machine and applies every declaration. States are added
// in declaration order, so the first declared state activates during Build.
// On any configuration error Build returns nil and the joined errors.
func (b *Builder) Build() (*Machine, error) {
	machine := New(b.opts...)

	var errs []error

	for _, state := range b.states {
		if _, err := machine.AddState(state.id, state.opts...); err != nil {
			errs = append(errs, fmt.Errorf("add state %d: %w", state.id, err))
		}
	}

	for _, transition := range b.transitions {
		var err error
		if transition.from == StateNone {
			_, err = machine.AddGlobalTransition(transition.to, transition.condition, transition.opts...)
		} else {
			_, err = machine.AddTransition(transition.from, transition.to, transition.condition, transition.opts...)
		}

		if err != nil {
			errs = append(errs, err)
		}
	}

	if b.initialSet {
		if err := machine.SetInitial(b.initial); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return machine, nil
}
