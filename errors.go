package fsm

import (
	"errors"
	"fmt"
)

// Predefined error types.
var (
	// ErrStateExists indicates that a state with the same id is already registered.
	ErrStateExists = errors.New("state already exists")
	// ErrStateNotFound indicates that no state with the given id is registered.
	ErrStateNotFound = errors.New("state not found")
	// ErrInvalidStateID indicates that a state id is outside the valid range;
	// negative ids are reserved.
	ErrInvalidStateID = errors.New("invalid state id")
	// ErrTransitionNotFound indicates that no matching transition is registered.
	ErrTransitionNotFound = errors.New("transition not found")
	// ErrNoPreviousState indicates that the machine has no recorded previous state.
	ErrNoPreviousState = errors.New("no previous state")
	// ErrStateLocked indicates that the active state's lock mode blocks the operation.
	ErrStateLocked = errors.New("state is locked")
	// ErrNoInitialState indicates that no initial state is designated.
	ErrNoInitialState = errors.New("no initial state")
	// ErrNoActiveState indicates that the machine has no active state.
	ErrNoActiveState = errors.New("no active state")
	// ErrWrongDataType indicates that a side-data entry holds a different type
	// than the key it was retrieved with.
	ErrWrongDataType = errors.New("wrong side-data type")
	// ErrDataNotFound indicates that no side-data entry exists for the key.
	ErrDataNotFound = errors.New("side-data entry not found")
)

// StateError wraps an error with state context.
type StateError struct {
	State StateID
	Err   error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state %d: %v", e.State, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// TransitionError wraps an error with transition context.
type TransitionError struct {
	From StateID
	To   StateID
	Err  error
}

func (e *TransitionError) Error() string {
	if e.From == StateNone {
		return fmt.Sprintf("global transition to %d: %v", e.To, e.Err)
	}

	return fmt.Sprintf("transition %d -> %d: %v", e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// WrapStateError wraps an error with state context.
func WrapStateError(state StateID, err error) error {
	if err == nil {
		return nil
	}

	return &StateError{
		State: state,
		Err:   err,
	}
}

// WrapTransitionError wraps an error with transition context.
func WrapTransitionError(from, to StateID, err error) error {
	if err == nil {
		return nil
	}

	return &TransitionError{
		From: from,
		To:   to,
		Err:  err,
	}
}
