package fsm

import "fmt"

// StateID identifies a state within one machine. Hosts typically declare
// their ids as an iota block. Negative ids are reserved.
type StateID int

// StateNone is the sentinel for "no state" (no previous state recorded,
// global transition source, empty machine).
const StateNone StateID = -1

// TickKind selects which host frame phase a state advances on.
type TickKind int

const (
	// TickFrame is the variable-step render phase.
	TickFrame TickKind = iota
	// TickFixed is the fixed-step physics phase.
	TickFixed
)

func (k TickKind) String() string {
	switch k {
	case TickFrame:
		return "frame"
	case TickFixed:
		return "fixed"
	default:
		return fmt.Sprintf("tick(%d)", int(k))
	}
}

// LockMode controls which transitions out of a state are suppressed.
type LockMode int

const (
	// LockNone leaves the state fully unlocked.
	LockNone LockMode = iota
	// LockTransitionOnly suppresses conditioned transitions but still lets
	// the timeout fire.
	LockTransitionOnly
	// LockFull suppresses conditioned transitions and the timeout.
	LockFull
)

func (m LockMode) String() string {
	switch m {
	case LockNone:
		return "none"
	case LockTransitionOnly:
		return "transition_only"
	case LockFull:
		return "full"
	default:
		return fmt.Sprintf("lock(%d)", int(m))
	}
}

// State is a named unit of behavior owned by the Machine that created it.
// GetState shares states by reference, so hosts mutate configuration
// (lock, tags, side data) directly on the returned value. States are not
// safe for concurrent use; all mutation belongs on the machine's thread.
type State struct {
	id      StateID
	label   string
	restart StateID

	minDwell float64
	timeout  float64
	lock     LockMode
	tick     TickKind

	onEnter  func()
	onUpdate func(delta float64)
	onExit   func()

	tags map[string]struct{}
	data map[string]any
}

// StateOption configures a State at creation time.
type StateOption func(*State)

// WithLabel sets a human-readable label used in logs, metrics, and diagrams.
// Defaults to "state_<id>".
func WithLabel(label string) StateOption {
	return func(s *State) {
		s.label = label
	}
}

// WithOnEnter sets the hook invoked when the state becomes active.
func WithOnEnter(fn func()) StateOption {
	return func(s *State) {
		s.onEnter = fn
	}
}

// WithOnUpdate sets the hook invoked on every tick the state processes.
func WithOnUpdate(fn func(delta float64)) StateOption {
	return func(s *State) {
		s.onUpdate = fn
	}
}

// WithOnExit sets the hook invoked when the state stops being active.
func WithOnExit(fn func()) StateOption {
	return func(s *State) {
		s.onExit = fn
	}
}

// WithMinDwell sets the minimum time, in seconds, the state must stay active
// before any conditioned transition out of it may fire.
func WithMinDwell(seconds float64) StateOption {
	return func(s *State) {
		s.minDwell = seconds
	}
}

// WithTimeout sets the timeout, in seconds, after which the machine forces a
// transition to the state's restart target. Values <= 0 disable the timeout.
func WithTimeout(seconds float64) StateOption {
	return func(s *State) {
		s.timeout = seconds
	}
}

// WithRestart sets the state the timeout jumps to, overriding the default
// (the machine's initial state at the time the state was added).
func WithRestart(id StateID) StateOption {
	return func(s *State) {
		s.restart = id
	}
}

// WithLock sets the state's initial lock mode.
func WithLock(mode LockMode) StateOption {
	return func(s *State) {
		s.lock = mode
	}
}

// WithTick sets which frame phase the state advances on. Defaults to TickFrame.
func WithTick(kind TickKind) StateOption {
	return func(s *State) {
		s.tick = kind
	}
}

// WithTags adds tags to the state.
func WithTags(tags ...string) StateOption {
	return func(s *State) {
		for _, tag := range tags {
			s.tags[tag] = struct{}{}
		}
	}
}

// ID returns the state's immutable id.
func (s *State) ID() StateID {
	return s.id
}

// Label returns the state's display label.
func (s *State) Label() string {
	return s.label
}

// Restart returns the timeout target.
func (s *State) Restart() StateID {
	return s.restart
}

// SetRestart changes the timeout target.
func (s *State) SetRestart(id StateID) {
	s.restart = id
}

// MinDwell returns the state's minimum dwell time in seconds.
func (s *State) MinDwell() float64 {
	return s.minDwell
}

// SetMinDwell changes the minimum dwell time.
func (s *State) SetMinDwell(seconds float64) {
	s.minDwell = seconds
}

// Timeout returns the state's timeout in seconds; <= 0 means disabled.
func (s *State) Timeout() float64 {
	return s.timeout
}

// SetTimeout changes the timeout.
func (s *State) SetTimeout(seconds float64) {
	s.timeout = seconds
}

// Lock returns the state's current lock mode.
func (s *State) Lock() LockMode {
	return s.lock
}

// SetLock changes the lock mode. Locking the active state takes effect on
// the next tick.
func (s *State) SetLock(mode LockMode) {
	s.lock = mode
}

// Unlock resets the lock mode to LockNone.
func (s *State) Unlock() {
	s.lock = LockNone
}

// Tick returns the frame phase the state advances on.
func (s *State) Tick() TickKind {
	return s.tick
}

// Tag adds a tag to the state.
func (s *State) Tag(tag string) {
	s.tags[tag] = struct{}{}
}

// Untag removes a tag from the state.
func (s *State) Untag(tag string) {
	delete(s.tags, tag)
}

// HasTag reports whether the state carries the tag.
func (s *State) HasTag(tag string) bool {
	_, ok := s.tags[tag]

	return ok
}

// Tags returns the state's tags. Order is unspecified.
func (s *State) Tags() []string {
	tags := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		tags = append(tags, tag)
	}

	return tags
}
