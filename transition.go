package fsm

// Condition is a side-effect-free predicate re-evaluated every tick while
// its source state is active and unlocked. A nil Condition always passes.
type Condition func() bool

// Transition is a directed, conditioned edge between two state ids, or a
// global edge evaluated from any state. Transitions are owned by the
// machine's registry and pruned automatically when an endpoint is removed.
type Transition struct {
	from StateID // StateNone for global transitions
	to   StateID

	condition Condition
	priority  int

	minDwellOverride float64
	instant          bool
	onTrigger        func()
}

// TransitionOption configures a Transition at creation time.
type TransitionOption func(*Transition)

// WithPriority sets the transition's priority. Higher priorities are
// evaluated first; ties fire in insertion order. Defaults to 0.
func WithPriority(priority int) TransitionOption {
	return func(t *Transition) {
		t.priority = priority
	}
}

// WithMinDwellOverride replaces the source state's minimum dwell time for
// this transition only. Values <= 0 leave the state's own floor in effect.
func WithMinDwellOverride(seconds float64) TransitionOption {
	return func(t *Transition) {
		t.minDwellOverride = seconds
	}
}

// Instant makes the transition bypass the dwell-time check entirely.
func Instant() TransitionOption {
	return func(t *Transition) {
		t.instant = true
	}
}

// WithOnTrigger sets a callback invoked after the transition fires.
func WithOnTrigger(fn func()) TransitionOption {
	return func(t *Transition) {
		t.onTrigger = fn
	}
}

// From returns the source state id, or StateNone for a global transition.
func (t *Transition) From() StateID {
	return t.from
}

// To returns the target state id.
func (t *Transition) To() StateID {
	return t.to
}

// Priority returns the transition's priority.
func (t *Transition) Priority() int {
	return t.priority
}

// Global reports whether the transition applies from any state.
func (t *Transition) Global() bool {
	return t.from == StateNone
}

// IsInstant reports whether the transition bypasses the dwell-time check.
func (t *Transition) IsInstant() bool {
	return t.instant
}

// MinDwellOverride returns the per-transition dwell floor; <= 0 means the
// source state's own floor applies.
func (t *Transition) MinDwellOverride() float64 {
	return t.minDwellOverride
}

// satisfied reports whether the transition may fire given the active
// state's dwell time and minimum-dwell floor.
func (t *Transition) satisfied(dwell, stateMinDwell float64) bool {
	if t.instant {
		return t.pass()
	}

	minDwell := stateMinDwell
	if t.minDwellOverride > 0 {
		minDwell = t.minDwellOverride
	}

	if dwell < minDwell {
		return false
	}

	return t.pass()
}

func (t *Transition) pass() bool {
	if t.condition == nil {
		return true
	}

	return t.condition()
}
