package fsm

// Hooks is a set of nil-able observer callbacks the machine fires
// synchronously during Update and navigation. Callbacks are fire-and-forget;
// the machine never consumes a return value. Multiple hook sets may be
// attached to one machine.
type Hooks struct {
	// OnStateChanged fires after a state change completes, carrying the
	// previous and new state ids. Suppressed for the very first activation.
	OnStateChanged func(from, to StateID)

	// OnTransitionTriggered fires when a conditioned or timeout transition
	// fires. Global reports whether a global transition caused it.
	OnTransitionTriggered func(from, to StateID, global bool)

	// OnTimeoutFired fires when a state's timeout forces a transition to
	// its restart target.
	OnTimeoutFired func(state, restart StateID)

	// OnTimeoutBlocked fires when an elapsed timeout is suppressed by a
	// full lock.
	OnTimeoutBlocked func(state StateID)
}

// AddHooks attaches a set of observer callbacks to the machine.
func (m *Machine) AddHooks(hooks Hooks) {
	m.hooks = append(m.hooks, hooks)
}

func (m *Machine) notifyStateChanged(from, to StateID) {
	for _, h := range m.hooks {
		if h.OnStateChanged != nil {
			h.OnStateChanged(from, to)
		}
	}
}

func (m *Machine) notifyTransitionTriggered(from, to StateID, global bool) {
	for _, h := range m.hooks {
		if h.OnTransitionTriggered != nil {
			h.OnTransitionTriggered(from, to, global)
		}
	}
}

func (m *Machine) notifyTimeoutFired(state, restart StateID) {
	for _, h := range m.hooks {
		if h.OnTimeoutFired != nil {
			h.OnTimeoutFired(state, restart)
		}
	}
}

func (m *Machine) notifyTimeoutBlocked(state StateID) {
	for _, h := range m.hooks {
		if h.OnTimeoutBlocked != nil {
			h.OnTimeoutBlocked(state)
		}
	}
}
