package fsm

// ForceChangeState changes the active state manually. Any lock mode on the
// active state blocks forcing; unknown targets are a reported no-op.
func (m *Machine) ForceChangeState(id StateID) error {
	if m.active != nil && m.active.lock != LockNone {
		err := WrapStateError(m.active.id, ErrStateLocked)
		m.logError("force_change_state", err)

		return err
	}

	if err := m.changeState(id, triggerForce, false); err != nil {
		m.logError("force_change_state", err)

		return err
	}

	return nil
}

// GoBack jumps to the previously recorded state. It fails, with a reported
// error, when there is no previous state or the active state is locked.
func (m *Machine) GoBack() error {
	if err := m.goBack(); err != nil {
		m.logError("go_back", err)

		return err
	}

	return nil
}

// GoBackIfPossible is GoBack without the error reporting: it returns false
// quietly when going back is not possible right now.
func (m *Machine) GoBackIfPossible() bool {
	return m.goBack() == nil
}

func (m *Machine) goBack() error {
	if m.previous == StateNone {
		return ErrNoPreviousState
	}

	if m.active != nil && m.active.lock != LockNone {
		return WrapStateError(m.active.id, ErrStateLocked)
	}

	return m.changeState(m.previous, triggerGoBack, false)
}

// Reset returns the machine to its initial state and clears the previous-id
// record. When no initial was ever designated, the first registered state
// becomes the initial; when the initial state was removed, Reset fails
// until SetInitial designates a new one.
func (m *Machine) Reset() error {
	target := m.initial

	if !m.initialSet {
		if m.initialRemoved || len(m.order) == 0 {
			m.logError("reset", ErrNoInitialState)

			return ErrNoInitialState
		}

		target = m.order[0]
		m.initial = target
		m.initialSet = true
	}

	if err := m.changeState(target, triggerReset, false); err != nil {
		m.logError("reset", err)

		return err
	}

	m.previous = StateNone

	return nil
}

// RestartCurrentState re-runs the active state's exit and enter hooks and
// resets its dwell time, without changing identity. Either hook may be
// skipped.
func (m *Machine) RestartCurrentState(ignoreExit, ignoreEnter bool) error {
	if m.active == nil {
		m.logError("restart_current_state", ErrNoActiveState)

		return ErrNoActiveState
	}

	state := m.active

	if !ignoreExit && state.onExit != nil {
		state.onExit()
	}

	m.dwell = 0

	if !ignoreEnter {
		if state.onEnter != nil {
			state.onEnter()
		}

		m.playAnimation(state)
	}

	return nil
}

// Pause freezes tick processing entirely: hooks, dwell accumulation, and
// transition evaluation all stop until Resume.
func (m *Machine) Pause() {
	m.paused = true
}

// Resume unfreezes tick processing. When resetDwell is true the dwell clock
// is zeroed, so the resumed state behaves as freshly entered with respect
// to minimum-dwell and timeout checks.
func (m *Machine) Resume(resetDwell bool) {
	m.paused = false

	if resetDwell {
		m.dwell = 0
	}
}

// Paused reports whether tick processing is frozen.
func (m *Machine) Paused() bool {
	return m.paused
}
