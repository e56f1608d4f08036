package fsm

import (
	"errors"

	"github.com/playloop/fsm/animation"
)

// Update advances the machine by one tick of the given frame phase. The
// active state's elapsed time grows by delta (seconds), its update hook
// runs, and at most one transition fires: the timeout first, then
// conditioned transitions in priority order, all locals before all
// globals regardless of global priority values.
//
// Ticking a paused or empty machine is a no-op, as is a tick whose kind
// does not match the active state's designated phase.
func (m *Machine) Update(kind TickKind, delta float64) {
	if m.paused || m.active == nil {
		return
	}

	state := m.active
	if state.tick != kind {
		return
	}

	ticksTotal.WithLabelValues(m.name, kind.String()).Inc()

	m.dwell += delta

	if state.onUpdate != nil {
		state.onUpdate(delta)
	}

	// The update hook may have navigated away; that counts as this
	// tick's one transition.
	if m.active != state {
		return
	}

	if m.checkTimeout() {
		return
	}

	if m.active.lock != LockNone {
		return
	}

	m.evaluateConditioned()
}

// checkTimeout fires the active state's timeout once elapsed, bypassing
// priority evaluation entirely. A full lock suppresses the timeout and
// emits a blocked notification instead. Returns true when conditioned
// evaluation must not run this tick.
func (m *Machine) checkTimeout() bool {
	state := m.active
	if state.timeout <= 0 || m.dwell < state.timeout {
		return false
	}

	if state.lock == LockFull {
		timeoutsBlocked.WithLabelValues(m.name, state.label).Inc()

		if m.logger != nil {
			m.logger.TimeoutBlocked(state.label)
		}

		m.notifyTimeoutBlocked(state.id)

		return true
	}

	restart := state.restart

	if err := m.changeState(restart, triggerTimeout, false); err != nil {
		// Dangling restart target; stay put.
		m.logError("timeout", err)

		return true
	}

	m.notifyTimeoutFired(state.id, restart)
	m.notifyTransitionTriggered(state.id, restart, false)

	return true
}

// evaluateConditioned gathers the active state's local transitions followed
// by the globals into a pooled scratch buffer and fires the first satisfied
// candidate. Hooks and registry mutation during the pass cannot disturb the
// iteration because the buffer holds a copy.
func (m *Machine) evaluateConditioned() {
	state := m.active

	buf := m.candidates.Get()
	defer buf.Release()

	buf.Append(m.locals[state.id]...)
	buf.Append(m.global...)

	for _, transition := range buf.Items() {
		if !transition.satisfied(m.dwell, state.minDwell) {
			continue
		}

		trigger := triggerCondition
		if transition.Global() {
			trigger = triggerGlobal
		}

		if err := m.changeState(transition.to, trigger, false); err != nil {
			m.logError("transition", err)

			continue
		}

		m.notifyTransitionTriggered(state.id, transition.to, transition.Global())

		if transition.onTrigger != nil {
			transition.onTrigger()
		}

		return
	}
}

// changeState runs the invariant-preserving state-change sequence: exit
// hook (skipped while locked or on first activation), dwell reset and
// previous-id bookkeeping, enter hook, animation side effect, and the
// state-changed notification (suppressed only on the very first
// activation).
func (m *Machine) changeState(target StateID, trigger string, suppressNotify bool) error {
	next, ok := m.states[target]
	if !ok {
		return WrapStateError(target, ErrStateNotFound)
	}

	fromID := StateNone
	fromLabel := "none"

	_, span := startTransitionSpan(m.stateLabel(m.Active()), next.label, trigger, m.name)
	defer span.End()

	if m.active != nil {
		from := m.active
		fromID = from.id
		fromLabel = from.label

		if from.lock == LockNone && from.onExit != nil {
			from.onExit()
		}

		if m.logger != nil {
			m.logger.StateExited(from.label, m.dwell)
		}

		stateDwell.WithLabelValues(m.name, from.label).Observe(m.dwell)

		m.previous = fromID
	}

	m.dwell = 0
	m.active = next

	if next.onEnter != nil {
		next.onEnter()
	}

	m.playAnimation(next)

	if m.logger != nil {
		m.logger.StateEntered(next.label)
		m.logger.TransitionTriggered(fromLabel, next.label, trigger)
	}

	transitionsTotal.WithLabelValues(m.name, fromLabel, next.label, trigger).Inc()

	if !suppressNotify {
		m.notifyStateChanged(fromID, target)
	}

	return nil
}

// enterState performs the first activation of a freshly added state.
func (m *Machine) enterState(state *State, trigger string, suppressNotify bool) {
	// active is nil here, so changeState cannot fail or run an exit hook.
	_ = m.changeState(state.id, trigger, suppressNotify)
}

// playAnimation hands the state's animation descriptor, if any, to the
// configured playback collaborator.
func (m *Machine) playAnimation(state *State) {
	if m.player == nil {
		return
	}

	desc, err := GetData(state, AnimationKey)
	if err != nil {
		if !errors.Is(err, ErrDataNotFound) {
			m.logError("play_animation", err)
		}

		return
	}

	if err := m.player.Play(animation.Request{Descriptor: desc}); err != nil {
		m.logError("play_animation", err)
	}
}
