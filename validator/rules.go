package validator

import (
	"fmt"

	"github.com/playloop/fsm"
)

// emptyMachineRule flags a machine with no states at all.
type emptyMachineRule struct{}

func (r *emptyMachineRule) Name() string {
	return "EmptyMachine"
}

func (r *emptyMachineRule) Severity() Severity {
	return SeverityWarning
}

func (r *emptyMachineRule) Check(snap fsm.Snapshot) []Issue {
	if len(snap.States) > 0 {
		return nil
	}

	return []Issue{{
		Code:    "EMPTY_MACHINE",
		Message: "machine has no states; ticking it is a no-op",
		State:   fsm.StateNone,
	}}
}

// noInitialStateRule flags a non-empty machine without a designated initial
// state (its initial was removed and never replaced).
type noInitialStateRule struct{}

func (r *noInitialStateRule) Name() string {
	return "NoInitialState"
}

func (r *noInitialStateRule) Severity() Severity {
	return SeverityError
}

func (r *noInitialStateRule) Check(snap fsm.Snapshot) []Issue {
	if len(snap.States) == 0 || snap.InitialSet {
		return nil
	}

	return []Issue{{
		Code:    "NO_INITIAL_STATE",
		Message: "no initial state designated; Reset will fail until SetInitial is called",
		State:   fsm.StateNone,
	}}
}

// unreachableStateRule finds states that no transition, timeout restart, or
// initial designation can reach.
type unreachableStateRule struct{}

func (r *unreachableStateRule) Name() string {
	return "UnreachableState"
}

func (r *unreachableStateRule) Severity() Severity {
	return SeverityWarning
}

func (r *unreachableStateRule) Check(snap fsm.Snapshot) []Issue {
	if len(snap.States) == 0 || !snap.InitialSet {
		return nil
	}

	// Global transitions and timeout restarts reach their targets from
	// anywhere, so their targets are reachable as soon as anything is.
	reachable := map[fsm.StateID]bool{snap.Initial: true}

	edges := make(map[fsm.StateID][]fsm.StateID)

	for _, transition := range snap.Transitions {
		if transition.Global {
			reachable[transition.To] = true

			continue
		}

		edges[transition.From] = append(edges[transition.From], transition.To)
	}

	for _, state := range snap.States {
		if state.Timeout > 0 {
			edges[state.ID] = append(edges[state.ID], state.Restart)
		}
	}

	queue := []fsm.StateID{snap.Initial}
	for _, transition := range snap.Transitions {
		if transition.Global {
			queue = append(queue, transition.To)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range edges[current] {
			if !reachable[next] {
				reachable[next] = true
				queue = append(queue, next)
			}
		}
	}

	var issues []Issue

	for _, state := range snap.States {
		if !reachable[state.ID] {
			issues = append(issues, Issue{
				Code:    "UNREACHABLE_STATE",
				Message: fmt.Sprintf("state %q cannot be reached from the initial state", state.Label),
				State:   state.ID,
			})
		}
	}

	return issues
}

// danglingRestartRule finds timeout restart targets that no longer exist.
// These make the timeout a reported no-op every time it elapses.
type danglingRestartRule struct{}

func (r *danglingRestartRule) Name() string {
	return "DanglingRestart"
}

func (r *danglingRestartRule) Severity() Severity {
	return SeverityError
}

func (r *danglingRestartRule) Check(snap fsm.Snapshot) []Issue {
	known := make(map[fsm.StateID]bool, len(snap.States))
	for _, state := range snap.States {
		known[state.ID] = true
	}

	var issues []Issue

	for _, state := range snap.States {
		if state.Timeout > 0 && !known[state.Restart] {
			issues = append(issues, Issue{
				Code: "DANGLING_RESTART",
				Message: fmt.Sprintf("state %q restarts to missing state %d on timeout",
					state.Label, state.Restart),
				State: state.ID,
			})
		}
	}

	return issues
}

// timeoutBelowDwellRule flags states whose timeout elapses before their own
// minimum dwell time, which makes every conditioned transition out of them
// unreachable.
type timeoutBelowDwellRule struct{}

func (r *timeoutBelowDwellRule) Name() string {
	return "TimeoutBelowDwell"
}

func (r *timeoutBelowDwellRule) Severity() Severity {
	return SeverityWarning
}

func (r *timeoutBelowDwellRule) Check(snap fsm.Snapshot) []Issue {
	var issues []Issue

	for _, state := range snap.States {
		if state.Timeout > 0 && state.Timeout <= state.MinDwell {
			issues = append(issues, Issue{
				Code: "TIMEOUT_BELOW_DWELL",
				Message: fmt.Sprintf("state %q times out at %.3fs, before its %.3fs dwell floor",
					state.Label, state.Timeout, state.MinDwell),
				State: state.ID,
			})
		}
	}

	return issues
}

// deadEndStateRule flags states with no way out: no local transitions, no
// timeout, and no global transition leading elsewhere.
type deadEndStateRule struct{}

func (r *deadEndStateRule) Name() string {
	return "DeadEndState"
}

func (r *deadEndStateRule) Severity() Severity {
	return SeverityWarning
}

func (r *deadEndStateRule) Check(snap fsm.Snapshot) []Issue {
	hasGlobalOut := make(map[fsm.StateID]bool)
	hasLocalOut := make(map[fsm.StateID]bool)

	for _, transition := range snap.Transitions {
		if transition.Global {
			// A global transition offers every state except its own
			// target a way out.
			hasGlobalOut[transition.To] = true

			continue
		}

		hasLocalOut[transition.From] = true
	}

	var issues []Issue

	for _, state := range snap.States {
		if hasLocalOut[state.ID] || state.Timeout > 0 {
			continue
		}

		if len(hasGlobalOut) > 0 && !onlyTarget(hasGlobalOut, state.ID) {
			continue
		}

		issues = append(issues, Issue{
			Code:    "DEAD_END_STATE",
			Message: fmt.Sprintf("state %q has no transition, timeout, or global exit", state.Label),
			State:   state.ID,
		})
	}

	return issues
}

// onlyTarget reports whether id is the sole global-transition target, in
// which case globals cannot move the machine out of it.
func onlyTarget(targets map[fsm.StateID]bool, id fsm.StateID) bool {
	return len(targets) == 1 && targets[id]
}
