// Package visualizer generates Mermaid state diagrams from a machine
// snapshot, for debugging and documentation.
package visualizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/playloop/fsm"
)

// ErrNoStates is returned when the snapshot holds no states to draw.
var ErrNoStates = errors.New("snapshot has no states")

// GenerateMermaid converts a machine's current graph to a Mermaid state
// diagram with default options.
func GenerateMermaid(machine *fsm.Machine) (string, error) {
	return GenerateMermaidSnapshot(machine.Snapshot(), DefaultOptions())
}

// GenerateMermaidSnapshot generates a Mermaid diagram from a captured
// snapshot with custom options.
func GenerateMermaidSnapshot(snap fsm.Snapshot, opts Options) (string, error) {
	if len(snap.States) == 0 {
		return "", ErrNoStates
	}

	var sb strings.Builder

	sb.WriteString("```mermaid\n")
	fmt.Fprintf(&sb, "stateDiagram-%s\n", direction(opts))

	if snap.InitialSet {
		fmt.Fprintf(&sb, "    [*] --> %s\n", nodeName(snap, snap.Initial))
	}

	for _, state := range snap.States {
		writeState(&sb, snap, state, opts)
	}

	for _, transition := range snap.Transitions {
		writeTransition(&sb, snap, transition, opts)
	}

	if opts.HighlightActive && snap.Active != fsm.StateNone {
		fmt.Fprintf(&sb, "\n    class %s activeState\n", nodeName(snap, snap.Active))
		sb.WriteString("    classDef activeState fill:#fff3c4,stroke:#b28704,stroke-width:2px\n")
	}

	sb.WriteString("```\n")

	return sb.String(), nil
}

func direction(opts Options) string {
	if opts.Direction == "" {
		return "TD"
	}

	return opts.Direction
}

func writeState(sb *strings.Builder, snap fsm.Snapshot, state fsm.StateInfo, opts Options) {
	notes := stateNotes(state)
	if len(notes) > 0 {
		fmt.Fprintf(sb, "    %s: %s\\n[%s]\n", state.Label, state.Label, strings.Join(notes, ", "))
	}

	if opts.ShowTimeouts && state.Timeout > 0 {
		fmt.Fprintf(sb, "    %s --> %s: timeout %.2fs\n",
			state.Label, nodeName(snap, state.Restart), state.Timeout)
	}
}

func stateNotes(state fsm.StateInfo) []string {
	var notes []string

	if state.MinDwell > 0 {
		notes = append(notes, fmt.Sprintf("dwell %.2fs", state.MinDwell))
	}

	if state.Lock != fsm.LockNone {
		notes = append(notes, "lock "+state.Lock.String())
	}

	if len(state.Tags) > 0 {
		notes = append(notes, strings.Join(state.Tags, " "))
	}

	return notes
}

func writeTransition(sb *strings.Builder, snap fsm.Snapshot, transition fsm.TransitionInfo, opts Options) {
	label := transitionLabel(transition, opts)

	if transition.Global {
		if !opts.ShowGlobals {
			return
		}

		// Mermaid has no wildcard source; draw globals from every state
		// except their own target.
		for _, state := range snap.States {
			if state.ID == transition.To {
				continue
			}

			fmt.Fprintf(sb, "    %s --> %s%s\n", state.Label, transition.ToLabel, label)
		}

		return
	}

	fmt.Fprintf(sb, "    %s --> %s%s\n", transition.FromLabel, transition.ToLabel, label)
}

func transitionLabel(transition fsm.TransitionInfo, opts Options) string {
	var parts []string

	if opts.ShowPriorities {
		parts = append(parts, fmt.Sprintf("p%d", transition.Priority))
	}

	if transition.Global {
		parts = append(parts, "global")
	}

	if transition.Instant {
		parts = append(parts, "instant")
	}

	if len(parts) == 0 {
		return ""
	}

	return ": " + strings.Join(parts, " ")
}

func nodeName(snap fsm.Snapshot, id fsm.StateID) string {
	for _, state := range snap.States {
		if state.ID == id {
			return state.Label
		}
	}

	return fmt.Sprintf("state_%d", id)
}
