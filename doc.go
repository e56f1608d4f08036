// Package fsm is a finite-state-machine engine for real-time, frame-driven
// entities such as game characters and AI agents. A Machine owns a registry
// of states and transitions (per-state and global), and the host drives it
// by calling Update once per relevant frame phase. Each tick advances the
// active state's dwell time, runs its update hook, and fires at most one
// transition: the state's timeout first, then conditioned transitions in
// priority order with insertion order breaking ties, all local transitions
// before all global ones.
//
// States carry minimum dwell times, timeouts with restart targets, lock
// modes that suppress transitions, free-form tags, and a typed side-data
// bag. A state whose side data carries an animation descriptor triggers the
// configured playback collaborator on entry.
//
// The machine is single-threaded and cooperative: all mutation belongs on
// the thread that calls Update, synchronously between ticks. Hooks invoked
// during a tick may freely mutate the machine; re-entrant Update calls are
// unsupported.
package fsm
