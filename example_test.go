package fsm_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playloop/fsm"
	"github.com/playloop/fsm/animation"
	"github.com/playloop/fsm/fsmtest"
	"github.com/playloop/fsm/pulse"
)

const (
	charIdle fsm.StateID = iota
	charRun
	charJump
)

// TestCharacterController drives a small character machine through a
// realistic frame loop: run on input, jump on a button pulse, land back
// into idle via timeout.
func TestCharacterController(t *testing.T) {
	t.Parallel()

	moving := false
	jumpButton := pulse.New()

	recorder := &fsmtest.Recorder{}
	player := &animation.Recorder{}

	m, err := fsm.NewBuilder("character",
		fsm.WithAnimationPlayer(player),
		fsm.WithHooks(recorder.Hooks()),
	).
		AddState(charIdle, fsm.WithLabel("Idle")).
		AddState(charRun, fsm.WithLabel("Run")).
		AddState(charJump,
			fsm.WithLabel("Jump"),
			fsm.WithTimeout(0.4),
			fsm.WithRestart(charIdle),
			fsm.WithLock(fsm.LockTransitionOnly),
		).
		AddTransition(charIdle, charRun, func() bool { return moving }).
		AddTransition(charRun, charIdle, func() bool { return !moving }).
		AddGlobalTransition(charJump, jumpButton.Condition(), fsm.WithPriority(10), fsm.Instant()).
		Build()
	require.NoError(t, err)

	idle, _ := m.GetState(charIdle)
	fsm.SetData(idle, fsm.AnimationKey, animation.Descriptor{Name: "idle_loop", Loop: true})

	run, _ := m.GetState(charRun)
	fsm.SetData(run, fsm.AnimationKey, animation.Descriptor{Name: "run_cycle", Loop: true, BlendTime: 0.1})

	jump, _ := m.GetState(charJump)
	fsm.SetData(jump, fsm.AnimationKey, animation.Descriptor{Name: "jump_arc"})

	// Standing still.
	fsmtest.Tick(m, fsm.TickFrame, 3, 0.016)
	assert.Equal(t, charIdle, m.Active())

	// Stick pushed: idle -> run.
	moving = true
	fsmtest.Tick(m, fsm.TickFrame, 1, 0.016)
	assert.Equal(t, charRun, m.Active())

	// Jump button pressed mid-run; the pulse fires once.
	jumpButton.Fire()
	fsmtest.Tick(m, fsm.TickFrame, 1, 0.016)
	assert.Equal(t, charJump, m.Active())
	assert.False(t, jumpButton.Pending())

	// Airborne: the transition-only lock holds against the run condition.
	fsmtest.Tick(m, fsm.TickFrame, 10, 0.016)
	assert.Equal(t, charJump, m.Active())

	// Release the stick while airborne; the timeout lands the character
	// back into idle.
	moving = false
	fsmtest.Tick(m, fsm.TickFrame, 20, 0.016)
	assert.Equal(t, charIdle, m.Active())

	// Push the stick again.
	moving = true
	fsmtest.Tick(m, fsm.TickFrame, 1, 0.016)
	assert.Equal(t, charRun, m.Active())

	// Build activated Idle before its descriptor was attached, so playback
	// starts with the run cycle.
	assert.Equal(t, []string{"run_cycle", "jump_arc", "idle_loop", "run_cycle"}, player.Names())

	changes := recorder.Changes()
	require.Len(t, changes, 4)
	assert.Equal(t, charRun, changes[0].To)
	assert.Equal(t, charJump, changes[1].To)
	assert.Equal(t, charIdle, changes[2].To)
	assert.Equal(t, charRun, changes[3].To)
}

func TestPatrolFixture(t *testing.T) {
	t.Parallel()

	inputs := &fsmtest.PatrolInputs{}
	m, recorder := fsmtest.NewPatrolMachine(t, inputs)

	inputs.Bored = true
	fsmtest.Tick(m, fsm.TickFrame, 1, 0.1)
	assert.Equal(t, fsmtest.StatePatrol, m.Active())

	inputs.SeesTarget = true
	fsmtest.Tick(m, fsm.TickFrame, 1, 0.1)
	assert.Equal(t, fsmtest.StateChase, m.Active())

	inputs.SeesTarget = false
	fsmtest.Tick(m, fsm.TickFrame, 11, 0.1)
	assert.Equal(t, fsmtest.StateIdle, m.Active())

	kinds := recorder.Kinds()
	assert.Contains(t, kinds, fsmtest.EventTimeoutFired)
	require.Len(t, recorder.Changes(), 3)
}

func Example() {
	grounded := true

	m, err := fsm.NewBuilder("demo").
		AddState(0, fsm.WithLabel("Idle")).
		AddState(1, fsm.WithLabel("Fall")).
		AddGlobalTransition(1, func() bool { return !grounded }).
		AddTransition(1, 0, func() bool { return grounded }).
		Build()
	if err != nil {
		panic(err)
	}

	grounded = false
	m.Update(fsm.TickFrame, 0.016)
	fmt.Println(m.Snapshot().States[m.Active()].Label)

	grounded = true
	m.Update(fsm.TickFrame, 0.016)
	fmt.Println(m.Snapshot().States[m.Active()].Label)

	// Output:
	// Fall
	// Idle
}
