package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	t.Parallel()

	m := New(WithName("snap"))

	_, err := m.AddState(stateIdle, WithLabel("Idle"), WithTags("grounded", "calm"))
	require.NoError(t, err)
	_, err = m.AddState(stateRun, WithLabel("Run"), WithMinDwell(0.2))
	require.NoError(t, err)
	_, err = m.AddState(stateJump, WithLabel("Jump"), WithTimeout(0.5), WithRestart(stateIdle))
	require.NoError(t, err)

	_, err = m.AddTransition(stateIdle, stateRun, nil, WithPriority(1))
	require.NoError(t, err)

	// The global must not fire during the tick below, or the snapshot
	// would capture the post-transition position.
	_, err = m.AddGlobalTransition(stateJump, func() bool { return false }, Instant())
	require.NoError(t, err)

	require.NoError(t, m.ForceChangeState(stateRun))
	m.Update(TickFrame, 0.1)

	snap := m.Snapshot()

	assert.Equal(t, "snap", snap.Name)
	assert.Equal(t, stateRun, snap.Active)
	assert.Equal(t, stateIdle, snap.Previous)
	assert.Equal(t, stateIdle, snap.Initial)
	assert.True(t, snap.InitialSet)
	assert.False(t, snap.Paused)
	assert.InDelta(t, 0.1, snap.DwellTime, 1e-9)

	require.Len(t, snap.States, 3)
	assert.Equal(t, []string{"calm", "grounded"}, snap.States[0].Tags)
	assert.InDelta(t, 0.2, snap.States[1].MinDwell, 1e-9)
	assert.Equal(t, stateIdle, snap.States[2].Restart)

	require.Len(t, snap.Transitions, 2)
	assert.Equal(t, stateIdle, snap.Transitions[0].From)
	assert.Equal(t, "Idle", snap.Transitions[0].FromLabel)
	assert.False(t, snap.Transitions[0].Global)
	assert.True(t, snap.Transitions[1].Global)
	assert.True(t, snap.Transitions[1].Instant)
	assert.Equal(t, StateNone, snap.Transitions[1].From)
}

func TestSnapshot_SharesNothing(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)

	s, _ := m.GetState(stateIdle)
	s.Tag("before")

	snap := m.Snapshot()
	s.Tag("after")

	assert.Equal(t, []string{"before"}, snap.States[0].Tags)
}
