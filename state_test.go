package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateConfiguration(t *testing.T) {
	t.Parallel()

	m := New()

	s, err := m.AddState(stateJump,
		WithLabel("Jump"),
		WithMinDwell(0.1),
		WithTimeout(0.5),
		WithLock(LockFull),
		WithTick(TickFixed),
		WithTags("airborne"),
	)
	require.NoError(t, err)

	assert.Equal(t, stateJump, s.ID())
	assert.Equal(t, "Jump", s.Label())
	assert.InDelta(t, 0.1, s.MinDwell(), 1e-9)
	assert.InDelta(t, 0.5, s.Timeout(), 1e-9)
	assert.Equal(t, LockFull, s.Lock())
	assert.Equal(t, TickFixed, s.Tick())
	assert.True(t, s.HasTag("airborne"))
}

func TestStateMutation(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s, _ := m.GetState(stateRun)

	s.SetMinDwell(0.3)
	assert.InDelta(t, 0.3, s.MinDwell(), 1e-9)

	s.SetTimeout(2)
	assert.InDelta(t, 2.0, s.Timeout(), 1e-9)

	s.SetRestart(stateIdle)
	assert.Equal(t, stateIdle, s.Restart())

	s.SetLock(LockTransitionOnly)
	assert.Equal(t, LockTransitionOnly, s.Lock())

	s.Unlock()
	assert.Equal(t, LockNone, s.Lock())
}

func TestStateTags(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s, _ := m.GetState(stateJump)

	s.Tag("airborne")
	s.Tag("combat")
	s.Tag("combat")

	assert.True(t, s.HasTag("airborne"))
	assert.Len(t, s.Tags(), 2)

	s.Untag("combat")
	assert.False(t, s.HasTag("combat"))
	assert.Equal(t, []string{"airborne"}, s.Tags())
}

func TestTickKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "frame", TickFrame.String())
	assert.Equal(t, "fixed", TickFixed.String())
}

func TestLockModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", LockNone.String())
	assert.Equal(t, "transition_only", LockTransitionOnly.String())
	assert.Equal(t, "full", LockFull.String())
}

func TestTransitionAccessors(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)

	local, err := m.AddTransition(stateIdle, stateRun, nil,
		WithPriority(3),
		WithMinDwellOverride(0.25),
	)
	require.NoError(t, err)

	assert.Equal(t, stateIdle, local.From())
	assert.Equal(t, stateRun, local.To())
	assert.Equal(t, 3, local.Priority())
	assert.False(t, local.Global())
	assert.False(t, local.IsInstant())
	assert.InDelta(t, 0.25, local.MinDwellOverride(), 1e-9)

	global, err := m.AddGlobalTransition(stateJump, nil, Instant())
	require.NoError(t, err)

	assert.Equal(t, StateNone, global.From())
	assert.True(t, global.Global())
	assert.True(t, global.IsInstant())
}
