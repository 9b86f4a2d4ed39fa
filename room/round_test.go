package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRound(t *testing.T) {
	rg := NewRegistry()
	room, err := rg.CreateRoom("Host", "host@example.com")
	require.NoError(t, err)

	round, err := rg.StartRound(room.Code)
	require.NoError(t, err)
	assert.Equal(t, PromptLeft, round.PromptLeft)
	assert.Equal(t, PromptRight, round.PromptRight)
	assert.False(t, round.Revealed)

	state, err := rg.GetRoomState(room.Code)
	require.NoError(t, err)
	assert.Equal(t, StateInRound, state.State)
	require.NotNil(t, state.CurrentRound)
	assert.Equal(t, round, *state.CurrentRound)
}

func TestStartRoundUnknownCode(t *testing.T) {
	rg := NewRegistry()
	_, err := rg.StartRound("ZZZZ")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestStartRoundReplacesPreviousRound(t *testing.T) {
	targets := []float64{0.25, 0.75}
	i := 0
	rg := NewRegistry(WithTargetSource(func() float64 {
		v := targets[i]
		i++
		return v
	}))
	room, err := rg.CreateRoom("Host", "host@example.com")
	require.NoError(t, err)

	_, err = rg.StartRound(room.Code)
	require.NoError(t, err)
	v, _ := rg.rooms.Load(room.Code)
	r := v.(*Room)
	first := r.round
	assert.Equal(t, 0.25, first.TargetPosition)

	_, err = rg.StartRound(room.Code)
	require.NoError(t, err)
	assert.NotSame(t, first, r.round)
	assert.Equal(t, 0.75, r.round.TargetPosition)
	assert.Equal(t, StateInRound, r.Snapshot().State)
}

func TestStartRoundAcceptsWholeTargetRange(t *testing.T) {
	for _, target := range []float64{0, 0.5, 0.9999999} {
		target := target
		rg := NewRegistry(WithTargetSource(func() float64 { return target }))
		room, err := rg.CreateRoom("Host", "host@example.com")
		require.NoError(t, err)
		_, err = rg.StartRound(room.Code)
		assert.NoError(t, err, "target %v", target)
	}
}

func TestStartRoundRejectsTargetOutOfRange(t *testing.T) {
	rg := NewRegistry(WithTargetSource(func() float64 { return 1 }))
	room, err := rg.CreateRoom("Host", "host@example.com")
	require.NoError(t, err)

	_, err = rg.StartRound(room.Code)
	require.Error(t, err)

	state, err := rg.GetRoomState(room.Code)
	require.NoError(t, err)
	assert.Equal(t, StateLobby, state.State)
	assert.Nil(t, state.CurrentRound)
}

func TestDefaultTargetInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := defaultTarget()
		assert.True(t, v >= 0 && v < 1, "target %v", v)
	}
}

func TestSnapshotNeverShowsRoundWithoutState(t *testing.T) {
	rg := NewRegistry()
	room, err := rg.CreateRoom("Host", "host@example.com")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_, _ = rg.StartRound(room.Code)
		}
	}()
	for {
		select {
		case <-done:
			return
		default:
		}
		s, err := rg.GetRoomState(room.Code)
		require.NoError(t, err)
		if s.State == StateInRound {
			require.NotNil(t, s.CurrentRound)
		} else {
			require.Nil(t, s.CurrentRound)
		}
	}
}
