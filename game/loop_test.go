package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-arcade/game/types"
)

type countingSession struct {
	ticks   int
	keys    []types.Key
	stopAt  int
	stop    context.CancelFunc
	failAt  int
	failErr error
}

func (s *countingSession) Tick(ctx context.Context) error {
	s.ticks++
	if s.failAt > 0 && s.ticks == s.failAt {
		return s.failErr
	}
	if s.stopAt > 0 && s.ticks == s.stopAt {
		s.stop()
	}
	return nil
}

func (s *countingSession) HandleKey(ctx context.Context, key types.Key) {
	s.keys = append(s.keys, key)
}

func TestLoopDue(t *testing.T) {
	l := NewLoop(types.TickInterval)
	start := time.Now()

	assert.True(t, l.Due(start), "first call ticks")
	assert.False(t, l.Due(start.Add(10*time.Millisecond)))
	assert.False(t, l.Due(start.Add(60*time.Millisecond)))
	assert.True(t, l.Due(start.Add(70*time.Millisecond)))
	assert.False(t, l.Due(start.Add(100*time.Millisecond)))
	assert.True(t, l.Due(start.Add(140*time.Millisecond)))
}

func TestLoopDueHoldsNominalRate(t *testing.T) {
	l := NewLoop(types.TickInterval)
	start := time.Now()

	require.True(t, l.Due(start))
	require.True(t, l.Due(start.Add(70*time.Millisecond)))
	// next tick is owed at 133.3ms, not 70ms+66.7ms
	assert.True(t, l.Due(start.Add(134*time.Millisecond)))

	// count ticks over one second of 60 FPS frames
	l = NewLoop(types.TickInterval)
	ticks := 0
	for frame := 0; frame < 60; frame++ {
		if l.Due(start.Add(time.Duration(frame) * time.Second / 60)) {
			ticks++
		}
	}
	assert.Equal(t, types.TicksPerSec, ticks)
}

func TestLoopDueRestartsAfterStall(t *testing.T) {
	l := NewLoop(types.TickInterval)
	start := time.Now()

	require.True(t, l.Due(start))
	assert.True(t, l.Due(start.Add(500*time.Millisecond)))
	assert.False(t, l.Due(start.Add(510*time.Millisecond)), "no burst of catch-up ticks")
	assert.True(t, l.Due(start.Add(567*time.Millisecond)))
}

func TestLoopRun(t *testing.T) {
	t.Run("ticks and presents until cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s := &countingSession{stopAt: 3, stop: cancel}
		presented := 0
		err := NewLoop(time.Millisecond).Run(ctx, s, nil, func() { presented++ })

		require.NoError(t, err)
		assert.Equal(t, 3, s.ticks)
		assert.Equal(t, 3, presented)
	})

	t.Run("keys reach the session", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		keys := make(chan types.Key, 2)
		keys <- types.KeyEnter
		keys <- types.KeyUp
		close(keys)

		s := &countingSession{stopAt: 5, stop: cancel}
		require.NoError(t, NewLoop(5*time.Millisecond).Run(ctx, s, keys, nil))
		assert.Equal(t, []types.Key{types.KeyEnter, types.KeyUp}, s.keys)
	})

	t.Run("tick error stops the loop", func(t *testing.T) {
		boom := errors.New("boom")
		s := &countingSession{failAt: 2, failErr: boom}

		err := NewLoop(time.Millisecond).Run(context.Background(), s, nil, nil)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 2, s.ticks)
	})
}
