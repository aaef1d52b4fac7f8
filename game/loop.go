package game

import (
	"context"
	"time"

	"snake-arcade/game/types"
)

// Session is what a Loop drives.
type Session interface {
	Tick(ctx context.Context) error
	HandleKey(ctx context.Context, key types.Key)
}

// Loop fires ticks at a fixed interval. Keys and ticks are handled on the
// same goroutine, so a tick never overlaps input handling.
type Loop struct {
	interval time.Duration
	last     time.Time
	started  bool
}

func NewLoop(interval time.Duration) *Loop {
	return &Loop{interval: interval}
}

// Due reports whether a tick is owed at now and, if so, marks it taken. It
// serves frontends that pace themselves by frames. Ticks are scheduled on
// the nominal grid so frame lag does not stretch the period; after a stall
// longer than one interval the grid restarts at now.
func (l *Loop) Due(now time.Time) bool {
	if !l.started {
		l.last = now
		l.started = true
		return true
	}
	if now.Sub(l.last) < l.interval {
		return false
	}
	l.last = l.last.Add(l.interval)
	if now.Sub(l.last) >= l.interval {
		l.last = now
	}
	return true
}

// Run drives s until ctx is done or a tick fails. present, when set, runs
// after every tick.
func (l *Loop) Run(ctx context.Context, s Session, keys <-chan types.Key, present func()) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		select {
		case <-ctx.Done():
			return nil
		case key, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			s.HandleKey(ctx, key)
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				return err
			}
			if present != nil {
				present()
			}
		}
	}
	return nil
}
