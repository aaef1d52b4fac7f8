package manager

import (
	"context"
	"fmt"
	"strconv"

	"snake-arcade/game/types"
	"snake-arcade/logger"
)

// Store is the key-value collaborator the high score lives in.
type Store interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error
}

// StateManager keeps the high score in step with the store. The store is
// re-read before every write so a higher score saved elsewhere is never
// overwritten.
type StateManager struct {
	store     Store
	log       *logger.Logger
	highScore int
	known     bool
}

func NewStateManager(ctx context.Context, store Store, log *logger.Logger) *StateManager {
	sm := &StateManager{
		store: store,
		log:   log,
	}
	if err := sm.LoadHighScore(ctx); err != nil {
		sm.log.Warning(fmt.Sprintf("Could not read high score: %v", err))
	}
	return sm
}

// LoadHighScore refreshes the cached high score from the store. On error the
// cache is left as it was.
func (sm *StateManager) LoadHighScore(ctx context.Context) error {
	raw, ok, err := sm.store.GetString(ctx, types.HighScoreKey)
	if err != nil {
		return err
	}
	if !ok {
		sm.highScore, sm.known = 0, false
		return nil
	}

	score, err := strconv.Atoi(raw)
	if err != nil {
		sm.log.Warning(fmt.Sprintf("Ignoring stored high score %q: %v", raw, err))
		sm.highScore, sm.known = 0, false
		return nil
	}
	sm.highScore = score
	sm.known = true
	return nil
}

// GetHighScore returns the last high score read or written, ok is false when
// none exists.
func (sm *StateManager) GetHighScore() (int, bool) {
	return sm.highScore, sm.known
}

// DisplayHighScore is what the overlay shows while score is in play.
func (sm *StateManager) DisplayHighScore(score int) int {
	if !sm.known || score > sm.highScore {
		return score
	}
	return sm.highScore
}

// UpdateScore re-reads the store and persists score when nothing is stored
// or it beats the stored value. Nothing is written if the store cannot be
// read. It reports whether a new high score was written.
func (sm *StateManager) UpdateScore(ctx context.Context, score int) bool {
	if err := sm.LoadHighScore(ctx); err != nil {
		sm.log.Warning(fmt.Sprintf("Could not read high score, not saving %d: %v", score, err))
		return false
	}
	if sm.known && score <= sm.highScore {
		return false
	}

	if err := sm.store.SetString(ctx, types.HighScoreKey, strconv.Itoa(score)); err != nil {
		sm.log.Warning(fmt.Sprintf("Could not save high score %d: %v", score, err))
		return false
	}
	sm.highScore = score
	sm.known = true
	return true
}
