// Package store provides the key-value backends the high score is kept in.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Memory keeps values for the lifetime of the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) GetString(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) SetString(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// CheckBackend validates a backend name from configuration.
func CheckBackend(name string) error {
	switch name {
	case "memory", "file", "redis":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
