package entity

import (
	"errors"

	"snake-arcade/game/types"
)

var (
	ErrInvalidState     = errors.New("invalid state")
	ErrInvalidDimension = errors.New("invalid arena dimension")
)

// Canvas is the part of a drawing surface entities paint themselves on.
type Canvas interface {
	FillCell(x, y, size int, color types.Color)
}
