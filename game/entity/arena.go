package entity

import (
	"fmt"

	"snake-arcade/game/types"
)

// Arena is the walled playing field. It is immutable once built.
type Arena struct {
	size   int
	length int
	height int
	walls  []types.Cell
	wallAt map[types.Cell]struct{}
}

// NewArena builds the perimeter for a field of length x height pixels tiled
// by cells of the given size. Dimensions that are not multiples of size are
// accepted; the perimeter then does not tile exactly.
func NewArena(size, length, height int) (*Arena, error) {
	if size <= 0 || length <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size=%d length=%d height=%d", ErrInvalidDimension, size, length, height)
	}

	a := &Arena{
		size:   size,
		length: length,
		height: height,
		wallAt: make(map[types.Cell]struct{}),
	}

	for x := 0; x < length; x += size {
		a.addWall(types.Cell{X: x, Y: 0})
		a.addWall(types.Cell{X: x, Y: height})
	}
	for y := 0; y < height; y += size {
		a.addWall(types.Cell{X: 0, Y: y})
		a.addWall(types.Cell{X: length, Y: y})
	}
	a.addWall(types.Cell{X: length, Y: height})

	return a, nil
}

func (a *Arena) addWall(c types.Cell) {
	if _, ok := a.wallAt[c]; ok {
		return
	}
	a.wallAt[c] = struct{}{}
	a.walls = append(a.walls, c)
}

// Bounds returns the cells beyond which a head has hit the wall.
func (a *Arena) Bounds() types.Bounds {
	return types.Bounds{
		LowerX: a.size,
		LowerY: a.size,
		UpperX: a.length - a.size,
		UpperY: a.height - a.size,
	}
}

// IsWall reports whether c is one of the perimeter cells.
func (a *Arena) IsWall(c types.Cell) bool {
	_, ok := a.wallAt[c]
	return ok
}

// Walls returns a copy of the perimeter cells in build order.
func (a *Arena) Walls() []types.Cell {
	walls := make([]types.Cell, len(a.walls))
	copy(walls, a.walls)
	return walls
}

func (a *Arena) Draw(c Canvas) error {
	if a == nil || a.size == 0 || len(a.walls) == 0 {
		return fmt.Errorf("%w: arena has not been built", ErrInvalidState)
	}
	for _, w := range a.walls {
		c.FillCell(w.X, w.Y, a.size, types.Black)
	}
	return nil
}
