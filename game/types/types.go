package types

import (
	"errors"
	"fmt"
	"time"
)

// Game constants
const (
	BoxSize       = 20  // Side of one grid cell in pixels
	ArenaLength   = 500 // Arena extent along x
	ArenaHeight   = 500 // Arena extent along y
	SnakeStartX   = 100
	SnakeStartY   = 100
	GrowthPerFood = 5 // Ticks of growth credited per food eaten
	ScorePerFood  = 1
	TicksPerSec   = 15
	TickInterval  = time.Second / TicksPerSec // ~66.7ms

	HighScoreKey = "highscore"
)

// StartDirection is the heading a fresh or reset snake moves in.
const StartDirection = Right

var ErrInvalidDirection = errors.New("invalid direction")

// Cell is a grid-aligned position in pixels.
type Cell struct {
	X, Y int
}

// Bounds are the inclusive limits a snake head may occupy.
type Bounds struct {
	LowerX, LowerY int
	UpperX, UpperY int
}

// Contains reports whether c lies inside the bounds, edges included.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= b.LowerX && c.X <= b.UpperX && c.Y >= b.LowerY && c.Y <= b.UpperY
}

type Direction int

const (
	NONE Direction = iota
	Up
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return NONE
	}
}

// Step returns the unit offset of a heading.
func (d Direction) Step() (Cell, error) {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}, nil // y grows downwards
	case Right:
		return Cell{X: 1, Y: 0}, nil
	case Down:
		return Cell{X: 0, Y: 1}, nil
	case Left:
		return Cell{X: -1, Y: 0}, nil
	default:
		return Cell{}, fmt.Errorf("%w: %s", ErrInvalidDirection, d)
	}
}

// Move shifts c by distance along d.
func (c Cell) Move(d Direction, distance int) (Cell, error) {
	step, err := d.Step()
	if err != nil {
		return c, err
	}
	return Cell{X: c.X + step.X*distance, Y: c.Y + step.Y*distance}, nil
}

// Key is a discrete input event delivered by a frontend.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Direction maps an arrow key to a heading. ok is false for other keys.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	default:
		return NONE, false
	}
}

type Color struct {
	R, G, B uint8
}

var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255, G: 0, B: 0}
)

// Font describes text size in pixels.
type Font struct {
	Size int
}

var (
	DefaultFont = Font{Size: 10}
	TitleFont   = Font{Size: 40}
	BodyFont    = Font{Size: 20}
)

// Scene is a state of the top-level game state machine.
type Scene int

const (
	SceneInit Scene = iota
	SceneLoop
	SceneDeath
)

func (s Scene) String() string {
	switch s {
	case SceneInit:
		return "init"
	case SceneLoop:
		return "loop"
	case SceneDeath:
		return "death"
	default:
		return fmt.Sprintf("scene(%d)", int(s))
	}
}
