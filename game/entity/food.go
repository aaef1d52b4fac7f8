package entity

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

// Fractions yields uniform values in [0,1).
type Fractions interface {
	Float64() float64
}

// NewRand returns a seeded generator for food placement. A zero seed picks
// one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// Food is the single piece of food on the field. Placement does not look at
// the snake, so food may land under its body.
type Food struct {
	Position types.Cell
	BoxSize  int
	arena    *Arena
	rnd      Fractions
	rx, ry   float64
}

func NewFood(arena *Arena, rnd Fractions) *Food {
	f := &Food{
		arena: arena,
		rnd:   rnd,
	}
	f.Randomize()
	return f
}

// Randomize draws fresh fractions for the next Generate.
func (f *Food) Randomize() {
	f.rx = f.rnd.Float64()
	f.ry = f.rnd.Float64()
}

// Generate places the food on the boxSize grid inside the arena, using the
// fractions drawn by the last Randomize.
func (f *Food) Generate(boxSize int) {
	bounds := f.arena.Bounds()
	f.Position = types.Cell{
		X: place(f.rx, bounds.UpperX, boxSize),
		Y: place(f.ry, bounds.UpperY, boxSize),
	}
	f.BoxSize = boxSize
}

// Respawn randomizes and generates in one step.
func (f *Food) Respawn(boxSize int) {
	f.Randomize()
	f.Generate(boxSize)
}

func place(fraction float64, upper, boxSize int) int {
	v := int(math.Floor(fraction*float64(upper)/float64(boxSize))) * boxSize
	if v < boxSize {
		v += boxSize
	}
	if v >= upper {
		v -= boxSize
	}
	return v
}

func (f *Food) Draw(c Canvas) {
	c.FillCell(f.Position.X, f.Position.Y, f.BoxSize, types.Red)
}
