package entity

import (
	"fmt"

	"snake-arcade/game/types"
)

// Snake is the player's body. Body is ordered tail first, head last.
type Snake struct {
	Body        []types.Cell
	Direction   types.Direction
	Speed       int
	Size        int
	pending     []types.Direction
	growth      int
	initialized bool
}

func NewSnake() *Snake {
	return &Snake{}
}

// Initialize places the snake at start. Later calls are ignored so a running
// session cannot be re-seeded by accident.
func (s *Snake) Initialize(start types.Cell, speed, size int, dir types.Direction) {
	if s.initialized {
		return
	}
	s.Body = append(s.Body, start)
	s.Direction = dir
	s.Speed = speed
	s.Size = size
	s.initialized = true
}

func (s *Snake) Initialized() bool {
	return s.initialized
}

// Reset puts the snake back to a single cell at start. The pending direction
// queue survives a reset.
func (s *Snake) Reset(start types.Cell, speed, size int, dir types.Direction) {
	s.Body = []types.Cell{start}
	s.Direction = dir
	s.Speed = speed
	s.Size = size
	s.growth = 0
	s.initialized = true
}

// RequestDirection queues a heading change for a later Advance.
func (s *Snake) RequestDirection(dir types.Direction) {
	s.pending = append(s.pending, dir)
}

// Pending returns the number of queued direction requests.
func (s *Snake) Pending() int {
	return len(s.pending)
}

// Grow sets the number of upcoming ticks during which the tail is kept.
func (s *Snake) Grow(amount int) {
	s.growth = amount
}

// Growth returns the outstanding growth credit.
func (s *Snake) Growth() int {
	return s.growth
}

func (s *Snake) GetHead() (types.Cell, error) {
	if !s.initialized || len(s.Body) == 0 {
		return types.Cell{}, fmt.Errorf("%w: snake has not been initialized", ErrInvalidState)
	}
	return s.Body[len(s.Body)-1], nil
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Advance runs one tick of movement: take at most one queued heading, push a
// new head and drop the tail unless growth credit remains.
func (s *Snake) Advance() error {
	head, err := s.GetHead()
	if err != nil {
		return err
	}

	s.turn()

	newHead, err := head.Move(s.Direction, s.Speed)
	if err != nil {
		return fmt.Errorf("invalid direction for snake: %w", err)
	}
	s.Move(newHead)

	if s.growth > 0 {
		s.growth--
	} else {
		s.RemoveTail()
	}
	return nil
}

// turn consumes the front of the queue. A reversal is dropped and ends the
// turn for this tick.
func (s *Snake) turn() {
	if len(s.pending) == 0 {
		return
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	if next == s.Direction.Opposite() {
		return
	}
	s.Direction = next
}

func (s *Snake) Move(newHead types.Cell) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) Draw(c Canvas) error {
	if len(s.Body) == 0 {
		return fmt.Errorf("%w: snake has not been initialized", ErrInvalidState)
	}
	for _, p := range s.Body {
		c.FillCell(p.X, p.Y, s.Size, types.Black)
	}
	return nil
}
