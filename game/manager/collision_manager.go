package manager

import (
	"errors"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

var ErrMissingCallback = errors.New("collision death handler must be defined")

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	FoodCollision
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case FoodCollision:
		return "food"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Result is the outcome of one tick's collision checks. Ate and Died are
// computed independently.
type Result struct {
	Ate   bool
	Died  bool
	Cause CollisionType
}

// Kind folds the result into a single collision type, death first.
func (r Result) Kind() CollisionType {
	switch {
	case r.Died:
		return r.Cause
	case r.Ate:
		return FoodCollision
	default:
		return NoCollision
	}
}

type CollisionManager struct {
	bounds types.Bounds
}

func NewCollisionManager(bounds types.Bounds) *CollisionManager {
	return &CollisionManager{
		bounds: bounds,
	}
}

// HitWall reports whether head lies outside the inclusive bounds.
func HitWall(head types.Cell, bounds types.Bounds) bool {
	return !bounds.Contains(head)
}

func HitFood(head types.Cell, food types.Cell) bool {
	return head == food
}

// HitSelf reports whether the head (last element) shares a cell with any
// other segment.
func HitSelf(body []types.Cell) bool {
	if len(body) < 2 {
		return false
	}
	last := len(body) - 1
	head := body[last]
	for i := 0; i < last; i++ {
		if body[i] == head {
			return true
		}
	}
	return false
}

// Evaluate checks the snake against food, walls and itself. onDeath runs
// when the snake died this tick.
func (cm *CollisionManager) Evaluate(snake *entity.Snake, food types.Cell, onDeath func(CollisionType)) (Result, error) {
	if onDeath == nil {
		return Result{}, ErrMissingCallback
	}
	head, err := snake.GetHead()
	if err != nil {
		return Result{}, err
	}

	res := Result{Ate: HitFood(head, food)}
	switch {
	case HitWall(head, cm.bounds):
		res.Died, res.Cause = true, WallCollision
	case HitSelf(snake.Body):
		res.Died, res.Cause = true, SelfCollision
	}

	if res.Died {
		onDeath(res.Cause)
	}
	return res, nil
}
