package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/logger"
)

// Surface is the drawing collaborator a tick paints on.
type Surface interface {
	Clear()
	FillCell(x, y, size int, color types.Color)
	DrawText(x, y int, text string, font types.Font)
}

// Game is one play session: the scene machine plus the arena, snake and food
// it owns. All methods must be called from a single goroutine.
type Game struct {
	RunID      string
	arena      *entity.Arena
	snake      *entity.Snake
	food       *entity.Food
	collisions *manager.CollisionManager
	state      *manager.StateManager
	surface    Surface
	log        *logger.Logger
	scene      types.Scene
	score      int
	lastCause  manager.CollisionType
	settled    bool // death bookkeeping done for the current run
}

func NewGame(ctx context.Context, surface Surface, store manager.Store, rnd entity.Fractions, log *logger.Logger) (*Game, error) {
	arena, err := entity.NewArena(types.BoxSize, types.ArenaLength, types.ArenaHeight)
	if err != nil {
		return nil, err
	}

	snake := entity.NewSnake()
	snake.Initialize(startCell(), types.BoxSize, types.BoxSize, types.StartDirection)

	food := entity.NewFood(arena, rnd)
	food.Generate(types.BoxSize)

	return &Game{
		arena:      arena,
		snake:      snake,
		food:       food,
		collisions: manager.NewCollisionManager(arena.Bounds()),
		state:      manager.NewStateManager(ctx, store, log),
		surface:    surface,
		log:        log,
		scene:      types.SceneInit,
	}, nil
}

func startCell() types.Cell {
	return types.Cell{X: types.SnakeStartX, Y: types.SnakeStartY}
}

func (g *Game) Scene() types.Scene {
	return g.scene
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Arena() *entity.Arena {
	return g.arena
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Cell {
	return g.food.Position
}

// HighScore returns the stored high score, ok is false when none exists.
func (g *Game) HighScore() (int, bool) {
	return g.state.GetHighScore()
}

// LastCollision is what ended the most recent run.
func (g *Game) LastCollision() manager.CollisionType {
	return g.lastCause
}

// Tick runs the current scene once.
func (g *Game) Tick(ctx context.Context) error {
	switch g.scene {
	case types.SceneInit:
		g.tickInit()
		return nil
	case types.SceneLoop:
		return g.tickLoop()
	case types.SceneDeath:
		return g.tickDeath(ctx)
	default:
		return fmt.Errorf("unknown scene %s", g.scene)
	}
}

// HandleKey applies one input event. Arrow keys queue a turn in every scene,
// Enter starts a run from the title or death screen.
func (g *Game) HandleKey(ctx context.Context, key types.Key) {
	if dir, ok := key.Direction(); ok {
		g.snake.RequestDirection(dir)
		return
	}
	if key != types.KeyEnter {
		return
	}

	switch g.scene {
	case types.SceneInit:
		g.start(ctx)
	case types.SceneDeath:
		g.settle(ctx)
		g.start(ctx)
	}
}

func (g *Game) start(ctx context.Context) {
	if err := g.state.LoadHighScore(ctx); err != nil {
		g.log.Warning(fmt.Sprintf("Could not refresh high score: %v", err))
	}
	g.score = 0
	g.scene = types.SceneLoop
	g.RunID = uuid.New().String()
	g.log.Info(fmt.Sprintf("Run %s started", g.RunID))
}

func (g *Game) die(cause manager.CollisionType) {
	g.scene = types.SceneDeath
	g.lastCause = cause
	g.settled = false
}

func (g *Game) tickInit() {
	g.surface.Clear()
	g.surface.DrawText(100, 100, "Snake 2.0", types.TitleFont)
	g.surface.DrawText(100, 150, "Press enter to continue", types.BodyFont)
}

func (g *Game) tickLoop() error {
	g.surface.Clear()
	if err := g.arena.Draw(g.surface); err != nil {
		return err
	}
	if err := g.snake.Advance(); err != nil {
		return err
	}
	if err := g.snake.Draw(g.surface); err != nil {
		return err
	}

	res, err := g.collisions.Evaluate(g.snake, g.food.Position, g.die)
	if err != nil {
		return err
	}
	if res.Ate {
		g.snake.Grow(types.GrowthPerFood)
		g.food.Respawn(types.BoxSize)
		g.score += types.ScorePerFood
	}
	if res.Died {
		g.log.Info(fmt.Sprintf("Run %s ended by %s collision with score %d", g.RunID, res.Kind(), g.score))
	}

	g.food.Draw(g.surface)
	g.drawScore()
	return nil
}

func (g *Game) tickDeath(ctx context.Context) error {
	g.surface.Clear()
	if err := g.arena.Draw(g.surface); err != nil {
		return err
	}
	g.settle(ctx)
	g.surface.DrawText(100, 100, "You died", types.TitleFont)
	g.surface.DrawText(100, 150, fmt.Sprintf("Your score was %d", g.score), types.BodyFont)
	g.surface.DrawText(100, 200, "Press enter to continue", types.BodyFont)
	return nil
}

// settle resets the snake and records the high score once per run.
func (g *Game) settle(ctx context.Context) {
	if g.settled {
		return
	}
	g.snake.Reset(startCell(), types.BoxSize, types.BoxSize, types.StartDirection)
	if g.state.UpdateScore(ctx, g.score) {
		g.log.Info(fmt.Sprintf("New high score %d", g.score))
	}
	g.settled = true
}

func (g *Game) drawScore() {
	x := types.ArenaLength + 100
	g.surface.DrawText(x, 100, fmt.Sprintf("Score: %d", g.score), types.DefaultFont)
	g.surface.DrawText(x, 150, fmt.Sprintf("Highscore: %d", g.state.DisplayHighScore(g.score)), types.DefaultFont)
}
