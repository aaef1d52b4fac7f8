// Package window runs the game in a raylib window.
package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game/types"
	"snake-arcade/ui"
)

const (
	screenWidth  = types.ArenaLength + 300 // room for the score panel
	screenHeight = types.ArenaHeight + 60
	targetFPS    = 60
)

var keyMap = map[int32]types.Key{
	rl.KeyEnter: types.KeyEnter,
	rl.KeyLeft:  types.KeyLeft,
	rl.KeyRight: types.KeyRight,
	rl.KeyUp:    types.KeyUp,
	rl.KeyDown:  types.KeyDown,
}

// Renderer replays the last recorded frame every raylib frame, so what a
// tick drew stays on screen until the next tick.
type Renderer struct {
	frame *ui.Frame
}

func NewRenderer(frame *ui.Frame) *Renderer {
	return &Renderer{frame: frame}
}

func (r *Renderer) Open(title string) {
	rl.InitWindow(screenWidth, screenHeight, title)
	rl.SetTargetFPS(targetFPS)
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// PollKeys returns the game keys pressed since the last frame, oldest first.
func (r *Renderer) PollKeys() []types.Key {
	return ui.DrainKeys(rl.GetKeyPressed, keyMap)
}

func (r *Renderer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)

	for _, op := range r.frame.Ops() {
		switch op.Kind {
		case ui.OpFill:
			rl.DrawRectangle(int32(op.X), int32(op.Y), int32(op.Size), int32(op.Size), toRaylib(op.Color))
		case ui.OpText:
			// Text is anchored at its baseline, raylib draws from the top.
			y := op.Y - op.Font.Size
			rl.DrawText(op.Text, int32(op.X), int32(y), int32(op.Font.Size), toRaylib(op.Color))
		}
	}

	rl.EndDrawing()
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
