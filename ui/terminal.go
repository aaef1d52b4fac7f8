package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game/types"
)

// One terminal cell covers this many pixels of the game's coordinate space.
const (
	pxPerCol = 10
	pxPerRow = 20
)

// Terminal draws on a tcell screen, scaling pixel coordinates down to cells.
type Terminal struct {
	screen tcell.Screen
	paper  tcell.Style
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		paper:  tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
	}
}

func (t *Terminal) Clear() {
	t.screen.Fill(' ', t.paper)
}

func (t *Terminal) FillCell(x, y, size int, color types.Color) {
	style := tcell.StyleDefault.Background(toTcell(color))
	col, row := x/pxPerCol, y/pxPerRow
	cols, rows := max(size/pxPerCol, 1), max(size/pxPerRow, 1)
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < cols; dx++ {
			t.screen.SetContent(col+dx, row+dy, ' ', nil, style)
		}
	}
}

func (t *Terminal) DrawText(x, y int, text string, _ types.Font) {
	col, row := x/pxPerCol, y/pxPerRow
	for i, r := range []rune(text) {
		t.screen.SetContent(col+i, row, r, nil, t.paper)
	}
}

// Show flushes the drawn cells to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// Keys pumps screen events into game keys until the screen is finalized or
// ctx ends. A quit key calls stop.
func (t *Terminal) Keys(ctx context.Context, stop context.CancelFunc) <-chan types.Key {
	keys := make(chan types.Key, 16)
	go func() {
		defer close(keys)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				t.screen.Sync()
				continue
			}

			key, quit := KeyFromEvent(ev)
			if quit {
				stop()
				return
			}
			if key == types.KeyNone {
				continue
			}
			select {
			case keys <- key:
			case <-ctx.Done():
				return
			}
		}
	}()
	return keys
}

// KeyFromEvent maps a tcell event to a game key. quit is true for Escape,
// Ctrl-C and 'q'.
func KeyFromEvent(ev tcell.Event) (key types.Key, quit bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return types.KeyNone, false
	}

	switch kev.Key() {
	case tcell.KeyEnter:
		return types.KeyEnter, false
	case tcell.KeyLeft:
		return types.KeyLeft, false
	case tcell.KeyRight:
		return types.KeyRight, false
	case tcell.KeyUp:
		return types.KeyUp, false
	case tcell.KeyDown:
		return types.KeyDown, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.KeyNone, true
	case tcell.KeyRune:
		if kev.Rune() == 'q' {
			return types.KeyNone, true
		}
	}
	return types.KeyNone, false
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
