// Package ui holds the drawing surfaces the game renders to.
package ui

import "snake-arcade/game/types"

type OpKind int

const (
	OpFill OpKind = iota
	OpText
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	X, Y  int
	Size  int
	Color types.Color
	Text  string
	Font  types.Font
}

// Frame records the drawing calls of a tick so a frame-based renderer can
// replay them until the next tick replaces them.
type Frame struct {
	ops []Op
}

func NewFrame() *Frame {
	return &Frame{}
}

func (f *Frame) Clear() {
	f.ops = f.ops[:0]
}

func (f *Frame) FillCell(x, y, size int, color types.Color) {
	f.ops = append(f.ops, Op{Kind: OpFill, X: x, Y: y, Size: size, Color: color})
}

func (f *Frame) DrawText(x, y int, text string, font types.Font) {
	f.ops = append(f.ops, Op{Kind: OpText, X: x, Y: y, Text: text, Font: font, Color: types.Black})
}

// Ops returns the recorded calls. The slice is only valid until the next
// Clear.
func (f *Frame) Ops() []Op {
	return f.ops
}
