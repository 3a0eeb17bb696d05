package game

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the input snapshot for one tick.
// It is filled by InputPoller in the running game and built by hand in tests.
type Input struct {
	// Held movement and fire keys
	Left, Right, Fire bool

	// Pressed lists the keys that went down this tick
	Pressed []ebiten.Key

	// Cursor position in screen pixels
	CursorX, CursorY int

	// MouseDown is true while the left button is held
	MouseDown bool

	// Click is true on the tick the left button goes down
	Click bool

	// Chars holds the characters typed this tick
	Chars []rune

	// Backspace is true on press and on key repeat
	Backspace bool
}

// Direction returns -1 for left, 1 for right and 0 for none or both
func (in Input) Direction() float64 {
	var d float64
	if in.Left {
		d--
	}
	if in.Right {
		d++
	}
	return d
}

// JustPressed reports whether the key went down this tick
func (in Input) JustPressed(k ebiten.Key) bool {
	return slices.Contains(in.Pressed, k)
}

// Key repeat timing for text editing, in ticks
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// InputPoller reads keyboard and mouse state from ebiten
type InputPoller struct {
	pressed []ebiten.Key
	chars   []rune
}

// NewInputPoller creates a new input poller
func NewInputPoller() *InputPoller {
	return &InputPoller{
		pressed: make([]ebiten.Key, 0, 8),
		chars:   make([]rune, 0, 8),
	}
}

// Poll returns the input snapshot for the current tick
func (p *InputPoller) Poll() Input {
	p.pressed = inpututil.AppendJustPressedKeys(p.pressed[:0])
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	cx, cy := ebiten.CursorPosition()

	return Input{
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Pressed:   p.pressed,
		CursorX:   cx,
		CursorY:   cy,
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Click:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Chars:     p.chars,
		Backspace: repeating(ebiten.KeyBackspace),
	}
}

// repeating reports a key press on its first tick and then at a fixed rate
// once it has been held past the repeat delay
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
