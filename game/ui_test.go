package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func cursorAt(x, y int) Input {
	return Input{CursorX: x, CursorY: y}
}

func TestButtonState(t *testing.T) {
	b := NewButton("Play", 100, 100, 200, 80, nil)

	tests := []struct {
		name string
		in   Input
		want ButtonState
	}{
		{"outside", cursorAt(50, 50), ButtonIdle},
		{"hover", cursorAt(150, 120), ButtonHovered},
		{"edge hover", cursorAt(300, 180), ButtonHovered},
		{"pressed", Input{CursorX: 150, CursorY: 120, MouseDown: true}, ButtonPressed},
		{"held outside", Input{CursorX: 10, CursorY: 10, MouseDown: true}, ButtonIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.StateFor(tt.in); got != tt.want {
				t.Errorf("StateFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestButtonClickRunsActionOnce(t *testing.T) {
	clicks := 0
	b := NewButton("Quit", 0, 0, 100, 50, func() { clicks++ })

	if b.Handle(Input{CursorX: 10, CursorY: 10, MouseDown: true}) {
		t.Error("held button without a press edge should not click")
	}
	if !b.Handle(Input{CursorX: 10, CursorY: 10, MouseDown: true, Click: true}) {
		t.Error("press edge inside should click")
	}
	if b.Handle(Input{CursorX: 500, CursorY: 10, MouseDown: true, Click: true}) {
		t.Error("press edge outside should not click")
	}
	if clicks != 1 {
		t.Errorf("action ran %d times, want 1", clicks)
	}
	if b.State() != ButtonIdle {
		t.Errorf("state = %v after moving away, want idle", b.State())
	}
}

func TestUIUpdateNeverMoves(t *testing.T) {
	b := NewButton("x", 10, 20, 30, 40, nil)
	f := NewInputField(50, 60, 70, 80, FontSmall)
	tk := &Tick{Input: Input{Left: true, Right: true}, Width: 700, Height: 900}

	for i := 0; i < 10; i++ {
		b.Update(tk)
		f.Update(tk)
	}
	if b.Box() != (Rect{10, 20, 30, 40}) || f.Box() != (Rect{50, 60, 70, 80}) {
		t.Error("UI entities should not move")
	}
}

func TestInputFieldFocusAndTyping(t *testing.T) {
	f := NewInputField(0, 0, 200, 40, FontLarge)

	f.HandleInput(Input{Chars: []rune("ignored")})
	if f.Text != "" {
		t.Fatal("unfocused field should ignore typing")
	}

	f.HandleInput(Input{CursorX: 10, CursorY: 10, Click: true})
	if !f.Active {
		t.Fatal("click inside should focus")
	}

	f.HandleInput(Input{Chars: []rune("zoë\t")})
	if f.Text != "zoë" {
		t.Errorf("text = %q, want %q", f.Text, "zoë")
	}

	f.HandleInput(Input{Backspace: true})
	if f.Text != "zo" {
		t.Errorf("backspace should remove one rune, text = %q", f.Text)
	}

	f.HandleInput(Input{Pressed: []ebiten.Key{ebiten.KeyEnter}, Chars: []rune("x")})
	if f.Active || f.Text != "zo" {
		t.Errorf("enter should unfocus and keep %q, active=%v text=%q", "zo", f.Active, f.Text)
	}
}

func TestInputFieldClickOutsideUnfocuses(t *testing.T) {
	f := NewInputField(0, 0, 200, 40, FontLarge)
	f.HandleInput(Input{CursorX: 10, CursorY: 10, Click: true})
	f.HandleInput(Input{Chars: []rune("ann")})

	f.HandleInput(Input{CursorX: 500, CursorY: 500, Click: true, Chars: []rune("x")})
	if f.Active || f.Text != "ann" {
		t.Errorf("field should be unfocused and unchanged, active=%v text=%q", f.Active, f.Text)
	}
}

func TestInputFieldMaxLen(t *testing.T) {
	f := NewInputField(0, 0, 200, 40, FontLarge)
	f.MaxLen = 3
	f.Active = true
	f.HandleInput(Input{Chars: []rune("abcdef")})
	if f.Text != "abc" {
		t.Errorf("text = %q, want %q", f.Text, "abc")
	}
}

func TestInputFieldFit(t *testing.T) {
	f := NewInputField(0, 0, 200, 40, FontLarge)
	f.fit(50)
	if f.W != 200 {
		t.Errorf("short text should keep the minimum width, w = %v", f.W)
	}
	f.fit(400)
	if f.W != 400+2*inputPadding {
		t.Errorf("long text should widen the box, w = %v", f.W)
	}
	f.fit(10)
	if f.W != 200 {
		t.Errorf("box should shrink back to the minimum, w = %v", f.W)
	}
}
