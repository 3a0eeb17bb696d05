package game

import (
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonState is the visual state of a button
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonHovered
	ButtonPressed
)

// Button is a clickable label. It never moves.
type Button struct {
	Body
	Label  string
	Size   FontSize
	Action func()

	state ButtonState
}

// NewButton creates a button with its top-left corner at (x, y)
func NewButton(label string, x, y, w, h float64, action func()) *Button {
	return &Button{
		Body:   NewBody(x, y, w, h, nil),
		Label:  label,
		Size:   FontLarge,
		Action: action,
	}
}

// Base returns the shared body
func (b *Button) Base() *Body { return &b.Body }

// Update is a no-op: buttons stay where their screen put them
func (b *Button) Update(*Tick) {}

// hovered reports whether the cursor is over the button
func (b *Button) hovered(in Input) bool {
	return b.Box().Contains(float64(in.CursorX), float64(in.CursorY))
}

// StateFor computes the visual state for an input snapshot
func (b *Button) StateFor(in Input) ButtonState {
	switch {
	case !b.hovered(in):
		return ButtonIdle
	case in.MouseDown:
		return ButtonPressed
	default:
		return ButtonHovered
	}
}

// Clicked reports a left click that went down inside the button this tick
func (b *Button) Clicked(in Input) bool {
	return in.Click && b.hovered(in)
}

// Handle refreshes the visual state and runs the action on click.
// It reports whether the button was clicked.
func (b *Button) Handle(in Input) bool {
	b.state = b.StateFor(in)
	if !b.Clicked(in) {
		return false
	}
	if b.Action != nil {
		b.Action()
	}
	return true
}

// State returns the state computed by the last Handle
func (b *Button) State() ButtonState {
	return b.state
}

// Draw renders the button background for its state and the centered label
func (b *Button) Draw(r *Renderer) {
	bg := colorBlack
	switch b.state {
	case ButtonHovered:
		bg = colorDarkGray
	case ButtonPressed:
		bg = colorGray
	}
	r.FillRect(b.Box(), bg)
	r.StrokeRect(b.Box(), 2, colorWhite)
	r.TextIn(b.Label, b.Size, b.Box(), colorWhite)
	r.Hitbox(b.Box())
}

// InputField is a single-line text box focused by clicking it
type InputField struct {
	Body
	Text   string
	Active bool
	Size   FontSize

	// MinW is the width of the empty box; it grows to fit the text
	MinW float64

	// MaxLen caps the text length in runes; zero means no cap
	MaxLen int
}

const inputPadding = 10

// NewInputField creates an empty, unfocused field
func NewInputField(x, y, w, h float64, size FontSize) *InputField {
	return &InputField{
		Body: NewBody(x, y, w, h, nil),
		Size: size,
		MinW: w,
	}
}

// Base returns the shared body
func (f *InputField) Base() *Body { return &f.Body }

// Update is a no-op: fields only change through HandleInput
func (f *InputField) Update(*Tick) {}

// HandleInput applies one tick of input. A click inside focuses the field
// and a click outside unfocuses it. While focused, typed characters are
// appended, backspace removes the last rune, and Enter or Escape unfocus.
func (f *InputField) HandleInput(in Input) {
	if in.Click {
		inside := f.Box().Contains(float64(in.CursorX), float64(in.CursorY))
		switch {
		case inside && !f.Active:
			f.Active = true
			return
		case !inside && f.Active:
			f.Active = false
			return
		}
	}
	if !f.Active {
		return
	}

	if in.JustPressed(ebiten.KeyEnter) || in.JustPressed(ebiten.KeyNumpadEnter) || in.JustPressed(ebiten.KeyEscape) {
		f.Active = false
		return
	}
	if in.Backspace && f.Text != "" {
		_, n := utf8.DecodeLastRuneInString(f.Text)
		f.Text = f.Text[:len(f.Text)-n]
	}
	for _, c := range in.Chars {
		if !unicode.IsPrint(c) {
			continue
		}
		if f.MaxLen > 0 && utf8.RuneCountInString(f.Text) >= f.MaxLen {
			break
		}
		f.Text += string(c)
	}
}

// fit widens the box so the text stays inside it
func (f *InputField) fit(textW float64) {
	f.W = max(f.MinW, textW+2*inputPadding)
}

// Draw renders the box, white while focused, and the text
func (f *InputField) Draw(r *Renderer) {
	tw, _ := r.Measure(f.Text, f.Size)
	f.fit(tw)

	border := colorDarkGray
	if f.Active {
		border = colorWhite
	}
	r.StrokeRect(f.Box(), 2, border)

	_, th := r.Measure("Mg", f.Size)
	r.Text(f.Text, f.Size, f.X+inputPadding, f.Y+(f.H-th)/2, colorWhite)
	r.Hitbox(f.Box())
}
