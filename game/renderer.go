package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Palette
var (
	colorWhite    = color.RGBA{255, 255, 255, 255}
	colorBlack    = color.RGBA{0, 0, 0, 255}
	colorDarkGray = color.RGBA{64, 64, 64, 255}
	colorGray     = color.RGBA{128, 128, 128, 255}
	colorGreen    = color.RGBA{0, 255, 0, 255}
	colorRed      = color.RGBA{255, 0, 0, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 160}
	colorHitbox   = color.RGBA{255, 0, 255, 255}
)

// FontSize selects one of the preloaded faces
type FontSize int

const (
	FontSmall  FontSize = iota // file paths
	FontMedium                 // HUD
	FontLarge                  // menu buttons and body text
	FontTitle                  // screen titles
	FontHuge                   // main title
	fontSizeCount
)

// points returns the face size in points
func (s FontSize) points() float64 {
	switch s {
	case FontSmall:
		return 25
	case FontMedium:
		return 30
	case FontLarge:
		return 40
	case FontTitle:
		return 50
	case FontHuge:
		return 80
	default:
		return 30
	}
}

// Fonts holds Go Regular at every size the screens use
type Fonts struct {
	faces [fontSizeCount]text.Face
}

// LoadFonts parses the embedded Go Regular font once and builds all faces
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	fonts := &Fonts{}
	for s := FontSmall; s < fontSizeCount; s++ {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    s.points(),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %v pt face: %w", s.points(), err)
		}
		fonts.faces[s] = text.NewGoXFace(face)
	}
	return fonts, nil
}

// Face returns the face for a size
func (f *Fonts) Face(s FontSize) text.Face {
	if s < 0 || s >= fontSizeCount {
		s = FontMedium
	}
	return f.faces[s]
}

// Renderer draws primitives, sprites and text onto the current frame
type Renderer struct {
	screen *ebiten.Image
	fonts  *Fonts

	// Debug outlines every hitbox drawn through Hitbox
	Debug bool
}

// NewRenderer creates a new renderer
func NewRenderer(fonts *Fonts) *Renderer {
	return &Renderer{fonts: fonts}
}

// Begin targets the frame being drawn
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

// Clear fills the frame with black
func (r *Renderer) Clear() {
	r.screen.Fill(colorBlack)
}

// FillRect draws a filled rectangle
func (r *Renderer) FillRect(box Rect, clr color.Color) {
	vector.DrawFilledRect(r.screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), clr, false)
}

// StrokeRect draws a rectangle outline
func (r *Renderer) StrokeRect(box Rect, width float64, clr color.Color) {
	vector.StrokeRect(r.screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), float32(width), clr, false)
}

// FillCircle draws a filled circle centered on (cx, cy)
func (r *Renderer) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(r.screen, float32(cx), float32(cy), float32(radius), clr, true)
}

// Sprite draws an image stretched over the box
func (r *Renderer) Sprite(img *ebiten.Image, box Rect) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
	op.GeoM.Translate(box.X, box.Y)
	r.screen.DrawImage(img, op)
}

// Overlay darkens the whole frame
func (r *Renderer) Overlay() {
	b := r.screen.Bounds()
	r.FillRect(Rect{W: float64(b.Dx()), H: float64(b.Dy())}, colorOverlay)
}

// Measure returns the rendered size of a string
func (r *Renderer) Measure(s string, size FontSize) (float64, float64) {
	return text.Measure(s, r.fonts.Face(size), 0)
}

// Text draws a string with its top-left corner at (x, y)
func (r *Renderer) Text(s string, size FontSize, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.screen, s, r.fonts.Face(size), op)
}

// TextCentered draws a string horizontally centered on cx
func (r *Renderer) TextCentered(s string, size FontSize, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(r.screen, s, r.fonts.Face(size), op)
}

// TextIn draws a string centered inside a box
func (r *Renderer) TextIn(s string, size FontSize, box Rect, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(box.X+box.W/2, box.Y+box.H/2)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(r.screen, s, r.fonts.Face(size), op)
}

// Hitbox outlines a box when debug drawing is on
func (r *Renderer) Hitbox(box Rect) {
	if r.Debug {
		r.StrokeRect(box, 1, colorHitbox)
	}
}

// HUD positions
const (
	hudScoreX  = 30
	hudHealthX = 530
	hudBottom  = 50
)

// HUD draws the score and health row at the bottom of the play area
func (r *Renderer) HUD(score, health int) {
	y := float64(r.screen.Bounds().Dy() - hudBottom)
	r.Text(fmt.Sprintf("Score: %d", score), FontMedium, hudScoreX, y, colorGreen)
	r.Text(fmt.Sprintf("Health: %d", health), FontMedium, hudHealthX, y, colorRed)
}
