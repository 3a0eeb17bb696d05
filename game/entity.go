package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpawnAbove as a spawn y coordinate places an entity just above the top edge
const SpawnAbove = -1

// Rect is an axis-aligned bounding box
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the box, edges included
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x <= r.X+r.W &&
		r.Y <= y && y <= r.Y+r.H
}

// Overlaps reports whether two boxes share any area or edge
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W &&
		r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

// Body holds the state shared by every entity
type Body struct {
	// Top-left corner in screen coordinates
	X, Y float64

	// Size in pixels
	W, H float64

	// Sprite drawn over the box; nil draws a plain rectangle
	Sprite *ebiten.Image

	// Alive is false once the entity should be purged
	Alive bool
}

// NewBody creates a live body. A y of SpawnAbove puts it above the screen.
func NewBody(x, y, w, h float64, sprite *ebiten.Image) Body {
	if y == SpawnAbove {
		y = -h
	}
	return Body{X: x, Y: y, W: w, H: h, Sprite: sprite, Alive: true}
}

// Box returns the hitbox
func (b *Body) Box() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// CenterX returns the horizontal center
func (b *Body) CenterX() float64 {
	return b.X + b.W/2
}

// Kill marks the body for removal
func (b *Body) Kill() {
	b.Alive = false
}

// draw renders the sprite scaled to the box, or a white rectangle without one
func (b *Body) draw(r *Renderer) {
	if b.Sprite != nil {
		r.Sprite(b.Sprite, b.Box())
	} else {
		r.FillRect(b.Box(), color.White)
	}
	r.Hitbox(b.Box())
}

// Tick is the per-frame environment handed to entity updates
type Tick struct {
	// Frame counts ticks since the session started
	Frame uint64

	// Input is the input snapshot for this tick
	Input Input

	// Width and Height bound the play area
	Width, Height float64
}

// Entity is any game object with a box, a movement rule and a look
type Entity interface {
	// Base returns the shared body
	Base() *Body

	// Update advances the entity by one tick
	Update(t *Tick)

	// Draw renders the entity
	Draw(r *Renderer)
}

// purge drops dead entities in place, keeping order
func purge[E Entity](list []E) []E {
	kept := list[:0]
	for _, e := range list {
		if e.Base().Alive {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}
