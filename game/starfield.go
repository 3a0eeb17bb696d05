package game

import (
	"image/color"
	"math/rand/v2"
)

const (
	starCount     = 70
	starBaseSpeed = 0.6
)

type star struct {
	x, y  float64
	speed float64
	size  float64
	shade uint8
}

// Starfield is a parallax background of stars drifting down the screen
type Starfield struct {
	stars         []star
	width, height float64
}

// NewStarfield scatters stars over the whole screen
func NewStarfield(width, height float64, rng *rand.Rand) *Starfield {
	sf := &Starfield{
		stars:  make([]star, starCount),
		width:  width,
		height: height,
	}
	for i := range sf.stars {
		depth := 0.3 + rng.Float64()*0.7
		sf.stars[i] = star{
			x:     rng.Float64() * width,
			y:     rng.Float64() * height,
			speed: starBaseSpeed * depth * 3,
			size:  0.5 + depth*1.5,
			shade: uint8(90 + depth*165),
		}
	}
	return sf
}

// Update moves stars down and wraps them to the top
func (sf *Starfield) Update() {
	for i := range sf.stars {
		sf.stars[i].y += sf.stars[i].speed
		if sf.stars[i].y > sf.height {
			sf.stars[i].y -= sf.height
		}
	}
}

// Draw renders the stars
func (sf *Starfield) Draw(r *Renderer) {
	for _, s := range sf.stars {
		r.FillCircle(s.x, s.y, s.size, color.NRGBA{R: s.shade, G: s.shade, B: s.shade, A: 255})
	}
}
