package game

// Heart geometry
const (
	heartSize    = 80
	heartSpeed   = 1
	heartCenterX = 350
	heartAsset   = "heart.png"
)

// Heart is a falling bonus that restores health when shot.
//
// A heart that falls past the bottom edge dies unclaimed and the session
// drops a fresh one from the top, so an unclaimed bonus keeps looping until
// it is shot.
type Heart struct {
	Body

	// Speed is the descent in pixels per tick
	Speed float64

	// Restore is the health given back when claimed
	Restore int

	// Claimed is set when a player bullet hits the heart
	Claimed bool
}

// NewHeart creates a heart just above the screen
func NewHeart(cfg Config, sprites SpriteSource) *Heart {
	return &Heart{
		Body:    NewBody(heartCenterX-heartSize/2, SpawnAbove, heartSize, heartSize, sprite(sprites, heartAsset, heartSize, heartSize)),
		Speed:   heartSpeed,
		Restore: cfg.HeartRestore,
	}
}

// Base returns the shared body
func (h *Heart) Base() *Body { return &h.Body }

// Update moves the heart down and kills it once it is fully below the screen
func (h *Heart) Update(t *Tick) {
	if !h.Alive {
		return
	}
	h.Y += h.Speed
	if h.Y >= t.Height+h.H {
		h.Kill()
	}
}

// Draw renders the heart
func (h *Heart) Draw(r *Renderer) {
	h.draw(r)
}
