package game

// Bullet is a projectile moving vertically at constant speed
type Bullet struct {
	Body

	// Owner is the faction that fired the bullet
	Owner Faction

	// Shooter is the ship that fired the bullet
	Shooter *Spaceship

	// VY is the vertical velocity in pixels per tick, negative is up
	VY float64

	Damage int

	// PrevY is the y coordinate before the last update
	PrevY float64

	// Exited is set when the last update carried the bullet out of the
	// play area. Swept collision still tests that final step.
	Exited bool
}

// NewBullet creates a live bullet fired by shooter
func NewBullet(x, y, w, h, vy float64, damage int, shooter *Spaceship) *Bullet {
	b := &Bullet{
		Body:    NewBody(x, y, w, h, nil),
		VY:      vy,
		Damage:  damage,
		Shooter: shooter,
		PrevY:   y,
	}
	if shooter != nil {
		b.Owner = shooter.Faction
	}
	return b
}

// Base returns the shared body
func (b *Bullet) Base() *Body { return &b.Body }

// Update moves the bullet and kills it once it leaves the play area vertically
func (b *Bullet) Update(t *Tick) {
	if !b.Alive {
		return
	}
	b.PrevY = b.Y
	b.Y += b.VY
	if b.Y <= 0 || b.Y >= t.Height {
		b.Exited = true
		b.Kill()
	}
}

// Point returns the sampled position used for collision tests
func (b *Bullet) Point() (float64, float64) {
	return b.X, b.Y
}

// Draw renders the bullet in its faction color
func (b *Bullet) Draw(r *Renderer) {
	r.FillRect(b.Box(), b.Owner.BulletColor())
}

// inFlight reports whether any live bullet in the list was fired by ship
func inFlight(bullets []*Bullet, ship *Spaceship) bool {
	for _, b := range bullets {
		if b.Alive && b.Shooter == ship {
			return true
		}
	}
	return false
}
