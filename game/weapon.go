package game

// Weapon rate-limits firing in ticks
type Weapon struct {
	// Cooldown is the minimum number of ticks between two shots
	Cooldown int

	// Damage dealt by each bullet to a ship that takes damage
	Damage int

	// Speed of spawned bullets in pixels per tick
	Speed float64

	// Bullet size
	BulletW, BulletH float64

	lastShot uint64
	fired    bool
}

// CanShoot checks if the weapon is ready to fire at the given frame.
// A weapon that never fired can fire immediately.
func (w *Weapon) CanShoot(frame uint64) bool {
	if !w.fired {
		return true
	}
	return frame-w.lastShot >= uint64(w.Cooldown)
}

// MarkFired starts the cooldown
func (w *Weapon) MarkFired(frame uint64) {
	w.lastShot = frame
	w.fired = true
}
