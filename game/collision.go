package game

// Collision records a bullet that hit a target during a sweep
type Collision struct {
	Bullet *Bullet
	Target Entity
}

// CollisionSystem tests bullets against hitboxes.
//
// The default test samples the bullet position once per tick: a bullet
// that crosses a target entirely between two samples is missed. Swept mode
// tests the vertical segment travelled during the last tick instead,
// including the step that carried a bullet off screen.
type CollisionSystem struct {
	Swept bool
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(swept bool) *CollisionSystem {
	return &CollisionSystem{Swept: swept}
}

// testable reports whether a bullet can still hit anything this tick
func (c *CollisionSystem) testable(b *Bullet) bool {
	return b.Alive || (c.Swept && b.Exited)
}

// consume kills a bullet that hit something
func consume(b *Bullet) {
	b.Exited = false
	b.Kill()
}

// Hit reports whether the bullet lies inside the box, edges included
func (c *CollisionSystem) Hit(b *Bullet, box Rect) bool {
	if !c.testable(b) {
		return false
	}
	x, y := b.Point()
	if !c.Swept {
		return box.Contains(x, y)
	}

	top, bottom := b.PrevY, y
	if top > bottom {
		top, bottom = bottom, top
	}
	return box.Overlaps(Rect{X: x, Y: top, W: 0, H: bottom - top})
}

// Sweep tests every live bullet against every live target. Targets are
// visited in slice order and a bullet only counts its first hit. Both the
// bullet and the target are marked dead on a hit.
func (c *CollisionSystem) Sweep(bullets []*Bullet, targets []Entity) []Collision {
	var hits []Collision
	for _, b := range bullets {
		if !c.testable(b) {
			continue
		}
		for _, t := range targets {
			body := t.Base()
			if !body.Alive || !c.Hit(b, body.Box()) {
				continue
			}
			consume(b)
			body.Kill()
			hits = append(hits, Collision{Bullet: b, Target: t})
			break
		}
	}
	return hits
}

// Strike applies every live bullet that hits the ship as damage instead of
// a kill. Each hitting bullet is consumed. It returns the number of hits.
func (c *CollisionSystem) Strike(bullets []*Bullet, ship *Spaceship) int {
	if !ship.Alive {
		return 0
	}
	n := 0
	for _, b := range bullets {
		if !c.Hit(b, ship.Box()) {
			continue
		}
		consume(b)
		ship.TakeDamage(b.Damage)
		n++
	}
	return n
}
