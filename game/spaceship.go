package game

// Spaceship is the player ship or an alien
type Spaceship struct {
	Body

	Faction Faction

	// Kind is only meaningful for aliens
	Kind AlienKind

	// Speed in pixels per tick: horizontal for the player, downward for aliens
	Speed float64

	Health    int
	MaxHealth int

	Weapon Weapon

	// ShootDelay is the alien auto-fire interval in ticks
	ShootDelay int

	// Breached is set once an alien crosses the enemy line
	Breached bool

	enemyLine  float64
	shootTimer int
}

// NewPlayer creates the player ship centered at the bottom of the play area
func NewPlayer(cfg Config, sprites SpriteSource) *Spaceship {
	x := cfg.Width()/2 - playerSize/2
	y := cfg.Height() - playerSize - playerBottomGap
	return &Spaceship{
		Body:      NewBody(x, y, playerSize, playerSize, sprite(sprites, playerAsset, playerSize, playerSize)),
		Faction:   FactionPlayer,
		Speed:     cfg.PlayerSpeed,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Weapon: Weapon{
			Cooldown: cfg.FireCooldown,
			Damage:   1,
			Speed:    cfg.BulletSpeed,
			BulletW:  bulletW,
			BulletH:  bulletH,
		},
	}
}

// NewAlien creates an alien of the given kind centered on x, just above the screen
func NewAlien(kind AlienKind, centerX float64, cfg Config, sprites SpriteSource) *Spaceship {
	kc := GetAlienKindConfig(kind)
	return &Spaceship{
		Body:       NewBody(centerX-kc.Size/2, SpawnAbove, kc.Size, kc.Size, sprite(sprites, kc.Asset, int(kc.Size), int(kc.Size))),
		Faction:    FactionEnemy,
		Kind:       kind,
		Speed:      kc.Speed,
		Health:     1,
		MaxHealth:  1,
		ShootDelay: kc.ShootDelay,
		Weapon: Weapon{
			Damage:  kc.Damage,
			Speed:   cfg.BulletSpeed,
			BulletW: bulletW,
			BulletH: bulletH,
		},
		enemyLine: cfg.EnemyLine,
	}
}

// Base returns the shared body
func (s *Spaceship) Base() *Body { return &s.Body }

// IsPlayer reports whether this is the player ship
func (s *Spaceship) IsPlayer() bool { return s.Faction == FactionPlayer }

// Update moves the ship by one tick
func (s *Spaceship) Update(t *Tick) {
	if !s.Alive {
		return
	}
	if s.IsPlayer() {
		s.X += s.Speed * t.Input.Direction()
		s.clamp(t.Width)
		return
	}

	s.Y += s.Speed
	if s.Y+s.H >= t.Height-s.enemyLine {
		s.Breached = true
	}
}

// clamp keeps the ship inside [0, width-W]
func (s *Spaceship) clamp(width float64) {
	if s.X < 0 {
		s.X = 0
	} else if s.X+s.W > width {
		s.X = width - s.W
	}
}

// Draw renders the ship
func (s *Spaceship) Draw(r *Renderer) {
	s.draw(r)
}

// TryFire spawns a bullet if the weapon is off cooldown
func (s *Spaceship) TryFire(frame uint64) *Bullet {
	if !s.Alive || !s.Weapon.CanShoot(frame) {
		return nil
	}
	s.Weapon.MarkFired(frame)
	return s.spawnBullet()
}

// AutoFire advances the alien shoot timer and fires when it elapses.
// The timer only runs while the alien has no bullet in flight, and the
// alien holds fire until half of it is on screen.
func (s *Spaceship) AutoFire(inFlight bool) *Bullet {
	if !s.Alive || inFlight {
		return nil
	}
	s.shootTimer++
	if s.shootTimer < s.ShootDelay || s.Y+s.H/2 < 0 {
		return nil
	}
	s.shootTimer = 0
	return s.spawnBullet()
}

// spawnBullet places a bullet at the muzzle: top edge for the player,
// bottom edge for aliens
func (s *Spaceship) spawnBullet() *Bullet {
	x := s.CenterX() - s.Weapon.BulletW/2
	y := s.Y
	vy := -s.Weapon.Speed
	if !s.IsPlayer() {
		y += s.H
		vy = s.Weapon.Speed
	}
	return NewBullet(x, y, s.Weapon.BulletW, s.Weapon.BulletH, vy, s.Weapon.Damage, s)
}

// TakeDamage lowers health, never below zero
func (s *Spaceship) TakeDamage(amount int) {
	s.Health -= amount
	if s.Health < 0 {
		s.Health = 0
	}
}

// Heal raises health up to MaxHealth
func (s *Spaceship) Heal(amount int) {
	s.Health += amount
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
}
