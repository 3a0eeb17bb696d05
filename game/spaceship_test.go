package game

import "testing"

func tick(cfg Config, in Input) *Tick {
	return &Tick{Input: in, Width: cfg.Width(), Height: cfg.Height()}
}

func TestNewPlayerPlacement(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg, nil)

	if p.CenterX() != cfg.Width()/2 {
		t.Errorf("player center = %v, want %v", p.CenterX(), cfg.Width()/2)
	}
	if p.Y+p.H > cfg.Height() {
		t.Error("player should be fully on screen")
	}
	if p.Health != cfg.MaxHealth {
		t.Errorf("health = %d, want %d", p.Health, cfg.MaxHealth)
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		startX float64
		in     Input
		wantX  float64
	}{
		{"left", 100, Input{Left: true}, 90},
		{"right", 100, Input{Right: true}, 110},
		{"both cancel", 100, Input{Left: true, Right: true}, 100},
		{"left edge", 5, Input{Left: true}, 0},
		{"right edge", cfg.Width() - playerSize - 5, Input{Right: true}, cfg.Width() - playerSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(cfg, nil)
			p.X = tt.startX
			p.Update(tick(cfg, tt.in))
			if p.X != tt.wantX {
				t.Errorf("x = %v, want %v", p.X, tt.wantX)
			}
		})
	}
}

func TestAlienDescendsAndBreaches(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAlien(AlienSmall, 350, cfg, nil)

	if a.Y != -a.H {
		t.Fatalf("alien should spawn above the screen, y = %v", a.Y)
	}
	a.Update(tick(cfg, Input{Left: true}))
	if a.Y != -a.H+3 || a.X != 300 {
		t.Errorf("alien at (%v, %v), want straight descent at speed 3", a.X, a.Y)
	}
	if a.Breached {
		t.Error("alien should not breach right after spawning")
	}

	a.Y = cfg.Height() - cfg.EnemyLine - a.H - 3
	a.Update(tick(cfg, Input{}))
	if !a.Breached {
		t.Error("alien touching the enemy line should breach")
	}
}

func TestAlienKindTable(t *testing.T) {
	tests := []struct {
		kind   AlienKind
		size   float64
		speed  float64
		delay  int
		damage int
	}{
		{AlienSmall, 100, 3, 50, 10},
		{AlienMedium, 120, 1.5, 75, 25},
		{AlienBig, 150, 0.75, 100, 50},
	}
	for _, tt := range tests {
		kc := GetAlienKindConfig(tt.kind)
		if kc.Size != tt.size || kc.Speed != tt.speed || kc.ShootDelay != tt.delay || kc.Damage != tt.damage {
			t.Errorf("%s = %+v", kc.Name, kc)
		}
	}
}

func TestTryFireCooldown(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg, nil)

	first := p.TryFire(1)
	if first == nil {
		t.Fatal("first shot should fire")
	}
	if again := p.TryFire(2); again != nil {
		t.Error("second shot inside the cooldown should be refused")
	}
	if late := p.TryFire(1 + uint64(cfg.FireCooldown)); late == nil {
		t.Error("shot after the cooldown should fire")
	}
}

func TestMuzzlePositions(t *testing.T) {
	cfg := DefaultConfig()

	p := NewPlayer(cfg, nil)
	b := p.TryFire(1)
	if b.X != p.CenterX()-bulletW/2 || b.Y != p.Y {
		t.Errorf("player bullet at (%v, %v), want (%v, %v)", b.X, b.Y, p.CenterX()-bulletW/2, p.Y)
	}
	if b.VY >= 0 || b.Owner != FactionPlayer {
		t.Error("player bullet should travel up")
	}

	a := NewAlien(AlienBig, 350, cfg, nil)
	a.Y = 0
	a.shootTimer = a.ShootDelay - 1
	ab := a.AutoFire(false)
	if ab == nil {
		t.Fatal("alien should fire when its timer elapses")
	}
	if ab.Y != a.Y+a.H || ab.VY <= 0 || ab.Damage != 50 || ab.Owner != FactionEnemy {
		t.Errorf("alien bullet = %+v", ab)
	}
}

func TestAutoFireWaitsForBullet(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAlien(AlienSmall, 350, cfg, nil)
	a.Y = 0

	for i := 0; i < a.ShootDelay*2; i++ {
		if b := a.AutoFire(true); b != nil {
			t.Fatal("alien must not fire while its bullet is in flight")
		}
	}
	fired := 0
	for i := 0; i < a.ShootDelay; i++ {
		if a.AutoFire(false) != nil {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("fired %d times in one delay, want 1", fired)
	}
}

func TestAutoFireHoldsUntilHalfVisible(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAlien(AlienSmall, 350, cfg, nil)
	a.shootTimer = a.ShootDelay

	if a.AutoFire(false) != nil {
		t.Error("alien fully above the screen should hold fire")
	}
	a.Y = -a.H / 2
	if a.AutoFire(false) == nil {
		t.Error("half visible alien should fire")
	}
}

func TestHealthBounds(t *testing.T) {
	p := NewPlayer(DefaultConfig(), nil)

	p.TakeDamage(30)
	if p.Health != 70 {
		t.Errorf("health = %d, want 70", p.Health)
	}
	p.Heal(50)
	if p.Health != 100 {
		t.Errorf("heal should cap at max, got %d", p.Health)
	}
	p.TakeDamage(500)
	if p.Health != 0 {
		t.Errorf("damage should floor at zero, got %d", p.Health)
	}
}

func TestBulletLeavesScreen(t *testing.T) {
	cfg := DefaultConfig()

	up := NewBullet(100, 20, bulletW, bulletH, -30, 1, nil)
	up.Update(tick(cfg, Input{}))
	if up.Alive {
		t.Error("bullet crossing the top edge should die")
	}

	down := NewBullet(100, cfg.Height()-20, bulletW, bulletH, 30, 1, nil)
	down.Update(tick(cfg, Input{}))
	if down.Alive {
		t.Error("bullet crossing the bottom edge should die")
	}

	mid := NewBullet(100, 400, bulletW, bulletH, 30, 1, nil)
	mid.Update(tick(cfg, Input{}))
	if !mid.Alive || mid.Y != 430 || mid.PrevY != 400 {
		t.Errorf("bullet in flight = %+v", mid)
	}
}

func TestHeartFallsOut(t *testing.T) {
	cfg := DefaultConfig()
	h := NewHeart(cfg, nil)

	if h.CenterX() != heartCenterX || h.Y != -heartSize {
		t.Fatalf("heart spawned at (%v, %v)", h.X, h.Y)
	}
	h.Update(tick(cfg, Input{}))
	if h.Y != -heartSize+heartSpeed {
		t.Errorf("heart y = %v", h.Y)
	}

	h.Y = cfg.Height() + h.H - heartSpeed
	h.Update(tick(cfg, Input{}))
	if h.Alive {
		t.Error("heart fully below the screen should die")
	}
}

func TestPurgeKeepsOrder(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAlien(AlienSmall, 100, cfg, nil)
	b := NewAlien(AlienSmall, 350, cfg, nil)
	c := NewAlien(AlienSmall, 600, cfg, nil)
	b.Kill()

	got := purge([]*Spaceship{a, b, c})
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("purge = %v", got)
	}
}
