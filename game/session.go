package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// maxParticles caps the cosmetic particles alive at once
const maxParticles = 600

// Game over captions
const (
	OverDied     = "YOU DIED"
	OverBreached = "ALIENS REACHED YOU"
)

// alienLanes are the x ranges an alien center may spawn in. The two aliens
// of a wave pair always use different lanes.
var alienLanes = [...][2]int{
	{75, 175},
	{325, 375},
	{525, 625},
}

// Session is one round of play: the player, the aliens, every bullet in
// flight and the heart bonus. It is advanced by Tick and owns all entities.
type Session struct {
	cfg        Config
	sprites    SpriteSource
	sounds     SoundPlayer
	rng        *rand.Rand
	logger     *log.Logger
	collisions *CollisionSystem

	Player  *Spaceship
	Aliens  []*Spaceship
	Bullets []*Bullet
	Heart   *Heart

	// Effects and Stars are cosmetic and never affect play
	Effects *ParticleSystem
	Stars   *Starfield

	Score int
	Level int

	// Goal is the score at which the heart starts falling
	Goal int

	// Frame counts ticks played
	Frame uint64

	// Over is set once the round has ended; OverText tells why
	Over     bool
	OverText string

	// scratch slices reused by collide
	friendly []*Bullet
	hostile  []*Bullet
	targets  []Entity
}

// NewSession starts a round. sprites may be nil, sounds defaults to NopSound
// and logger defaults to a discarding logger.
func NewSession(cfg Config, sprites SpriteSource, sounds SoundPlayer, rng *rand.Rand, logger *log.Logger) *Session {
	if sounds == nil {
		sounds = NopSound{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	// Cosmetic effects get their own stream so bursts never shift spawns
	fx := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
	return &Session{
		cfg:        cfg,
		sprites:    sprites,
		sounds:     sounds,
		rng:        rng,
		logger:     logger,
		collisions: NewCollisionSystem(cfg.SweptCollision),
		Player:     NewPlayer(cfg, sprites),
		Heart:      NewHeart(cfg, sprites),
		Effects:    NewParticleSystem(maxParticles, fx),
		Stars:      NewStarfield(cfg.Width(), cfg.Height(), fx),
		Level:      1,
		Goal:       cfg.HeartGoalStep,
	}
}

// HeartActive reports whether the heart is falling
func (s *Session) HeartActive() bool {
	return s.Score >= s.Goal && s.Heart.Alive
}

// Tick advances the round by one frame. It does nothing once the round is over.
func (s *Session) Tick(in Input) {
	if s.Over {
		return
	}
	s.Frame++
	t := &Tick{
		Frame:  s.Frame,
		Input:  in,
		Width:  s.cfg.Width(),
		Height: s.cfg.Height(),
	}

	s.Stars.Update()
	s.Effects.Update()

	s.Player.Update(t)
	if in.Fire {
		if b := s.Player.TryFire(s.Frame); b != nil {
			s.Bullets = append(s.Bullets, b)
			s.sounds.Play(SoundShoot)
		}
	}

	if len(s.Aliens) < s.Level {
		s.spawnPair()
	}

	s.move(t)
	s.collide()
	s.purge()
	s.checkOver()
}

// spawnPair adds two aliens of random kinds in two distinct lanes
func (s *Session) spawnPair() {
	first := s.rng.IntN(len(alienLanes))
	second := (first + 1 + s.rng.IntN(len(alienLanes)-1)) % len(alienLanes)

	for _, lane := range [2]int{first, second} {
		lo, hi := alienLanes[lane][0], alienLanes[lane][1]
		x := float64(lo + s.rng.IntN(hi-lo+1))
		kind := RandomAlienKind(s.rng)
		s.Aliens = append(s.Aliens, NewAlien(kind, x, s.cfg, s.sprites))
		s.logger.Debug("alien spawned", "kind", GetAlienKindConfig(kind).Name, "x", x, "level", s.Level)
	}
}

// move advances bullets, aliens with their fire, and the heart
func (s *Session) move(t *Tick) {
	for _, b := range s.Bullets {
		b.Update(t)
	}

	for _, a := range s.Aliens {
		a.Update(t)
		if b := a.AutoFire(inFlight(s.Bullets, a)); b != nil {
			s.Bullets = append(s.Bullets, b)
			s.sounds.Play(SoundShoot)
		}
	}

	if s.HeartActive() {
		s.Heart.Update(t)
	}
}

// collide resolves player bullets against aliens and then the heart, and
// alien bullets against the player
func (s *Session) collide() {
	s.friendly, s.hostile = s.friendly[:0], s.hostile[:0]
	for _, b := range s.Bullets {
		if b.Owner == FactionPlayer {
			s.friendly = append(s.friendly, b)
		} else {
			s.hostile = append(s.hostile, b)
		}
	}

	s.targets = s.targets[:0]
	for _, a := range s.Aliens {
		s.targets = append(s.targets, a)
	}
	if s.HeartActive() {
		s.targets = append(s.targets, s.Heart)
	}

	for _, hit := range s.collisions.Sweep(s.friendly, s.targets) {
		switch target := hit.Target.(type) {
		case *Spaceship:
			s.Effects.Burst(target.CenterX(), target.Y+target.H/2, ExplosionBurst)
			s.Score += s.cfg.KillScore
			s.Level = 1 + s.Score/s.cfg.LevelUpEvery
			s.sounds.Play(SoundKill)
			s.logger.Debug("alien destroyed", "score", s.Score, "level", s.Level)
		case *Heart:
			target.Claimed = true
			s.Effects.Burst(target.CenterX(), target.Y+target.H/2, HealBurst)
			s.Player.Heal(target.Restore)
			s.Goal += s.cfg.HeartGoalStep
			s.sounds.Play(SoundHealth)
			s.logger.Debug("heart claimed", "health", s.Player.Health, "goal", s.Goal)
		}
	}

	if s.collisions.Strike(s.hostile, s.Player) > 0 {
		s.Effects.Burst(s.Player.CenterX(), s.Player.Y, HitBurst)
		s.sounds.Play(SoundHit)
	}
	clear(s.targets)
}

// purge drops dead entities and replaces a dead heart with a fresh one
// above the screen
func (s *Session) purge() {
	s.Bullets = purge(s.Bullets)
	s.Aliens = purge(s.Aliens)
	if !s.Heart.Alive {
		s.Heart = NewHeart(s.cfg, s.sprites)
	}
}

// checkOver ends the round when an alien got through or the player has no
// health left
func (s *Session) checkOver() {
	for _, a := range s.Aliens {
		if a.Breached {
			s.Player.Health = 0
			s.end(OverBreached)
			return
		}
	}
	if s.Player.Health <= 0 {
		s.end(OverDied)
	}
}

func (s *Session) end(text string) {
	s.Over = true
	s.OverText = text
	s.sounds.Play(SoundGameOver)
	s.sounds.StopMusic()
	s.logger.Info("game over", "reason", text, "score", s.Score, "frames", s.Frame)
}

// Draw renders the play field and the HUD
func (s *Session) Draw(r *Renderer) {
	s.Stars.Draw(r)
	if s.HeartActive() {
		s.Heart.Draw(r)
	}
	for _, a := range s.Aliens {
		a.Draw(r)
	}
	for _, b := range s.Bullets {
		b.Draw(r)
	}
	if s.Player.Health > 0 {
		s.Player.Draw(r)
	}
	s.Effects.Draw(r)
	r.HUD(s.Score, s.Player.Health)
}

// DrawHUD renders only the score and health row
func (s *Session) DrawHUD(r *Renderer) {
	r.HUD(s.Score, s.Player.Health)
}
