package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game represents the main game state and implements ebiten.Game
type Game struct {
	cfg    Config
	logger *log.Logger

	sounds   SoundPlayer
	assets   *Assets
	renderer *Renderer
	poller   *InputPoller
	profiler *Profiler
	rng      *rand.Rand

	machine *Machine
	screen  screen

	// session is the current or last finished round
	session *Session

	// userScoreFile is the extra file chosen on the score file screen
	userScoreFile string

	notices []string
	quit    bool
}

// NewGame creates a new game instance in the main menu. sounds may be nil.
func NewGame(cfg Config, logger *log.Logger, sounds SoundPlayer) (*Game, error) {
	if sounds == nil {
		sounds = NopSound{}
	}
	fonts, err := LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	renderer := NewRenderer(fonts)
	renderer.Debug = cfg.Debug

	g := &Game{
		cfg:      cfg,
		logger:   logger,
		sounds:   sounds,
		assets:   NewAssets(cfg.AssetDir, logger),
		renderer: renderer,
		poller:   NewInputPoller(),
		profiler: NewProfiler(cfg.ProfileDir, cfg.TPS, logger),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		machine:  NewMachine(),
	}
	g.machine.OnChange = g.enter
	g.screen = newMainMenu(g)

	// Preload sprites so missing files show up as notices on the main menu
	for _, a := range spriteAssets() {
		g.assets.Sprite(a.name, a.w, a.h)
	}
	return g, nil
}

type spriteAsset struct {
	name string
	w, h int
}

// spriteAssets lists every image the game draws at its drawn size
func spriteAssets() []spriteAsset {
	list := []spriteAsset{
		{playerAsset, playerSize, playerSize},
		{heartAsset, heartSize, heartSize},
	}
	for k := AlienKind(0); k < AlienKindCount; k++ {
		kc := GetAlienKindConfig(k)
		list = append(list, spriteAsset{kc.Asset, int(kc.Size), int(kc.Size)})
	}
	return list
}

// AddNotice records a startup problem shown on the main menu
func (g *Game) AddNotice(format string, args ...any) {
	g.notices = append(g.notices, fmt.Sprintf(format, args...))
}

// Notices returns every startup problem, asset failures included
func (g *Game) Notices() []string {
	return append(g.notices[:len(g.notices):len(g.notices)], g.assets.Notices()...)
}

// State returns the current screen state
func (g *Game) State() State {
	return g.machine.State()
}

// fire applies an event to the state machine. Invalid events are logged
// and ignored.
func (g *Game) fire(e Event) {
	if err := g.machine.Fire(e); err != nil {
		g.logger.Warn("ignored event", "err", err)
	}
}

// enter builds the screen of the new state and handles music and sessions
func (g *Game) enter(from, to State, e Event) {
	g.logger.Debug("state change", "from", from, "to", to, "event", e)

	switch to {
	case StateMainMenu:
		g.screen = newMainMenu(g)
	case StateGamePlay:
		if from != StatePause {
			g.session = NewSession(g.cfg, g.assets, g.sounds, g.rng, g.logger)
		}
		g.screen = &playScreen{g: g}
		g.sounds.StartMusic()
	case StatePause:
		g.sounds.StopMusic()
		g.screen = newPauseMenu(g)
	case StateGameOver:
		g.screen = newGameOverMenu(g)
	case StateSaveScore:
		g.screen = newSaveScoreMenu(g, g.session.Score)
	case StateScoreFile:
		g.userScoreFile = ""
		g.screen = newScoreFileMenu(g)
	case StateHighScores:
		g.screen = newHighScoresMenu(g, g.userScoreFile)
	case StateQuit:
		g.sounds.StopMusic()
		g.quit = true
	}
}

// Step advances the game by one tick with the given input
func (g *Game) Step(in Input) error {
	if in.JustPressed(ebiten.KeyF1) {
		g.renderer.Debug = !g.renderer.Debug
	}
	if !g.quit {
		g.screen.Update(in)
	}
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// Update updates the game state
func (g *Game) Update() error {
	start := time.Now()
	err := g.Step(g.poller.Poll())
	if g.renderer.Debug {
		g.profiler.Observe(time.Since(start))
	}
	return err
}

// Draw draws the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.renderer.Clear()
	g.screen.Draw(g.renderer)
	if g.renderer.Debug {
		g.drawDebug()
	}
}

// drawDebug prints the state and tick counters in the top-right corner
func (g *Game) drawDebug() {
	line := fmt.Sprintf("%v TPS %.0f FPS %.0f", g.State(), ebiten.ActualTPS(), ebiten.ActualFPS())
	if g.session != nil {
		line += fmt.Sprintf(" frame %d", g.session.Frame)
	}
	r := g.renderer
	w, _ := r.Measure(line, FontSmall)
	r.Text(line, FontSmall, g.cfg.Width()-w-10, 10, colorHitbox)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
