package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"pixeldefender/scores"
)

// screen is the UI of one state. A screen is built when its state is
// entered and dropped when the state is left.
type screen interface {
	Update(in Input)
	Draw(r *Renderer)
}

// Save screen status texts
const (
	statusSaved    = "Score saved!"
	statusNotSaved = "Score NOT saved!"
	statusBadPath  = "Invalid path!"
	statusSave     = "Save score (s)"
	statusView     = "See scores (s)"
)

// defaultPlayerName is stored when the name field is left empty
const defaultPlayerName = "Player"

// placeholder fills the high score table up to TopN rows
const placeholder = "___"

// Standard button sizes
const (
	buttonW     = 200
	buttonWideW = 300
	buttonH     = 80
)

// centeredButton creates a button horizontally centered on the screen
func centeredButton(g *Game, label string, w, y float64, action func()) *Button {
	return NewButton(label, g.cfg.Width()/2-w/2, y, w, buttonH, action)
}

// handleButtons runs every button against the input and stops at the first click
func handleButtons(in Input, buttons ...*Button) {
	for _, b := range buttons {
		if b.Handle(in) {
			return
		}
	}
}

// anyActive reports whether one of the fields has keyboard focus
func anyActive(fields ...*InputField) bool {
	for _, f := range fields {
		if f.Active {
			return true
		}
	}
	return false
}

type mainMenu struct {
	g       *Game
	buttons []*Button
}

func newMainMenu(g *Game) *mainMenu {
	h := g.cfg.Height()
	return &mainMenu{
		g: g,
		buttons: []*Button{
			centeredButton(g, "Play", buttonW, h/2, func() { g.fire(EventPlay) }),
			centeredButton(g, "High Scores", buttonWideW, h/2+125, func() { g.fire(EventShowScores) }),
			centeredButton(g, "Quit", buttonW, h/2+250, func() { g.fire(EventQuit) }),
		},
	}
}

func (m *mainMenu) Update(in Input) {
	handleButtons(in, m.buttons...)
}

func (m *mainMenu) Draw(r *Renderer) {
	w := m.g.cfg.Width()
	r.TextCentered("Pixel Defender", FontHuge, w/2, 150, colorWhite)
	for _, b := range m.buttons {
		b.Draw(r)
	}
	for i, n := range m.g.Notices() {
		r.Text(n, FontSmall, 10, 10+float64(i)*30, colorRed)
	}
}

// playScreen runs the session
type playScreen struct {
	g *Game
}

func (p *playScreen) Update(in Input) {
	s := p.g.session
	if in.JustPressed(ebiten.KeyP) {
		p.g.fire(EventPause)
		return
	}
	s.Tick(in)
	if s.Over {
		p.g.fire(EventGameOver)
	}
}

func (p *playScreen) Draw(r *Renderer) {
	p.g.session.Draw(r)
}

// pauseMenu draws over the frozen play field
type pauseMenu struct {
	g    *Game
	quit *Button
}

func newPauseMenu(g *Game) *pauseMenu {
	return &pauseMenu{
		g:    g,
		quit: centeredButton(g, "Quit", buttonW, g.cfg.Height()/2+120, func() { g.fire(EventQuit) }),
	}
}

func (p *pauseMenu) Update(in Input) {
	if in.JustPressed(ebiten.KeySpace) {
		p.g.fire(EventResume)
		return
	}
	p.quit.Handle(in)
}

func (p *pauseMenu) Draw(r *Renderer) {
	p.g.session.Draw(r)
	r.Overlay()

	w, h := p.g.cfg.Width(), p.g.cfg.Height()
	r.TextCentered("Paused", FontTitle, w/2, h/2-200, colorWhite)
	r.TextCentered("Resume (SPACE)", FontLarge, w/2, h/2-50, colorWhite)
	p.quit.Draw(r)
}

type gameOverMenu struct {
	g       *Game
	buttons []*Button
}

func newGameOverMenu(g *Game) *gameOverMenu {
	top := g.cfg.Height()/2 - 100
	return &gameOverMenu{
		g: g,
		buttons: []*Button{
			centeredButton(g, "Save Score", buttonWideW, top, func() { g.fire(EventSave) }),
			centeredButton(g, "Retry", buttonW, top+110, func() { g.fire(EventRetry) }),
			centeredButton(g, "Menu", buttonW, top+220, func() { g.fire(EventBack) }),
			centeredButton(g, "Quit", buttonW, top+330, func() { g.fire(EventQuit) }),
		},
	}
}

func (m *gameOverMenu) Update(in Input) {
	handleButtons(in, m.buttons...)
}

func (m *gameOverMenu) Draw(r *Renderer) {
	s := m.g.session
	r.TextCentered(s.OverText, FontTitle, m.g.cfg.Width()/2, 200, colorWhite)
	for _, b := range m.buttons {
		b.Draw(r)
	}
	s.DrawHUD(r)
}

// saveScoreMenu stores the final score under a name, in the default file
// or an existing .txt file given by the player
type saveScoreMenu struct {
	g      *Game
	score  int
	name   *InputField
	path   *InputField
	status string
	saved  bool
}

func newSaveScoreMenu(g *Game, score int) *saveScoreMenu {
	w, h := g.cfg.Width(), g.cfg.Height()
	name := NewInputField(w/2-150, h/2-10, 300, 50, FontLarge)
	name.MaxLen = 20
	return &saveScoreMenu{
		g:      g,
		score:  score,
		name:   name,
		path:   NewInputField(w/2-340, h/2+180, 680, 35, FontSmall),
		status: statusSave,
	}
}

func (m *saveScoreMenu) Update(in Input) {
	editing := anyActive(m.name, m.path)
	m.name.HandleInput(in)
	m.path.HandleInput(in)
	if editing {
		return
	}

	switch {
	case in.JustPressed(ebiten.KeyS) && !m.saved:
		m.save()
	case in.JustPressed(ebiten.KeyB):
		m.g.fire(EventBack)
	}
}

// save appends the entry once; later presses are ignored after a success
func (m *saveScoreMenu) save() {
	name := m.name.Text
	if name == "" {
		name = defaultPlayerName
	}
	path := m.path.Text
	if path == "" {
		path = m.g.cfg.ScoreFile
	}

	if err := scores.CheckPath(path, m.g.cfg.ScoreFile); err != nil {
		m.g.logger.Warn("score not saved", "err", err)
		m.status = statusBadPath
		return
	}
	if err := scores.Append(path, scores.Entry{Name: name, Score: m.score}); err != nil {
		m.g.logger.Error("score not saved", "err", err)
		m.status = statusNotSaved
		return
	}
	m.g.logger.Info("score saved", "name", name, "score", m.score, "path", path)
	m.status = statusSaved
	m.saved = true
}

func (m *saveScoreMenu) Draw(r *Renderer) {
	cx := m.g.cfg.Width() / 2
	r.TextCentered(m.status, FontLarge, cx, 180, colorWhite)
	r.TextCentered("Go back (b)", FontLarge, cx, 280, colorWhite)
	r.TextCentered("Name", FontLarge, cx, 370, colorWhite)
	r.TextCentered("File path (optional)", FontLarge, cx, 580, colorWhite)
	m.name.Draw(r)
	m.path.Draw(r)
}

// scoreFileMenu asks for an optional extra score file before showing the table
type scoreFileMenu struct {
	g      *Game
	path   *InputField
	status string
}

func newScoreFileMenu(g *Game) *scoreFileMenu {
	w, h := g.cfg.Width(), g.cfg.Height()
	return &scoreFileMenu{
		g:      g,
		path:   NewInputField(w/2-340, h/2+100, 680, 35, FontSmall),
		status: statusView,
	}
}

func (m *scoreFileMenu) Update(in Input) {
	editing := m.path.Active
	m.path.HandleInput(in)
	if editing {
		return
	}

	switch {
	case in.JustPressed(ebiten.KeyS):
		path := m.path.Text
		if path != "" {
			if err := scores.CheckPath(path, m.g.cfg.ScoreFile); err != nil {
				m.g.logger.Warn("invalid score file", "err", err)
				m.status = statusBadPath
				return
			}
		}
		m.g.userScoreFile = path
		m.g.fire(EventViewScores)
	case in.JustPressed(ebiten.KeyB):
		m.g.fire(EventBack)
	}
}

func (m *scoreFileMenu) Draw(r *Renderer) {
	cx := m.g.cfg.Width() / 2
	r.TextCentered(m.status, FontLarge, cx, 180, colorWhite)
	r.TextCentered("Go back (b)", FontLarge, cx, 280, colorWhite)
	r.TextCentered("File path (optional)", FontLarge, cx, 480, colorWhite)
	r.TextCentered("* To skip file input just press 's'", FontSmall, cx, 650, colorGray)
	m.path.Draw(r)
}

// highScoresMenu shows the top entries of the default file, merged with
// the player's file when one was given
type highScoresMenu struct {
	g     *Game
	title string
	rows  []string
}

// loadHighScores builds the table title and exactly TopN rows
func loadHighScores(defaultPath, userPath string) (title string, rows []string, err error) {
	title = fmt.Sprintf("Top %d Scores", scores.TopN)

	var entries []scores.Entry
	if userPath != "" {
		user, _, uerr := scores.ReadAll(userPath)
		if uerr != nil {
			title = "Error reading user file!"
			err = uerr
		}
		entries = append(entries, user...)
	}
	def, _, derr := scores.ReadAll(defaultPath)
	if derr != nil {
		title = "Error reading file!"
		err = errors.Join(err, derr)
	}
	entries = append(entries, def...)

	for _, e := range scores.Top(entries, scores.TopN) {
		rows = append(rows, e.Label())
	}
	for len(rows) < scores.TopN {
		rows = append(rows, placeholder)
	}
	return title, rows, err
}

func newHighScoresMenu(g *Game, userPath string) *highScoresMenu {
	title, rows, err := loadHighScores(g.cfg.ScoreFile, userPath)
	if err != nil {
		g.logger.Warn("failed to read scores", "err", err)
	}
	return &highScoresMenu{g: g, title: title, rows: rows}
}

func (m *highScoresMenu) Update(in Input) {
	if in.JustPressed(ebiten.KeyB) {
		m.g.fire(EventBack)
	}
}

func (m *highScoresMenu) Draw(r *Renderer) {
	cx := m.g.cfg.Width() / 2
	r.TextCentered(m.title, FontLarge, cx, 100, colorWhite)
	for i, row := range m.rows {
		r.TextCentered(row, FontLarge, cx, 220+float64(i)*90, colorWhite)
	}
	r.TextCentered("Go back (b)", FontLarge, cx, 750, colorWhite)
}
