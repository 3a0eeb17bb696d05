package game

import (
	"errors"
	"fmt"
)

// ErrBadTransition is returned when an event is not valid in the current state
var ErrBadTransition = errors.New("invalid state transition")

// State is a top-level screen
type State int

const (
	StateMainMenu State = iota
	StateGamePlay
	StatePause
	StateGameOver
	StateSaveScore
	StateScoreFile
	StateHighScores
	StateQuit
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateGamePlay:
		return "GamePlay"
	case StatePause:
		return "Pause"
	case StateGameOver:
		return "GameOver"
	case StateSaveScore:
		return "SaveScore"
	case StateScoreFile:
		return "ScoreFile"
	case StateHighScores:
		return "HighScores"
	case StateQuit:
		return "Quit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event triggers a transition
type Event int

const (
	EventPlay Event = iota
	EventPause
	EventResume
	EventGameOver
	EventSave
	EventShowScores
	EventViewScores
	EventRetry
	EventBack
	EventQuit
)

// String returns the event name
func (e Event) String() string {
	switch e {
	case EventPlay:
		return "Play"
	case EventPause:
		return "Pause"
	case EventResume:
		return "Resume"
	case EventGameOver:
		return "GameOver"
	case EventSave:
		return "Save"
	case EventShowScores:
		return "ShowScores"
	case EventViewScores:
		return "ViewScores"
	case EventRetry:
		return "Retry"
	case EventBack:
		return "Back"
	case EventQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

type transition struct {
	from  State
	event Event
}

// transitions lists every valid move. Quit is accepted from every screen
// and handled by Fire.
var transitions = map[transition]State{
	{StateMainMenu, EventPlay}:        StateGamePlay,
	{StateMainMenu, EventShowScores}:  StateScoreFile,
	{StateGamePlay, EventPause}:       StatePause,
	{StateGamePlay, EventGameOver}:    StateGameOver,
	{StatePause, EventResume}:         StateGamePlay,
	{StateGameOver, EventSave}:        StateSaveScore,
	{StateGameOver, EventRetry}:       StateGamePlay,
	{StateGameOver, EventBack}:        StateMainMenu,
	{StateSaveScore, EventBack}:       StateMainMenu,
	{StateScoreFile, EventViewScores}: StateHighScores,
	{StateScoreFile, EventBack}:       StateMainMenu,
	{StateHighScores, EventBack}:      StateMainMenu,
}

// Machine tracks the current screen
type Machine struct {
	current State

	// OnChange is called after every successful transition
	OnChange func(from, to State, e Event)
}

// NewMachine creates a machine in the main menu
func NewMachine() *Machine {
	return &Machine{current: StateMainMenu}
}

// State returns the current state
func (m *Machine) State() State {
	return m.current
}

// Fire applies an event. The state is unchanged when the event is invalid.
func (m *Machine) Fire(e Event) error {
	if m.current == StateQuit {
		return fmt.Errorf("%w: %v after quit", ErrBadTransition, e)
	}

	next, ok := transitions[transition{m.current, e}]
	if e == EventQuit {
		next, ok = StateQuit, true
	}
	if !ok {
		return fmt.Errorf("%w: %v in %v", ErrBadTransition, e, m.current)
	}

	from := m.current
	m.current = next
	if m.OnChange != nil {
		m.OnChange(from, next, e)
	}
	return nil
}
