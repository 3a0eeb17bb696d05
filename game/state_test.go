package game

import (
	"errors"
	"testing"
)

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   State
	}{
		{"play", []Event{EventPlay}, StateGamePlay},
		{"pause and resume", []Event{EventPlay, EventPause, EventResume}, StateGamePlay},
		{"game over", []Event{EventPlay, EventGameOver}, StateGameOver},
		{"retry", []Event{EventPlay, EventGameOver, EventRetry}, StateGamePlay},
		{"save then back", []Event{EventPlay, EventGameOver, EventSave, EventBack}, StateMainMenu},
		{"menu from game over", []Event{EventPlay, EventGameOver, EventBack}, StateMainMenu},
		{"score file", []Event{EventShowScores}, StateScoreFile},
		{"view scores", []Event{EventShowScores, EventViewScores}, StateHighScores},
		{"back from scores", []Event{EventShowScores, EventViewScores, EventBack}, StateMainMenu},
		{"quit from pause", []Event{EventPlay, EventPause, EventQuit}, StateQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, e := range tt.events {
				if err := m.Fire(e); err != nil {
					t.Fatalf("Fire(%v): %v", e, err)
				}
			}
			if m.State() != tt.want {
				t.Errorf("state = %v, want %v", m.State(), tt.want)
			}
		})
	}
}

func TestMachineRejectsInvalidEvents(t *testing.T) {
	tests := []struct {
		name  string
		setup []Event
		bad   Event
	}{
		{"resume from menu", nil, EventResume},
		{"pause in pause", []Event{EventPlay, EventPause}, EventPause},
		{"save while playing", []Event{EventPlay}, EventSave},
		{"back while playing", []Event{EventPlay}, EventBack},
		{"retry from scores", []Event{EventShowScores}, EventRetry},
		{"anything after quit", []Event{EventQuit}, EventPlay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, e := range tt.setup {
				if err := m.Fire(e); err != nil {
					t.Fatalf("setup Fire(%v): %v", e, err)
				}
			}
			before := m.State()
			if err := m.Fire(tt.bad); !errors.Is(err, ErrBadTransition) {
				t.Errorf("Fire(%v) error = %v, want ErrBadTransition", tt.bad, err)
			}
			if m.State() != before {
				t.Errorf("state changed to %v on invalid event", m.State())
			}
		})
	}
}

func TestMachineOnChange(t *testing.T) {
	m := NewMachine()
	var got []State
	m.OnChange = func(from, to State, e Event) {
		got = append(got, from, to)
	}

	_ = m.Fire(EventPlay)
	_ = m.Fire(EventBack)
	_ = m.Fire(EventPause)

	want := []State{StateMainMenu, StateGamePlay, StateGamePlay, StatePause}
	if len(got) != len(want) {
		t.Fatalf("OnChange calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OnChange calls = %v, want %v", got, want)
			break
		}
	}
}
