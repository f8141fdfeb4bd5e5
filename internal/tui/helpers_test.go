package tui

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/akyairhashvil/alarm/internal/journal"
	tea "github.com/charmbracelet/bubbletea"
)

// parkedClock holds every ticking goroutine in its first sleep until the test ends.
type parkedClock struct {
	release chan struct{}
}

func (c parkedClock) Sleep(time.Duration) { <-c.release }

type stubSink struct {
	alerts chan struct{}
}

func (s stubSink) Alert() error {
	s.alerts <- struct{}{}
	return nil
}

func (s stubSink) Name() string { return "stub" }

func setupTestModel(t *testing.T) (MainModel, *journal.Journal, stubSink) {
	t.Helper()
	ctx := context.Background()
	j, err := journal.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("journal Open failed: %v", err)
	}
	clock := parkedClock{release: make(chan struct{})}
	t.Cleanup(func() {
		close(clock.release)
		if err := j.Close(); err != nil {
			t.Logf("journal close failed: %v", err)
		}
	})
	sink := stubSink{alerts: make(chan struct{}, 4)}
	m := NewMainModel(ctx, Options{
		Journal: j,
		Sink:    sink,
		Clock:   clock,
		Logger:  log.New(j, "", 0),
	})
	return m, j, sink
}

func setFields(m MainModel, h, min, s string) MainModel {
	m.inputs[0].SetValue(h)
	m.inputs[1].SetValue(min)
	m.inputs[2].SetValue(s)
	return m
}

func press(t *testing.T, m MainModel, msg tea.KeyMsg) (MainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(MainModel)
	if !ok {
		t.Fatalf("expected MainModel, got %T", next)
	}
	return out, cmd
}

func pressKey(t *testing.T, m MainModel, key string) (MainModel, tea.Cmd) {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func pressEnter(t *testing.T, m MainModel) (MainModel, tea.Cmd) {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// deliver runs cmd the way the bubbletea runtime would and feeds the result back.
func deliver(t *testing.T, m MainModel, cmd tea.Cmd) (MainModel, tea.Msg, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command to run")
	}
	msgCh := make(chan tea.Msg, 1)
	go func() { msgCh <- cmd() }()
	select {
	case msg := <-msgCh:
		next, nextCmd := m.Update(msg)
		return next.(MainModel), msg, nextCmd
	case <-time.After(2 * time.Second):
		t.Fatalf("command never produced a message")
	}
	return m, nil, nil
}

func hasActivity(m MainModel, message string) bool {
	for _, a := range m.activity {
		if a.Message == message {
			return true
		}
	}
	return false
}
