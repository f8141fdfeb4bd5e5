package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects which key bindings are live.
type Mode int

const (
	// ModeEditing: the duration fields own the keyboard.
	ModeEditing Mode = iota
	// ModeCountdown: a countdown is running, paused or finished.
	ModeCountdown
)

type KeyHandler func(m MainModel) (MainModel, tea.Cmd)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Modes       []Mode
	Priority    int
}

func (b KeyBinding) AppliesToMode(mode Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	mode := m.mode()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToMode(mode) {
			next, cmd := b.Handler(m)
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForMode(mode Mode) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToMode(mode) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForMode(mode Mode) string {
	bindings := r.GetBindingsForMode(mode)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	editing := []Mode{ModeEditing}
	countdown := []Mode{ModeCountdown}

	r.Register(KeyBinding{Key: "ctrl+c", Handler: MainModel.quit, Priority: 10})
	r.Register(KeyBinding{Key: "enter", Handler: MainModel.startTimer, Description: "start"})
	r.Register(KeyBinding{Key: "tab", Handler: MainModel.nextField, Description: "next field", Modes: editing})
	r.Register(KeyBinding{Key: "shift+tab", Handler: MainModel.prevField, Modes: editing})
	r.Register(KeyBinding{Key: "esc", Handler: MainModel.quit, Description: "quit", Modes: editing})
	r.Register(KeyBinding{Key: "p", Handler: MainModel.pauseTimer, Description: "pause", Modes: countdown})
	r.Register(KeyBinding{Key: "u", Handler: MainModel.unpauseTimer, Description: "unpause", Modes: countdown})
	r.Register(KeyBinding{Key: "r", Handler: MainModel.resetTimer, Description: "reset", Modes: countdown})
	r.Register(KeyBinding{Key: "q", Handler: MainModel.quit, Description: "quit", Modes: countdown})
	return r
}
