package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/alarm/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var fieldNames = [...]string{"hours", "minutes", "seconds"}

// InputError reports a duration field that is not a non-negative integer.
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q is not a non-negative whole number", e.Field, e.Value)
}

// ParseDuration converts the hour, minute and second fields to seconds.
func ParseDuration(hours, minutes, seconds string) (int, error) {
	weights := [...]int{3600, 60, 1}
	total := 0
	for i, raw := range [...]string{hours, minutes, seconds} {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || v < 0 {
			return 0, &InputError{Field: fieldNames[i], Value: raw}
		}
		total += v * weights[i]
	}
	return total, nil
}

func newDurationInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(fieldNames))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "00"
		ti.CharLimit = config.InputCharLimit
		ti.Width = config.InputWidth
		ti.SetValue("00")
		inputs[i] = ti
	}
	inputs[0].Focus()
	return inputs
}

func (m MainModel) durationValues() (string, string, string) {
	return m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value()
}

// focusInput moves the cursor to field i, wrapping around.
func (m MainModel) focusInput(i int) (MainModel, tea.Cmd) {
	n := len(m.inputs)
	m.focused = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focused {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return m, cmd
}

func (m MainModel) blurInputs() MainModel {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m
}

func (m MainModel) updateFocusedInput(msg tea.Msg) (MainModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}
