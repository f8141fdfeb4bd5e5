package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/alarm/internal/config"
	"github.com/akyairhashvil/alarm/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m MainModel) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderInputs(),
		m.renderDisplay(),
	}
	if m.hasCountdown && m.inputErr == nil && m.engine != nil {
		sections = append(sections, m.progress.ViewAs(fraction(m.remaining, m.engine.Duration())))
	}
	sections = append(sections, m.renderStatus())
	if activity := m.renderActivity(); activity != "" {
		sections = append(sections, activity)
	}
	sections = append(sections, CurrentTheme.Dim.Render(m.registry.HelpForMode(m.mode())))
	return CurrentTheme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m MainModel) renderHeader() string {
	title := CurrentTheme.Header.Render("Alarm Timer")
	badge := CurrentTheme.Badge.Render("[" + m.state().String() + "]")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", badge)
}

func (m MainModel) renderInputs() string {
	labels := [...]string{"HH", "MM", "SS"}
	cells := make([]string, 0, len(m.inputs)*2)
	for i, in := range m.inputs {
		style := CurrentTheme.Input
		if m.mode() == ModeEditing && i == m.focused {
			style = CurrentTheme.FocusedInput
		}
		cells = append(cells, CurrentTheme.Dim.Render(" "+labels[i]+" "), style.Render(in.View()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, cells...)
	return lipgloss.JoinVertical(lipgloss.Left, config.PromptText, row)
}

// displayText is the single countdown line the user reads.
func (m MainModel) displayText() string {
	switch {
	case m.inputErr != nil:
		return config.InvalidInputText
	case !m.hasCountdown:
		return config.PromptText
	default:
		return remainingText(m.remaining)
	}
}

func (m MainModel) renderDisplay() string {
	text := m.displayText()
	switch {
	case m.inputErr != nil:
		return CurrentTheme.Error.Render(text)
	case m.hasCountdown && m.remaining <= 0:
		return CurrentTheme.TimesUp.Render(text)
	default:
		return CurrentTheme.Countdown.Render(text)
	}
}

func (m MainModel) renderStatus() string {
	var parts []string
	if m.opts.Sink != nil {
		parts = append(parts, "alert: "+m.opts.Sink.Name())
	}
	if m.opts.Journal != nil {
		parts = append(parts, fmt.Sprintf("warnings: %d", m.warnings))
	}
	if m.err != nil {
		parts = append(parts, CurrentTheme.Error.Render(m.err.Error()))
	}
	return CurrentTheme.Dim.Render(strings.Join(parts, " · "))
}

func (m MainModel) renderActivity() string {
	if len(m.activity) == 0 {
		return ""
	}
	limit := 0
	if m.width > 0 {
		limit = m.width - config.ActivityIndent - 4
	}
	indent := strings.Repeat(" ", config.ActivityIndent)
	lines := []string{CurrentTheme.Header.Render("Activity")}
	for _, a := range m.activity {
		line := fmt.Sprintf("%s %-5s %s", a.CreatedAt.Local().Format("15:04:05"), a.Level, a.Message)
		if limit > 0 {
			line = ansi.Truncate(line, limit, config.TruncationSuffix)
		}
		lines = append(lines, indent+levelStyle(a.Level).Render(line))
	}
	return strings.Join(lines, "\n")
}

func levelStyle(level models.Level) lipgloss.Style {
	switch level {
	case models.LevelWarn, models.LevelError:
		return CurrentTheme.Warn
	default:
		return CurrentTheme.Info
	}
}
