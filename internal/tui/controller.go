package tui

import (
	"github.com/akyairhashvil/alarm/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// startTimer parses the fields and starts a fresh engine. While a countdown
// is active the request goes to the current engine, which refuses it.
func (m MainModel) startTimer() (MainModel, tea.Cmd) {
	if m.engine != nil && m.engine.State().Active() {
		m.engine.Start()
		m.refreshActivity()
		return m, nil
	}

	total, err := ParseDuration(m.durationValues())
	if err != nil {
		m.inputErr = err
		m.hasCountdown = false
		return m, nil
	}

	feed := timer.NewFeed()
	eng := timer.New(total, feed.Publish, m.engineOptions()...)
	eng.Start()

	m.engine, m.feed = eng, feed
	m.remaining, m.hasCountdown, m.inputErr = total, true, nil
	m = m.blurInputs()
	m.refreshActivity()
	return m, waitForTick(feed, eng.Done())
}

func (m MainModel) pauseTimer() (MainModel, tea.Cmd) {
	if m.engine != nil {
		m.engine.Pause()
		m.refreshActivity()
	}
	return m, nil
}

func (m MainModel) unpauseTimer() (MainModel, tea.Cmd) {
	if m.engine != nil {
		m.engine.Unpause()
		m.refreshActivity()
	}
	return m, nil
}

// resetTimer stops the countdown and hands the keyboard back to the duration
// fields. The reset value arrives through the feed; a finished engine has no
// run to reset, so its duration is shown directly and the engine dropped.
func (m MainModel) resetTimer() (MainModel, tea.Cmd) {
	if m.engine == nil {
		return m, nil
	}
	wasActive := m.engine.State().Active()
	m.engine.Stop()
	if !wasActive {
		m.remaining = m.engine.Duration()
		m.engine, m.feed = nil, nil
	}
	m.refreshActivity()
	return m.focusInput(m.focused)
}

func (m MainModel) nextField() (MainModel, tea.Cmd) {
	return m.focusInput(m.focused + 1)
}

func (m MainModel) prevField() (MainModel, tea.Cmd) {
	return m.focusInput(m.focused - 1)
}

func (m MainModel) quit() (MainModel, tea.Cmd) {
	if m.engine != nil && m.engine.State().Active() {
		m.engine.Stop()
	}
	return m, tea.Quit
}

func (m MainModel) engineOptions() []timer.Option {
	var opts []timer.Option
	if m.opts.Clock != nil {
		opts = append(opts, timer.WithClock(m.opts.Clock))
	}
	if m.opts.Sink != nil {
		opts = append(opts, timer.WithSink(m.opts.Sink))
	}
	if m.opts.Logger != nil {
		opts = append(opts, timer.WithLogger(m.opts.Logger))
	}
	return opts
}
