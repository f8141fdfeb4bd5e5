package tui

import (
	"github.com/akyairhashvil/alarm/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries a remaining-time notification from an engine's feed.
type TickMsg struct {
	Remaining int
	feed      *timer.Feed
	done      <-chan struct{}
}

// runEndedMsg is sent once an engine's ticking goroutine has exited and its
// feed is drained.
type runEndedMsg struct {
	feed *timer.Feed
}

// waitForTick blocks in a bubbletea command goroutine until feed has a value,
// so the engine never waits on rendering.
func waitForTick(feed *timer.Feed, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case v := <-feed.C():
			return TickMsg{Remaining: v, feed: feed, done: done}
		case <-done:
		}
		select {
		case v := <-feed.C():
			return TickMsg{Remaining: v, feed: feed, done: done}
		default:
			return runEndedMsg{feed: feed}
		}
	}
}
