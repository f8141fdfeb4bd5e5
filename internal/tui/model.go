package tui

import (
	"context"
	"log"

	"github.com/akyairhashvil/alarm/internal/alert"
	"github.com/akyairhashvil/alarm/internal/config"
	"github.com/akyairhashvil/alarm/internal/journal"
	"github.com/akyairhashvil/alarm/internal/models"
	"github.com/akyairhashvil/alarm/internal/timer"
	"github.com/akyairhashvil/alarm/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options wires the collaborators of the controller. Nil fields fall back to
// the engine defaults; a nil Journal hides the activity pane.
type Options struct {
	Journal       *journal.Journal
	Sink          alert.Sink
	Clock         timer.Clock
	Logger        *log.Logger
	Theme         string
	ActivityLimit int
}

// MainModel is the root bubbletea model: duration entry plus the display of
// one countdown at a time.
type MainModel struct {
	ctx      context.Context
	opts     Options
	registry *HandlerRegistry

	inputs  []textinput.Model
	focused int

	engine *timer.Engine
	// feed is the notification channel of engine; ticks from any other feed are stale.
	feed         *timer.Feed
	remaining    int
	hasCountdown bool
	inputErr     error

	activity []models.Activity
	warnings int
	err      error

	progress      progress.Model
	width, height int
}

func NewMainModel(ctx context.Context, opts Options) MainModel {
	if opts.ActivityLimit <= 0 {
		opts.ActivityLimit = config.DefaultActivityLimit
	}
	SetTheme(opts.Theme)

	m := MainModel{
		ctx:      ctx,
		opts:     opts,
		registry: defaultRegistry(),
		inputs:   newDurationInputs(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.progress.Width = config.ProgressWidth
	m.refreshActivity()
	return m
}

func (m MainModel) Init() tea.Cmd { return textinput.Blink }

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progress.Width = util.Clamp(m.width-8, config.MinProgressWidth, config.ProgressWidth)
		return m, nil
	case TickMsg:
		if msg.feed != m.feed {
			return m, nil
		}
		m.remaining = msg.Remaining
		m.refreshActivity()
		return m, waitForTick(msg.feed, msg.done)
	case runEndedMsg:
		m.refreshActivity()
		return m, nil
	case tea.KeyMsg:
		if next, cmd, handled := m.registry.Handle(m, msg.String()); handled {
			return next, cmd
		}
		if m.mode() == ModeEditing {
			return m.updateFocusedInput(msg)
		}
		return m, nil
	}
	if m.mode() == ModeEditing {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m MainModel) mode() Mode {
	if m.engine != nil && m.engine.State() != models.StateIdle {
		return ModeCountdown
	}
	return ModeEditing
}

func (m MainModel) state() models.TimerState {
	if m.engine == nil {
		return models.StateIdle
	}
	return m.engine.State()
}

func (m *MainModel) refreshActivity() {
	if m.opts.Journal == nil {
		return
	}
	entries, err := m.opts.Journal.Recent(m.ctx, m.opts.ActivityLimit)
	if err != nil {
		m.err = err
		return
	}
	warnings, err := m.opts.Journal.Count(m.ctx, models.LevelWarn)
	if err != nil {
		m.err = err
		return
	}
	m.activity, m.warnings, m.err = entries, warnings, nil
}
