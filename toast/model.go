package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toastd/toastd/expire"
)

const tickInterval = time.Second

// TickMsg carries the current time for one countdown step.
type TickMsg time.Time

// Model is a Bubble Tea component holding the live toast stack. Like every
// Bubble Tea model it is a value: Update and Push return the successor.
type Model struct {
	stack      []expire.Value[Notice]
	ttl        expire.Seconds
	maxVisible int
	styles     Styles
	width      int
	ticking    bool
}

// Option configures optional Model behavior.
type Option func(*Model)

// WithTTL sets the lifetime given to pushed notices.
func WithTTL(d expire.Seconds) Option {
	return func(m *Model) { m.ttl = d }
}

// WithMaxVisible caps how many toasts View renders at once. Older toasts
// keep counting down off-screen.
func WithMaxVisible(n int) Option {
	return func(m *Model) { m.maxVisible = n }
}

// WithStyles overrides the default lipgloss styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

func New(opts ...Option) Model {
	m := Model{
		ttl:        5,
		maxVisible: 5,
		styles:     DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Push appends a notice with the model's default TTL.
func (m Model) Push(n Notice) (Model, tea.Cmd) {
	return m.PushTTL(n, m.ttl)
}

// PushTTL appends a notice with an explicit lifetime. The returned Cmd
// starts the tick loop when it is not already running.
func (m Model) PushTTL(n Notice, ttl expire.Seconds) (Model, tea.Cmd) {
	if ttl == 0 {
		ttl = m.ttl
	}
	m.stack = append(m.stack, expire.New(ttl, n))
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.stack = expire.TickAll(time.Time(msg), m.stack)
		if len(m.stack) == 0 {
			m.ticking = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Len reports how many toasts are alive, visible or not.
func (m Model) Len() int { return len(m.stack) }

// Notices returns the live notices in display order, oldest first.
func (m Model) Notices() []Notice {
	out := make([]Notice, len(m.stack))
	for i, v := range m.stack {
		out[i] = v.Payload()
	}
	return out
}

func (m *Model) SetWidth(w int) { m.width = w }
