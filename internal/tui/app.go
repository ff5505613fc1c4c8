package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toastd/toastd/internal/server"
	"github.com/toastd/toastd/toast"
)

type overlayType int

const (
	overlayNone overlayType = iota
	overlayCompose
	overlayHelp
)

type App struct {
	toasts  toast.Model
	compose composeForm
	overlay overlayType
	width   int
	height  int
	ready   bool
	// raised counts every toast shown this session, local or remote.
	raised int
	// notices carries toasts pushed by remote senders; nil when not listening.
	notices    <-chan server.Incoming
	listenAddr string
}

// AppOption configures optional App behavior.
type AppOption func(*App)

// WithNotices wires the remote-notice channel into the app.
func WithNotices(ch <-chan server.Incoming, addr string) AppOption {
	return func(a *App) {
		a.notices = ch
		a.listenAddr = addr
	}
}

func NewApp(toasts toast.Model, opts ...AppOption) App {
	a := App{
		toasts:  toasts,
		compose: newComposeForm(),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func (a App) Init() tea.Cmd {
	if a.notices == nil {
		return nil
	}
	return a.waitForNotice()
}

// waitForNotice blocks on the remote channel and resurfaces as a Msg.
func (a App) waitForNotice() tea.Cmd {
	ch := a.notices
	return func() tea.Msg {
		in, ok := <-ch
		if !ok {
			return noticeChanClosedMsg{}
		}
		return remoteNoticeMsg{incoming: in}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.toasts.SetWidth(msg.Width)
		a.compose.SetSize(msg.Width, msg.Height)
		a.ready = true
		return a, nil

	case toast.TickMsg:
		var cmd tea.Cmd
		a.toasts, cmd = a.toasts.Update(msg)
		return a, cmd

	case localNoticeMsg:
		var cmd tea.Cmd
		a.toasts, cmd = a.toasts.Push(toast.NewNotice(msg.level, msg.text))
		a.raised++
		return a, cmd

	case remoteNoticeMsg:
		var cmd tea.Cmd
		a.toasts, cmd = a.toasts.PushTTL(msg.incoming.Notice, msg.incoming.TTL)
		a.raised++
		return a, tea.Batch(cmd, a.waitForNotice())

	case noticeChanClosedMsg:
		a.notices = nil
		return a, nil

	case composeSubmitMsg:
		a.overlay = overlayNone
		a.compose.Reset()
		var cmd tea.Cmd
		a.toasts, cmd = a.toasts.Push(toast.NewNotice(toast.LevelInfo, msg.text))
		a.raised++
		return a, cmd

	case composeCancelMsg:
		a.overlay = overlayNone
		a.compose.Reset()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.overlay == overlayCompose {
		var cmd tea.Cmd
		a.compose, cmd = a.compose.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Escape):
		a.overlay = overlayNone
		return a, nil

	case key.Matches(msg, keys.Help):
		if a.overlay == overlayHelp {
			a.overlay = overlayNone
		} else {
			a.overlay = overlayHelp
		}
		return a, nil

	case key.Matches(msg, keys.Compose):
		a.overlay = overlayCompose
		a.compose.Reset()
		return a, nil

	case key.Matches(msg, keys.Info):
		return a, notify(toast.LevelInfo, "All systems nominal")

	case key.Matches(msg, keys.Warn):
		return a, notify(toast.LevelWarn, "Disk usage above 80%")

	case key.Matches(msg, keys.Error):
		return a, notify(toast.LevelError, "Connection lost")
	}

	return a, nil
}

func notify(level toast.Level, text string) tea.Cmd {
	return func() tea.Msg {
		return localNoticeMsg{level: level, text: text}
	}
}

func (a App) View() string {
	if !a.ready {
		return "loading..."
	}

	if a.overlay == overlayCompose {
		return a.compose.View()
	}

	header := headerStyle.Render("toastd")

	status := fmt.Sprintf("%d live / %d raised", a.toasts.Len(), a.raised)
	if a.listenAddr != "" {
		status += "  " + listenStyle.Render("listening on "+a.listenAddr)
	}
	bar := statusBarStyle.Render(status)

	body := a.toasts.View()
	if body == "" {
		body = helpStyle.Render("no toasts — press i, w, e or o")
	}

	footer := helpStyle.Render("i/w/e: sample toasts  o: compose  ?: help  q: quit")
	if a.overlay == overlayHelp {
		footer = helpStyle.Render(helpText())
	}

	gap := a.height - lipgloss.Height(header) - lipgloss.Height(bar) -
		lipgloss.Height(body) - lipgloss.Height(footer)
	if gap < 0 {
		gap = 0
	}
	return header + "\n" + bar + "\n" + body + strings.Repeat("\n", gap) + "\n" + footer
}

func helpText() string {
	return `i  raise an info toast
w  raise a warning toast
e  raise an error toast
o  compose a custom toast
?  toggle this help
q  quit`
}
