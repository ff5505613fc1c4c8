package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toastd/toastd/expire"
	"github.com/toastd/toastd/internal/server"
	"github.com/toastd/toastd/toast"
)

func testApp(opts ...AppOption) App {
	a := NewApp(toast.New(toast.WithTTL(5)), opts...)
	model, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(App)
}

func TestLocalNoticePushesToast(t *testing.T) {
	a := testApp()

	model, cmd := a.Update(localNoticeMsg{level: toast.LevelWarn, text: "careful"})
	a = model.(App)

	if a.toasts.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.toasts.Len())
	}
	if a.raised != 1 {
		t.Errorf("raised = %d, want 1", a.raised)
	}
	if cmd == nil {
		t.Error("push should schedule the tick loop")
	}
}

func TestSampleKeyEmitsNotice(t *testing.T) {
	a := testApp()

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	if cmd == nil {
		t.Fatal("expected a command from the sample key")
	}

	msg := cmd()
	notice, ok := msg.(localNoticeMsg)
	if !ok {
		t.Fatalf("got %T, want localNoticeMsg", msg)
	}
	if notice.level != toast.LevelWarn {
		t.Errorf("level = %v, want warn", notice.level)
	}
}

func TestRemoteNoticeKeepsWaiting(t *testing.T) {
	ch := make(chan server.Incoming, 1)
	a := testApp(WithNotices(ch, "127.0.0.1:9000"))

	in := server.Incoming{
		Notice: toast.Notice{ID: "r1", Level: toast.LevelError, Text: "remote boom"},
		TTL:    expire.Seconds(3),
	}
	model, cmd := a.Update(remoteNoticeMsg{incoming: in})
	a = model.(App)

	if a.toasts.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.toasts.Len())
	}
	if cmd == nil {
		t.Error("remote notice should re-arm the channel wait")
	}
}

func TestComposeSubmit(t *testing.T) {
	a := testApp()

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	a = model.(App)
	if a.overlay != overlayCompose {
		t.Fatalf("overlay = %v, want compose", a.overlay)
	}

	model, _ = a.Update(composeSubmitMsg{text: "typed by hand"})
	a = model.(App)

	if a.overlay != overlayNone {
		t.Errorf("overlay = %v, want none", a.overlay)
	}
	if a.toasts.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.toasts.Len())
	}
	got := a.toasts.Notices()
	if len(got) != 1 || got[0].Text != "typed by hand" {
		t.Errorf("notices = %+v, want one with composed text", got)
	}
}

func TestComposeCancel(t *testing.T) {
	a := testApp()

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	a = model.(App)
	model, _ = a.Update(composeCancelMsg{})
	a = model.(App)

	if a.overlay != overlayNone {
		t.Errorf("overlay = %v, want none", a.overlay)
	}
	if a.toasts.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.toasts.Len())
	}
}

func TestToastExpiryThroughApp(t *testing.T) {
	a := testApp()
	model, _ := a.Update(localNoticeMsg{level: toast.LevelInfo, text: "fleeting"})
	a = model.(App)

	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	model, _ = a.Update(toast.TickMsg(t0))
	a = model.(App)
	model, _ = a.Update(toast.TickMsg(t0.Add(10 * time.Second)))
	a = model.(App)

	if a.toasts.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after lifetime elapsed", a.toasts.Len())
	}
	if a.raised != 1 {
		t.Errorf("raised = %d, want 1 (expiry does not unrecord)", a.raised)
	}
}

func TestViewShowsListenAddr(t *testing.T) {
	ch := make(chan server.Incoming)
	a := testApp(WithNotices(ch, "127.0.0.1:9000"))

	if view := a.View(); !strings.Contains(view, "127.0.0.1:9000") {
		t.Errorf("view missing listen address: %q", view)
	}
}
