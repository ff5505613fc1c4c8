package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// composeForm is the overlay for typing a custom toast message.
type composeForm struct {
	input  textinput.Model
	width  int
	height int
}

func newComposeForm() composeForm {
	ti := textinput.New()
	ti.Placeholder = "Toast message..."
	ti.CharLimit = 200
	ti.Focus()

	return composeForm{input: ti}
}

func (f *composeForm) SetSize(w, h int) {
	f.width = w
	f.height = h
	f.input.Width = w - 12
}

func (f *composeForm) Reset() {
	f.input.SetValue("")
	f.input.Focus()
}

func (f composeForm) Update(msg tea.Msg) (composeForm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(f.input.Value())
			if text == "" {
				return f, nil
			}
			return f, func() tea.Msg { return composeSubmitMsg{text: text} }
		case "esc":
			return f, func() tea.Msg { return composeCancelMsg{} }
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f composeForm) View() string {
	body := formTitleStyle.Render("New toast") + "\n\n" + f.input.View() +
		"\n\n" + helpStyle.Render("enter: send  esc: cancel")
	box := overlayStyle.Render(body)
	if f.width == 0 {
		return box
	}
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, box)
}
