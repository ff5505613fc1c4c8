package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const gaugeWidth = 10

// View renders the visible toasts, one per line, oldest first. Each line
// shows the level tag, the text, and a gauge that drains as the notice's
// lifetime elapses.
func (m Model) View() string {
	visible := m.stack
	if m.maxVisible > 0 && len(visible) > m.maxVisible {
		visible = visible[len(visible)-m.maxVisible:]
	}
	if len(visible) == 0 {
		return ""
	}

	lines := make([]string, 0, len(visible))
	for _, v := range visible {
		n := v.Payload()
		tag := m.styles.forLevel(n.Level).Render("[" + n.Level.String() + "]")
		text := m.styles.Text.Render(n.Text)

		// PercentComplete can leave [0,1]: a backwards clock extends the
		// lifetime past its total, driving the fraction negative.
		filled := gaugeWidth - int(v.PercentComplete()*gaugeWidth)
		if filled < 0 {
			filled = 0
		}
		if filled > gaugeWidth {
			filled = gaugeWidth
		}
		gauge := m.styles.Gauge.Render(
			strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled))

		line := tag + " " + text + " " + gauge
		if m.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
