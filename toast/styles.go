package toast

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Info  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
	Text  lipgloss.Style
	Gauge lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8be9fd")),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e6b450")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")),
		Text:  lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d4")),
		Gauge: lipgloss.NewStyle().Foreground(lipgloss.Color("#4a9a8a")),
	}
}

func (s Styles) forLevel(l Level) lipgloss.Style {
	switch l {
	case LevelWarn:
		return s.Warn
	case LevelError:
		return s.Error
	default:
		return s.Info
	}
}
