// Package toast renders a stack of self-expiring notifications as a Bubble
// Tea component. Each pushed notice lives for a configurable number of
// seconds; a once-per-second tick advances every notice by real elapsed time
// and drops the ones that have run out.
package toast

import (
	"fmt"

	"github.com/google/uuid"
)

// Level classifies a notice for styling.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a wire/CLI level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown level %q", s)
}

// Notice is the payload carried by a toast.
type Notice struct {
	ID    string
	Level Level
	Text  string
}

// NewNotice mints a notice with a fresh ID.
func NewNotice(level Level, text string) Notice {
	return Notice{ID: uuid.NewString(), Level: level, Text: text}
}
