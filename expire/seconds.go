package expire

import "time"

// Seconds is a signed duration in whole seconds.
type Seconds int

func (s Seconds) Add(o Seconds) Seconds { return s + o }

func (s Seconds) Sub(o Seconds) Seconds { return s - o }

func (s Seconds) Int() int { return int(s) }

// Time interprets s*1000 as milliseconds since the Unix epoch. Intended for
// tests and interop; the tick computation never uses it.
func (s Seconds) Time() time.Time {
	return time.UnixMilli(int64(s) * 1000)
}

// Remaining is the number of seconds left before a value expires. It is a
// distinct type from Total so the two cannot be swapped at a call site.
type Remaining Seconds

// Total is the number of seconds a value was originally given.
type Total Seconds
