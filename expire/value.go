// Package expire wraps arbitrary values with a countdown lifetime.
//
// A Value carries a payload plus the seconds it has left. Advancing time is
// the caller's job: on every signal from whatever timer the host application
// runs, pass the current time to TickAll and replace the old slice with the
// result. Values whose countdown has run out are simply absent from the
// returned slice. Nothing is ever mutated in place, so the package is safe
// under any concurrency model the host chooses.
package expire

import (
	"math"
	"time"
)

// Value pairs a payload with its remaining lifetime. The zero Value is not
// useful; construct with New. Each tick produces a successor Value rather
// than mutating the receiver.
type Value[T any] struct {
	payload    T
	remaining  Remaining
	total      Total
	lastTicked time.Time // zero until the first tick
}

// New wraps payload with a lifetime of d seconds. d is not validated: a zero
// or negative duration produces a value that expires on its first tick.
func New[T any](d Seconds, payload T) Value[T] {
	return Value[T]{
		payload:   payload,
		remaining: Remaining(d),
		total:     Total(d),
	}
}

// Payload returns the wrapped value unchanged.
func (v Value[T]) Payload() T { return v.payload }

// PercentComplete reports how much of the lifetime has elapsed, in [0, 1].
// A value that has never been ticked reports exactly 0. The total must be
// nonzero for a ticked value; a zero total divides by zero here.
func (v Value[T]) PercentComplete() float64 {
	if Seconds(v.remaining) == Seconds(v.total) {
		return 0
	}
	return 1 - float64(v.remaining)/float64(v.total)
}

// Tick advances the countdown to now and returns the successor value. The
// first tick always consumes exactly one second; later ticks consume the
// real elapsed time since the previous tick, rounded to whole seconds (half
// away from zero, per math.Round). Returns ok=false when the value has
// expired and should be dropped.
//
// A now earlier than the previous tick yields negative elapsed time and
// extends the value's life. That is accepted behavior, not rejected.
func (v Value[T]) Tick(now time.Time) (Value[T], bool) {
	elapsed := Seconds(1)
	if !v.lastTicked.IsZero() {
		ms := now.UnixMilli() - v.lastTicked.UnixMilli()
		elapsed = Seconds(math.Round(float64(ms) / 1000))
	}
	remaining := Remaining(Seconds(v.remaining).Sub(elapsed))
	if remaining <= 0 {
		var zero Value[T]
		return zero, false
	}
	v.remaining = remaining
	v.lastTicked = now
	return v, true
}

// TickAll ticks every item and returns the survivors in their input order.
// The input slice and its elements are left untouched. An empty input yields
// an empty output.
func TickAll[T any](now time.Time, items []Value[T]) []Value[T] {
	out := make([]Value[T], 0, len(items))
	for _, item := range items {
		if next, ok := item.Tick(now); ok {
			out = append(out, next)
		}
	}
	return out
}
