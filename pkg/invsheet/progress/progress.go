// Package progress converts step counters into percentage events for a
// caller-supplied sink.
package progress

import "math"

// Event is a single progress notification.
type Event struct {
	// Step is the current step (1-based), 0 when the emitter works in
	// percentages directly.
	Step int `json:"step"`
	// Total is the total step count, 0 when unknown.
	Total int `json:"total"`
	// Message describes the current phase.
	Message string `json:"message"`
	// Percentage is in [0, 100] and non-decreasing within one operation.
	Percentage int `json:"percentage"`
}

// Func receives progress events. Implementations may forward to a UI,
// a channel, or a log; ordering of calls is the only guarantee.
type Func func(Event)

// Report computes the percentage for step of total and invokes cb.
// A nil cb is a no-op. Report never recovers a panicking callback;
// a throwing sink is the caller's defect.
func Report(cb Func, step, total int, message string) {
	if cb == nil {
		return
	}
	cb(Event{
		Step:       step,
		Total:      total,
		Message:    message,
		Percentage: Percentage(step, total),
	})
}

// Emit forwards a prebuilt event to cb. A nil cb is a no-op.
func Emit(cb Func, ev Event) {
	if cb == nil {
		return
	}
	cb(ev)
}

// Percentage returns round(step/total*100) clamped to [0, 100].
// A non-positive total yields 0.
func Percentage(step, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(step) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Interpolate maps position i of n onto the [lo, hi] percentage band.
// Used for per-row progress between fixed phase boundaries.
func Interpolate(lo, hi, i, n int) int {
	if n <= 0 {
		return lo
	}
	if i > n {
		i = n
	}
	if i < 0 {
		i = 0
	}
	return lo + (hi-lo)*i/n
}
