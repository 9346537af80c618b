package sequencer

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every argument check in this package
var ErrInvalidInput = errors.New("invalid input")

// ColorInterval is one colored span of a zone's timeline, [Start, End)
type ColorInterval struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Color string `json:"color"` // "#rrggbb"
}

// Contains reports whether t falls inside the interval
func (c ColorInterval) Contains(t int) bool {
	return t >= c.Start && t < c.End
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

// frame returns the bounds of frame i of a run starting at start
func frame(start, duration, i int) (int, int) {
	return start + i*duration, start + (i+1)*duration
}

func checkFrames(what string, n, duration int) error {
	if n <= 0 {
		return invalid("%s: step count must be > 0, got %d", what, n)
	}
	if duration <= 0 {
		return invalid("%s: duration must be > 0, got %d", what, duration)
	}
	return nil
}
