package sequencer

import "fmt"

// Zone is one body region of the costume: a timeline shared by all of its
// LEDs, plus the LED address labels.
type Zone struct {
	ID       int             `json:"id"`
	Sequence []ColorInterval `json:"sequence"`
	LEDs     []string        `json:"leds"`
}

// LEDLabels returns "{name}_0" .. "{name}_{count-1}"
func LEDLabels(name string, count int) []string {
	labels := make([]string, count)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s_%d", name, i)
	}
	return labels
}

// Name returns the zone name encoded in the LED labels, or "" when the zone
// has no LEDs.
func (z *Zone) Name() string {
	if len(z.LEDs) == 0 {
		return ""
	}
	label := z.LEDs[0]
	for i := len(label) - 1; i >= 0; i-- {
		if label[i] == '_' {
			return label[:i]
		}
	}
	return label
}

// End returns the end of the last interval (0 for an empty timeline)
func (z *Zone) End() int {
	if len(z.Sequence) == 0 {
		return 0
	}
	return z.Sequence[len(z.Sequence)-1].End
}

// ColorAt returns the color lit at t, or "" in a gap or past the end. The
// timeline must be sorted by start, as Assemble and Load leave it.
func (z *Zone) ColorAt(t int) string {
	// first interval ending after t; intervals are ascending and non-overlapping
	lo, hi := 0, len(z.Sequence)
	for lo < hi {
		mid := (lo + hi) / 2
		if z.Sequence[mid].End <= t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(z.Sequence) && z.Sequence[lo].Contains(t) {
		return z.Sequence[lo].Color
	}
	return ""
}
