package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-costume/sequencer"
)

// Cell glyphs
const (
	Lit    = "■" // frame with a color
	Gap    = "·" // frame nothing covers
	Beyond = "-" // past the zone's last interval
)

// RenderPad renders a single colored cell
func RenderPad(color string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return style.Render(Lit)
}

// RenderTimeline renders cols cells of a zone starting at from, one cell per
// frame units. Gaps render as Gap, time after the zone's last interval as
// Beyond.
func RenderTimeline(z *sequencer.Zone, from, cols, frame int) string {
	var out strings.Builder
	end := z.End()
	for c := 0; c < cols; c++ {
		t := from + c*frame
		switch color := z.ColorAt(t); {
		case color != "":
			out.WriteString(RenderPad(color))
		case t >= end:
			out.WriteString(Beyond)
		default:
			out.WriteString(Gap)
		}
	}
	return out.String()
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
