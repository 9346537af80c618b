package widgets_test

import (
	"regexp"
	"strings"
	"testing"

	"go-costume/sequencer"
	"go-costume/widgets"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

func TestRenderTimeline(t *testing.T) {
	z := &sequencer.Zone{Sequence: []sequencer.ColorInterval{
		{Start: 200, End: 300, Color: "#ff0000"},
		{Start: 300, End: 400, Color: "#00ff00"},
		{Start: 600, End: 800, Color: "#0000ff"},
	}}
	tests := []struct {
		from, cols, frame int
		expected          string
	}{
		{0, 10, 100, "··■■··■■--"},
		{250, 3, 100, "■■·"},
		{0, 4, 200, "·■·■"},
	}
	for _, tt := range tests {
		got := plain(widgets.RenderTimeline(z, tt.from, tt.cols, tt.frame))
		if got != tt.expected {
			t.Errorf("RenderTimeline(%d, %d, %d) = %q, expected %q", tt.from, tt.cols, tt.frame, got, tt.expected)
		}
	}
}

func TestRenderKeyHelp(t *testing.T) {
	help := widgets.RenderKeyHelp([]widgets.KeySection{
		{Title: "Navigate", Keys: []widgets.KeyBinding{{Key: "h/l", Desc: "scroll"}}},
	})
	if !strings.HasPrefix(help, "Navigate\n  h/l") || !strings.HasSuffix(help, "scroll") {
		t.Fatalf("unexpected help %q", help)
	}
}
