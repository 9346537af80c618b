package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type Theme struct {
	Palette *Palette
}

// plasma-like ramp used when no .gpl theme is given
var plasmaHex = []string{
	"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
	"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
}

func New(palette *Palette) *Theme {
	return &Theme{Palette: palette}
}

// Default returns a theme over the built-in plasma ramp
func Default() *Theme {
	return New(mustParseHex("plasma", plasmaHex...))
}

// Color roles mapped to palette positions (0-1)
const (
	RoleMuted  = 0.2 // purple-magenta
	RoleFG     = 0.4 // pink-purple (readable)
	RoleAccent = 0.5 // vivid magenta
)

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return toLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return toLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return toLipgloss(t.Palette.Lookup(RoleMuted))
}

func toLipgloss(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}
