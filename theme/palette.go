package theme

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Palette struct {
	Name   string
	Colors []colorful.Color
}

// Run start colors: soft pastels
var startHex = []string{
	"#FFBABA", "#B3FFBA", "#BAE1FF", "#FFFFBA", "#FFBAF0",
	"#BAFFC9", "#BAC6FF", "#FFD3BA", "#FFBAB2", "#BABAFF",
}

// Gradient end colors: saturated
var endHex = []string{
	"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF",
	"#00FFFF", "#00008B", "#FF4500", "#8B0000", "#0000CD",
}

// StartColors returns the built-in palette runs start from
func StartColors() *Palette {
	return mustParseHex("pastel", startHex...)
}

// EndColors returns the built-in palette gradients end on
func EndColors() *Palette {
	return mustParseHex("vivid", endHex...)
}

// ParseHexPalette builds a palette from "#rrggbb" strings
func ParseHexPalette(name string, hexes ...string) (*Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("no colors given for palette %s", name)
	}
	p := &Palette{Name: name, Colors: make([]colorful.Color, 0, len(hexes))}
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		p.Colors = append(p.Colors, c)
	}
	return p, nil
}

func mustParseHex(name string, hexes ...string) *Palette {
	p, err := ParseHexPalette(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

func LoadGPL(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := &Palette{}
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "Name:") {
			p.Name = strings.TrimSpace(strings.TrimPrefix(line, "Name:"))
			continue
		}

		// Skip headers and comments
		if line == "" || line[0] == '#' || strings.HasPrefix(line, "GIMP") || strings.HasPrefix(line, "Columns") {
			continue
		}

		// Parse RGB values (first 3 fields are R G B)
		fields := strings.Fields(line)
		if len(fields) >= 3 {
			r, err1 := strconv.Atoi(fields[0])
			g, err2 := strconv.Atoi(fields[1])
			b, err3 := strconv.Atoi(fields[2])
			if err1 == nil && err2 == nil && err3 == nil {
				p.Colors = append(p.Colors, colorful.Color{
					R: float64(clampByte(r)) / 255,
					G: float64(clampByte(g)) / 255,
					B: float64(clampByte(b)) / 255,
				})
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("no colors found in palette %s", path)
	}

	return p, nil
}

func clampByte(v int) int {
	return max(0, min(255, v))
}

// Lookup returns interpolated color for normalized value 0-1
func (p *Palette) Lookup(norm float64) colorful.Color {
	if norm <= 0 {
		return p.Colors[0]
	}
	if norm >= 1 {
		return p.Colors[len(p.Colors)-1]
	}

	// Find the two colors to interpolate between
	pos := norm * float64(len(p.Colors)-1)
	i := int(pos)
	frac := pos - float64(i)

	return p.Colors[i].BlendRgb(p.Colors[i+1], frac)
}

// Random picks a color uniformly
func (p *Palette) Random(rng *rand.Rand) colorful.Color {
	return p.Colors[rng.IntN(len(p.Colors))]
}

// Hex returns the palette as "#rrggbb" strings
func (p *Palette) Hex() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex()
	}
	return out
}
