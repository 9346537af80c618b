package sequencer

import (
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Pulse duty cycle: the first pulseOffFrames of every pulseGroup frames are dark
const (
	pulseGroup     = 4
	pulseOffFrames = 2
)

// hexRoundBias makes exact halves round down when channels are quantized
const hexRoundBias = 5e-7

// hexL formats c as lowercase "#rrggbb", rounding each channel as
// int(v*255 + 0.5 - hexRoundBias)
func hexL(c colorful.Color) string {
	c = c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", quantize(c.R), quantize(c.G), quantize(c.B))
}

func quantize(v float64) uint8 {
	return uint8(max(0, v*255+0.5-hexRoundBias))
}

// Gradient walks from one color to another over steps frames, stepping hue,
// saturation and lightness independently. The first frame is from and the
// last is to. Hue is interpolated linearly, without taking the short way
// around the color wheel.
func Gradient(from, to colorful.Color, steps, start, duration int) ([]ColorInterval, error) {
	if err := checkFrames("gradient", steps, duration); err != nil {
		return nil, err
	}

	h0, s0, l0 := from.Hsl()
	h1, s1, l1 := to.Hsl()

	var dh, ds, dl float64
	if steps > 1 {
		div := float64(steps - 1)
		dh, ds, dl = (h1-h0)/div, (s1-s0)/div, (l1-l0)/div
	}

	out := make([]ColorInterval, steps)
	for i := range out {
		f := float64(i)
		c := colorful.Hsl(h0+dh*f, s0+ds*f, l0+dl*f)
		s, e := frame(start, duration, i)
		out[i] = ColorInterval{Start: s, End: e, Color: hexL(c)}
	}
	return out, nil
}

// Pulse lights color on frames 2 and 3 of every group of 4. Dark frames are
// not emitted, so the result has gaps.
func Pulse(color colorful.Color, times, start, duration int) ([]ColorInterval, error) {
	if err := checkFrames("pulse", times, duration); err != nil {
		return nil, err
	}

	hex := hexL(color)
	out := make([]ColorInterval, 0, times/2+1)
	for i := 0; i < times; i++ {
		if i%pulseGroup < pulseOffFrames {
			continue
		}
		s, e := frame(start, duration, i)
		out = append(out, ColorInterval{Start: s, End: e, Color: hex})
	}
	return out, nil
}

// RandomFlicker gives each of count frames its own fully saturated,
// mid-lightness color of random hue.
func RandomFlicker(rng *rand.Rand, count, start, duration int) ([]ColorInterval, error) {
	if err := checkFrames("flicker", count, duration); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, invalid("flicker: nil random source")
	}

	out := make([]ColorInterval, count)
	for i := range out {
		c := colorful.Hsl(rng.Float64()*360, 1, 0.5)
		s, e := frame(start, duration, i)
		out[i] = ColorInterval{Start: s, End: e, Color: hexL(c)}
	}
	return out, nil
}
