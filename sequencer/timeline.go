package sequencer

import (
	"math/rand/v2"

	"go-costume/theme"
)

// RunPolicy decides how long each run of a timeline is. EffectsRun is drawn
// once per generation and shared by every non-body run of every zone.
type RunPolicy struct {
	FrameLength int
	BodyRun     int
	EffectsRun  int
}

// NewRunPolicy draws EffectsRun from [effectsMin, effectsMax)
func NewRunPolicy(rng *rand.Rand, frameLength, bodyRun, effectsMin, effectsMax int) (RunPolicy, error) {
	if effectsMax <= effectsMin {
		return RunPolicy{}, invalid("effects range [%d, %d) is empty", effectsMin, effectsMax)
	}
	p := RunPolicy{
		FrameLength: frameLength,
		BodyRun:     bodyRun,
		EffectsRun:  effectsMin + rng.IntN(effectsMax-effectsMin),
	}
	return p, p.Validate()
}

// Validate checks that every run holds at least one frame
func (p RunPolicy) Validate() error {
	if p.FrameLength <= 0 {
		return invalid("frame length must be > 0, got %d", p.FrameLength)
	}
	if p.BodyRun < p.FrameLength {
		return invalid("body run %d is shorter than a frame (%d)", p.BodyRun, p.FrameLength)
	}
	if p.EffectsRun < p.FrameLength {
		return invalid("effects run %d is shorter than a frame (%d)", p.EffectsRun, p.FrameLength)
	}
	return nil
}

// RunLength returns the run duration for a zone kind
func (p RunPolicy) RunLength(kind ZoneKind) int {
	if kind == KindBody {
		return p.BodyRun
	}
	return p.EffectsRun
}

// Palettes holds the colors runs are drawn from
type Palettes struct {
	Start *theme.Palette // every run's first color
	End   *theme.Palette // gradient targets
}

// DefaultPalettes returns the built-in pastel/vivid pair
func DefaultPalettes() Palettes {
	return Palettes{Start: theme.StartColors(), End: theme.EndColors()}
}

func (p Palettes) validate() error {
	if p.Start == nil || len(p.Start.Colors) == 0 {
		return invalid("start palette is empty")
	}
	if p.End == nil || len(p.End.Colors) == 0 {
		return invalid("end palette is empty")
	}
	return nil
}

// BuildTimeline fills a zone's timeline from 0 until total is covered. Each
// run is one primitive call; the cursor moves by the whole run length even
// when the primitive leaves gaps, and the last run may run past total.
func BuildTimeline(zone ZoneSpec, total int, policy RunPolicy, pal Palettes, rng *rand.Rand) ([]ColorInterval, error) {
	if total <= 0 {
		return nil, invalid("total duration must be > 0, got %d", total)
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := pal.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, invalid("nil random source")
	}

	frame := policy.FrameLength
	var seq []ColorInterval
	for cursor := 0; cursor < total; {
		run := policy.RunLength(zone.Kind)
		startColor := pal.Start.Random(rng)
		steps := run / frame

		var (
			ivs []ColorInterval
			err error
		)
		switch zone.Kind {
		case KindHead:
			ivs, err = Pulse(startColor, steps, cursor, frame)
		case KindHand:
			ivs, err = RandomFlicker(rng, steps, cursor, frame)
		default:
			ivs, err = Gradient(startColor, pal.End.Random(rng), steps, cursor, frame)
		}
		if err != nil {
			return nil, err
		}

		seq = append(seq, ivs...)
		cursor += run
	}
	return seq, nil
}
