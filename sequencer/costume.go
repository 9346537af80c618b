package sequencer

import (
	"math"
	"math/rand/v2"

	"go-costume/debug"
)

// DefaultLEDCount applies to zones missing from AssembleOptions.LEDCounts
const DefaultLEDCount = 10

// AssembleOptions is everything a generation run needs
type AssembleOptions struct {
	Zones       []ZoneSpec     // nil means DefaultZones
	LEDCounts   map[string]int // missing zones get DefaultLEDCount
	Total       int            // timeline length, see TotalDuration
	Policy      RunPolicy
	Palettes    Palettes
	MusicFile   string
	CurrentTime int
	Rand        *rand.Rand
}

// TotalDuration converts a track length in minutes to timeline units. The
// unit is minutes*60, which players read as milliseconds.
func TotalDuration(minutes float64) int {
	return int(math.Ceil(minutes * 60))
}

// Assemble builds every zone in table order and wraps them in a Document
func Assemble(opts AssembleOptions) (*Document, error) {
	zones := opts.Zones
	if zones == nil {
		zones = DefaultZones
	}
	if len(zones) == 0 {
		return nil, invalid("zone list is empty")
	}
	if opts.Total <= 0 {
		return nil, invalid("total duration must be > 0, got %d", opts.Total)
	}
	for _, z := range zones {
		if n, ok := opts.LEDCounts[z.Name]; ok && n < 0 {
			return nil, invalid("zone %s: LED count must be >= 0, got %d", z.Name, n)
		}
	}
	if err := opts.Policy.Validate(); err != nil {
		return nil, err
	}

	doc := &Document{
		Music: Music{Filename: opts.MusicFile},
		Pattern: Pattern{
			Seqs:        make([]Zone, 0, len(zones)),
			CurrentTime: opts.CurrentTime,
		},
	}

	for id, z := range zones {
		count, ok := opts.LEDCounts[z.Name]
		if !ok {
			count = DefaultLEDCount
		}

		seq, err := BuildTimeline(z, opts.Total, opts.Policy, opts.Palettes, opts.Rand)
		if err != nil {
			return nil, err
		}

		doc.Pattern.Seqs = append(doc.Pattern.Seqs, Zone{
			ID:       id,
			Sequence: seq,
			LEDs:     LEDLabels(z.Name, count),
		})
		debug.Log("zone", "%2d %-17s %-4s leds=%d intervals=%d", id, z.Name, z.Kind, count, len(seq))
	}

	debug.Log("costume", "%d zones, total=%d, effects run=%d", len(zones), opts.Total, opts.Policy.EffectsRun)
	return doc, nil
}
