package midi

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"go-costume/sequencer"
)

// Resolution of exported files, ticks per quarter note
const Resolution = smf.MetricTicks(960)

// DefaultBPM is used when WriteCues is given a non-positive tempo
const DefaultBPM = 120.0

const baseNote = 36

// ZoneEvents turns a zone timeline into note edges ordered by time: each
// interval is one note whose velocity follows the color's lightness. Where
// two intervals touch, the off edge comes before the next on.
func ZoneEvents(z *sequencer.Zone) []Event {
	ch := uint8(z.ID % 16)
	note := uint8(baseNote + z.ID%(128-baseNote))

	events := make([]Event, 0, 2*len(z.Sequence))
	for _, iv := range z.Sequence {
		vel := velocity(iv.Color)
		events = append(events,
			Event{Time: iv.Start, Type: NoteOn, Channel: ch, Note: note, Velocity: vel},
			Event{Time: iv.End, Type: NoteOff, Channel: ch, Note: note},
		)
	}
	// edited documents may list intervals out of order
	slices.SortStableFunc(events, func(a, b Event) int {
		if c := cmp.Compare(a.Time, b.Time); c != 0 {
			return c
		}
		return cmp.Compare(a.Type, b.Type) // NoteOff sorts first
	})
	return events
}

// velocity maps HSL lightness to 1..127; unparsable colors get full velocity
func velocity(hex string) uint8 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 127
	}
	_, _, l := c.Hsl()
	return uint8(1 + l*126 + 0.5)
}

// WriteCues writes doc as a type 1 Standard MIDI File: a conductor track
// followed by one track per zone.
func WriteCues(w io.Writer, doc *sequencer.Document, bpm float64) error {
	if bpm <= 0 {
		bpm = DefaultBPM
	}

	s := smf.New()
	s.TimeFormat = Resolution

	var conductor smf.Track
	conductor.Add(0, smf.MetaTrackSequenceName(doc.Music.Filename))
	conductor.Add(0, smf.MetaTempo(bpm))
	conductor.Close(0)
	if err := s.Add(conductor); err != nil {
		return fmt.Errorf("conductor track: %w", err)
	}

	for i := range doc.Pattern.Seqs {
		z := &doc.Pattern.Seqs[i]
		name := z.Name()
		if name == "" {
			name = fmt.Sprintf("zone %d", z.ID)
		}

		var tr smf.Track
		tr.Add(0, smf.MetaTrackSequenceName(name))

		var last uint32
		for _, ev := range ZoneEvents(z) {
			at := ticks(bpm, ev.Time)
			var msg gomidi.Message
			if ev.Type == NoteOn {
				msg = gomidi.NoteOn(ev.Channel, ev.Note, ev.Velocity)
			} else {
				msg = gomidi.NoteOff(ev.Channel, ev.Note)
			}
			tr.Add(at-last, msg)
			last = at
		}
		tr.Close(0)

		if err := s.Add(tr); err != nil {
			return fmt.Errorf("track %s: %w", name, err)
		}
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write cues: %w", err)
	}
	return nil
}

// WriteCueFile writes the cue file to path, creating parent directories
func WriteCueFile(path string, doc *sequencer.Document, bpm float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCues(f, doc, bpm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ticks(bpm float64, ms int) uint32 {
	return Resolution.Ticks(bpm, time.Duration(ms)*time.Millisecond)
}
