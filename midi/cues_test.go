package midi_test

import (
	"bytes"
	"path/filepath"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"go-costume/midi"
	"go-costume/sequencer"
)

func testDocument() *sequencer.Document {
	return &sequencer.Document{
		Music: sequencer.Music{Filename: "music.mp3"},
		Pattern: sequencer.Pattern{
			CurrentTime: 10,
			Seqs: []sequencer.Zone{
				{
					ID: 0,
					Sequence: []sequencer.ColorInterval{
						{Start: 1000, End: 1500, Color: "#ffffff"},
						{Start: 1500, End: 2000, Color: "#000000"},
					},
					LEDs: sequencer.LEDLabels("head_front", 2),
				},
				{
					ID: 17,
					Sequence: []sequencer.ColorInterval{
						{Start: 0, End: 500, Color: "#ff0000"},
					},
				},
			},
		},
	}
}

func TestZoneEvents(t *testing.T) {
	doc := testDocument()
	events := midi.ZoneEvents(&doc.Pattern.Seqs[0])
	expected := []midi.Event{
		{Time: 1000, Type: midi.NoteOn, Channel: 0, Note: 36, Velocity: 127},
		{Time: 1500, Type: midi.NoteOff, Channel: 0, Note: 36},
		{Time: 1500, Type: midi.NoteOn, Channel: 0, Note: 36, Velocity: 1},
		{Time: 2000, Type: midi.NoteOff, Channel: 0, Note: 36},
	}
	if len(events) != len(expected) {
		t.Fatalf("got %d events, expected %d", len(events), len(expected))
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Fatalf("event %d: got %+v, expected %+v", i, events[i], expected[i])
		}
	}

	// ids past 15 wrap the channel
	red := midi.ZoneEvents(&doc.Pattern.Seqs[1])
	if red[0].Channel != 1 || red[0].Note != 53 || red[0].Velocity != 64 {
		t.Fatalf("unexpected event for zone 17: %+v", red[0])
	}
}

func TestZoneEventsUnsorted(t *testing.T) {
	z := &sequencer.Zone{ID: 2, Sequence: []sequencer.ColorInterval{
		{Start: 1000, End: 1500, Color: "#ffffff"},
		{Start: 500, End: 1000, Color: "#000000"},
		{Start: 0, End: 500, Color: "#ffffff"},
	}}
	events := midi.ZoneEvents(z)
	expected := []struct {
		at  int
		typ uint8
	}{
		{0, midi.NoteOn}, {500, midi.NoteOff}, {500, midi.NoteOn},
		{1000, midi.NoteOff}, {1000, midi.NoteOn}, {1500, midi.NoteOff},
	}
	if len(events) != len(expected) {
		t.Fatalf("got %d events, expected %d", len(events), len(expected))
	}
	for i, e := range expected {
		if events[i].Time != e.at || events[i].Type != e.typ {
			t.Fatalf("event %d: got %+v, expected time %d type %#x", i, events[i], e.at, e.typ)
		}
	}

	doc := &sequencer.Document{Pattern: sequencer.Pattern{Seqs: []sequencer.Zone{*z}}}
	var buf bytes.Buffer
	if err := midi.WriteCues(&buf, doc, 120); err != nil {
		t.Fatalf("WriteCues failed: %v", err)
	}
	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("cannot read back the cue file: %v", err)
	}
	var ch, key, vel uint8
	var at uint32
	var starts []uint32
	for _, ev := range s.Tracks[1] {
		// 1500ms at 120bpm is 2880 ticks; a wrapped delta would be far past it
		if ev.Delta > 2880 {
			t.Fatalf("delta %d past the end of the zone", ev.Delta)
		}
		at += ev.Delta
		if gomidi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
			starts = append(starts, at)
		}
	}
	if len(starts) != 3 || starts[0] != 0 || starts[1] != 960 || starts[2] != 1920 {
		t.Fatalf("note starts at %v, expected [0 960 1920]", starts)
	}
}

func TestWriteCues(t *testing.T) {
	var buf bytes.Buffer
	if err := midi.WriteCues(&buf, testDocument(), 0); err != nil {
		t.Fatalf("WriteCues failed: %v", err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("cannot read back the cue file: %v", err)
	}
	if len(s.Tracks) != 3 {
		t.Fatalf("got %d tracks, expected conductor + 2 zones", len(s.Tracks))
	}

	var ch, key, vel uint8
	starts := 0
	var at uint32
	var firstStart uint32
	for _, ev := range s.Tracks[1] {
		at += ev.Delta
		if gomidi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
			if starts == 0 {
				firstStart = at
			}
			starts++
		}
	}
	if starts != 2 {
		t.Fatalf("got %d note starts in the first zone track, expected 2", starts)
	}
	// 1000ms at 120bpm is two quarter notes
	if firstStart != 2*960 {
		t.Fatalf("first cue at tick %d, expected %d", firstStart, 2*960)
	}
}

func TestWriteCueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cues", "show.mid")
	if err := midi.WriteCueFile(path, testDocument(), 90); err != nil {
		t.Fatalf("WriteCueFile failed: %v", err)
	}
	s, err := smf.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read cue file: %v", err)
	}
	if len(s.Tracks) != 3 {
		t.Fatalf("got %d tracks, expected 3", len(s.Tracks))
	}
}
