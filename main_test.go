package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go-costume/config"
	"go-costume/sequencer"
)

func TestGenerateDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	rng, _ := newRand(11)
	doc, err := generate(cfg, rng)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(doc.Pattern.Seqs) != len(sequencer.DefaultZones) {
		t.Fatalf("got %d zones, expected %d", len(doc.Pattern.Seqs), len(sequencer.DefaultZones))
	}
	for i, z := range doc.Pattern.Seqs {
		name := sequencer.DefaultZones[i].Name
		if len(z.LEDs) != cfg.LEDCount(name) {
			t.Fatalf("%s has %d LEDs, expected %d", name, len(z.LEDs), cfg.LEDCount(name))
		}
		// pulses end dark, so only contiguous kinds reach the end
		if sequencer.DefaultZones[i].Kind != sequencer.KindHead && z.End() < 180000 {
			t.Fatalf("%s ends at %d, before the track", name, z.End())
		}
	}

	rng, _ = newRand(11)
	again, err := generate(cfg, rng)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !reflect.DeepEqual(doc, again) {
		t.Fatal("same seed produced different documents")
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TrackMinutes = -1
	rng, _ := newRand(1)
	if _, err := generate(cfg, rng); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestGenerateCustomPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.gpl")
	if err := os.WriteFile(path, []byte("GIMP Palette\nName: Mono\n18 52 86\tOne\n"), 0644); err != nil {
		t.Fatalf("cannot write palette: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.StartPalette = path
	cfg.TrackMinutes = 1
	rng, _ := newRand(3)
	doc, err := generate(cfg, rng)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	// head zones pulse the start color unchanged
	for _, iv := range doc.Pattern.Seqs[0].Sequence {
		if iv.Color != "#123456" {
			t.Fatalf("head pulse color %s, expected #123456", iv.Color)
		}
	}

	cfg.EndPalette = filepath.Join(t.TempDir(), "missing.gpl")
	if _, err := generate(cfg, rng); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a missing palette error, got %v", err)
	}
}

func TestRunWritesDocumentAndCues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	o := options{
		out:     filepath.Join(dir, "show", "led_sequences.json"),
		music:   "track.mp3",
		minutes: 2,
		seed:    5,
		cues:    filepath.Join(dir, "show", "cues.mid"),
		bpm:     120,
	}
	if err := run(o); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	doc, err := sequencer.Load(o.out)
	if err != nil {
		t.Fatalf("cannot load written document: %v", err)
	}
	if doc.Music.Filename != "track.mp3" || doc.Pattern.CurrentTime != 10 {
		t.Fatalf("unexpected document header: %+v", doc.Music)
	}
	if _, err := os.Stat(o.cues); err != nil {
		t.Fatalf("cue file not written: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "costume.yaml")
	if err := os.WriteFile(path, []byte("trackMinutes: 4\nseed: 9\nmusicFile: a.mp3\n"), 0644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := loadConfig(options{configPath: path, music: "b.mp3", debug: true})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.TrackMinutes != 4 || cfg.Seed != 9 || cfg.MusicFile != "b.mp3" || !cfg.Debug {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	if _, err := loadConfig(options{configPath: filepath.Join(dir, "missing.yaml")}); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestRunAppliesCostumeAndSavesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	costume := filepath.Join(dir, "costume.json")
	parts := `[{"name":"head_front","port_number":"1","leds_count":3,"leds_positions":[]},{"name":"body_back","port_number":"2","leds_count":0}]`
	if err := os.WriteFile(costume, []byte(parts), 0644); err != nil {
		t.Fatalf("cannot write costume: %v", err)
	}

	o := options{
		out:        filepath.Join(dir, "led_sequences.json"),
		minutes:    1,
		seed:       8,
		costume:    costume,
		saveConfig: true,
	}
	if err := run(o); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	doc, err := sequencer.Load(o.out)
	if err != nil {
		t.Fatalf("cannot load written document: %v", err)
	}
	if leds := doc.Pattern.Seqs[0].LEDs; !reflect.DeepEqual(leds, sequencer.LEDLabels("head_front", 3)) {
		t.Fatalf("head_front leds %v, expected 3 from the costume", leds)
	}
	if n := len(doc.Pattern.Seqs[3].LEDs); n != 0 {
		t.Fatalf("body_back has %d leds, expected none", n)
	}
	if n := len(doc.Pattern.Seqs[2].LEDs); n != 5 {
		t.Fatalf("body_front has %d leds, expected the configured 5", n)
	}

	saved, err := config.Load()
	if err != nil {
		t.Fatalf("cannot load saved config: %v", err)
	}
	if saved.CostumeFile != costume || saved.TrackMinutes != 1 || saved.Seed != 8 {
		t.Fatalf("saved config missing overrides: %+v", saved)
	}

	o.costume = filepath.Join(dir, "missing.json")
	o.saveConfig = false
	if err := run(o); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a missing costume error, got %v", err)
	}
}
