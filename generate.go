package main

import (
	"math/rand/v2"

	"go-costume/config"
	"go-costume/debug"
	"go-costume/sequencer"
	"go-costume/theme"
)

// newRand seeds generation; seed 0 picks a random seed and reports it so a
// run can be reproduced.
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// loadPalettes swaps in .gpl palettes where the config names one
func loadPalettes(cfg *config.Config) (sequencer.Palettes, error) {
	pal := sequencer.DefaultPalettes()
	if cfg.StartPalette != "" {
		p, err := theme.LoadGPL(cfg.StartPalette)
		if err != nil {
			return pal, err
		}
		pal.Start = p
	}
	if cfg.EndPalette != "" {
		p, err := theme.LoadGPL(cfg.EndPalette)
		if err != nil {
			return pal, err
		}
		pal.End = p
	}
	return pal, nil
}

// generate validates cfg and builds the costume document
func generate(cfg *config.Config, rng *rand.Rand) (*sequencer.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pal, err := loadPalettes(cfg)
	if err != nil {
		return nil, err
	}

	// drawn once, shared by every effects run of every zone
	r := cfg.Runs
	policy, err := sequencer.NewRunPolicy(rng, r.FrameLength, r.BodyRun, r.EffectsMin, r.EffectsMax)
	if err != nil {
		return nil, err
	}
	if debug.Enabled() {
		debug.Log("generate", "policy %+v, palettes %s %v / %s %v",
			policy, pal.Start.Name, pal.Start.Hex(), pal.End.Name, pal.End.Hex())
	}

	return sequencer.Assemble(sequencer.AssembleOptions{
		LEDCounts:   cfg.LEDCounts,
		Total:       sequencer.TotalDuration(cfg.TrackMinutes),
		Policy:      policy,
		Palettes:    pal,
		MusicFile:   cfg.MusicFile,
		CurrentTime: cfg.CurrentTime,
		Rand:        rng,
	})
}
