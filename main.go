package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-costume/config"
	"go-costume/debug"
	"go-costume/midi"
	"go-costume/sequencer"
	"go-costume/theme"
	"go-costume/tui"
)

func main() {
	configPath := flag.String("config", "", "Config file (.json, .yaml or .yml). Defaults to ~/.config/go-costume/config.json when it exists.")
	saveConfig := flag.Bool("save-config", false, "Save the resulting config to ~/.config/go-costume/config.json.")
	costume := flag.String("costume", "", "Costume editor file whose LED counts override ledCounts; overrides costumeFile.")
	out := flag.String("out", "", "Output document path; overrides outputFile.")
	music := flag.String("music", "", "Audio file referenced by the document; overrides musicFile.")
	minutes := flag.Float64("minutes", 0, "Track length; the timeline is minutes*60 units long. Overrides trackMinutes.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 picks one and prints it.")
	preview := flag.Bool("preview", false, "Open a terminal preview of the generated document.")
	view := flag.String("view", "", "Preview an existing document instead of generating one.")
	cues := flag.String("midi", "", "Also write the timeline as a MIDI cue file to this path.")
	bpm := flag.Float64("bpm", midi.DefaultBPM, "Tempo of the MIDI cue file.")
	themePath := flag.String("theme", "", "GIMP .gpl palette for the preview colors.")
	verbose := flag.Bool("debug", false, "Write a debug log to ~/.config/go-costume/debug.log.")
	flag.Usage = printUsage
	flag.Parse()

	if err := run(options{
		configPath: *configPath,
		saveConfig: *saveConfig,
		costume:    *costume,
		out:        *out,
		music:      *music,
		minutes:    *minutes,
		seed:       *seed,
		preview:    *preview,
		view:       *view,
		cues:       *cues,
		bpm:        *bpm,
		themePath:  *themePath,
		debug:      *verbose,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath          string
	saveConfig          bool
	costume, out, music string
	minutes             float64
	seed                uint64
	preview             bool
	view, cues          string
	bpm                 float64
	themePath           string
	debug               bool
}

func run(o options) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}

	if o.saveConfig {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("could not save config: %w", err)
		}
		path, _ := config.ConfigPath()
		fmt.Printf("Saved config to %s\n", path)
	}

	if cfg.Debug {
		if err := debug.Enable(debug.DefaultPath()); err != nil {
			return fmt.Errorf("could not start debug log: %w", err)
		}
		defer debug.Disable()
	}

	var doc *sequencer.Document
	title := "go-costume"
	if o.view != "" {
		if doc, err = sequencer.Load(o.view); err != nil {
			return err
		}
		title = o.view
	} else {
		if err := cfg.ApplyCostume(); err != nil {
			return fmt.Errorf("could not load costume: %w", err)
		}
		rng, seed := newRand(cfg.Seed)
		if doc, err = generate(cfg, rng); err != nil {
			return err
		}
		if err := sequencer.Save(cfg.OutputFile, doc); err != nil {
			return err
		}
		fmt.Printf("Wrote %s: %d zones, %d units, seed %d\n", cfg.OutputFile, len(doc.Pattern.Seqs), doc.Duration(), seed)
		title = cfg.OutputFile
	}

	if o.cues != "" {
		if err := midi.WriteCueFile(o.cues, doc, o.bpm); err != nil {
			return fmt.Errorf("could not write MIDI cues: %w", err)
		}
		fmt.Printf("Wrote %s\n", o.cues)
	}

	if o.preview || o.view != "" {
		th := theme.Default()
		if o.themePath != "" {
			p, err := theme.LoadGPL(o.themePath)
			if err != nil {
				return err
			}
			th = theme.New(p)
		}
		m := tui.NewModel(doc, th, title, cfg.Runs.FrameLength)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(o options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	if o.out != "" {
		cfg.OutputFile = o.out
	}
	if o.music != "" {
		cfg.MusicFile = o.music
	}
	if o.costume != "" {
		cfg.CostumeFile = o.costume
	}
	if o.minutes != 0 {
		cfg.TrackMinutes = o.minutes
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "go-costume generates LED costume color sequences timed to a music track.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
