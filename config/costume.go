package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// LEDPosition is an LED's offset inside its body part drawing
type LEDPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CostumePart is one body part of a costume file as the costume editor
// saves it. Only Name and LEDsCount feed generation.
type CostumePart struct {
	Name          string          `json:"name"`
	PortNumber    json.RawMessage `json:"port_number,omitempty"` // string or number
	LEDsCount     int             `json:"leds_count"`
	LEDsPositions []LEDPosition   `json:"leds_positions,omitempty"`
}

// LoadCostume reads a costume file and returns its LED count per zone
func LoadCostume(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parts []CostumePart
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("parse costume %s: %w", path, err)
	}

	counts := make(map[string]int, len(parts))
	for i, p := range parts {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: costume %s: part %d has no name", ErrInvalid, path, i)
		}
		if _, dup := counts[p.Name]; dup {
			return nil, fmt.Errorf("%w: costume %s: %s listed twice", ErrInvalid, path, p.Name)
		}
		if p.LEDsCount < 0 {
			return nil, fmt.Errorf("%w: costume %s: %s has %d LEDs", ErrInvalid, path, p.Name, p.LEDsCount)
		}
		counts[p.Name] = p.LEDsCount
	}
	return counts, nil
}

// ApplyCostume overrides LEDCounts with the counts from CostumeFile, if set.
// Zones the costume does not list keep their configured counts.
func (c *Config) ApplyCostume() error {
	if c.CostumeFile == "" {
		return nil
	}
	counts, err := LoadCostume(c.CostumeFile)
	if err != nil {
		return err
	}
	if c.LEDCounts == nil {
		c.LEDCounts = make(map[string]int, len(counts))
	}
	for zone, n := range counts {
		c.LEDCounts[zone] = n
	}
	return nil
}
