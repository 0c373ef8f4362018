package world

import (
	"fmt"

	"github.com/spacehole-rogue/lunarlander/assets"
	"gopkg.in/yaml.v3"
)

// Tier is one difficulty level.
type Tier struct {
	ID        int     `yaml:"id"`
	Name      string  `yaml:"name"`
	Fuel      float64 `yaml:"fuel"`
	WindMax   float64 `yaml:"windMax"`
	PadSpread float64 `yaml:"padSpread"`
}

// TierTable is the YAML-serializable difficulty table.
type TierTable struct {
	Tiers []Tier `yaml:"tiers"`
}

// LoadTiers parses a TierTable from YAML bytes.
func LoadTiers(data []byte) (*TierTable, error) {
	var table TierTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse tier table: %w", err)
	}
	if len(table.Tiers) == 0 {
		return nil, fmt.Errorf("tier table is empty")
	}
	seen := make(map[int]bool, len(table.Tiers))
	for _, t := range table.Tiers {
		if t.ID < 1 || t.ID > 3 {
			return nil, fmt.Errorf("tier %d: id must be 1..3", t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("tier %d: declared twice", t.ID)
		}
		seen[t.ID] = true
		if t.Fuel <= 0 {
			return nil, fmt.Errorf("tier %d: fuel must be positive, got %v", t.ID, t.Fuel)
		}
		if t.WindMax <= 0 {
			return nil, fmt.Errorf("tier %d: windMax must be positive, got %v", t.ID, t.WindMax)
		}
		if t.PadSpread <= 0 || t.PadSpread > 1 {
			return nil, fmt.Errorf("tier %d: padSpread must be in (0, 1], got %v", t.ID, t.PadSpread)
		}
	}
	if !seen[1] {
		return nil, fmt.Errorf("tier table has no tier 1")
	}
	return &table, nil
}

// DefaultTiers returns the table embedded in the binary.
func DefaultTiers() *TierTable {
	table, err := LoadTiers(assets.Tiers)
	if err != nil {
		panic(fmt.Sprintf("embedded tiers.yaml: %v", err))
	}
	return table
}

// Get returns tier id, falling back to tier 1 for unknown ids.
func (t *TierTable) Get(id int) Tier {
	var fallback Tier
	for _, tier := range t.Tiers {
		if tier.ID == id {
			return tier
		}
		if tier.ID == 1 {
			fallback = tier
		}
	}
	return fallback
}
