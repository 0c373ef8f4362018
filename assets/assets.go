// Package assets holds data files embedded into the binaries.
package assets

import _ "embed"

// Tiers is the difficulty table parsed by world.LoadTiers.
//
//go:embed tiers.yaml
var Tiers []byte
