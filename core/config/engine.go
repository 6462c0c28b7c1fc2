package config

import (
	"fmt"

	"token-bridge/core/palette"
)

// EngineConfig holds defaults applied when a request leaves them out.
type EngineConfig struct {
	// DefaultHarmony is the harmony used when a palette request names none.
	DefaultHarmony string `mapstructure:"default_harmony" default:"complementary"`
	// DefaultMode is the variable mode compared when a request names none.
	// Empty selects the first mode found in the snapshot.
	DefaultMode string `mapstructure:"default_mode" default:""`
	// StrictDuplicates rejects comparisons whose inputs share match keys.
	StrictDuplicates bool `mapstructure:"strict_duplicates" default:"false"`
	// DocumentPrefix is the storage prefix token documents are read from.
	DocumentPrefix string `mapstructure:"document_prefix" default:"tokens/"`
}

// Harmony returns the parsed default harmony.
func (c EngineConfig) Harmony() palette.Harmony {
	h, err := palette.ParseHarmony(c.DefaultHarmony)
	if err != nil {
		return palette.HarmonyComplementary
	}
	return h
}

// Validate checks the engine defaults.
func (c EngineConfig) Validate() error {
	if c.DefaultHarmony == "" {
		return nil
	}
	if _, err := palette.ParseHarmony(c.DefaultHarmony); err != nil {
		return fmt.Errorf("engine.default_harmony: %w", err)
	}
	return nil
}
