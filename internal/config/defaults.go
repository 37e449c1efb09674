package config

import (
	_ "embed"
)

//go:embed defaults/tetrois.yaml
var defaultTetroisYAML []byte

// DefaultTetroisConfig returns the built-in configuration: classic
// timing and the standard per-line score table.
func DefaultTetroisConfig() TetroisConfig {
	return TetroisConfig{
		Timing: TimingConfig{
			DropStartMS: 800,
			DropStepMS:  50,
			DropMinMS:   100,
		},
		Scoring: ScoringConfig{
			LineScores: []int{0, 40, 100, 300, 1200},
		},
		UI: UIConfig{
			Ghost: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultTetroisYAML
}
