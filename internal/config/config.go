// Package config provides YAML-based gameplay configuration loading.
package config

// TetroisConfig contains all tunable gameplay parameters.
type TetroisConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	UI      UIConfig      `yaml:"ui"`
}

// TimingConfig defines the gravity schedule. The drop interval starts
// at start_ms and shrinks by step_ms per level, never below min_ms.
type TimingConfig struct {
	DropStartMS int `yaml:"drop_start_ms"`
	DropStepMS  int `yaml:"drop_step_ms"`
	DropMinMS   int `yaml:"drop_min_ms"`
}

// ScoringConfig defines points per simultaneous line clear. Index 0 is
// unused; indexes 1..4 are the single/double/triple/quad awards, each
// multiplied by the current level.
type ScoringConfig struct {
	LineScores []int `yaml:"line_scores"`
}

// UIConfig defines presentation toggles.
type UIConfig struct {
	Ghost bool `yaml:"ghost"`
}

// Validate reports whether the configuration is usable.
func (c TetroisConfig) Validate() bool {
	if c.Timing.DropStartMS <= 0 || c.Timing.DropMinMS <= 0 {
		return false
	}
	if c.Timing.DropStepMS < 0 {
		return false
	}
	if len(c.Scoring.LineScores) < 2 {
		return false
	}
	return true
}
