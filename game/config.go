package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type OpeningMode string

const (
	OpeningFree   OpeningMode = "free"
	OpeningStaged OpeningMode = "staged"
)

// Stage requires placements during plies FromPly..ToPly (inclusive) to land
// in the given half relative to the acting player.
type Stage struct {
	FromPly int  `yaml:"fromPly" json:"fromPly"`
	ToPly   int  `yaml:"toPly" json:"toPly"`
	Half    Half `yaml:"half" json:"half"`
}

// Config selects one member of the variant family. It is immutable for the
// lifetime of a game; every behavioral difference between variants is a
// configuration check, never a separate engine.
type Config struct {
	Name       string `yaml:"name" json:"name"`
	PieceCount int    `yaml:"pieceCount" json:"pieceCount"`

	// Movement phase switches.
	Movement        bool `yaml:"movement" json:"movement"`
	Capture         bool `yaml:"capture" json:"capture"`
	ForcedCapture   bool `yaml:"forcedCapture" json:"forcedCapture"`
	MultiJump       bool `yaml:"multiJump" json:"multiJump"`
	Kings           bool `yaml:"kings" json:"kings"`
	Omnidirectional bool `yaml:"omnidirectional" json:"omnidirectional"`

	// Opening switches.
	PieRule     bool        `yaml:"pieRule" json:"pieRule"`
	Opening     OpeningMode `yaml:"opening" json:"opening"`
	Stages      []Stage     `yaml:"stages,omitempty" json:"stages,omitempty"`
	OpenGamePly int         `yaml:"openGamePly" json:"openGamePly"`
	CoinToss    bool        `yaml:"coinToss" json:"coinToss"`
	Seed        int64       `yaml:"seed" json:"seed"`

	// FIFO cap policies; 0 disables a cap.
	TotalCap    int `yaml:"totalCap" json:"totalCap"`
	InvasionCap int `yaml:"invasionCap" json:"invasionCap"`
}

func (c Config) Validate() error {
	if c.PieceCount <= 0 {
		return fmt.Errorf("config %q: pieceCount must be positive", c.Name)
	}
	switch c.Opening {
	case OpeningFree, OpeningStaged:
	default:
		return fmt.Errorf("config %q: unknown opening mode %q", c.Name, c.Opening)
	}
	if c.Opening == OpeningStaged && len(c.Stages) == 0 {
		return fmt.Errorf("config %q: staged opening requires stages", c.Name)
	}
	if c.Opening != OpeningStaged && len(c.Stages) > 0 {
		return fmt.Errorf("config %q: stages require staged opening", c.Name)
	}
	for _, s := range c.Stages {
		if s.FromPly > s.ToPly {
			return fmt.Errorf("config %q: stage range %d-%d is inverted", c.Name, s.FromPly, s.ToPly)
		}
		switch s.Half {
		case HalfHome, HalfAway, HalfAny:
		default:
			return fmt.Errorf("config %q: unknown stage half %q", c.Name, s.Half)
		}
	}
	if c.TotalCap < 0 || c.InvasionCap < 0 {
		return fmt.Errorf("config %q: caps cannot be negative", c.Name)
	}
	if c.TotalCap > 0 && c.TotalCap < LineLength {
		return fmt.Errorf("config %q: total cap %d leaves no room for a winning line", c.Name, c.TotalCap)
	}
	if c.InvasionCap > 0 && c.InvasionCap < LineLength {
		return fmt.Errorf("config %q: invasion cap %d leaves no room for a winning line", c.Name, c.InvasionCap)
	}
	if c.Capture && !c.Movement {
		return fmt.Errorf("config %q: capture requires movement", c.Name)
	}
	if (c.ForcedCapture || c.MultiJump) && !c.Capture {
		return fmt.Errorf("config %q: forced capture and multi-jump require capture", c.Name)
	}
	if c.Kings && !c.Movement {
		return fmt.Errorf("config %q: kings require movement", c.Name)
	}
	return nil
}

// stageFor returns the stage covering ply, or nil once the schedule is
// exhausted (the open game).
func (c Config) stageFor(ply int) *Stage {
	for i := range c.Stages {
		if ply >= c.Stages[i].FromPly && ply <= c.Stages[i].ToPly {
			return &c.Stages[i]
		}
	}
	return nil
}

// LoadVariants parses a YAML file mapping variant names to configs, so hosts
// can define rulesets without recompiling.
func LoadVariants(path string) (map[string]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variants file: %w", err)
	}
	var variants map[string]Config
	if err := yaml.Unmarshal(data, &variants); err != nil {
		return nil, fmt.Errorf("failed to parse variants file: %w", err)
	}
	for name, cfg := range variants {
		if cfg.Name == "" {
			cfg.Name = name
			variants[name] = cfg
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return variants, nil
}

// FreePlacementConfig is the simplest variant: alternating placement into the
// own home half with the pie rule, win by 4-in-line in enemy territory.
func FreePlacementConfig() Config {
	return Config{
		Name:        "free",
		PieceCount:  16,
		Opening:     OpeningFree,
		OpenGamePly: 8,
		PieRule:     true,
	}
}

// StagedOpeningConfig forces the home/away/home opening book before the open
// game begins.
func StagedOpeningConfig() Config {
	return Config{
		Name:       "staged",
		PieceCount: 16,
		Opening:    OpeningStaged,
		Stages: []Stage{
			{FromPly: 0, ToPly: 1, Half: HalfHome},
			{FromPly: 2, ToPly: 3, Half: HalfAway},
			{FromPly: 4, ToPly: 5, Half: HalfHome},
		},
	}
}

// CoinTossConfig starts with a coin toss; placements go into the alternating
// active half until the open game.
func CoinTossConfig(seed int64) Config {
	return Config{
		Name:        "cointoss",
		PieceCount:  16,
		Opening:     OpeningFree,
		CoinToss:    true,
		Seed:        seed,
		OpenGamePly: 12,
	}
}

// CapsConfig is the placement-forever variant with FIFO total and invasion
// caps; captured and evicted pieces return to the owner's inventory.
func CapsConfig() Config {
	return Config{
		Name:        "caps",
		PieceCount:  24,
		Opening:     OpeningFree,
		OpenGamePly: 2,
		TotalCap:    15,
		InvasionCap: 8,
	}
}

// CheckersConfig places a small allotment and then plays checkers-style
// movement with forced capture, multi-jump and king promotion.
func CheckersConfig() Config {
	return Config{
		Name:          "checkers",
		PieceCount:    12,
		Opening:       OpeningFree,
		Movement:      true,
		Capture:       true,
		ForcedCapture: true,
		MultiJump:     true,
		Kings:         true,
	}
}
