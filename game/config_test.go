package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errs   string
	}{
		{"zero pieces", func(c *Config) { c.PieceCount = 0 }, "pieceCount"},
		{"unknown opening", func(c *Config) { c.Opening = "random" }, "opening mode"},
		{"staged without stages", func(c *Config) { c.Opening = OpeningStaged }, "requires stages"},
		{"stages without staged", func(c *Config) { c.Stages = []Stage{{0, 1, HalfHome}} }, "staged opening"},
		{"inverted stage range", func(c *Config) {
			c.Opening = OpeningStaged
			c.Stages = []Stage{{FromPly: 3, ToPly: 1, Half: HalfHome}}
		}, "inverted"},
		{"unknown stage half", func(c *Config) {
			c.Opening = OpeningStaged
			c.Stages = []Stage{{FromPly: 0, ToPly: 1, Half: "middle"}}
		}, "stage half"},
		{"negative cap", func(c *Config) { c.TotalCap = -1 }, "negative"},
		{"cap below line length", func(c *Config) { c.TotalCap = 3 }, "winning line"},
		{"capture without movement", func(c *Config) { c.Capture = true }, "requires movement"},
		{"forced capture without capture", func(c *Config) { c.ForcedCapture = true }, "require capture"},
		{"kings without movement", func(c *Config) { c.Kings = true }, "require movement"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := FreePlacementConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorContains(t, err, tc.errs)
		})
	}
}

func TestPresetConfigsAreValid(t *testing.T) {
	for _, cfg := range []Config{
		FreePlacementConfig(),
		StagedOpeningConfig(),
		CoinTossConfig(42),
		CapsConfig(),
		CheckersConfig(),
	} {
		require.NoError(t, cfg.Validate(), "preset %q must validate", cfg.Name)
	}
}

func TestLoadVariants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.yaml")
	payload := `
blitz:
  pieceCount: 8
  opening: free
  openGamePly: 4
  pieRule: true
fortress:
  name: fortress-rules
  pieceCount: 24
  opening: free
  openGamePly: 2
  totalCap: 12
  invasionCap: 6
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	variants, err := LoadVariants(path)
	require.NoError(t, err)
	require.Len(t, variants, 2)

	blitz := variants["blitz"]
	require.Equal(t, "blitz", blitz.Name, "The map key becomes the name when none is given")
	require.Equal(t, 8, blitz.PieceCount)
	require.True(t, blitz.PieRule)

	fortress := variants["fortress"]
	require.Equal(t, "fortress-rules", fortress.Name, "An explicit name wins over the map key")
	require.Equal(t, 12, fortress.TotalCap)
	require.Equal(t, 6, fortress.InvasionCap)
}

func TestLoadVariantsRejectsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bad:\n  pieceCount: 0\n"), 0o644))

	_, err := LoadVariants(path)
	require.Error(t, err)

	_, err = LoadVariants(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
