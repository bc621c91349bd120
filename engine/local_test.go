package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stronghold/game"
	"stronghold/meta"
	"stronghold/searcher"
)

func TestLocalEngineValidation(t *testing.T) {
	agent := searcher.NewAgent(searcher.Easy)

	_, err := LocalEngine(game.FreePlacementConfig(), nil, agent)
	require.Error(t, err, "Both seats must be filled")

	_, err = LocalEngine(game.Config{}, agent, agent)
	require.Error(t, err, "An invalid config must not start a game")
}

func TestSelfPlayTerminates(t *testing.T) {
	variants := []game.Config{
		game.FreePlacementConfig(),
		game.StagedOpeningConfig(),
		game.CoinTossConfig(7),
		game.CapsConfig(),
		game.CheckersConfig(),
	}
	for _, cfg := range variants {
		t.Run(cfg.Name, func(t *testing.T) {
			e, err := LocalEngine(cfg, searcher.NewAgent(searcher.Easy), searcher.NewAgent(searcher.Easy))
			require.NoError(t, err)

			winner, records := e.Run()

			require.NotEmpty(t, records)
			require.LessOrEqual(t, len(records), meta.MaxMoves)
			require.Contains(t, []string{"", "Player1", "Player2"}, winner)
			if e.State.GameOver() && e.State.Won != game.None {
				require.Equal(t, e.State.Won.String(), winner)
			}
		})
	}
}

func TestSelfPlayRecordsEveryPly(t *testing.T) {
	cfg := game.FreePlacementConfig()
	e, err := LocalEngine(cfg, searcher.NewAgent(searcher.Easy), searcher.NewAgent(searcher.Easy))
	require.NoError(t, err)

	_, records := e.Run()
	require.True(t, e.State.GameOver(), "Free placement depletes both inventories and must end")

	for i, rec := range records {
		require.NotEmpty(t, rec.Player, "record %d has no player", i)
		require.NotEmpty(t, rec.Intent.Kind, "record %d has no intent", i)
	}
}
