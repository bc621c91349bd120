package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"stronghold/experiments"
	"stronghold/game"
	"stronghold/meta"
	"stronghold/searcher"
)

// LocalGame runs two agents against each other on one in-process engine.
type LocalGame struct {
	State  *game.GameState
	Agents [2]searcher.Agent
}

func LocalEngine(cfg game.Config, agent1, agent2 searcher.Agent) (*LocalGame, error) {
	if agent1 == nil || agent2 == nil {
		return nil, fmt.Errorf("need two agents")
	}
	state, err := game.NewGameState(cfg)
	if err != nil {
		return nil, err
	}
	return &LocalGame{
		State:  state,
		Agents: [2]searcher.Agent{agent1, agent2},
	}, nil
}

// Run executes the game loop until a terminal state or the move cap.
func (e *LocalGame) Run() (string, []experiments.MoveRecord) {
	log.Info().
		Str("variant", e.State.Config.Name).
		Str("player", e.State.Player()).
		Msg("game starting")

	var records []experiments.MoveRecord
	moveCount := 0
	for !e.State.GameOver() && moveCount < meta.MaxMoves {
		mover := e.State.CurrentPlayer
		agent := e.Agents[mover-1]

		move, metrics := agent.FindMove(e.State.Copy())
		result, err := e.State.Apply(move)
		if err != nil {
			// Agents search over validated clones; an illegal intent here is
			// a programming error, not a user error.
			panic(fmt.Sprintf("agent for %s returned illegal intent %s: %v", mover, move, err))
		}

		records = append(records, experiments.MoveRecord{
			Ply:     e.State.Ply,
			Player:  mover.String(),
			Intent:  move,
			Metrics: metrics,
		})
		moveCount++

		if len(result.Evicted) > 0 {
			log.Debug().Ints("cells", result.Evicted).Msgf("%s cap eviction", mover)
		}
	}

	if winner := e.State.Winner(); winner != "" {
		log.Info().
			Str("winner", winner).
			Ints("line", e.State.WinLine).
			Int("moves", moveCount).
			Msg("game over")
	} else if e.State.GameOver() {
		log.Info().Int("moves", moveCount).Msg("game drawn")
	} else {
		log.Warn().Int("moves", moveCount).Msg("move cap reached with no result")
	}
	return e.State.Winner(), records
}
