package searcher

import (
	"stronghold/game"
	"stronghold/meta"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Agent picks a move for the player to act in a game state.
type Agent interface {
	FindMove(gs *game.GameState) (game.Intent, SearchMetrics)
}

type minimaxAgent struct {
	minimax *Minimax
}

// NewAgent returns the stock agent for a difficulty: easy plays the tactics
// plus heuristic policy only, medium searches two plies, hard searches three
// with candidate pruning.
func NewAgent(difficulty Difficulty, options ...Option) Agent {
	var preset []Option
	switch difficulty {
	case Easy:
		preset = []Option{WithDepth(meta.EasyDepth)}
	case Medium:
		preset = []Option{WithDepth(meta.MediumDepth)}
	case Hard:
		preset = []Option{WithDepth(meta.HardDepth), WithTopK(meta.HardTopK)}
	default:
		panic("unknown difficulty: " + string(difficulty))
	}
	preset = append(preset, WithBudget(meta.SearchBudget))
	preset = append(preset, options...)
	return minimaxAgent{minimax: NewMinimax(preset...)}
}

func (a minimaxAgent) FindMove(gs *game.GameState) (game.Intent, SearchMetrics) {
	return a.minimax.FindMove(gs)
}

// SelectMove is the one-shot form of the decision engine contract.
func SelectMove(gs *game.GameState, difficulty Difficulty) game.Intent {
	move, _ := NewAgent(difficulty).FindMove(gs)
	return move
}
