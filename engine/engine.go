package engine

import "stronghold/experiments"

// Engine drives a game to its terminal state.
type Engine interface {
	// Run starts a game till there's a winner, a draw, or the move cap is
	// reached, returning the winner ("" for none) and per-move records.
	Run() (winner string, records []experiments.MoveRecord)
}
