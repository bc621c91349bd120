package searcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"stronghold/game"
)

// openGameState returns a caps-free placement game already past every
// opening restriction, so placements may land anywhere.
func openGameState(t *testing.T) *game.GameState {
	t.Helper()
	gs, err := game.NewGameState(game.FreePlacementConfig())
	require.NoError(t, err)
	gs.Ply = 10
	return gs
}

func TestFindMoveTakesImmediateWin(t *testing.T) {
	gs := openGameState(t)
	// Three in a row inside the enemy half; one placement completes it.
	for _, c := range []int{game.ToIndex(5, 0), game.ToIndex(5, 1), game.ToIndex(5, 2)} {
		gs.Board.Place(c, game.Player1)
	}
	gs.Board.Place(game.ToIndex(0, 5), game.Player2)

	move, _ := NewMinimax().FindMove(gs)
	require.Equal(t, game.Place(game.ToIndex(5, 3)), move)
}

func TestFindMoveBlocksOpponentWin(t *testing.T) {
	gs := openGameState(t)
	// Player2 threatens to complete row 1 at (1,4) on their next turn; the
	// anchor at the board edge leaves exactly one completion square.
	for _, c := range []int{game.ToIndex(1, 5), game.ToIndex(1, 6), game.ToIndex(1, 7)} {
		gs.Board.Place(c, game.Player2)
	}

	move, _ := NewMinimax().FindMove(gs)
	require.Equal(t, game.Place(game.ToIndex(1, 4)), move,
		"The only non-losing reply occupies the completion square")
}

func TestFindMoveIsDeterministic(t *testing.T) {
	gs := openGameState(t)
	for _, c := range []int{game.ToIndex(4, 1), game.ToIndex(5, 2), game.ToIndex(1, 1)} {
		gs.Board.Place(c, game.Player1)
	}
	for _, c := range []int{game.ToIndex(2, 3), game.ToIndex(3, 4), game.ToIndex(6, 6)} {
		gs.Board.Place(c, game.Player2)
	}

	first, _ := NewMinimax().FindMove(gs.Copy())
	for i := 0; i < 3; i++ {
		move, _ := NewMinimax().FindMove(gs.Copy())
		require.Equal(t, first, move, "Identical states must yield identical moves")
	}
}

func TestDepthZeroPlaysHeuristicPolicy(t *testing.T) {
	gs := openGameState(t)
	gs.Board.Place(game.ToIndex(2, 2), game.Player2)

	move, _ := NewMinimax(WithDepth(0)).FindMove(gs)
	require.Contains(t, gs.LegalIntents(), move)
}

func TestNodeBudgetAbortKeepsBestSoFar(t *testing.T) {
	gs := openGameState(t)
	gs.Board.Place(game.ToIndex(4, 4), game.Player1)
	gs.Board.Place(game.ToIndex(3, 3), game.Player2)

	m := NewMinimax(WithDepth(3), WithMaxNodes(1), WithMetrics())
	move, metrics := m.FindMove(gs)

	require.Contains(t, gs.LegalIntents(), move, "An aborted search still returns a legal move")
	require.True(t, metrics.Aborted)
	require.GreaterOrEqual(t, metrics.Nodes, int64(1))
}

func TestCancelledContextAbortsSearch(t *testing.T) {
	gs := openGameState(t)
	gs.Board.Place(game.ToIndex(4, 4), game.Player1)
	gs.Board.Place(game.ToIndex(3, 3), game.Player2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMinimax(WithDepth(3), WithMetrics())
	move, _ := m.FindMoveContext(ctx, gs)
	require.Contains(t, gs.LegalIntents(), move)
}

func TestSearchDoesNotMutateCaller(t *testing.T) {
	gs := openGameState(t)
	gs.Board.Place(game.ToIndex(4, 4), game.Player1)
	before := gs.Hash()

	NewMinimax().FindMove(gs)
	require.Equal(t, before, gs.Hash())
}

func TestEvaluateIsAntisymmetric(t *testing.T) {
	gs := openGameState(t)
	for _, c := range []int{game.ToIndex(4, 1), game.ToIndex(5, 2), game.ToIndex(0, 0)} {
		gs.Board.Place(c, game.Player1)
	}
	gs.Board.Place(game.ToIndex(2, 3), game.Player2)

	require.Equal(t, Evaluate(gs, game.Player1), -Evaluate(gs, game.Player2))
}

func TestEvaluateRewardsEnemyTerritory(t *testing.T) {
	gs := openGameState(t)
	neutral := Evaluate(gs, game.Player1)
	gs.Board.Place(game.ToIndex(5, 5), game.Player1)
	require.Greater(t, Evaluate(gs, game.Player1), neutral,
		"A piece inside the enemy half should raise the score")
}

func TestTerminalScorePrefersQuickerWins(t *testing.T) {
	gs := openGameState(t)
	gs.Won = game.Player1
	require.Greater(t, terminalScore(gs, game.Player1, 2), terminalScore(gs, game.Player1, 0))
	require.Equal(t, -terminalScore(gs, game.Player1, 1), terminalScore(gs, game.Player2, 1))

	gs.Won = game.None
	require.Zero(t, terminalScore(gs, game.Player1, 3), "A draw scores zero at any depth")
}

func TestCandidateOrderingIsTotal(t *testing.T) {
	gs := openGameState(t)
	gs.Board.Place(game.ToIndex(4, 4), game.Player1)
	gs.Board.Place(game.ToIndex(4, 5), game.Player1)
	gs.Board.Place(game.ToIndex(2, 2), game.Player2)

	moves := gs.LegalIntents()
	pos := make(map[game.Intent]int, len(moves))
	for i, move := range moves {
		pos[move] = i
	}

	s := &search{ctx: context.Background()}
	cands := s.ordered(gs, moves)
	require.Len(t, cands, len(moves))
	for i := 1; i < len(cands); i++ {
		require.GreaterOrEqual(t, cands[i-1].score, cands[i].score,
			"Candidates must be sorted by score descending")
		if cands[i-1].score == cands[i].score {
			require.Less(t, pos[cands[i-1].move], pos[cands[i].move],
				"Ties must keep intent order as a deterministic tie-break")
		}
	}
}

func TestNewAgentDifficulties(t *testing.T) {
	gs := openGameState(t)
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		move, _ := NewAgent(d).FindMove(gs.Copy())
		require.Contains(t, gs.LegalIntents(), move, "difficulty %s", d)
	}
	require.Panics(t, func() { NewAgent("impossible") })
}

func TestSelectMoveReturnsLegalIntent(t *testing.T) {
	gs := openGameState(t)
	move := SelectMove(gs, Easy)
	require.Contains(t, gs.LegalIntents(), move)
}
