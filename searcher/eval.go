package searcher

import "stronghold/game"

// WinScore dominates every heuristic term; terminal outcomes are scored
// against it with a depth bonus so quicker wins rank higher.
const WinScore = 1 << 20

// Super-linear weights for an unopposed n-in-line. A completed line is a
// terminal state and normally scored as such; the weight is kept for the
// heuristic's own consistency.
var lineWeights = [game.LineLength + 1]int{0, 1, 10, 100, 1000}

// Evaluate scores gs from p's perspective. It sums, over every line inside
// p's scoring territory, the weight of p's unopposed occupancy, subtracts the
// symmetric term for the opponent's threats, and adds the influence counts of
// p's pieces in the opponent half minus the opponent's mirror term. The score
// is zero-sum: Evaluate(gs, p) == -Evaluate(gs, p.Opponent()).
func Evaluate(gs *game.GameState, p game.Player) int {
	opp := p.Opponent()
	score := 0
	for _, line := range game.Lines {
		switch line.Scorer {
		case p:
			own, enemy := countLine(gs, line, p)
			if enemy == 0 {
				score += lineWeights[own]
			}
		case opp:
			own, enemy := countLine(gs, line, opp)
			if enemy == 0 {
				score -= lineWeights[own]
			}
		}
	}
	for i := 0; i < game.Size; i++ {
		owner := gs.Board.Cells[i].Owner
		if owner == p && game.InAway(i, p) {
			score += game.Influence(p, i)
		} else if owner == opp && game.InAway(i, opp) {
			score -= game.Influence(opp, i)
		}
	}
	return score
}

func countLine(gs *game.GameState, line game.Line, owner game.Player) (own, enemy int) {
	for _, c := range line.Cells {
		switch gs.Board.Cells[c].Owner {
		case owner:
			own++
		case owner.Opponent():
			enemy++
		}
	}
	return own, enemy
}

// terminalScore values a finished game from pov's perspective.
func terminalScore(gs *game.GameState, pov game.Player, depth int) int {
	switch gs.Won {
	case pov:
		return WinScore + depth
	case game.None:
		return 0
	}
	return -(WinScore + depth)
}
