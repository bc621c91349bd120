package searcher

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"stronghold/game"
	"stronghold/meta"
)

type Option func(m *Minimax)

// Minimax is the deterministic decision engine: immediate tactics first,
// then bounded alpha-beta over cloned states with the line heuristic at the
// leaves. Identical states always yield identical moves; all orderings use a
// total order (score descending, then intent order ascending).
type Minimax struct {
	depth    int
	topK     int
	maxNodes int64
	budget   time.Duration
	metrics  Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

// WithTopK restricts branching below the root to the k best candidates by
// heuristic score.
func WithTopK(k int) Option {
	return func(m *Minimax) {
		if k > 0 {
			m.topK = k
		}
	}
}

func WithMaxNodes(n int64) Option {
	return func(m *Minimax) {
		if n > 0 {
			m.maxNodes = n
		}
	}
}

// WithBudget bounds a single FindMove call by wall clock; the search falls
// back to the best root move found so far.
func WithBudget(budget time.Duration) Option {
	return func(m *Minimax) {
		if budget > 0 {
			m.budget = budget
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.MediumDepth,
		maxNodes: meta.MaxSearchNodes,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove selects a move for the player to act in gs. The caller's state is
// never mutated; every explored branch works on its own clone.
func (m *Minimax) FindMove(gs *game.GameState) (game.Intent, SearchMetrics) {
	ctx := context.Background()
	if m.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.budget)
		defer cancel()
	}
	return m.FindMoveContext(ctx, gs)
}

// FindMoveContext is FindMove under a caller-supplied context, so a host can
// offload the search and cancel it without starving an interactive loop.
func (m *Minimax) FindMoveContext(ctx context.Context, gs *game.GameState) (game.Intent, SearchMetrics) {
	m.metrics.Start(m.depth)

	moves := gs.LegalIntents()
	if len(moves) == 0 {
		panic("no legal intents to search")
	}

	s := &search{
		ctx:      ctx,
		maxNodes: m.maxNodes,
		topK:     m.topK,
		metrics:  m.metrics,
	}

	// Immediate tactics: take a winning move, else neutralize an opponent
	// win threatened for next turn.
	if move, ok := s.tactical(gs, moves); ok {
		return move, m.metrics.Complete()
	}

	cands := s.ordered(gs, moves)
	if m.depth == 0 { // Heuristic-only policy
		return cands[0].move, m.metrics.Complete()
	}

	best := cands[0].move
	bestScore := math.MinInt
	alpha, beta := math.MinInt+1, math.MaxInt-1
	for _, c := range cands {
		v := s.descend(gs, c.child, m.depth-1, alpha, beta)
		if v > bestScore {
			bestScore = v
			best = c.move
		}
		if v > alpha {
			alpha = v
		}
		if s.aborted { // Keep the best move found so far
			break
		}
	}
	if s.aborted {
		log.Warn().
			Int64("nodes", s.nodes).
			Msgf("search aborted, falling back to best move so far: %s", best)
	}
	return best, m.metrics.Complete()
}

// search carries per-call state so one Minimax value can serve concurrent or
// repeated searches without sharing anything mutable.
type search struct {
	ctx      context.Context
	maxNodes int64
	topK     int
	metrics  Collector
	nodes    int64
	aborted  bool
}

func (s *search) abort() bool {
	if s.aborted {
		return true
	}
	if s.maxNodes > 0 && s.nodes >= s.maxNodes {
		s.aborted = true
	} else if s.nodes%256 == 0 && s.ctx.Err() != nil {
		s.aborted = true
	}
	if s.aborted {
		s.metrics.SetAborted()
	}
	return s.aborted
}

func playout(gs *game.GameState, move game.Intent) *game.GameState {
	child := gs.Copy()
	if _, err := child.Apply(move); err != nil {
		panic("searcher generated an illegal intent: " + err.Error())
	}
	return child
}

// tactical returns a move that ends the game in the mover's favor, or, when
// the opponent threatens an immediate win next turn, the first move that
// neutralizes every such threat.
func (s *search) tactical(gs *game.GameState, moves []game.Intent) (game.Intent, bool) {
	me := gs.CurrentPlayer
	children := make([]*game.GameState, len(moves))
	for i, move := range moves {
		child := playout(gs, move)
		if child.Won == me {
			return move, true
		}
		children[i] = child
	}

	threatened := false
	safe := -1
	for i, child := range children {
		if child.GameOver() {
			continue // Drawn or lost outright; never a blocking candidate
		}
		if s.opponentWinsNext(child, me) {
			threatened = true
		} else if safe == -1 {
			safe = i
		}
	}
	if threatened && safe >= 0 {
		return moves[safe], true
	}
	return game.Intent{}, false
}

// opponentWinsNext reports whether, in child, the player to act is me's
// opponent and holds an immediately winning intent.
func (s *search) opponentWinsNext(child *game.GameState, me game.Player) bool {
	if child.CurrentPlayer == me { // Multi-jump continuation: still our turn
		return false
	}
	for _, move := range child.LegalIntents() {
		grandchild := playout(child, move)
		if grandchild.Won == child.CurrentPlayer {
			return true
		}
	}
	return false
}

type candidate struct {
	move  game.Intent
	child *game.GameState
	score int
}

// ordered expands every legal move once and sorts the candidates by score
// descending; the stable sort keeps intent order as the tie-break.
func (s *search) ordered(gs *game.GameState, moves []game.Intent) []candidate {
	me := gs.CurrentPlayer
	cands := make([]candidate, len(moves))
	for i, move := range moves {
		child := playout(gs, move)
		score := 0
		if child.GameOver() {
			score = terminalScore(child, me, 0)
		} else {
			score = Evaluate(child, me)
		}
		cands[i] = candidate{move: move, child: child, score: score}
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return b.score - a.score
	})
	return cands
}

// descend evaluates child (reached by a move of parent's player) and returns
// its value from the parent mover's perspective, negamax style. The sign only
// flips when the turn actually passed: a multi-jump continuation keeps the
// same player to act.
func (s *search) descend(parent, child *game.GameState, depth, alpha, beta int) int {
	if child.CurrentPlayer == parent.CurrentPlayer {
		return s.negamax(child, depth, alpha, beta)
	}
	return -s.negamax(child, depth, -beta, -alpha)
}

// negamax returns the value of gs from the perspective of gs.CurrentPlayer.
func (s *search) negamax(gs *game.GameState, depth, alpha, beta int) int {
	s.nodes++
	s.metrics.AddNode()

	if gs.GameOver() {
		return terminalScore(gs, gs.CurrentPlayer, depth)
	}
	if depth == 0 || s.abort() {
		return Evaluate(gs, gs.CurrentPlayer)
	}

	cands := s.ordered(gs, gs.LegalIntents())
	if s.topK > 0 && len(cands) > s.topK {
		cands = cands[:s.topK]
	}

	best := math.MinInt + 1
	for _, c := range cands {
		v := s.descend(gs, c.child, depth-1, alpha, beta)
		if v > best {
			best = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			s.metrics.AddPrune()
			break
		}
		if s.aborted {
			break
		}
	}
	return best
}
