package game

// The phase state machine. Every intent is fully validated before any
// mutation, so a rejection never leaves a partially applied turn behind.

// LegalIntents returns every addressable move for the player to act, in a
// deterministic order: placements by cell ascending, then per piece jumps
// before steps with cells ascending and directions in table order.
func (gs *GameState) LegalIntents() []Intent {
	switch gs.Phase {
	case PieDecisionPhase:
		return []Intent{PieSwap(), PieDecline()}
	case OpeningPhase:
		if gs.inventoryOf(gs.CurrentPlayer) <= 0 {
			return nil
		}
		var intents []Intent
		for i := 0; i < Size; i++ {
			if !gs.Board.Occupied(i) && gs.placementTerritoryOK(i) {
				intents = append(intents, Place(i))
			}
		}
		return intents
	case MovementPhase:
		if gs.Continuation >= 0 {
			intents := gs.jumpsFrom(gs.Continuation)
			return append(intents, EndTurn())
		}
		var jumps, steps []Intent
		for i := 0; i < Size; i++ {
			if gs.Board.Cells[i].Owner != gs.CurrentPlayer {
				continue
			}
			if gs.Config.Capture {
				jumps = append(jumps, gs.jumpsFrom(i)...)
			}
			steps = append(steps, gs.stepsFrom(i)...)
		}
		if gs.Config.ForcedCapture && len(jumps) > 0 {
			return jumps
		}
		return append(jumps, steps...)
	}
	return nil
}

// Apply validates and executes one intent, returning a structured result.
// Rejections are sentinel errors from errors.go and never mutate state.
func (gs *GameState) Apply(intent Intent) (Result, error) {
	if gs.Phase == OverPhase {
		return Result{}, ErrGameOver
	}
	switch intent.Kind {
	case PlaceIntent:
		return gs.applyPlacement(intent)
	case PieSwapIntent, PieDeclineIntent:
		return gs.applyPieDecision(intent)
	case StepIntent, JumpIntent:
		return gs.applyMove(intent)
	case EndTurnIntent:
		return gs.applyEndTurn(intent)
	}
	return Result{}, ErrNoSuchMove
}

// placementTerritoryOK resolves the required-half rule for the current ply.
func (gs *GameState) placementTerritoryOK(index int) bool {
	cfg := gs.Config
	if cfg.OpenGamePly > 0 && gs.Ply >= cfg.OpenGamePly {
		return true
	}
	if cfg.CoinToss {
		return InHome(index, gs.ActiveHalf)
	}
	if cfg.Opening == OpeningStaged {
		stage := cfg.stageFor(gs.Ply)
		if stage == nil { // past the schedule: open game
			return true
		}
		return InRegion(index, gs.CurrentPlayer, stage.Half)
	}
	return InHome(index, gs.CurrentPlayer)
}

func (gs *GameState) applyPlacement(in Intent) (Result, error) {
	if gs.Phase != OpeningPhase {
		return Result{}, ErrInvalidPhase
	}
	if in.Cell < 0 || in.Cell >= Size {
		return Result{}, ErrNoSuchMove
	}
	if gs.inventoryOf(gs.CurrentPlayer) <= 0 {
		return Result{}, ErrNoPiecesRemaining
	}
	if gs.Board.Occupied(in.Cell) {
		return Result{}, ErrCellOccupied
	}
	if !gs.placementTerritoryOK(in.Cell) {
		return Result{}, ErrOutOfTerritory
	}

	mover := gs.CurrentPlayer
	gs.Board.Place(in.Cell, mover)
	gs.addInventory(mover, -1)
	gs.appendHistory(PlacementEntry, mover, in.Cell)

	res := Result{Intent: in, Player: mover}

	// Cap evictions resolve strictly before win detection, so a player can
	// never win by transiently exceeding a cap.
	gs.applyEvictions(mover, in.Cell, &res)

	firstPlacement := gs.Ply == 0
	gs.Ply++

	// The active half alternates every full round, so each player's
	// placements swing between the two halves until the open game.
	if gs.Config.CoinToss && gs.Ply%2 == 0 {
		gs.ActiveHalf = gs.ActiveHalf.Opponent()
	}

	if gs.finishTurn(mover, &res) {
		return res, nil
	}
	if gs.Config.PieRule && firstPlacement {
		gs.Phase = PieDecisionPhase
		return res, nil
	}
	if gs.Config.Movement && gs.Inventory[0] == 0 && gs.Inventory[1] == 0 {
		gs.Phase = MovementPhase
	}
	gs.checkDeadPosition(&res)
	return res, nil
}

// applyEvictions enforces the FIFO cap policies in their fixed order:
// invasion-cap penalty first, then total-cap eviction. Each pass removes the
// acting player's oldest home piece, falling back to the oldest anywhere, and
// is a no-op when nothing is eligible. The just-placed piece never is.
func (gs *GameState) applyEvictions(mover Player, justPlaced int, res *Result) {
	cfg := gs.Config
	if cfg.InvasionCap > 0 && gs.Board.Count(mover, HalfAway) > cfg.InvasionCap {
		gs.evictOldest(mover, justPlaced, res)
	}
	if cfg.TotalCap > 0 && gs.Board.Count(mover, HalfAny) > cfg.TotalCap {
		gs.evictOldest(mover, justPlaced, res)
	}
}

func (gs *GameState) evictOldest(mover Player, justPlaced int, res *Result) {
	idx := gs.Board.Oldest(mover, HalfHome, justPlaced)
	if idx < 0 {
		idx = gs.Board.Oldest(mover, HalfAny, justPlaced)
	}
	if idx < 0 {
		return
	}
	gs.Board.Remove(idx)
	gs.addInventory(mover, 1)
	gs.appendHistory(EvictionEntry, mover, idx)
	res.Evicted = append(res.Evicted, idx)
}

func (gs *GameState) applyPieDecision(in Intent) (Result, error) {
	if gs.Phase != PieDecisionPhase {
		return Result{}, ErrInvalidPhase
	}
	mover := gs.CurrentPlayer
	res := Result{Intent: in, Player: mover}

	if in.Kind == PieSwapIntent {
		var swapped []int
		for i := 0; i < Size; i++ {
			if gs.Board.Occupied(i) {
				swapped = append(swapped, i)
			}
		}
		gs.Board.SwapOwners()
		gs.Inventory[0], gs.Inventory[1] = gs.Inventory[1], gs.Inventory[0]
		gs.appendHistory(ReplacementEntry, mover, swapped...)
		// The invoker adopted the first placement, so the original first
		// player acts next; first-move ownership has flipped.
		gs.CurrentPlayer = mover.Opponent()
	}
	gs.Phase = OpeningPhase
	return res, nil
}

func (gs *GameState) applyMove(in Intent) (Result, error) {
	if gs.Phase != MovementPhase {
		return Result{}, ErrInvalidPhase
	}
	if in.From < 0 || in.From >= Size || in.To < 0 || in.To >= Size {
		return Result{}, ErrNoSuchMove
	}
	piece := gs.Board.PieceAt(in.From)
	if piece.Owner != gs.CurrentPlayer {
		return Result{}, ErrNotOwnPiece
	}
	if gs.Continuation >= 0 && (in.Kind != JumpIntent || in.From != gs.Continuation) {
		return Result{}, ErrNoSuchMove
	}
	if gs.Board.Occupied(in.To) {
		return Result{}, ErrCellOccupied
	}

	mover := gs.CurrentPlayer
	isJump := in.Kind == JumpIntent
	over := -1
	if isJump {
		if !gs.Config.Capture {
			return Result{}, ErrNoSuchMove
		}
		var ok bool
		over, ok = gs.jumpTarget(in.From, in.To)
		if !ok {
			return Result{}, ErrNoSuchMove
		}
	} else {
		// Forced capture is checked engine-wide, not just for this piece.
		if gs.Config.ForcedCapture && gs.anyCapture(mover) {
			return Result{}, ErrCaptureRequired
		}
		if !gs.stepTarget(in.From, in.To) {
			return Result{}, ErrNoSuchMove
		}
	}

	gs.Board.MovePiece(in.From, in.To)
	res := Result{Intent: in, Player: mover}
	if isJump {
		victim, _ := gs.Board.Remove(over)
		gs.addInventory(victim, 1)
		gs.appendHistory(CaptureEntry, mover, in.From, over, in.To)
		res.Captured = []int{over}
	} else {
		gs.appendHistory(MoveEntry, mover, in.From, in.To)
	}
	gs.Ply++

	// Promotion lands before the continuation and win checks.
	if gs.Config.Kings && !piece.King && in.To/Cols == PromotionRow(mover) {
		gs.Board.Promote(in.To)
		res.Promoted = true
	}

	if isJump && gs.Config.MultiJump && len(gs.jumpsFrom(in.To)) > 0 {
		gs.Continuation = in.To
		res.Continuation = true
		return res, nil
	}

	if gs.finishTurn(mover, &res) {
		return res, nil
	}
	gs.checkDeadPosition(&res)
	return res, nil
}

func (gs *GameState) applyEndTurn(in Intent) (Result, error) {
	if gs.Phase != MovementPhase {
		return Result{}, ErrInvalidPhase
	}
	if gs.Continuation < 0 {
		return Result{}, ErrNoSuchMove
	}
	mover := gs.CurrentPlayer
	res := Result{Intent: in, Player: mover}
	if gs.finishTurn(mover, &res) {
		return res, nil
	}
	gs.checkDeadPosition(&res)
	return res, nil
}

// finishTurn runs win detection for the completed turn and, absent a win,
// passes the turn. Returns true when the game ended.
func (gs *GameState) finishTurn(mover Player, res *Result) bool {
	if line, ok := gs.winningLineFor(mover); ok {
		gs.Phase = OverPhase
		gs.Won = mover
		gs.WinLine = line
		res.GameOver = true
		res.Winner = mover
		res.WinningLine = line
		return true
	}
	gs.Continuation = -1
	gs.CurrentPlayer = mover.Opponent()
	return false
}

// winningLineFor returns the first line, in fixed scan order, whose four
// cells all hold p's pieces inside the opponent's territory.
func (gs *GameState) winningLineFor(p Player) ([]int, bool) {
	for _, line := range Lines {
		if line.Scorer != p {
			continue
		}
		won := true
		for _, c := range line.Cells {
			if gs.Board.Cells[c].Owner != p {
				won = false
				break
			}
		}
		if won {
			return append([]int(nil), line.Cells[:]...), true
		}
	}
	return nil, false
}

// checkDeadPosition ends the game when the player to act has nothing to do:
// with an empty inventory the opponent wins by stalemate, otherwise (a full
// board in a placement variant) the game is drawn.
func (gs *GameState) checkDeadPosition(res *Result) {
	if gs.Phase == OverPhase {
		return
	}
	if len(gs.LegalIntents()) > 0 {
		return
	}
	if gs.inventoryOf(gs.CurrentPlayer) == 0 {
		gs.Won = gs.CurrentPlayer.Opponent()
	}
	gs.Phase = OverPhase
	res.GameOver = true
	res.Winner = gs.Won
}

// pieceDirs selects the direction set for a piece: all eight when the config
// is omnidirectional, the four diagonals for kings, forward diagonals for men.
func pieceDirs(cfg Config, p Player, king bool) [][2]int {
	if cfg.Omnidirectional {
		return omniDirs[:]
	}
	if king && cfg.Kings {
		return diagDirs[:]
	}
	return forwardDirs(p)
}

// stepTarget reports whether from->to is a legal single step.
func (gs *GameState) stepTarget(from, to int) bool {
	row, col := ToCoords(from)
	piece := gs.Board.PieceAt(from)
	for _, d := range pieceDirs(gs.Config, piece.Owner, piece.King) {
		tr, tc := row+d[0], col+d[1]
		if OnBoard(tr, tc) && ToIndex(tr, tc) == to {
			return !gs.Board.Occupied(to)
		}
	}
	return false
}

// jumpTarget reports whether from->to is a legal capture, returning the
// jumped cell.
func (gs *GameState) jumpTarget(from, to int) (int, bool) {
	row, col := ToCoords(from)
	piece := gs.Board.PieceAt(from)
	for _, d := range pieceDirs(gs.Config, piece.Owner, piece.King) {
		mr, mc := row+d[0], col+d[1]
		lr, lc := row+2*d[0], col+2*d[1]
		if !OnBoard(lr, lc) || ToIndex(lr, lc) != to {
			continue
		}
		mid := ToIndex(mr, mc)
		if gs.Board.Cells[mid].Owner == piece.Owner.Opponent() && !gs.Board.Occupied(to) {
			return mid, true
		}
	}
	return -1, false
}

func (gs *GameState) stepsFrom(index int) []Intent {
	row, col := ToCoords(index)
	piece := gs.Board.PieceAt(index)
	var intents []Intent
	for _, d := range pieceDirs(gs.Config, piece.Owner, piece.King) {
		tr, tc := row+d[0], col+d[1]
		if OnBoard(tr, tc) && !gs.Board.Occupied(ToIndex(tr, tc)) {
			intents = append(intents, Step(index, ToIndex(tr, tc)))
		}
	}
	return intents
}

func (gs *GameState) jumpsFrom(index int) []Intent {
	if !gs.Config.Capture {
		return nil
	}
	row, col := ToCoords(index)
	piece := gs.Board.PieceAt(index)
	var intents []Intent
	for _, d := range pieceDirs(gs.Config, piece.Owner, piece.King) {
		mr, mc := row+d[0], col+d[1]
		lr, lc := row+2*d[0], col+2*d[1]
		if !OnBoard(lr, lc) {
			continue
		}
		mid, land := ToIndex(mr, mc), ToIndex(lr, lc)
		if gs.Board.Cells[mid].Owner == piece.Owner.Opponent() && !gs.Board.Occupied(land) {
			intents = append(intents, Jump(index, land))
		}
	}
	return intents
}

// anyCapture reports whether p has any capture available anywhere.
func (gs *GameState) anyCapture(p Player) bool {
	for i := 0; i < Size; i++ {
		if gs.Board.Cells[i].Owner == p && len(gs.jumpsFrom(i)) > 0 {
			return true
		}
	}
	return false
}
