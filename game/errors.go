package game

import "errors"

// Caller-facing rejections. Every one is recoverable and leaves the state
// untouched; callers branch with errors.Is. Internal invariant violations
// (double occupancy, negative inventory) panic instead, because they are
// unreachable through the public contract.
var (
	ErrInvalidPhase      = errors.New("intent not valid in the current phase")
	ErrOutOfTerritory    = errors.New("cell is outside the required territory")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNotOwnPiece       = errors.New("cell does not hold your piece")
	ErrNoSuchMove        = errors.New("no such move from this cell")
	ErrCaptureRequired   = errors.New("a capture is available and must be played")
	ErrNoPiecesRemaining = errors.New("no pieces remaining to place")
	ErrGameOver          = errors.New("game is already over")
)
