// meta/meta.go
package meta

import "time"

// MaxMoves caps a single game loop; placement-forever variants can otherwise
// shuffle pieces indefinitely.
const MaxMoves = 600

// Search depths per difficulty, in plies beyond the immediate-tactics check.
const (
	EasyDepth   = 0
	MediumDepth = 2
	HardDepth   = 3
)

// HardTopK bounds the branching below the root on the hard difficulty.
const HardTopK = 12

// MaxSearchNodes aborts a runaway search, falling back to the best move
// found so far.
const MaxSearchNodes = 500_000

// SearchBudget is the default wall-clock bound per move.
const SearchBudget = 2 * time.Second
