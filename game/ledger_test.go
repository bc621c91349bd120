package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLedgerPlaceAndRemove(t *testing.T) {
	var l Ledger

	order1 := l.Place(10, Player1)
	order2 := l.Place(20, Player2)
	require.Less(t, order1, order2, "Placement order should be strictly monotonic")
	require.True(t, l.Occupied(10))
	require.Equal(t, Player1, l.PieceAt(10).Owner)

	owner, ok := l.Remove(10)
	require.True(t, ok)
	require.Equal(t, Player1, owner, "Remove should report the previous owner")
	require.False(t, l.Occupied(10))

	_, ok = l.Remove(10)
	require.False(t, ok, "Removing an empty cell should report no owner")

	order3 := l.Place(10, Player1)
	require.Greater(t, order3, order2, "Placement order should never be reused")
}

func TestLedgerDoubleOccupancyPanics(t *testing.T) {
	var l Ledger
	l.Place(5, Player1)
	require.Panics(t, func() { l.Place(5, Player2) },
		"Placing onto an occupied cell is an internal invariant violation")
	require.Panics(t, func() { l.MovePiece(0, 5) },
		"Moving an empty cell is an internal invariant violation")
}

func TestLedgerMoveAndPromote(t *testing.T) {
	var l Ledger
	order := l.Place(ToIndex(2, 2), Player1)

	l.MovePiece(ToIndex(2, 2), ToIndex(3, 3))
	require.False(t, l.Occupied(ToIndex(2, 2)))
	moved := l.PieceAt(ToIndex(3, 3))
	require.Equal(t, Player1, moved.Owner)
	require.Equal(t, order, moved.Order, "A move should keep the placement order")
	require.False(t, moved.King)

	l.Promote(ToIndex(3, 3))
	require.True(t, l.PieceAt(ToIndex(3, 3)).King)
}

func TestLedgerOldest(t *testing.T) {
	var l Ledger
	// Player1 home is rows 0-3, away is rows 4-7.
	home1 := ToIndex(0, 0)
	home2 := ToIndex(1, 1)
	away1 := ToIndex(5, 5)
	l.Place(home1, Player1)
	l.Place(away1, Player1)
	l.Place(home2, Player1)
	l.Place(ToIndex(7, 7), Player2)

	require.Equal(t, home1, l.Oldest(Player1, HalfHome, -1),
		"Oldest home piece should win by placement order")
	require.Equal(t, home1, l.Oldest(Player1, HalfAny, -1),
		"Oldest anywhere should be the first placed piece")
	require.Equal(t, away1, l.Oldest(Player1, HalfAway, -1))

	require.Equal(t, home2, l.Oldest(Player1, HalfHome, home1),
		"Exclusion should skip the excluded cell")
	require.Equal(t, -1, l.Oldest(Player2, HalfAway, -1),
		"No eligible piece should report -1")
}

func TestLedgerCount(t *testing.T) {
	var l Ledger
	l.Place(ToIndex(0, 0), Player1)
	l.Place(ToIndex(1, 0), Player1)
	l.Place(ToIndex(6, 0), Player1)
	l.Place(ToIndex(6, 1), Player2)

	require.Equal(t, 3, l.Count(Player1, HalfAny))
	require.Equal(t, 2, l.Count(Player1, HalfHome))
	require.Equal(t, 1, l.Count(Player1, HalfAway))
	require.Equal(t, 1, l.Count(Player2, HalfHome))
}

func TestLedgerSwapOwners(t *testing.T) {
	var l Ledger
	l.Place(3, Player1)
	l.Place(40, Player2)

	l.SwapOwners()

	require.Equal(t, Player2, l.PieceAt(3).Owner)
	require.Equal(t, Player1, l.PieceAt(40).Owner)
}
