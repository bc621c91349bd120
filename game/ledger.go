package game

import "fmt"

// Cell is one board square. Owner None means empty. Order is the global
// placement counter value assigned when the piece entered the board; it is
// never reused, so FIFO ties are impossible.
type Cell struct {
	Owner Player `json:"owner"`
	King  bool   `json:"king"`
	Order int    `json:"order"`
}

// Ledger is the sole owner of all piece records. The board view is the cell
// array itself; there is no second authoritative copy to drift out of sync.
type Ledger struct {
	Cells     [Size]Cell `json:"cells"`
	NextOrder int        `json:"nextOrder"`
}

func (l *Ledger) PieceAt(index int) Cell {
	return l.Cells[index]
}

func (l *Ledger) Occupied(index int) bool {
	return l.Cells[index].Owner != None
}

// Place records a new piece for p and returns its placement order.
// Placing onto an occupied cell is an internal invariant violation: the rule
// engine validates every intent before mutating.
func (l *Ledger) Place(index int, p Player) int {
	if l.Cells[index].Owner != None {
		panic(fmt.Sprintf("ledger: cell %d already occupied by %s", index, l.Cells[index].Owner))
	}
	order := l.NextOrder
	l.NextOrder++
	l.Cells[index] = Cell{Owner: p, Order: order}
	return order
}

// Remove clears index and returns the previous owner, or false when empty.
func (l *Ledger) Remove(index int) (Player, bool) {
	owner := l.Cells[index].Owner
	if owner == None {
		return None, false
	}
	l.Cells[index] = Cell{}
	return owner, true
}

// MovePiece relocates the piece on from to the empty cell to, keeping its
// placement order and king status.
func (l *Ledger) MovePiece(from, to int) {
	if l.Cells[from].Owner == None {
		panic(fmt.Sprintf("ledger: no piece on cell %d", from))
	}
	if l.Cells[to].Owner != None {
		panic(fmt.Sprintf("ledger: cell %d already occupied by %s", to, l.Cells[to].Owner))
	}
	l.Cells[to] = l.Cells[from]
	l.Cells[from] = Cell{}
}

func (l *Ledger) Promote(index int) {
	if l.Cells[index].Owner == None {
		panic(fmt.Sprintf("ledger: no piece on cell %d", index))
	}
	l.Cells[index].King = true
}

// Oldest returns the index of p's piece with the lowest placement order
// within region, skipping exclude (pass -1 to consider every cell), or -1
// when no eligible piece exists.
func (l *Ledger) Oldest(p Player, region Half, exclude int) int {
	best := -1
	for i := 0; i < Size; i++ {
		if i == exclude || l.Cells[i].Owner != p || !InRegion(i, p, region) {
			continue
		}
		if best == -1 || l.Cells[i].Order < l.Cells[best].Order {
			best = i
		}
	}
	return best
}

// Count returns how many of p's pieces sit within region.
func (l *Ledger) Count(p Player, region Half) int {
	n := 0
	for i := 0; i < Size; i++ {
		if l.Cells[i].Owner == p && InRegion(i, p, region) {
			n++
		}
	}
	return n
}

// SwapOwners flips the ownership of every on-board piece (pie rule).
func (l *Ledger) SwapOwners() {
	for i := range l.Cells {
		if l.Cells[i].Owner != None {
			l.Cells[i].Owner = l.Cells[i].Owner.Opponent()
		}
	}
}
