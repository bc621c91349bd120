package game

// Static board topology shared by every game state: coordinate math,
// territory halves, direction tables, the 4-in-line win tables and the
// per-cell influence counts. Nothing in here is mutable.

const (
	Rows       = 8
	Cols       = 8
	Size       = Rows * Cols
	LineLength = 4
)

type Player int

const (
	None    Player = 0
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return None
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "None"
}

// Half is a territory selector relative to a player.
type Half string

const (
	HalfHome Half = "home"
	HalfAway Half = "away"
	HalfAny  Half = "any"
)

func ToIndex(row, col int) int {
	return row*Cols + col
}

func ToCoords(index int) (row, col int) {
	return index / Cols, index % Cols
}

func OnBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// InHome reports whether index lies in p's home half. Player1 owns rows 0-3,
// Player2 owns rows 4-7; the halves are complementary and fixed.
func InHome(index int, p Player) bool {
	row := index / Cols
	if p == Player1 {
		return row < Rows/2
	}
	return row >= Rows/2
}

func InAway(index int, p Player) bool {
	return !InHome(index, p)
}

// InRegion resolves a relative half selector against a player.
func InRegion(index int, p Player, region Half) bool {
	switch region {
	case HalfHome:
		return InHome(index, p)
	case HalfAway:
		return InAway(index, p)
	}
	return true
}

// PromotionRow is the farthest row from p's home half.
func PromotionRow(p Player) int {
	if p == Player1 {
		return Rows - 1
	}
	return 0
}

// Line directions in the fixed scan order required for deterministic win
// detection: horizontal, vertical, diag-down-right, diag-down-left.
var lineDirs = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Step directions, row-major order.
var omniDirs = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var diagDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// forwardDirs are the non-king checkers directions, toward the opponent half.
func forwardDirs(p Player) [][2]int {
	if p == Player1 {
		return [][2]int{{1, -1}, {1, 1}}
	}
	return [][2]int{{-1, -1}, {-1, 1}}
}

// Line is a 4-cell winning line. Scorer is the player for whom the line can
// win, i.e. the player whose away half contains all four cells; None when the
// line straddles both halves.
type Line struct {
	Cells  [LineLength]int
	Scorer Player
}

// Lines holds every 4-length line on the board in scan order: rows ascending,
// columns ascending, then the fixed direction order.
var Lines = buildLines()

func buildLines() []Line {
	var lines []Line
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			for _, dir := range lineDirs {
				endRow := row + dir[0]*(LineLength-1)
				endCol := col + dir[1]*(LineLength-1)
				if !OnBoard(endRow, endCol) {
					continue
				}
				var line Line
				for i := 0; i < LineLength; i++ {
					line.Cells[i] = ToIndex(row+dir[0]*i, col+dir[1]*i)
				}
				line.Scorer = lineScorer(line.Cells)
				lines = append(lines, line)
			}
		}
	}
	return lines
}

func lineScorer(cells [LineLength]int) Player {
	for _, p := range []Player{Player1, Player2} {
		all := true
		for _, c := range cells {
			if !InAway(c, p) {
				all = false
				break
			}
		}
		if all {
			return p
		}
	}
	return None
}

// influence[p-1][cell] counts the lines winnable by p that pass through cell.
var influence = buildInfluence()

func buildInfluence() [2][Size]int {
	var counts [2][Size]int
	for _, line := range Lines {
		if line.Scorer == None {
			continue
		}
		for _, c := range line.Cells {
			counts[line.Scorer-1][c]++
		}
	}
	return counts
}

// Influence returns how many of p's winning lines pass through index. It is
// zero everywhere outside p's away half.
func Influence(p Player, index int) int {
	if p == None {
		return 0
	}
	return influence[p-1][index]
}
