package game

import "fmt"

type IntentKind string

const (
	PlaceIntent      IntentKind = "place"
	StepIntent       IntentKind = "step"
	JumpIntent       IntentKind = "jump"
	EndTurnIntent    IntentKind = "endTurn"
	PieSwapIntent    IntentKind = "pieSwap"
	PieDeclineIntent IntentKind = "pieDecline"
)

// Intent is one addressable move a caller can submit. Cell addresses a
// placement; From/To address a piece move. Unused fields hold -1.
type Intent struct {
	Kind IntentKind `json:"kind"`
	Cell int        `json:"cell"`
	From int        `json:"from"`
	To   int        `json:"to"`
}

func Place(cell int) Intent {
	return Intent{Kind: PlaceIntent, Cell: cell, From: -1, To: -1}
}

func Step(from, to int) Intent {
	return Intent{Kind: StepIntent, Cell: -1, From: from, To: to}
}

func Jump(from, to int) Intent {
	return Intent{Kind: JumpIntent, Cell: -1, From: from, To: to}
}

func EndTurn() Intent {
	return Intent{Kind: EndTurnIntent, Cell: -1, From: -1, To: -1}
}

func PieSwap() Intent {
	return Intent{Kind: PieSwapIntent, Cell: -1, From: -1, To: -1}
}

func PieDecline() Intent {
	return Intent{Kind: PieDeclineIntent, Cell: -1, From: -1, To: -1}
}

func (in Intent) String() string {
	switch in.Kind {
	case PlaceIntent:
		row, col := ToCoords(in.Cell)
		return fmt.Sprintf("place %d,%d", row, col)
	case StepIntent, JumpIntent:
		fr, fc := ToCoords(in.From)
		tr, tc := ToCoords(in.To)
		return fmt.Sprintf("%s %d,%d->%d,%d", in.Kind, fr, fc, tr, tc)
	}
	return string(in.Kind)
}

// Result reports everything a caller needs to narrate a successful intent.
type Result struct {
	Intent       Intent `json:"intent"`
	Player       Player `json:"player"`
	Evicted      []int  `json:"evicted,omitempty"`
	Captured     []int  `json:"captured,omitempty"`
	Promoted     bool   `json:"promoted"`
	Continuation bool   `json:"continuation"`
	GameOver     bool   `json:"gameOver"`
	Winner       Player `json:"winner"`
	WinningLine  []int  `json:"winningLine,omitempty"`
}

type HistoryKind string

const (
	PlacementEntry   HistoryKind = "placement"
	MoveEntry        HistoryKind = "move"
	CaptureEntry     HistoryKind = "capture"
	ReplacementEntry HistoryKind = "replacement"
	EvictionEntry    HistoryKind = "eviction"
)

// HistoryEntry is an append-only log record; never mutated after append.
type HistoryEntry struct {
	Kind   HistoryKind `json:"kind"`
	Player Player      `json:"player"`
	Cells  []int       `json:"cells"`
	Ply    int         `json:"ply"`
}
