package game

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math/rand"
)

type Phase string

const (
	OpeningPhase     Phase = "opening"
	PieDecisionPhase Phase = "pieDecision"
	MovementPhase    Phase = "movement"
	OverPhase        Phase = "over"
)

type StateHash uint64

// GameState is the single authoritative game record. Only the intent-handling
// operations in rules.go mutate it; the decision engine works on copies.
type GameState struct {
	Config        Config         `json:"config"`
	Board         Ledger         `json:"board"`
	Phase         Phase          `json:"phase"`
	CurrentPlayer Player         `json:"currentPlayer"`
	Ply           int            `json:"ply"`
	Inventory     [2]int         `json:"inventory"`
	ActiveHalf    Player         `json:"activeHalf"`
	Continuation  int            `json:"continuation"`
	History       []HistoryEntry `json:"history"`
	Won           Player         `json:"won"`
	WinLine       []int          `json:"winLine,omitempty"`
}

// NewGameState initializes a game under cfg. With the coin toss enabled,
// cfg.Seed deterministically picks the starting player and the initial
// active half, so identical configs always produce identical games.
func NewGameState(cfg Config) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gs := &GameState{
		Config:        cfg,
		Phase:         OpeningPhase,
		CurrentPlayer: Player1,
		Inventory:     [2]int{cfg.PieceCount, cfg.PieceCount},
		Continuation:  -1,
	}
	if cfg.CoinToss {
		rng := rand.New(rand.NewSource(cfg.Seed))
		if rng.Intn(2) == 1 {
			gs.CurrentPlayer = Player2
		}
		gs.ActiveHalf = gs.CurrentPlayer
	}
	return gs, nil
}

// Copy returns a deep copy sharing no mutable state with the receiver.
// Config is immutable and its stage slice is never written after creation.
func (gs *GameState) Copy() *GameState {
	historyCopy := make([]HistoryEntry, len(gs.History))
	copy(historyCopy, gs.History)
	for i := range historyCopy {
		historyCopy[i].Cells = append([]int(nil), historyCopy[i].Cells...)
	}

	var winLineCopy []int
	if gs.WinLine != nil {
		winLineCopy = make([]int, len(gs.WinLine))
		copy(winLineCopy, gs.WinLine)
	}

	return &GameState{
		Config:        gs.Config,
		Board:         gs.Board,
		Phase:         gs.Phase,
		CurrentPlayer: gs.CurrentPlayer,
		Ply:           gs.Ply,
		Inventory:     gs.Inventory,
		ActiveHalf:    gs.ActiveHalf,
		Continuation:  gs.Continuation,
		History:       historyCopy,
		Won:           gs.Won,
		WinLine:       winLineCopy,
	}
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, []byte(gs.Phase))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Ply))
	binary.Write(hasher, binary.LittleEndian, int64(gs.ActiveHalf))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Continuation))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Won))

	for _, inv := range gs.Inventory {
		binary.Write(hasher, binary.LittleEndian, int64(inv))
	}
	for _, cell := range gs.Board.Cells {
		binary.Write(hasher, binary.LittleEndian, int64(cell.Owner))
		binary.Write(hasher, binary.LittleEndian, cell.King)
		binary.Write(hasher, binary.LittleEndian, int64(cell.Order))
	}

	return StateHash(hasher.Sum64())
}

// Player returns the identifier of the player to act.
func (gs *GameState) Player() string {
	return gs.CurrentPlayer.String()
}

// Winner returns the winning player's identifier, or "" while the game is
// running or drawn.
func (gs *GameState) Winner() string {
	if gs.Won == None {
		return ""
	}
	return gs.Won.String()
}

func (gs *GameState) GameOver() bool {
	return gs.Phase == OverPhase
}

// inventory accessors; the array is indexed by player-1.

func (gs *GameState) inventoryOf(p Player) int {
	return gs.Inventory[p-1]
}

func (gs *GameState) addInventory(p Player, delta int) {
	gs.Inventory[p-1] += delta
	if gs.Inventory[p-1] < 0 {
		panic(fmt.Sprintf("negative inventory for %s", p))
	}
}

func (gs *GameState) appendHistory(kind HistoryKind, p Player, cells ...int) {
	gs.History = append(gs.History, HistoryEntry{
		Kind:   kind,
		Player: p,
		Cells:  cells,
		Ply:    gs.Ply,
	})
}

// Snapshot serializes the complete state. Restore of the result reproduces an
// identical legal-intent set and identical future behavior.
func (gs *GameState) Snapshot() ([]byte, error) {
	data, err := json.Marshal(gs)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot state: %w", err)
	}
	return data, nil
}

// Restore rebuilds a game from a Snapshot payload.
func Restore(data []byte) (*GameState, error) {
	var gs GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("failed to restore state: %w", err)
	}
	if err := gs.Config.Validate(); err != nil {
		return nil, fmt.Errorf("restored state has invalid config: %w", err)
	}
	return &gs, nil
}
