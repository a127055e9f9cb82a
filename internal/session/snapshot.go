package session

import (
	"github.com/MJE43/the-floor-go/internal/duel"
	"github.com/MJE43/the-floor-go/internal/floor"
)

// Snapshot is the frontend-facing view of the whole session, returned
// from every Tick and served over the spectate API.
type Snapshot struct {
	Mode      Mode         `json:"mode"`
	ElapsedMs int64        `json:"elapsedMs"`
	Floor     FloorView    `json:"floor"`
	Duel      *DuelView    `json:"duel,omitempty"`
	Payload   *Payload     `json:"payload,omitempty"`
	Result    *duel.Result `json:"result,omitempty"`
}

// FloorView is the grid and randomizer state for rendering the floor.
type FloorView struct {
	Rows             int                   `json:"rows"`
	Cols             int                   `json:"cols"`
	Tiles            []floor.Tile          `json:"tiles"`
	RandomizerPhase  floor.RandomizerPhase `json:"randomizerPhase"`
	HighlightedIndex int                   `json:"highlightedIndex"`
	FinalIndex       int                   `json:"finalIndex"`
	WinnerName       string                `json:"winnerName,omitempty"`
	WinnerTerritory  []floor.Position      `json:"winnerTerritory,omitempty"`
}

// DuelView is the duel screen state for rendering an in-flight duel.
type DuelView struct {
	ID                string      `json:"id"`
	Phase             duel.Phase  `json:"phase"`
	ActivePlayer      int         `json:"activePlayer"`
	Challenger        duel.Player `json:"challenger"`
	Defender          duel.Player `json:"defender"`
	Category          string      `json:"category"`
	Item              duel.Item   `json:"item"`
	DeckSize          int         `json:"deckSize"`
	RevealedAnswer    string      `json:"revealedAnswer,omitempty"`
	WindowRemainingMs int64       `json:"windowRemainingMs"`
	Winner            string      `json:"winner,omitempty"`
	Loser             string      `json:"loser,omitempty"`
}

// Snapshot captures the current session state.
func (c *Coordinator) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:      c.mode,
		ElapsedMs: c.now,
		Floor: FloorView{
			Rows:             c.grid.Rows(),
			Cols:             c.grid.Cols(),
			Tiles:            c.grid.Tiles(),
			RandomizerPhase:  c.randomizer.Phase(),
			HighlightedIndex: c.randomizer.Highlighted(),
			FinalIndex:       -1,
		},
		Payload: c.lastPayload,
		Result:  c.lastResult,
	}

	if final, ok := c.randomizer.FinalIndex(); ok {
		snap.Floor.FinalIndex = final
	}
	if c.winnerName != "" {
		snap.Floor.WinnerName = c.winnerName
		snap.Floor.WinnerTerritory = c.grid.OwnedBy(c.winnerName)
	}

	if c.duel != nil {
		snap.Duel = &DuelView{
			ID:                c.duelID,
			Phase:             c.duel.Phase(),
			ActivePlayer:      c.duel.ActivePlayer(),
			Challenger:        c.duel.PlayerState(duel.PlayerOne),
			Defender:          c.duel.PlayerState(duel.PlayerTwo),
			Category:          c.duel.Category(),
			Item:              c.duel.CurrentItem(),
			DeckSize:          c.duel.DeckSize(),
			RevealedAnswer:    c.duel.RevealedAnswer(),
			WindowRemainingMs: c.duel.WindowRemainingMs(),
			Winner:            c.duel.Winner(),
			Loser:             c.duel.Loser(),
		}
	}
	return snap
}
