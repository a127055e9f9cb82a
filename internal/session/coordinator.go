package session

import (
	"log"

	"github.com/google/uuid"

	"github.com/MJE43/the-floor-go/internal/assets"
	"github.com/MJE43/the-floor-go/internal/config"
	"github.com/MJE43/the-floor-go/internal/duel"
	"github.com/MJE43/the-floor-go/internal/floor"
	"github.com/MJE43/the-floor-go/internal/store"
)

// Mode is the coordinator's single source of truth for which screen is
// live and what input it accepts. Exactly one mode holds at a time;
// the floor and duel are never both "active".
type Mode string

const (
	// ModeAwaitingRandomizer covers the idle floor and a running
	// highlight sweep.
	ModeAwaitingRandomizer Mode = "awaiting-randomizer-result"
	// ModeAwaitingAdjacentClick means the sweep has landed and the
	// floor waits for a challenge click next to the origin tile.
	ModeAwaitingAdjacentClick Mode = "awaiting-adjacent-click"
	// ModeAwaitingDuelAck means a duel is on the duel screen, up to and
	// including its finished state awaiting acknowledgement.
	ModeAwaitingDuelAck Mode = "awaiting-duel-ack"
	// ModePostDuelChallenge is the window after a duel where the winner
	// may challenge any tile bordering their territory, or the
	// randomizer may be re-activated.
	ModePostDuelChallenge Mode = "post-duel-challenge-window"
)

// Payload is the sole data crossing from the floor to a new duel.
type Payload struct {
	ChallengerName   string `json:"challengerName"`
	DefenderName     string `json:"defenderName"`
	DefenderCategory string `json:"defenderCategory"`
}

// Coordinator owns the grid and routes frame time and commands between
// the floor and an in-flight duel. It is single-threaded: the caller
// serializes access and drives it with one Tick per rendered frame.
type Coordinator struct {
	cfg config.Config

	grid       *floor.Grid
	randomizer *floor.Randomizer

	duel   *duel.Session
	duelID string

	assets assets.Provider
	db     store.DB // nil disables duel history

	mode Mode
	now  int64 // accumulated frame time in ms

	// winnerName owns the post-duel challenge window.
	winnerName string

	lastPayload *Payload
	lastResult  *duel.Result
}

// New builds a coordinator over a fresh grid. entries may be nil or
// undersized; the grid repairs its source itself. db may be nil.
func New(cfg config.Config, entries []floor.Entry, provider assets.Provider, db store.DB) *Coordinator {
	grid := floor.NewGrid(cfg.Rows, cfg.Cols, entries)
	return &Coordinator{
		cfg:  cfg,
		grid: grid,
		randomizer: floor.NewRandomizer(grid.Len(),
			cfg.RandomizerTotalMs, cfg.RandomizerMinIntervalMs, cfg.RandomizerMaxIntervalMs),
		assets: provider,
		db:     db,
		mode:   ModeAwaitingRandomizer,
	}
}

// Mode returns the coordinator's current mode.
func (c *Coordinator) Mode() Mode { return c.mode }

// Grid exposes the shared grid. Both screens read it; only the
// coordinator's transfer step mutates it.
func (c *Coordinator) Grid() *floor.Grid { return c.grid }

// Tick advances the live screen by deltaMs of frame time.
func (c *Coordinator) Tick(deltaMs int64) {
	if deltaMs <= 0 {
		return
	}
	c.now += deltaMs

	switch c.mode {
	case ModeAwaitingRandomizer:
		c.randomizer.Tick(c.now)
		if _, ok := c.randomizer.FinalIndex(); ok {
			c.mode = ModeAwaitingAdjacentClick
		}
	case ModeAwaitingDuelAck:
		c.duel.Tick(deltaMs)
	}
	// The adjacent-click and post-duel windows have no time-based
	// behavior; they wait for input.
}

// ActivateRandomizer starts (or restarts) the highlight sweep. Valid
// on the floor whenever a sweep is not already running; activating
// from the post-duel window closes it. Reports whether a sweep
// started.
func (c *Coordinator) ActivateRandomizer() bool {
	switch c.mode {
	case ModeAwaitingRandomizer, ModeAwaitingAdjacentClick, ModePostDuelChallenge:
		if !c.randomizer.Start(c.now) {
			return false
		}
		c.winnerName = ""
		c.mode = ModeAwaitingRandomizer
		return true
	}
	return false
}

// ClickAt handles a click on the grid cell (row, col). Off-grid
// clicks, non-adjacent tiles, and clicks in modes that take none are
// silent no-ops. Reports whether the click started a duel.
func (c *Coordinator) ClickAt(row, col int) bool {
	clicked := c.grid.TileAt(row, col)
	if clicked == nil {
		return false
	}

	switch c.mode {
	case ModeAwaitingAdjacentClick:
		final, ok := c.randomizer.FinalIndex()
		if !ok {
			return false
		}
		origin := c.grid.TileAtIndex(final)
		if !floor.Adjacent(*origin, *clicked) {
			return false
		}
		c.beginDuel(origin.Label, clicked)
		return true

	case ModePostDuelChallenge:
		// The winner may challenge any tile bordering their territory,
		// but not one they already own.
		if clicked.Label == c.winnerName {
			return false
		}
		for _, pos := range c.grid.OwnedBy(c.winnerName) {
			owned := c.grid.TileAt(pos.Row, pos.Col)
			if floor.Adjacent(*owned, *clicked) {
				c.beginDuel(c.winnerName, clicked)
				return true
			}
		}
		return false
	}
	return false
}

// TogglePause forwards the pause toggle to an in-flight duel.
func (c *Coordinator) TogglePause() bool {
	if c.mode != ModeAwaitingDuelAck {
		return false
	}
	return c.duel.TogglePause()
}

// Pass forwards a pass to an in-flight duel.
func (c *Coordinator) Pass() bool {
	if c.mode != ModeAwaitingDuelAck {
		return false
	}
	return c.duel.Pass()
}

// RevealOrAdvance starts a not-yet-started duel, otherwise reveals the
// current answer. Both are driven by the same frontend control, as on
// the original single advance key.
func (c *Coordinator) RevealOrAdvance() bool {
	if c.mode != ModeAwaitingDuelAck {
		return false
	}
	if c.duel.Phase() == duel.PhaseNotStarted {
		return c.duel.Start()
	}
	return c.duel.RevealOrAdvance()
}

// AcknowledgeFinish closes a finished duel: the result is recorded,
// ownership transfers on the grid, and the floor re-opens in the
// post-duel challenge window.
func (c *Coordinator) AcknowledgeFinish() bool {
	if c.mode != ModeAwaitingDuelAck {
		return false
	}
	result, ok := c.duel.AcknowledgeFinish()
	if !ok {
		return false
	}

	if !c.grid.TransferOwnership(result.WinnerName, result.LoserName) {
		// Payload and grid disagree; the board is left unchanged.
		log.Printf("ownership transfer skipped: winner=%q loser=%q not both on the grid",
			result.WinnerName, result.LoserName)
	}

	if c.db != nil {
		match := &store.Match{
			ID:         c.duelID,
			Challenger: c.lastPayload.ChallengerName,
			Defender:   c.lastPayload.DefenderName,
			Category:   result.DefenderCategory,
			Winner:     result.WinnerName,
			Loser:      result.LoserName,
		}
		if err := c.db.SaveMatch(match); err != nil {
			log.Printf("failed to record duel %s: %v", c.duelID, err)
		}
	}

	c.lastResult = &result
	c.winnerName = result.WinnerName
	c.duel = nil
	c.duelID = ""
	c.mode = ModePostDuelChallenge
	return true
}

// beginDuel builds the hand-off payload, creates the duel session over
// the defender's category deck, and switches screens.
func (c *Coordinator) beginDuel(challengerName string, defender *floor.Tile) {
	payload := Payload{
		ChallengerName:   challengerName,
		DefenderName:     defender.Label,
		DefenderCategory: defender.Category,
	}
	c.lastPayload = &payload
	c.lastResult = nil
	c.winnerName = ""

	items := c.assets.List(payload.DefenderCategory)
	c.duel = duel.NewSession(
		payload.ChallengerName,
		payload.DefenderName,
		payload.DefenderCategory,
		items,
		duel.Config{
			InitialMs:     c.cfg.DuelInitialMs,
			RevealMs:      c.cfg.DuelRevealMs,
			PassPenaltyMs: c.cfg.DuelPassPenaltyMs,
		},
	)
	c.duelID = uuid.New().String()
	c.mode = ModeAwaitingDuelAck
}
