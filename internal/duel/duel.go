package duel

// Phase is the lifecycle stage of a duel. Exactly one phase holds at a
// time; the reveal/penalty/pause exclusivity is structural, not
// flag-based.
type Phase string

const (
	// PhaseNotStarted shows the neutral start prompt; no clock runs.
	PhaseNotStarted Phase = "not-started"
	// PhaseActive drains the active player's clock.
	PhaseActive Phase = "active"
	// PhasePaused freezes everything until unpaused.
	PhasePaused Phase = "paused"
	// PhaseReveal shows the answer; clocks are frozen and the players
	// swap when the window expires.
	PhaseReveal Phase = "reveal"
	// PhasePassPenalty shows the answer while the passing player's
	// clock keeps draining; the same player stays on when it expires.
	PhasePassPenalty Phase = "pass-penalty"
	// PhaseFinished is terminal; a winner and loser are set.
	PhaseFinished Phase = "finished"
)

// Player numbers. Player 1 is the challenger, player 2 the defender.
const (
	PlayerOne = 1
	PlayerTwo = 2
)

// Config carries the static duel timing supplied at construction.
type Config struct {
	InitialMs     int64
	RevealMs      int64
	PassPenaltyMs int64
}

// Result is the sole data crossing back from a duel to the floor.
type Result struct {
	WinnerName       string `json:"winnerName"`
	LoserName        string `json:"loserName"`
	DefenderCategory string `json:"defenderCategory"`
}

// Player holds one contestant's name and remaining clock.
type Player struct {
	Name        string `json:"name"`
	RemainingMs int64  `json:"remainingMs"`
}

// Session is the head-to-head timed duel over a category's item deck.
// It is single-threaded and frame-driven: the owner calls Tick once
// per rendered frame with the elapsed milliseconds.
type Session struct {
	cfg      Config
	category string

	players [2]Player
	active  int // PlayerOne or PlayerTwo

	phase     Phase
	deck      []Item
	itemIndex int

	// Remaining reveal/penalty window, meaningful only in those phases.
	windowMs int64

	revealedAnswer string
	winner         string
	loser          string
}

// NewSession creates a duel between the challenger (player 1) and
// defender (player 2) over the defender's category deck.
func NewSession(challengerName, defenderName, category string, assetIDs []string, cfg Config) *Session {
	return &Session{
		cfg:      cfg,
		category: category,
		players: [2]Player{
			{Name: challengerName, RemainingMs: cfg.InitialMs},
			{Name: defenderName, RemainingMs: cfg.InitialMs},
		},
		active:    PlayerOne,
		phase:     PhaseNotStarted,
		deck:      BuildDeck(assetIDs),
		itemIndex: 0,
	}
}

// Phase returns the current duel phase.
func (s *Session) Phase() Phase { return s.phase }

// ActivePlayer returns whose clock is (or would be) draining.
func (s *Session) ActivePlayer() int { return s.active }

// PlayerState returns the named player's snapshot. Player numbers
// outside {1,2} return a zero value.
func (s *Session) PlayerState(player int) Player {
	if player != PlayerOne && player != PlayerTwo {
		return Player{}
	}
	return s.players[player-1]
}

// Category returns the defender's category this duel is played over.
func (s *Session) Category() string { return s.category }

// CurrentItem returns the item currently shown.
func (s *Session) CurrentItem() Item { return s.deck[s.itemIndex] }

// DeckSize returns the number of items in the deck, synthesized
// entries included.
func (s *Session) DeckSize() int { return len(s.deck) }

// RevealedAnswer returns the captured answer label during reveal or
// pass-penalty, empty otherwise.
func (s *Session) RevealedAnswer() string { return s.revealedAnswer }

// WindowRemainingMs returns what is left of the reveal or penalty
// window, zero in other phases.
func (s *Session) WindowRemainingMs() int64 {
	if s.phase != PhaseReveal && s.phase != PhasePassPenalty {
		return 0
	}
	return s.windowMs
}

// Winner returns the winner's name once the duel has finished.
func (s *Session) Winner() string { return s.winner }

// Loser returns the loser's name once the duel has finished.
func (s *Session) Loser() string { return s.loser }

// Start begins the duel: player 1's clock starts and the deck advances
// off the start prompt. Valid only before the duel has started.
func (s *Session) Start() bool {
	if s.phase != PhaseNotStarted {
		return false
	}
	s.phase = PhaseActive
	s.advanceItem()
	return true
}

// Tick advances the duel by deltaMs of frame time.
func (s *Session) Tick(deltaMs int64) {
	if deltaMs <= 0 {
		return
	}

	switch s.phase {
	case PhasePassPenalty:
		// The penalty keeps draining the passing player's clock.
		s.drainActive(deltaMs)
		if s.phase == PhaseFinished {
			return
		}
		s.windowMs -= deltaMs
		if s.windowMs <= 0 {
			s.windowMs = 0
			s.advanceItem()
			s.revealedAnswer = ""
			s.phase = PhaseActive
		}

	case PhaseReveal:
		// Clocks are frozen while the answer is shown.
		s.windowMs -= deltaMs
		if s.windowMs <= 0 {
			s.windowMs = 0
			s.swapActive()
			s.advanceItem()
			s.revealedAnswer = ""
			s.phase = PhaseActive
		}

	case PhaseActive:
		s.drainActive(deltaMs)
	}
	// NotStarted, Paused and Finished see no time-based mutation.
}

// TogglePause flips between active and paused. Not permitted during
// reveal or penalty windows, before start, or after the duel finished.
func (s *Session) TogglePause() bool {
	switch s.phase {
	case PhaseActive:
		s.phase = PhasePaused
		return true
	case PhasePaused:
		s.phase = PhaseActive
		return true
	}
	return false
}

// Pass gives up on the current item: the answer is shown for the
// penalty window while the passing player's clock keeps draining, and
// the same player stays on afterwards. Valid only while active.
func (s *Session) Pass() bool {
	if s.phase != PhaseActive {
		return false
	}
	s.revealedAnswer = s.CurrentItem().Label
	s.windowMs = s.cfg.PassPenaltyMs
	s.phase = PhasePassPenalty
	return true
}

// RevealOrAdvance shows the current answer for the reveal window with
// clocks frozen; when it expires the other player takes over. Valid
// only while active.
func (s *Session) RevealOrAdvance() bool {
	if s.phase != PhaseActive {
		return false
	}
	s.revealedAnswer = s.CurrentItem().Label
	s.windowMs = s.cfg.RevealMs
	s.phase = PhaseReveal
	return true
}

// AcknowledgeFinish emits the duel result for hand-off. Valid only
// once the duel has finished.
func (s *Session) AcknowledgeFinish() (Result, bool) {
	if s.phase != PhaseFinished {
		return Result{}, false
	}
	return Result{
		WinnerName:       s.winner,
		LoserName:        s.loser,
		DefenderCategory: s.category,
	}, true
}

// drainActive subtracts deltaMs from the active player's clock,
// floored at zero, and finishes the duel the moment it empties.
func (s *Session) drainActive(deltaMs int64) {
	p := &s.players[s.active-1]
	p.RemainingMs -= deltaMs
	if p.RemainingMs > 0 {
		return
	}
	p.RemainingMs = 0

	other := s.otherPlayer()
	s.winner = s.players[other-1].Name
	s.loser = p.Name
	s.phase = PhaseFinished
	s.revealedAnswer = ""
	s.deck = append(s.deck, winnerItem(s.winner))
	s.itemIndex = len(s.deck) - 1
}

func (s *Session) swapActive() {
	s.active = s.otherPlayer()
}

func (s *Session) otherPlayer() int {
	if s.active == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// advanceItem moves to the next deck item, wrapping around like the
// original carousel.
func (s *Session) advanceItem() {
	s.itemIndex = (s.itemIndex + 1) % len(s.deck)
}
