package bindings

import (
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/MJE43/the-floor-go/internal/session"
)

// Tick advances the game by deltaMs of frame time and returns the
// fresh snapshot. The frontend calls this once per animation frame and
// renders whatever comes back.
func (a *App) Tick(deltaMs int64) session.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.coord.Tick(deltaMs)
	return a.coord.Snapshot()
}

// Snapshot returns the current state without advancing time. The
// spectate server reads through this.
func (a *App) Snapshot() session.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.coord.Snapshot()
}

// ActivateRandomizer starts the floor highlight sweep.
func (a *App) ActivateRandomizer() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.coord.ActivateRandomizer()
}

// ClickAt handles a click on the grid cell (row, col). When the click
// starts a duel the hand-off payload is emitted for the duel screen.
func (a *App) ClickAt(row, col int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.coord.ClickAt(row, col) {
		return false
	}
	runtime.EventsEmit(a.ctx, "floor:duel-started", a.coord.Snapshot().Payload)
	return true
}

// TogglePause pauses or resumes the in-flight duel.
func (a *App) TogglePause() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.coord.TogglePause()
}

// Pass applies the active player's pass penalty.
func (a *App) Pass() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.coord.Pass()
}

// RevealOrAdvance starts a not-yet-started duel, otherwise reveals the
// current answer (and, once revealed, the reveal timer advances play).
func (a *App) RevealOrAdvance() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.coord.RevealOrAdvance()
}

// AcknowledgeFinish closes a finished duel and returns to the floor.
// The result is emitted so the floor screen can show the outcome.
func (a *App) AcknowledgeFinish() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.coord.AcknowledgeFinish() {
		return false
	}
	runtime.EventsEmit(a.ctx, "floor:duel-finished", a.coord.Snapshot().Result)
	return true
}
