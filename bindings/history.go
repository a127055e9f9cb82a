package bindings

import (
	"github.com/MJE43/the-floor-go/internal/store"
)

// ListMatches returns a page of completed duels, newest first.
// category filters by the defender's category; empty means all.
func (a *App) ListMatches(category string, page, perPage int) (*store.MatchesList, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db.ListMatches(store.MatchesQuery{
		Category: category,
		Page:     page,
		PerPage:  perPage,
	})
}

// GetMatch returns a single recorded duel by ID.
func (a *App) GetMatch(id string) (*store.Match, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db.GetMatch(id)
}
