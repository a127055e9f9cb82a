package store

import (
	"time"
)

// DB represents the duel history storage interface
type DB interface {
	Close() error
	Migrate() error
	SaveMatch(m *Match) error
	GetMatch(id string) (*Match, error)
	ListMatches(query MatchesQuery) (*MatchesList, error)
}

// MatchesQuery represents query parameters for listing matches
type MatchesQuery struct {
	Category string `json:"category,omitempty"`
	Page     int    `json:"page"`
	PerPage  int    `json:"perPage"`
}

// MatchesList represents a paginated matches response
type MatchesList struct {
	Matches    []Match `json:"matches"`
	TotalCount int     `json:"totalCount"`
	Page       int     `json:"page"`
	PerPage    int     `json:"perPage"`
	TotalPages int     `json:"totalPages"`
}

// Match represents one completed duel
type Match struct {
	ID         string    `json:"id" db:"id"`
	Challenger string    `json:"challenger" db:"challenger"`
	Defender   string    `json:"defender" db:"defender"`
	Category   string    `json:"category" db:"category"`
	Winner     string    `json:"winner" db:"winner"`
	Loser      string    `json:"loser" db:"loser"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
