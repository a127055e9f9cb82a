package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteDB implements the DB interface using SQLite
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new SQLite database connection
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate runs database migrations
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			challenger TEXT NOT NULL,
			defender TEXT NOT NULL,
			category TEXT NOT NULL,
			winner TEXT NOT NULL,
			loser TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_category ON matches(category)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// SaveMatch saves a completed duel to the database
func (s *SQLiteDB) SaveMatch(m *Match) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	query := `INSERT INTO matches (id, challenger, defender, category, winner, loser)
		VALUES (?, ?, ?, ?, ?, ?)`

	if _, err := s.db.Exec(query, m.ID, m.Challenger, m.Defender, m.Category, m.Winner, m.Loser); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

// GetMatch retrieves a match by ID
func (s *SQLiteDB) GetMatch(id string) (*Match, error) {
	query := `SELECT id, challenger, defender, category, winner, loser, created_at
		FROM matches WHERE id = ?`

	var m Match
	err := s.db.QueryRow(query, id).Scan(
		&m.ID, &m.Challenger, &m.Defender, &m.Category, &m.Winner, &m.Loser, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &m, nil
}

// ListMatches returns a paginated list of completed duels, newest first
func (s *SQLiteDB) ListMatches(query MatchesQuery) (*MatchesList, error) {
	whereClause := ""
	args := []interface{}{}

	if query.Category != "" {
		whereClause = "WHERE category = ?"
		args = append(args, query.Category)
	}

	countQuery := "SELECT COUNT(*) FROM matches " + whereClause
	var totalCount int
	if err := s.db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	if query.PerPage <= 0 {
		query.PerPage = 50 // Default page size
	}
	if query.Page <= 0 {
		query.Page = 1
	}

	totalPages := (totalCount + query.PerPage - 1) / query.PerPage
	offset := (query.Page - 1) * query.PerPage

	mainQuery := `SELECT id, challenger, defender, category, winner, loser, created_at
		FROM matches ` + whereClause + `
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`

	args = append(args, query.PerPage, offset)

	rows, err := s.db.Query(mainQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []Match{}
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.Challenger, &m.Defender, &m.Category, &m.Winner, &m.Loser, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	return &MatchesList{
		Matches:    matches,
		TotalCount: totalCount,
		Page:       query.Page,
		PerPage:    query.PerPage,
		TotalPages: totalPages,
	}, nil
}
