package repository

import (
	"database/sql"

	"wordvolley/internal/database"
	"wordvolley/internal/models"
)

// StatusRepository handles game status and round counter persistence
type StatusRepository struct {
	db *database.DB
}

// NewStatusRepository creates a new status repository
func NewStatusRepository(db *database.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Exists reports whether the user has a persisted game status, i.e. an
// active game
func (r *StatusRepository) Exists(userID string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM game_status WHERE user_id = ?"
	if err := r.db.QueryRow(query, userID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a fresh game status for the user with round count 1
func (r *StatusRepository) Create(userID string) error {
	query := "INSERT INTO game_status (user_id, round_count) VALUES (?, 1)"
	_, err := r.db.Exec(query, userID)
	return err
}

// Get retrieves the user's game status
func (r *StatusRepository) Get(userID string) (*models.GameStatus, error) {
	query := "SELECT user_id, round_count, started_at FROM game_status WHERE user_id = ?"

	status := &models.GameStatus{}
	err := r.db.QueryRow(query, userID).Scan(&status.UserID, &status.RoundCount, &status.StartedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return status, nil
}

// IncrementRound bumps the user's round counter, creating the status row
// if it does not exist yet
func (r *StatusRepository) IncrementRound(userID string) error {
	_, err := r.db.DB.Exec(r.db.Dialect.UpsertGameStatus(), userID)
	return err
}

// RoundCount returns the user's current round number, starting at 1.
// A user with no status row is in round 1.
func (r *StatusRepository) RoundCount(userID string) (int, error) {
	var count int
	query := "SELECT round_count FROM game_status WHERE user_id = ?"
	err := r.db.QueryRow(query, userID).Scan(&count)
	if err == sql.ErrNoRows {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes the user's game status
func (r *StatusRepository) Delete(userID string) error {
	query := "DELETE FROM game_status WHERE user_id = ?"
	_, err := r.db.Exec(query, userID)
	return err
}
