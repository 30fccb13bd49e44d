package repository

import (
	"database/sql"
	"fmt"

	"wordvolley/internal/database"
	"wordvolley/internal/models"
)

// ResultRepository handles game result and checkpoint persistence.
// Results form a global similarity cache shared across all users.
type ResultRepository struct {
	db *database.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *database.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// FindExisting looks up a previously scored word pair.
// Returns nil when the pair has never been scored.
func (r *ResultRepository) FindExisting(aiWord, humanWord string) (*models.GameResult, error) {
	query := `
		SELECT id, ai_word, human_word, score, created_at
		FROM game_results
		WHERE ai_word = ? AND human_word = ?
	`

	result := &models.GameResult{}
	err := r.db.QueryRow(query, aiWord, humanWord).Scan(
		&result.ID,
		&result.AIWord,
		&result.HumanWord,
		&result.Score,
		&result.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Save persists a scored word pair and returns its row ID. A concurrent
// insert of the same pair is resolved idempotently: the unique
// constraint rejects the loser, which then returns the winner's row.
func (r *ResultRepository) Save(aiWord, humanWord string, score int) (int64, error) {
	query := "INSERT INTO game_results (ai_word, human_word, score) VALUES (?, ?, ?)"

	id, err := r.db.ExecReturningID(query, aiWord, humanWord, score)
	if err == nil {
		return id, nil
	}

	// Likely a unique-constraint race; fall back to the committed row
	existing, findErr := r.FindExisting(aiWord, humanWord)
	if findErr == nil && existing != nil {
		return existing.ID, nil
	}
	return 0, fmt.Errorf("failed to save game result: %w", err)
}

// SaveCheckpoint records that the user was credited for a result pair in
// the given round. Saving an existing checkpoint is a no-op.
func (r *ResultRepository) SaveCheckpoint(userID string, resultID int64, roundStamp int) error {
	query := "INSERT INTO checkpoints (user_id, game_result_id, round_stamp) VALUES (?, ?, ?)"

	if _, err := r.db.Exec(query, userID, resultID, roundStamp); err != nil {
		// Unique constraint means the checkpoint already exists
		exists, checkErr := r.checkpointExistsByResult(userID, resultID)
		if checkErr == nil && exists {
			return nil
		}
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// CheckpointExists reports whether the user already has a checkpoint for
// this word pair
func (r *ResultRepository) CheckpointExists(userID, aiWord, humanWord string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM checkpoints c
		JOIN game_results g ON g.id = c.game_result_id
		WHERE c.user_id = ? AND g.ai_word = ? AND g.human_word = ?
	`

	var count int
	if err := r.db.QueryRow(query, userID, aiWord, humanWord).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// checkpointExistsByResult checks for a checkpoint by result ID
func (r *ResultRepository) checkpointExistsByResult(userID string, resultID int64) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM checkpoints WHERE user_id = ? AND game_result_id = ?"
	if err := r.db.QueryRow(query, userID, resultID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteCheckpoints removes all of the user's checkpoints
func (r *ResultRepository) DeleteCheckpoints(userID string) error {
	_, err := r.db.Exec("DELETE FROM checkpoints WHERE user_id = ?", userID)
	return err
}
