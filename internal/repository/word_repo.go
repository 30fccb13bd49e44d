package repository

import (
	"wordvolley/internal/database"
)

// WordRepository handles thrown-word and used-word persistence
type WordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *database.DB) *WordRepository {
	return &WordRepository{db: db}
}

// SaveThrownWord records a word thrown to the user. The word joins the
// user's used-word set so it is not thrown again within this cycle.
func (r *WordRepository) SaveThrownWord(userID, word string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO thrown_words (user_id, word) VALUES (?, ?)", userID, word); err != nil {
		return err
	}

	// Used words are unique per user; re-throwing after a cycle reset
	// simply reinserts
	if _, err := tx.Exec("DELETE FROM used_words WHERE user_id = ? AND word = ?", userID, word); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO used_words (user_id, word) VALUES (?, ?)", userID, word); err != nil {
		return err
	}

	return tx.Commit()
}

// UsedWords returns the set of words already thrown to the user in the
// current pool cycle
func (r *WordRepository) UsedWords(userID string) (map[string]bool, error) {
	rows, err := r.db.Query("SELECT word FROM used_words WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	used := make(map[string]bool)
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		used[word] = true
	}
	return used, rows.Err()
}

// ClearUsedWords empties the user's used-word set, called when the pool
// reloads at the start of a new round
func (r *WordRepository) ClearUsedWords(userID string) error {
	_, err := r.db.Exec("DELETE FROM used_words WHERE user_id = ?", userID)
	return err
}

// DeleteAllForUser removes the user's thrown and used words entirely
func (r *WordRepository) DeleteAllForUser(userID string) error {
	if _, err := r.db.Exec("DELETE FROM used_words WHERE user_id = ?", userID); err != nil {
		return err
	}
	_, err := r.db.Exec("DELETE FROM thrown_words WHERE user_id = ?", userID)
	return err
}
