package models

import "time"

// GameStatus represents a user's persisted game record: its existence marks
// an active game, and round_count tracks pool-exhaustion cycles
type GameStatus struct {
	UserID     string
	RoundCount int
	StartedAt  time.Time
}

// GameResult represents a scored (ai word, human word) pair.
// A pair is scored once and reused by lookup across all users.
type GameResult struct {
	ID        int64
	AIWord    string
	HumanWord string
	Score     int
	CreatedAt time.Time
}

// Checkpoint marks that a user has been credited for a result pair in a
// given round, used for duplicate-pair detection on repeat rounds
type Checkpoint struct {
	ID           int64
	UserID       string
	GameResultID int64
	RoundStamp   int
	CreatedAt    time.Time
}

// AnswerResult is the outcome of scoring one answer
type AnswerResult struct {
	SimilarityScore int
	UpdatedScore    int
	// NextWord is empty when the catalog has no eligible words left
	NextWord string
}
