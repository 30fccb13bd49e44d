package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"wordvolley/internal/database"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string             `json:"version"`
	ExportedAt   time.Time          `json:"exported_at"`
	DatabaseType string             `json:"database_type"`
	Statuses     []StatusBackup     `json:"statuses"`
	Results      []ResultBackup     `json:"results"`
	ThrownWords  []ThrownWordBackup `json:"thrown_words"`
	UsedWords    []UsedWordBackup   `json:"used_words"`
	Checkpoints  []CheckpointBackup `json:"checkpoints"`
}

// StatusBackup represents a game status record for backup
type StatusBackup struct {
	UserID     string    `json:"user_id"`
	RoundCount int       `json:"round_count"`
	StartedAt  time.Time `json:"started_at"`
}

// ResultBackup represents a scored word pair for backup
type ResultBackup struct {
	ID        int64     `json:"id"`
	AIWord    string    `json:"ai_word"`
	HumanWord string    `json:"human_word"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ThrownWordBackup represents a thrown word record for backup
type ThrownWordBackup struct {
	ID       int64     `json:"id"`
	UserID   string    `json:"user_id"`
	Word     string    `json:"word"`
	ThrownAt time.Time `json:"thrown_at"`
}

// UsedWordBackup represents a used word record for backup
type UsedWordBackup struct {
	UserID string `json:"user_id"`
	Word   string `json:"word"`
}

// CheckpointBackup represents a checkpoint record for backup
type CheckpointBackup struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	GameResultID int64     `json:"game_result_id"`
	RoundStamp   int       `json:"round_stamp"`
	CreatedAt    time.Time `json:"created_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Info().Str("path", outputPath).Msg("database exported")
	return nil
}

// ExportToWriter exports the database to an io.Writer
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		DatabaseType: "universal",
	}

	if err := s.exportStatuses(backup); err != nil {
		return fmt.Errorf("failed to export statuses: %w", err)
	}
	if err := s.exportResults(backup); err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}
	if err := s.exportThrownWords(backup); err != nil {
		return fmt.Errorf("failed to export thrown words: %w", err)
	}
	if err := s.exportUsedWords(backup); err != nil {
		return fmt.Errorf("failed to export used words: %w", err)
	}
	if err := s.exportCheckpoints(backup); err != nil {
		return fmt.Errorf("failed to export checkpoints: %w", err)
	}

	log.Info().
		Int("statuses", len(backup.Statuses)).
		Int("results", len(backup.Results)).
		Int("thrown_words", len(backup.ThrownWords)).
		Int("used_words", len(backup.UsedWords)).
		Int("checkpoints", len(backup.Checkpoints)).
		Msg("export collected")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Info().Str("version", backup.Version).Time("exported_at", backup.ExportedAt).Msg("importing backup")

	// Import in order of dependencies: checkpoints reference results
	if err := s.importStatuses(backup.Statuses); err != nil {
		return fmt.Errorf("failed to import statuses: %w", err)
	}
	if err := s.importResults(backup.Results); err != nil {
		return fmt.Errorf("failed to import results: %w", err)
	}
	if err := s.importThrownWords(backup.ThrownWords); err != nil {
		return fmt.Errorf("failed to import thrown words: %w", err)
	}
	if err := s.importUsedWords(backup.UsedWords); err != nil {
		return fmt.Errorf("failed to import used words: %w", err)
	}
	if err := s.importCheckpoints(backup.Checkpoints); err != nil {
		return fmt.Errorf("failed to import checkpoints: %w", err)
	}

	log.Info().Msg("database import completed")
	return nil
}

// ClearAll removes all game data, in reverse dependency order
func (s *BackupService) ClearAll() error {
	tables := []string{"checkpoints", "used_words", "thrown_words", "game_results", "game_status"}
	for _, table := range tables {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Info().Msg("database cleared")
	return nil
}

func (s *BackupService) exportStatuses(backup *BackupData) error {
	rows, err := s.db.Query("SELECT user_id, round_count, started_at FROM game_status ORDER BY user_id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var st StatusBackup
		if err := rows.Scan(&st.UserID, &st.RoundCount, &st.StartedAt); err != nil {
			return err
		}
		backup.Statuses = append(backup.Statuses, st)
	}
	return rows.Err()
}

func (s *BackupService) exportResults(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, ai_word, human_word, score, created_at FROM game_results ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r ResultBackup
		if err := rows.Scan(&r.ID, &r.AIWord, &r.HumanWord, &r.Score, &r.CreatedAt); err != nil {
			return err
		}
		backup.Results = append(backup.Results, r)
	}
	return rows.Err()
}

func (s *BackupService) exportThrownWords(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, user_id, word, thrown_at FROM thrown_words ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t ThrownWordBackup
		if err := rows.Scan(&t.ID, &t.UserID, &t.Word, &t.ThrownAt); err != nil {
			return err
		}
		backup.ThrownWords = append(backup.ThrownWords, t)
	}
	return rows.Err()
}

func (s *BackupService) exportUsedWords(backup *BackupData) error {
	rows, err := s.db.Query("SELECT user_id, word FROM used_words ORDER BY user_id, word")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UsedWordBackup
		if err := rows.Scan(&u.UserID, &u.Word); err != nil {
			return err
		}
		backup.UsedWords = append(backup.UsedWords, u)
	}
	return rows.Err()
}

func (s *BackupService) exportCheckpoints(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, user_id, game_result_id, round_stamp, created_at FROM checkpoints ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c CheckpointBackup
		if err := rows.Scan(&c.ID, &c.UserID, &c.GameResultID, &c.RoundStamp, &c.CreatedAt); err != nil {
			return err
		}
		backup.Checkpoints = append(backup.Checkpoints, c)
	}
	return rows.Err()
}

func (s *BackupService) importStatuses(statuses []StatusBackup) error {
	log.Info().Int("count", len(statuses)).Msg("importing statuses")
	for _, st := range statuses {
		query := "INSERT INTO game_status (user_id, round_count, started_at) VALUES (?, ?, ?)"
		if _, err := s.db.Exec(query, st.UserID, st.RoundCount, st.StartedAt); err != nil {
			return fmt.Errorf("failed to import status for user %s: %w", st.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importResults(results []ResultBackup) error {
	log.Info().Int("count", len(results)).Msg("importing results")
	for _, r := range results {
		query := "INSERT INTO game_results (id, ai_word, human_word, score, created_at) VALUES (?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, r.ID, r.AIWord, r.HumanWord, r.Score, r.CreatedAt); err != nil {
			return fmt.Errorf("failed to import result %d: %w", r.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importThrownWords(thrown []ThrownWordBackup) error {
	log.Info().Int("count", len(thrown)).Msg("importing thrown words")
	for _, t := range thrown {
		query := "INSERT INTO thrown_words (id, user_id, word, thrown_at) VALUES (?, ?, ?, ?)"
		if _, err := s.db.Exec(query, t.ID, t.UserID, t.Word, t.ThrownAt); err != nil {
			return fmt.Errorf("failed to import thrown word %d: %w", t.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importUsedWords(used []UsedWordBackup) error {
	log.Info().Int("count", len(used)).Msg("importing used words")
	for _, u := range used {
		query := "INSERT INTO used_words (user_id, word) VALUES (?, ?)"
		if _, err := s.db.Exec(query, u.UserID, u.Word); err != nil {
			return fmt.Errorf("failed to import used word %s for user %s: %w", u.Word, u.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importCheckpoints(checkpoints []CheckpointBackup) error {
	log.Info().Int("count", len(checkpoints)).Msg("importing checkpoints")
	for _, c := range checkpoints {
		query := "INSERT INTO checkpoints (id, user_id, game_result_id, round_stamp, created_at) VALUES (?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, c.ID, c.UserID, c.GameResultID, c.RoundStamp, c.CreatedAt); err != nil {
			return fmt.Errorf("failed to import checkpoint %d: %w", c.ID, err)
		}
	}
	return nil
}
