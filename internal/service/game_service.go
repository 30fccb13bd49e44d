package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"wordvolley/internal/game"
	"wordvolley/internal/models"
	"wordvolley/internal/scorer"
	"wordvolley/internal/validation"
)

// ErrSameWord is returned when the submitted answer equals the thrown
// word (case-insensitive). The same word stays current; no score or
// persisted state changes.
var ErrSameWord = errors.New("answer is the same as the thrown word")

// StatusStore persists game status and round counters
type StatusStore interface {
	Exists(userID string) (bool, error)
	Create(userID string) error
	IncrementRound(userID string) error
	RoundCount(userID string) (int, error)
	Delete(userID string) error
}

// WordStore persists thrown words and the per-cycle used-word set
type WordStore interface {
	SaveThrownWord(userID, word string) error
	UsedWords(userID string) (map[string]bool, error)
	ClearUsedWords(userID string) error
	DeleteAllForUser(userID string) error
}

// ResultStore persists scored word pairs and per-user checkpoints
type ResultStore interface {
	FindExisting(aiWord, humanWord string) (*models.GameResult, error)
	Save(aiWord, humanWord string, score int) (int64, error)
	SaveCheckpoint(userID string, resultID int64, roundStamp int) error
	CheckpointExists(userID, aiWord, humanWord string) (bool, error)
	DeleteCheckpoints(userID string) error
}

// Transcriber converts an audio recording into a single candidate word
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (string, error)
}

// GameService orchestrates the game lifecycle: starting a game, scoring
// answers, advancing the word pool, and ending the game
type GameService struct {
	sessions    *game.Store
	statusRepo  StatusStore
	wordRepo    WordStore
	resultRepo  ResultStore
	scorer      scorer.Scorer
	transcriber Transcriber
	threshold   float64

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewGameService creates a game service. A nil rng falls back to a
// time-seeded source; tests inject a fixed seed for deterministic draws.
func NewGameService(sessions *game.Store, statusRepo StatusStore, wordRepo WordStore, resultRepo ResultStore, sc scorer.Scorer, threshold float64, rng *rand.Rand) *GameService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameService{
		sessions:   sessions,
		statusRepo: statusRepo,
		wordRepo:   wordRepo,
		resultRepo: resultRepo,
		scorer:     sc,
		threshold:  threshold,
		rng:        rng,
	}
}

// SetTranscriber wires the optional audio transcription collaborator
func (s *GameService) SetTranscriber(t Transcriber) {
	s.transcriber = t
}

// Start begins a game for the user and returns the first thrown word.
// Fails with game.ErrDuplicateSession when the user already has an
// active game, checked against persisted status as well as memory.
// An empty word with no error means the catalog has no words.
func (s *GameService) Start(ctx context.Context, userID string) (string, error) {
	exists, err := s.statusRepo.Exists(userID)
	if err != nil {
		return "", fmt.Errorf("failed to check game status: %w", err)
	}
	if exists {
		return "", game.ErrDuplicateSession
	}

	session, err := s.sessions.Create(userID)
	if err != nil {
		return "", err
	}

	if err := s.statusRepo.Create(userID); err != nil {
		s.sessions.Delete(userID)
		return "", fmt.Errorf("failed to persist game status: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	first, err := s.throwNext(userID, session)
	if err != nil {
		return "", err
	}
	if first == "" {
		log.Warn().Str("user_id", userID).Msg("game started with no words available")
		return "", nil
	}

	if err := s.wordRepo.SaveThrownWord(userID, first); err != nil {
		return "", fmt.Errorf("failed to persist thrown word: %w", err)
	}

	log.Info().Str("user_id", userID).Str("session_id", session.ID).Str("word", first).Msg("game started")
	return first, nil
}

// SubmitAnswer scores one answer against the user's current thrown word
// and advances the game. The visible ordering is fixed: validate the
// thrown word, expand the pool with the incoming score, short-circuit
// identical words, look up or compute the similarity, checkpoint, then
// throw the next word.
func (s *GameService) SubmitAnswer(ctx context.Context, userID, aiWord, humanWord string, incomingScore int) (*models.AnswerResult, error) {
	session, err := s.sessions.Get(userID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if aiWord != session.LastThrown() {
		return nil, game.ErrWordMismatch
	}

	// Tier unlocks run on the incoming score before this answer is scored
	session.Expand(incomingScore)

	if strings.EqualFold(aiWord, humanWord) {
		return nil, ErrSameWord
	}

	simScore, err := s.lookupOrComputeScore(ctx, userID, aiWord, humanWord)
	if err != nil {
		return nil, err
	}

	updatedScore := incomingScore
	nextWord := aiWord

	if float64(simScore) >= s.threshold {
		updatedScore += simScore

		nextWord, err = s.throwNext(userID, session)
		if err != nil {
			return nil, err
		}
		if nextWord != "" {
			if err := s.wordRepo.SaveThrownWord(userID, nextWord); err != nil {
				return nil, fmt.Errorf("failed to persist thrown word: %w", err)
			}
		}
	}

	log.Info().
		Str("user_id", userID).
		Str("ai_word", aiWord).
		Str("human_word", humanWord).
		Int("similarity", simScore).
		Int("score", updatedScore).
		Msg("answer scored")

	return &models.AnswerResult{
		SimilarityScore: simScore,
		UpdatedScore:    updatedScore,
		NextWord:        nextWord,
	}, nil
}

// SubmitAudioAnswer transcribes an audio recording and scores the
// resulting word like a typed answer
func (s *GameService) SubmitAudioAnswer(ctx context.Context, userID, aiWord, audioURL string, incomingScore int) (*models.AnswerResult, error) {
	if s.transcriber == nil {
		return nil, errors.New("no transcriber configured")
	}

	transcript, err := s.transcriber.Transcribe(ctx, audioURL)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe audio: %w", err)
	}

	humanWord, err := validation.CleanWord(transcript)
	if err != nil {
		return nil, err
	}

	return s.SubmitAnswer(ctx, userID, aiWord, humanWord, incomingScore)
}

// End terminates the user's game: the session leaves memory and all
// persisted words, checkpoints, and status entries are cleared. A
// subsequent Start is a fresh game.
func (s *GameService) End(ctx context.Context, userID string) error {
	s.sessions.Delete(userID)

	if err := s.wordRepo.DeleteAllForUser(userID); err != nil {
		return fmt.Errorf("failed to clear words: %w", err)
	}
	if err := s.resultRepo.DeleteCheckpoints(userID); err != nil {
		return fmt.Errorf("failed to clear checkpoints: %w", err)
	}
	if err := s.statusRepo.Delete(userID); err != nil {
		return fmt.Errorf("failed to clear game status: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("game ended")
	return nil
}

// lookupOrComputeScore returns the quantized similarity for a pair,
// reusing the global result cache when possible and applying the
// round/checkpoint duplicate policy
func (s *GameService) lookupOrComputeScore(ctx context.Context, userID, aiWord, humanWord string) (int, error) {
	round, err := s.statusRepo.RoundCount(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read round count: %w", err)
	}

	existing, err := s.resultRepo.FindExisting(aiWord, humanWord)
	if err != nil {
		return 0, fmt.Errorf("failed to look up existing result: %w", err)
	}

	if existing != nil {
		// First round always accepts a cached pair; repeat rounds
		// reject pairs this user was already credited for
		if round > 1 {
			seen, err := s.resultRepo.CheckpointExists(userID, aiWord, humanWord)
			if err != nil {
				return 0, fmt.Errorf("failed to check checkpoint: %w", err)
			}
			if seen {
				return 0, game.ErrDuplicatePair
			}
		}

		if err := s.resultRepo.SaveCheckpoint(userID, existing.ID, round); err != nil {
			return 0, err
		}
		return existing.Score, nil
	}

	similarity, err := s.scorer.Similarity(ctx, aiWord, humanWord)
	if err != nil {
		return 0, fmt.Errorf("failed to compute similarity: %w", err)
	}
	simScore := scorer.Quantize(similarity)

	resultID, err := s.resultRepo.Save(aiWord, humanWord, simScore)
	if err != nil {
		return 0, err
	}
	if err := s.resultRepo.SaveCheckpoint(userID, resultID, round); err != nil {
		return 0, err
	}

	return simScore, nil
}

// throwNext draws the next eligible word for the session. On pool
// exhaustion it rolls the round over once: increment the round counter,
// clear the used-word set, reload the pool, and retry. An empty word
// means the catalog has nothing left to offer.
func (s *GameService) throwNext(userID string, session *game.Session) (string, error) {
	used, err := s.wordRepo.UsedWords(userID)
	if err != nil {
		return "", fmt.Errorf("failed to read used words: %w", err)
	}

	word, ok := s.draw(session, used)
	if !ok {
		if err := s.statusRepo.IncrementRound(userID); err != nil {
			return "", fmt.Errorf("failed to increment round: %w", err)
		}
		if err := s.wordRepo.ClearUsedWords(userID); err != nil {
			return "", fmt.Errorf("failed to clear used words: %w", err)
		}
		session.Reload()
		log.Info().Str("user_id", userID).Int("tier", session.Tier()).Msg("word pool reloaded")

		word, ok = s.draw(session, nil)
		if !ok {
			return "", nil
		}
	}

	return word, nil
}

// draw serializes access to the shared random source
func (s *GameService) draw(session *game.Session, used map[string]bool) (string, bool) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return session.Draw(used, s.rng)
}
