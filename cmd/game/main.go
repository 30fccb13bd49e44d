package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wordvolley/internal/config"
	"wordvolley/internal/database"
	"wordvolley/internal/game"
	"wordvolley/internal/repository"
	"wordvolley/internal/scorer"
	"wordvolley/internal/service"
	"wordvolley/internal/words"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Str("type", cfg.DatabaseType).Msg("database connection established")

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	catalog, err := words.Load(cfg.WordsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.WordsPath).Msg("failed to load word catalog")
	}
	log.Info().Int("words", catalog.Size()).Msg("word catalog loaded")

	sessions := game.NewStore(catalog)
	statusRepo := repository.NewStatusRepository(db)
	wordRepo := repository.NewWordRepository(db)
	resultRepo := repository.NewResultRepository(db)
	scorerClient := scorer.NewClient(cfg.ScorerBaseURL)

	svc := service.NewGameService(sessions, statusRepo, wordRepo, resultRepo, scorerClient, cfg.ScoreThreshold, nil)

	runConsole(svc)
}

// runConsole drives a game over stdin. The current word and running
// score live here per user; the service stays stateless between calls
// apart from its session registry.
func runConsole(svc *service.GameService) {
	currentWord := make(map[string]string)
	scores := make(map[string]int)

	fmt.Println("wordvolley console")
	fmt.Println("commands: start <user> | answer <user> <word> | end <user> | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		ctx := context.Background()

		switch fields[0] {
		case "quit", "exit":
			return

		case "start":
			if len(fields) != 2 {
				fmt.Println("usage: start <user>")
				continue
			}
			userID := fields[1]
			word, err := svc.Start(ctx, userID)
			if err != nil {
				printGameError(err)
				continue
			}
			if word == "" {
				fmt.Println("no words available")
				continue
			}
			currentWord[userID] = word
			scores[userID] = 0
			fmt.Printf("word: %s\n", word)

		case "answer":
			if len(fields) != 3 {
				fmt.Println("usage: answer <user> <word>")
				continue
			}
			userID := fields[1]
			thrown, ok := currentWord[userID]
			if !ok {
				fmt.Println("no game in progress, use start first")
				continue
			}

			result, err := svc.SubmitAnswer(ctx, userID, thrown, fields[2], scores[userID])
			if err != nil {
				printGameError(err)
				continue
			}

			scores[userID] = result.UpdatedScore
			if result.NextWord == "" {
				fmt.Printf("similarity: %d, score: %d. The catalog is exhausted, game over.\n",
					result.SimilarityScore, result.UpdatedScore)
				delete(currentWord, userID)
				continue
			}
			currentWord[userID] = result.NextWord
			fmt.Printf("similarity: %d, score: %d, word: %s\n",
				result.SimilarityScore, result.UpdatedScore, result.NextWord)

		case "end":
			if len(fields) != 2 {
				fmt.Println("usage: end <user>")
				continue
			}
			userID := fields[1]
			if err := svc.End(ctx, userID); err != nil {
				printGameError(err)
				continue
			}
			fmt.Printf("final score: %d\n", scores[userID])
			delete(currentWord, userID)
			delete(scores, userID)

		default:
			fmt.Printf("unknown command: %s\n", fields[0])
		}
	}
}

func printGameError(err error) {
	switch {
	case errors.Is(err, game.ErrDuplicateSession):
		fmt.Println("a game is already in progress for this user")
	case errors.Is(err, game.ErrNoActiveSession):
		fmt.Println("no game in progress, use start first")
	case errors.Is(err, game.ErrWordMismatch):
		fmt.Println("that answer does not match the current word")
	case errors.Is(err, game.ErrDuplicatePair):
		fmt.Println("that pair was already played, try another word")
	case errors.Is(err, service.ErrSameWord):
		fmt.Println("same word, try a different one")
	default:
		fmt.Printf("error: %v\n", err)
	}
}
