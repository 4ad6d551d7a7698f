// Package config resolves runtime settings from the environment, with an
// optional .env file for development overrides.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultQuizQuestions = 10
	DefaultGameSeconds   = 30

	// Feedback stays on screen long enough to read the explanation in a
	// quiz, and just long enough to register in the timed game.
	DefaultQuizFeedbackDelay = 3 * time.Second
	DefaultGameFeedbackDelay = 1500 * time.Millisecond
)

// Config holds all runtime settings. The database path is resolved
// separately by the store package, which also honors the --db flag.
type Config struct {
	FarmerName string
	Narration  bool

	QuizQuestions int
	GameSeconds   int

	QuizFeedbackDelay time.Duration
	GameFeedbackDelay time.Duration
}

// Load reads settings from the environment. A .env file in the working
// directory is applied first if present; a missing file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		FarmerName:        envOr("AVICOACH_FARMER_NAME", "Farmer"),
		Narration:         envBool("AVICOACH_NARRATION", true),
		QuizQuestions:     envInt("AVICOACH_QUIZ_QUESTIONS", DefaultQuizQuestions),
		GameSeconds:       envInt("AVICOACH_GAME_SECONDS", DefaultGameSeconds),
		QuizFeedbackDelay: envDuration("AVICOACH_QUIZ_FEEDBACK_DELAY", DefaultQuizFeedbackDelay),
		GameFeedbackDelay: envDuration("AVICOACH_GAME_FEEDBACK_DELAY", DefaultGameFeedbackDelay),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
