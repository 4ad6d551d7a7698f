package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AVICOACH_FARMER_NAME", "")
	t.Setenv("AVICOACH_QUIZ_QUESTIONS", "")
	t.Setenv("AVICOACH_GAME_SECONDS", "")
	t.Setenv("AVICOACH_NARRATION", "")
	t.Setenv("AVICOACH_QUIZ_FEEDBACK_DELAY", "")
	t.Setenv("AVICOACH_GAME_FEEDBACK_DELAY", "")

	cfg := Load()
	if cfg.FarmerName != "Farmer" {
		t.Errorf("FarmerName = %q", cfg.FarmerName)
	}
	if cfg.QuizQuestions != 10 {
		t.Errorf("QuizQuestions = %d", cfg.QuizQuestions)
	}
	if cfg.GameSeconds != 30 {
		t.Errorf("GameSeconds = %d", cfg.GameSeconds)
	}
	if !cfg.Narration {
		t.Error("Narration should default on")
	}
	if cfg.QuizFeedbackDelay != 3*time.Second || cfg.GameFeedbackDelay != 1500*time.Millisecond {
		t.Errorf("delays = %v, %v", cfg.QuizFeedbackDelay, cfg.GameFeedbackDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AVICOACH_FARMER_NAME", "Aminata")
	t.Setenv("AVICOACH_QUIZ_QUESTIONS", "5")
	t.Setenv("AVICOACH_GAME_SECONDS", "60")
	t.Setenv("AVICOACH_NARRATION", "false")
	t.Setenv("AVICOACH_QUIZ_FEEDBACK_DELAY", "1s")
	t.Setenv("AVICOACH_GAME_FEEDBACK_DELAY", "500ms")

	cfg := Load()
	if cfg.FarmerName != "Aminata" {
		t.Errorf("FarmerName = %q", cfg.FarmerName)
	}
	if cfg.QuizQuestions != 5 {
		t.Errorf("QuizQuestions = %d", cfg.QuizQuestions)
	}
	if cfg.GameSeconds != 60 {
		t.Errorf("GameSeconds = %d", cfg.GameSeconds)
	}
	if cfg.Narration {
		t.Error("Narration should be off")
	}
	if cfg.QuizFeedbackDelay != time.Second || cfg.GameFeedbackDelay != 500*time.Millisecond {
		t.Errorf("delays = %v, %v", cfg.QuizFeedbackDelay, cfg.GameFeedbackDelay)
	}
}

func TestLoadRejectsGarbageNumbers(t *testing.T) {
	t.Setenv("AVICOACH_QUIZ_QUESTIONS", "many")
	t.Setenv("AVICOACH_GAME_SECONDS", "-4")
	t.Setenv("AVICOACH_QUIZ_FEEDBACK_DELAY", "soon")

	cfg := Load()
	if cfg.QuizQuestions != 10 {
		t.Errorf("QuizQuestions = %d, want default 10", cfg.QuizQuestions)
	}
	if cfg.GameSeconds != 30 {
		t.Errorf("GameSeconds = %d, want default 30", cfg.GameSeconds)
	}
	if cfg.QuizFeedbackDelay != 3*time.Second {
		t.Errorf("QuizFeedbackDelay = %v, want default", cfg.QuizFeedbackDelay)
	}
}
