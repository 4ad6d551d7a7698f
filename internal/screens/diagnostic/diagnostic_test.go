package diagnostic

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sdiallo/avicoach/internal/config"
	"github.com/sdiallo/avicoach/internal/router"
)

func testConfig() config.Config {
	return config.Config{
		GameSeconds:       config.DefaultGameSeconds,
		GameFeedbackDelay: config.DefaultGameFeedbackDelay,
	}
}

func TestGameScreen_StartsWithCard(t *testing.T) {
	s := New(nil, testConfig(), nil)

	if s.game == nil {
		t.Fatalf("game not started: %s", s.errMsg)
	}
	if s.game.Current() == nil {
		t.Fatal("no card presented at start")
	}
	if len(s.choice.Options) == 0 {
		t.Fatal("no options presented at start")
	}
	if cmd := s.Init(); cmd == nil {
		t.Fatal("Init did not schedule the first clock tick")
	}
}

func TestGameScreen_ClockTickCountsDown(t *testing.T) {
	s := New(nil, testConfig(), nil)
	before := s.game.Remaining()

	_, cmd := s.Update(clockTickMsg{SessionID: s.game.ID()})

	if got := s.game.Remaining(); got != before-1 {
		t.Fatalf("Remaining = %d, want %d", got, before-1)
	}
	if cmd == nil {
		t.Fatal("tick did not schedule the next second")
	}
}

func TestGameScreen_StaleClockTickIgnored(t *testing.T) {
	s := New(nil, testConfig(), nil)
	before := s.game.Remaining()

	_, cmd := s.Update(clockTickMsg{SessionID: "not-this-game"})

	if got := s.game.Remaining(); got != before {
		t.Fatalf("stale tick moved the clock: Remaining = %d, want %d", got, before)
	}
	if cmd != nil {
		t.Fatal("stale tick scheduled a follow-up")
	}
}

func TestGameScreen_ClockRunoutReplacesWithSummary(t *testing.T) {
	cfg := testConfig()
	cfg.GameSeconds = 1
	s := New(nil, cfg, nil)

	_, cmd := s.Update(clockTickMsg{SessionID: s.game.ID()})

	if cmd == nil {
		t.Fatal("run-out produced no command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("run-out did not replace the screen with the summary")
	}
	if s.game.Active() {
		t.Fatal("game still active after run-out")
	}
}

func TestGameScreen_SubmitShowsFeedbackAndSchedulesAdvance(t *testing.T) {
	s := New(nil, testConfig(), nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.feedback == nil {
		t.Fatal("no feedback after submit")
	}
	if cmd == nil {
		t.Fatal("submit did not schedule the feedback flash")
	}
}

func TestGameScreen_FeedbackNotSkippable(t *testing.T) {
	s := New(nil, testConfig(), nil)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.feedback == nil {
		t.Fatal("no feedback after submit")
	}

	s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if s.feedback == nil {
		t.Fatal("key press dismissed the feedback flash")
	}
}

func TestGameScreen_StaleFeedbackTickIgnored(t *testing.T) {
	s := New(nil, testConfig(), nil)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.feedback == nil {
		t.Fatal("no feedback after submit")
	}

	s.Update(feedbackDoneMsg{SessionID: "not-this-game"})
	if s.feedback == nil {
		t.Fatal("stale feedback tick cleared the flash")
	}
}

func TestGameScreen_FeedbackDoneAdvancesToNextCard(t *testing.T) {
	s := New(nil, testConfig(), nil)
	first := s.game.Current().Symptom

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(feedbackDoneMsg{SessionID: s.game.ID()})

	if s.feedback != nil {
		t.Fatal("feedback flash survived its timer")
	}
	if got := s.game.Current().Symptom; got == first {
		t.Fatalf("still on the first card: %q", got)
	}
}
