package quizscreen

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sdiallo/avicoach/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		QuizQuestions:     3,
		QuizFeedbackDelay: config.DefaultQuizFeedbackDelay,
	}
}

func TestQuizScreen_StartsWithQuestion(t *testing.T) {
	s := New(nil, testConfig(), nil)
	if s.errMsg != "" {
		t.Fatalf("unexpected start error: %s", s.errMsg)
	}
	if s.session.Current() == nil {
		t.Fatal("expected an active question after start")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestQuizScreen_SubmitShowsFeedbackAndSchedulesAdvance(t *testing.T) {
	s := New(nil, testConfig(), nil)

	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	qs := updated.(*QuizScreen)
	if qs.feedback == nil {
		t.Fatal("expected feedback after submit")
	}
	if cmd == nil {
		t.Fatal("expected a scheduled feedback tick")
	}
	if view := qs.View(80, 24); view == "" {
		t.Error("expected non-empty feedback view")
	}
}

func TestQuizScreen_StaleFeedbackTickIgnored(t *testing.T) {
	s := New(nil, testConfig(), nil)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	before := s.session.Index()
	updated, _ := s.Update(feedbackDoneMsg{SessionID: "not-this-session"})
	qs := updated.(*QuizScreen)
	if qs.feedback == nil {
		t.Error("stale tick must not clear the feedback overlay")
	}
	if qs.session.Index() != before {
		t.Error("stale tick must not advance the session")
	}
}

func TestQuizScreen_AnyKeySkipsFeedback(t *testing.T) {
	s := New(nil, testConfig(), nil)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	updated, _ := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	qs := updated.(*QuizScreen)
	if qs.feedback != nil {
		t.Error("any key should dismiss the feedback overlay")
	}
}
