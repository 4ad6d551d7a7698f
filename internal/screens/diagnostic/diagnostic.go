// Package diagnostic runs the timed symptom-diagnosis game.
package diagnostic

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdiallo/avicoach/internal/config"
	"github.com/sdiallo/avicoach/internal/content"
	"github.com/sdiallo/avicoach/internal/narrate"
	"github.com/sdiallo/avicoach/internal/quiz"
	"github.com/sdiallo/avicoach/internal/router"
	"github.com/sdiallo/avicoach/internal/screen"
	"github.com/sdiallo/avicoach/internal/screens/summary"
	"github.com/sdiallo/avicoach/internal/ui/components"
	"github.com/sdiallo/avicoach/internal/ui/layout"
	"github.com/sdiallo/avicoach/internal/ui/theme"
)

// clockTickMsg drives the one-second countdown for one specific game.
type clockTickMsg struct {
	SessionID string
}

// feedbackDoneMsg ends the short feedback flash for one specific game.
type feedbackDoneMsg struct {
	SessionID string
}

// GameScreen owns one diagnostic game from start to summary.
type GameScreen struct {
	game     *quiz.DiagnosticSession
	cfg      config.Config
	speaker  narrate.Speaker
	errMsg   string
	feedback *quiz.Feedback
	choice   components.MultiChoice
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New starts a fresh game over the full diagnostic card set.
func New(sink quiz.ScoreSink, cfg config.Config, speaker narrate.Speaker) *GameScreen {
	s := &GameScreen{cfg: cfg, speaker: speaker}

	game, err := quiz.NewDiagnosticSession(content.DiagnosticCards(), cfg.GameSeconds, sink, nil)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.game = game
	s.setupCard()
	return s
}

func (s *GameScreen) Init() tea.Cmd {
	if s.game == nil {
		return nil
	}
	if s.speaker != nil {
		s.speaker.Say(fmt.Sprintf("Chrono diagnostic. %d seconds on the clock. Go!", s.game.Remaining()))
	}
	return s.tick()
}

func (s *GameScreen) Title() string { return "Chrono Diagnostic" }

func (s *GameScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Diagnose"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *GameScreen) setupCard() {
	c := s.game.Current()
	if c == nil {
		return
	}
	s.choice = components.NewMultiChoice(c.Symptom, s.game.PresentOptions(), -1)
}

// tick schedules the next countdown second, tagged with the game ID so a
// stale timer from an abandoned game is ignored.
func (s *GameScreen) tick() tea.Cmd {
	id := s.game.ID()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockTickMsg{SessionID: id}
	})
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		if s.game == nil || msg.SessionID != s.game.ID() {
			return s, nil
		}
		if !s.game.Tick() {
			return s.finish()
		}
		return s, s.tick()

	case feedbackDoneMsg:
		if s.game == nil || msg.SessionID != s.game.ID() {
			return s, nil
		}
		return s.afterFeedback()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.feedback != nil {
		// Feedback flash is not skippable; the clock is the pressure.
		return s, nil
	}
	if !s.game.Active() {
		return s, nil
	}

	key := msg.String()
	switch key {
	case "up", "k":
		if s.choice.Selected > 0 {
			s.choice.Selected--
		}
		return s, nil
	case "down", "j":
		if s.choice.Selected < len(s.choice.Options)-1 {
			s.choice.Selected++
		}
		return s, nil
	case "enter":
		return s.submit(s.choice.Value())
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(s.choice.Options) {
		s.choice.Selected = n - 1
		return s.submit(s.choice.Value())
	}
	return s, nil
}

func (s *GameScreen) submit(choice string) (screen.Screen, tea.Cmd) {
	fb, err := s.game.Submit(choice)
	if err != nil {
		return s, nil
	}
	s.feedback = &fb

	id := s.game.ID()
	return s, tea.Tick(s.cfg.GameFeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{SessionID: id}
	})
}

func (s *GameScreen) afterFeedback() (screen.Screen, tea.Cmd) {
	fb := s.feedback
	s.feedback = nil

	if (fb != nil && fb.Completed) || !s.game.Active() {
		return s.finish()
	}
	s.setupCard()
	return s, nil
}

// finish moves to the summary. Termination already happened inside the game,
// whichever path got there first.
func (s *GameScreen) finish() (screen.Screen, tea.Cmd) {
	sum := s.game.Summary()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, s.speaker)}
	}
}

func (s *GameScreen) View(width, height int) string {
	if s.errMsg != "" {
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Cannot start game: "+s.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n")

	clockStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if s.game.Remaining() <= 5 {
		clockStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	status := clockStyle.Render(fmt.Sprintf("⏱ %2ds", s.game.Remaining())) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("   %d pts", s.game.Points()))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, status))
	b.WriteString("\n\n")

	if s.feedback != nil {
		if s.feedback.Correct {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Correct.Render(fmt.Sprintf("✓ +%d points", quiz.PointsPerDiagnosis))))
		} else {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Incorrect.Render("✗ It was "+s.feedback.CorrectAnswer)))
		}
		return b.String()
	}

	c := s.game.Current()
	if c == nil {
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("What is wrong with this bird?")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	return b.String()
}
