// Package quizscreen runs the interactive practice quiz.
package quizscreen

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

// QuizScreen owns one practice-quiz session from first question to summary.
type QuizScreen struct {
	session  *quiz.Session
	cfg      config.Config
	speaker  narrate.Speaker
	errMsg   string
	feedback *quiz.Feedback

	// One of the two is active per question, depending on its kind.
	choice components.MultiChoice
	input  components.TextInput
	typed  bool // current question takes typed input
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a fresh session over the full question bank.
func New(sink quiz.ScoreSink, cfg config.Config, speaker narrate.Speaker) *QuizScreen {
	s := &QuizScreen{cfg: cfg, speaker: speaker}

	session, err := quiz.NewSession(content.QuestionBank(), cfg.QuizQuestions, sink, nil)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.session = session
	s.setupQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.typed {
		return s.input.Init()
	}
	return nil
}

func (s *QuizScreen) Title() string { return "Practice Quiz" }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.typed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// setupQuestion prepares the input widget for the current question.
func (s *QuizScreen) setupQuestion() {
	q := s.session.Current()
	if q == nil {
		return
	}
	switch q.Kind {
	case content.KindTrueFalse:
		s.typed = false
		s.choice = components.NewMultiChoice(q.Prompt, []string{"True", "False"}, -1)
	case content.KindMultipleChoice:
		s.typed = false
		s.choice = components.NewMultiChoice(q.Prompt, s.session.PresentOptions(), -1)
	default:
		s.typed = true
		s.input = components.NewTextInput("Type your answer...", 30)
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if s.session == nil || msg.SessionID != s.session.ID() {
			return s, nil
		}
		return s.advance()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.typed && s.feedback == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Feedback overlay: any key skips the rest of the pause.
	if s.feedback != nil {
		return s.advance()
	}

	key := msg.String()

	if !s.typed {
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
			return s.submit(s.choiceAnswer())
		}
		// Direct option pick by number.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(s.choice.Options) {
			s.choice.Selected = n - 1
			return s.submit(s.choiceAnswer())
		}
		return s, nil
	}

	switch key {
	case "enter":
		return s.submit(s.input.Value())
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// choiceAnswer maps the selector state to the raw answer the session
// expects.
func (s *QuizScreen) choiceAnswer() string {
	q := s.session.Current()
	if q != nil && q.Kind == content.KindTrueFalse {
		if s.choice.Selected == 0 {
			return "true"
		}
		return "false"
	}
	return s.choice.Value()
}

func (s *QuizScreen) submit(raw string) (screen.Screen, tea.Cmd) {
	fb, err := s.session.SubmitAnswer(raw)
	if err != nil {
		return s, nil
	}
	s.feedback = &fb
	if s.typed {
		s.input.Submit(fb.Correct)
	}

	// The pause is skippable; the tick carries the session ID so a stale
	// timer cannot advance a different session.
	id := s.session.ID()
	return s, tea.Tick(s.cfg.QuizFeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{SessionID: id}
	})
}

// advance leaves the feedback pause: next question, or the summary once the
// session has completed.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	fb := s.feedback
	s.feedback = nil

	if fb != nil && fb.Completed {
		sum := s.session.Summary()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum, s.speaker)}
		}
	}

	s.setupQuestion()
	return s, s.Init()
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Cannot start quiz: "+s.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n")

	q := s.session.Current()
	if s.feedback != nil {
		b.WriteString(s.renderFeedback(width))
		return b.String()
	}
	if q == nil {
		return b.String()
	}

	progress := fmt.Sprintf("Question %d of %d  ·  %s  ·  %s",
		s.session.Index()+1, s.session.Len(), q.Kind, q.Topic)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(progress)))
	b.WriteString("\n\n")

	if s.typed {
		prompt := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Width(min(width-8, 72)).
			Render(q.Prompt)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	fb := s.feedback

	var b strings.Builder
	b.WriteString("\n\n")

	if fb.Correct {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Correct.Render("✓ Correct!")))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("✗ Not quite")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render("Answer: "+fb.CorrectAnswer)))
	}

	if fb.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(min(width-8, 72)).
				Render(fb.Explanation)))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
