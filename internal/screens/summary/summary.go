// Package summary shows a finished quiz or game result.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdiallo/avicoach/internal/narrate"
	"github.com/sdiallo/avicoach/internal/quiz"
	"github.com/sdiallo/avicoach/internal/router"
	"github.com/sdiallo/avicoach/internal/screen"
	"github.com/sdiallo/avicoach/internal/ui/layout"
	"github.com/sdiallo/avicoach/internal/ui/theme"
)

// SummaryScreen displays a terminal session result.
type SummaryScreen struct {
	summary quiz.Summary
	speaker narrate.Speaker
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished session.
func New(sum quiz.Summary, speaker narrate.Speaker) *SummaryScreen {
	return &SummaryScreen{summary: sum, speaker: speaker}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.speaker != nil {
		s.speaker.Say(fmt.Sprintf("%s finished. You scored %d percent. %s",
			s.summary.Topic, s.summary.ScorePercent, verdict(s.summary.ScorePercent)))
	}
	return nil
}

func (s *SummaryScreen) Title() string { return "Result" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(sum.Topic + " complete!"))
	b.WriteString("\n\n")

	scoreStyle := theme.Correct
	if sum.ScorePercent < 50 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		scoreStyle.Render(fmt.Sprintf("%d%%", sum.ScorePercent))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Correct: %d / %d", sum.Correct, sum.Total)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(statsLine)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(verdict(sum.ScorePercent))))

	return b.String()
}

// verdict maps a score to an encouragement line.
func verdict(percent int) string {
	switch {
	case percent >= 90:
		return "Outstanding. Your flock is in safe hands."
	case percent >= 70:
		return "Solid work. Keep sharpening the weak spots."
	case percent >= 50:
		return "Getting there. Revisit the lessons and try again."
	default:
		return "Rough round. The lessons will get you back on track."
	}
}
