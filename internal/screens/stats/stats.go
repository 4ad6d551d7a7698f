// Package stats shows the farmer's aggregates and recent results.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdiallo/avicoach/internal/progress"
	"github.com/sdiallo/avicoach/internal/screen"
	"github.com/sdiallo/avicoach/internal/ui/components"
	"github.com/sdiallo/avicoach/internal/ui/theme"
)

const recentLimit = 5

// Screen renders the progress dashboard.
type Screen struct {
	recorder *progress.Recorder
}

var _ screen.Screen = (*Screen)(nil)

// New creates the progress screen.
func New(recorder *progress.Recorder) *Screen {
	return &Screen{recorder: recorder}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "My Progress" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *Screen) View(width, height int) string {
	state := s.recorder.State()
	st := progress.Compute(state)

	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("Course  %d/%d", st.LessonsCompleted, st.TotalLessonsTarget),
		float64(st.CompletionRate)/100,
		true,
		min(width-8, 60),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Quizzes taken: %d        Average score: %d%%",
		st.PassCount, st.AverageScore)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(statsLine)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent results")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	recent := progress.RecentHistory(state, recentLimit)
	if len(recent) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No quizzes yet. The practice quiz is waiting.")))
		return b.String()
	}

	for _, ev := range recent {
		scoreStyle := theme.Correct
		if ev.ScorePercent < 50 {
			scoreStyle = theme.Incorrect
		}
		line := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			ev.Timestamp.Format("Jan 02 15:04")) +
			lipgloss.NewStyle().Foreground(theme.Text).Render(
				fmt.Sprintf("   %-18s", ev.Topic)) +
			scoreStyle.Render(fmt.Sprintf("%3d%%", ev.ScorePercent))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
