// Package home is the dashboard: the farmer's numbers at a glance and the
// menu into every other part of the app.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdiallo/avicoach/internal/config"
	"github.com/sdiallo/avicoach/internal/narrate"
	"github.com/sdiallo/avicoach/internal/progress"
	"github.com/sdiallo/avicoach/internal/router"
	"github.com/sdiallo/avicoach/internal/screen"
	"github.com/sdiallo/avicoach/internal/screens/calendar"
	"github.com/sdiallo/avicoach/internal/screens/diagnostic"
	"github.com/sdiallo/avicoach/internal/screens/dictionary"
	"github.com/sdiallo/avicoach/internal/screens/diseases"
	"github.com/sdiallo/avicoach/internal/screens/finance"
	"github.com/sdiallo/avicoach/internal/screens/lessons"
	quizscreen "github.com/sdiallo/avicoach/internal/screens/quiz"
	"github.com/sdiallo/avicoach/internal/screens/stats"
	"github.com/sdiallo/avicoach/internal/ui/components"
	"github.com/sdiallo/avicoach/internal/ui/theme"
)

// HomeScreen is the main dashboard screen.
type HomeScreen struct {
	menu     components.Menu
	recorder *progress.Recorder
	cfg      config.Config
	speaker  narrate.Speaker
	narrated bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the dashboard with all sections wired.
func New(recorder *progress.Recorder, cfg config.Config, speaker narrate.Speaker) *HomeScreen {
	h := &HomeScreen{
		recorder: recorder,
		cfg:      cfg,
		speaker:  speaker,
	}

	// Screens are built at selection time so each visit starts fresh.
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{Label: "LESSONS", Description: "Guided modules, hatch to market",
			Action: push(func() screen.Screen { return lessons.New(recorder) })},
		{Label: "DISEASE GUIDE", Description: "Signs, prevention, treatment",
			Action: push(func() screen.Screen { return diseases.New() })},
		{Label: "DICTIONARY", Description: "Look up poultry terms",
			Action: push(func() screen.Screen { return dictionary.New() })},
		{Label: "FARM ECONOMICS", Description: "Costs, margins, key ratios",
			Action: push(func() screen.Screen { return finance.New() })},
		{Label: "REARING CALENDAR", Description: "What to do on which day",
			Action: push(func() screen.Screen { return calendar.New() })},
		{Label: "PRACTICE QUIZ", Description: fmt.Sprintf("%d mixed questions", cfg.QuizQuestions),
			Action: push(func() screen.Screen { return quizscreen.New(recorder, cfg, speaker) })},
		{Label: "CHRONO DIAGNOSTIC", Description: fmt.Sprintf("Beat the %d second clock", cfg.GameSeconds),
			Action: push(func() screen.Screen { return diagnostic.New(recorder, cfg, speaker) })},
		{Label: "MY PROGRESS", Description: "Scores and history",
			Action: push(func() screen.Screen { return stats.New(recorder) })},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	if !h.narrated && h.speaker != nil {
		h.speaker.Say(fmt.Sprintf("Welcome to Avicoach, %s. Ready to work?", h.cfg.FarmerName))
		h.narrated = true
	}
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	st := progress.Compute(h.recorder.State())

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("AVICOACH"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Poultry school for %s", h.cfg.FarmerName)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("Lessons %d/%d", st.LessonsCompleted, st.TotalLessonsTarget),
		float64(st.CompletionRate)/100,
		true,
		min(width-8, 60),
	)
	statsLine := fmt.Sprintf("Quizzes taken: %d    Average score: %d%%", st.PassCount, st.AverageScore)

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(statsLine)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
