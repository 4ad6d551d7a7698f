// Package calendar shows the fixed rearing-cycle reminders.
package calendar

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdiallo/avicoach/internal/content"
	"github.com/sdiallo/avicoach/internal/screen"
	"github.com/sdiallo/avicoach/internal/ui/theme"
)

// Screen renders the rearing calendar. Day one is the day chicks arrive;
// the current day of month is highlighted as a rough cycle position.
type Screen struct {
	reminders []content.Reminder
	today     int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the calendar screen.
func New() *Screen {
	return &Screen{
		reminders: content.Reminders(),
		today:     time.Now().Day(),
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Rearing Calendar" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cw := min(width-8, 72)

	var b string
	b += "\n" + theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Broiler cycle tasks · today is day %d", s.today)) + "\n\n"

	for _, r := range s.reminders {
		day := fmt.Sprintf("Day %2d", r.Day)

		var line string
		switch {
		case r.Day == s.today:
			line = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("▸ "+day) +
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-10).Render("  "+r.Event)
		case r.Day < s.today:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+day) +
				lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-10).Render("  "+r.Event)
		default:
			line = lipgloss.NewStyle().Foreground(theme.Secondary).Render("  "+day) +
				lipgloss.NewStyle().Foreground(theme.Text).Width(cw-10).Render("  "+r.Event)
		}
		b += lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n\n"
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
