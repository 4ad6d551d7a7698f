// Package finance browses the farm-economics concept cards.
package finance

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdiallo/avicoach/internal/content"
	"github.com/sdiallo/avicoach/internal/screen"
	"github.com/sdiallo/avicoach/internal/ui/theme"
)

// Screen lists the concept cards with an expandable selection.
type Screen struct {
	concepts []content.Concept
	selected int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the economics screen.
func New() *Screen {
	return &Screen{concepts: content.Concepts()}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Farm Economics" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.concepts)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cw := min(width-8, 72)

	var b string
	b += "\n" + theme.Subtitle.Width(width).Render("Numbers that decide whether the farm lives") + "\n\n"

	for i, c := range s.concepts {
		label := c.Term
		if c.KPI {
			label += lipgloss.NewStyle().Foreground(theme.Warning).Render("  [KPI]")
		}

		if i == s.selected {
			entry := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+c.Term) +
				lipgloss.NewStyle().Foreground(theme.Accent).Render("  ·  "+c.Domain)
			if c.KPI {
				entry += lipgloss.NewStyle().Foreground(theme.Warning).Render("  [KPI]")
			}
			entry += "\n" + lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(c.Definition)
			b += lipgloss.PlaceHorizontal(width, lipgloss.Center, entry) + "\n\n"
		} else {
			b += lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+label)) + "\n"
		}
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
