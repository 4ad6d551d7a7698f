// Package diseases is the pathology reference browser.
package diseases

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdiallo/avicoach/internal/content"
	"github.com/sdiallo/avicoach/internal/router"
	"github.com/sdiallo/avicoach/internal/screen"
	"github.com/sdiallo/avicoach/internal/ui/components"
	"github.com/sdiallo/avicoach/internal/ui/layout"
	"github.com/sdiallo/avicoach/internal/ui/theme"
)

// ListScreen lists the disease reference cards.
type ListScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*ListScreen)(nil)

// New creates the disease list screen.
func New() *ListScreen {
	ds := content.Diseases()
	items := make([]components.MenuItem, 0, len(ds))
	for _, d := range ds {
		disease := d
		items = append(items, components.MenuItem{
			Label:       disease.Name,
			Description: disease.Type,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: &detailScreen{disease: disease}}
				}
			},
		})
	}
	return &ListScreen{menu: components.NewMenu(items)}
}

func (s *ListScreen) Init() tea.Cmd { return nil }

func (s *ListScreen) Title() string { return "Disease Guide" }

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ListScreen) View(width, height int) string {
	header := theme.Subtitle.Width(width).Render("Common poultry diseases") + "\n\n"
	return "\n" + header + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())
}

// detailScreen shows one disease card.
type detailScreen struct {
	disease content.Disease
}

var _ screen.Screen = (*detailScreen)(nil)
var _ screen.KeyHintProvider = (*detailScreen)(nil)

func (s *detailScreen) Init() tea.Cmd { return nil }

func (s *detailScreen) Title() string { return s.disease.Name }

func (s *detailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *detailScreen) View(width, height int) string {
	d := s.disease
	cw := min(width-8, 72)

	section := func(label, text string) string {
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label) +
			"\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(text) +
			"\n"
	}

	body := fmt.Sprintf("%s\n%s\n%s\n%s",
		section("Signs", d.Symptoms),
		section("Cause", d.Cause),
		section("Treatment", d.Remedy),
		section("Prevention", d.Prevention),
	)

	typeBadge := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(d.Type)

	card := theme.Card.Render(typeBadge + "\n\n" + body)
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
