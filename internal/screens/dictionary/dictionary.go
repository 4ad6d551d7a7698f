// Package dictionary is the searchable term glossary.
package dictionary

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdiallo/avicoach/internal/content"
	"github.com/sdiallo/avicoach/internal/screen"
	"github.com/sdiallo/avicoach/internal/ui/components"
	"github.com/sdiallo/avicoach/internal/ui/layout"
	"github.com/sdiallo/avicoach/internal/ui/theme"
)

const maxResults = 8

// Screen is the live-search dictionary view.
type Screen struct {
	input   components.TextInput
	results []content.Term
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the dictionary screen.
func New() *Screen {
	return &Screen{
		input: components.NewTextInput("Type to search...", 40),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string { return "Dictionary" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Type", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.results = content.SearchTerms(s.input.Value(), maxResults)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := min(width-8, 72)

	var b string
	b += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()) + "\n\n"

	if s.input.Value() == "" {
		b += lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Search by term or meaning"))
		return b
	}

	if len(s.results) == 0 {
		b += lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No matching terms"))
		return b
	}

	for _, t := range s.results {
		entry := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(t.Term) +
			lipgloss.NewStyle().Foreground(theme.Accent).Render("  ·  "+t.Domain) +
			"\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(t.Definition)
		b += lipgloss.PlaceHorizontal(width, lipgloss.Center, entry) + "\n\n"
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
