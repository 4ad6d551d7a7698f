// Package lessons is the guided-course browser: module list, lesson list,
// lesson detail. Opening a lesson counts toward the completion target.
package lessons

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdiallo/avicoach/internal/content"
	"github.com/sdiallo/avicoach/internal/progress"
	"github.com/sdiallo/avicoach/internal/router"
	"github.com/sdiallo/avicoach/internal/screen"
	"github.com/sdiallo/avicoach/internal/ui/components"
	"github.com/sdiallo/avicoach/internal/ui/layout"
	"github.com/sdiallo/avicoach/internal/ui/theme"
)

// ModulesScreen lists the course modules.
type ModulesScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*ModulesScreen)(nil)

// New creates the module list screen.
func New(recorder *progress.Recorder) *ModulesScreen {
	modules := content.Modules()
	items := make([]components.MenuItem, 0, len(modules))
	for _, mod := range modules {
		m := mod
		items = append(items, components.MenuItem{
			Label:       m.Title,
			Description: fmt.Sprintf("%d lessons", len(m.Lessons)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newModuleScreen(m, recorder)}
				}
			},
		})
	}
	return &ModulesScreen{menu: components.NewMenu(items)}
}

func (s *ModulesScreen) Init() tea.Cmd { return nil }

func (s *ModulesScreen) Title() string { return "Lessons" }

func (s *ModulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModulesScreen) View(width, height int) string {
	header := theme.Subtitle.Width(width).Render("Pick a module") + "\n\n"
	return "\n" + header + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())
}

// moduleScreen lists the lessons of one module.
type moduleScreen struct {
	module content.Module
	menu   components.Menu
}

var _ screen.Screen = (*moduleScreen)(nil)

func newModuleScreen(m content.Module, recorder *progress.Recorder) *moduleScreen {
	items := make([]components.MenuItem, 0, len(m.Lessons))
	for _, l := range m.Lessons {
		lesson := l
		items = append(items, components.MenuItem{
			Label: lesson.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newDetailScreen(lesson, recorder)}
				}
			},
		})
	}
	return &moduleScreen{module: m, menu: components.NewMenu(items)}
}

func (s *moduleScreen) Init() tea.Cmd { return nil }

func (s *moduleScreen) Title() string { return s.module.Title }

func (s *moduleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *moduleScreen) View(width, height int) string {
	header := theme.Subtitle.Width(width).Render("Pick a lesson") + "\n\n"
	return "\n" + header + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())
}

// detailScreen shows one lesson's body.
type detailScreen struct {
	lesson   content.Lesson
	recorder *progress.Recorder
}

var _ screen.Screen = (*detailScreen)(nil)
var _ screen.KeyHintProvider = (*detailScreen)(nil)

func newDetailScreen(l content.Lesson, recorder *progress.Recorder) *detailScreen {
	return &detailScreen{lesson: l, recorder: recorder}
}

// Init counts the lesson view. Re-reads past the course target are free.
func (s *detailScreen) Init() tea.Cmd {
	// The lesson still renders if the counter fails to persist.
	_ = s.recorder.RecordLessonViewed()
	return nil
}

func (s *detailScreen) Title() string { return s.lesson.Title }

func (s *detailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *detailScreen) View(width, height int) string {
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 72)).
		Render(s.lesson.Body)

	card := theme.Card.Render(body)

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
