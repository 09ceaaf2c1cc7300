package success

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog"

	"github.com/abhisek/satko/internal/game"
	"github.com/abhisek/satko/internal/router"
	"github.com/abhisek/satko/internal/screen"
	"github.com/abhisek/satko/internal/ui/components"
	"github.com/abhisek/satko/internal/ui/layout"
	"github.com/abhisek/satko/internal/ui/theme"
)

const trophyArt = `   ___________
  '._==_==_=_.'
  .-\:      /-.
 | (|:.     |) |
  '-|:.     |-'
    \::.    /
     '::. .'
       ) (
     _.' '._
    '"""""""'`

// SuccessScreen celebrates finishing the last level and shows the
// final stats.
type SuccessScreen struct {
	engine *game.Engine
	log    zerolog.Logger
	button components.Button
}

var _ screen.Screen = (*SuccessScreen)(nil)

// New creates a new SuccessScreen.
func New(engine *game.Engine, log zerolog.Logger) *SuccessScreen {
	s := &SuccessScreen{
		engine: engine,
		log:    log,
	}
	s.button = components.NewButton("Natrag na izbornik", true, func() tea.Cmd {
		s.engine.ExitToMenu(false)
		return tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return screen.RefreshMsg{} },
		)
	})
	return s
}

func (s *SuccessScreen) Title() string {
	return "Pobjeda"
}

func (s *SuccessScreen) Init() tea.Cmd {
	return nil
}

func (s *SuccessScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Natrag na izbornik"},
		{Key: "Ctrl+C", Description: "Izlaz"},
	}
}

func (s *SuccessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.button, cmd = s.button.Update(msg)
	return s, cmd
}

func (s *SuccessScreen) View(width, height int) string {
	sess := s.engine.Session()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render("\n" + trophyArt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render(fmt.Sprintf("Bravo, %s! Prošao si sve razine!", s.engine.CharacterName())))
	b.WriteString("\n\n")

	stats := []string{
		fmt.Sprintf("Bodovi: %d", sess.Score),
		fmt.Sprintf("Točni odgovori: %d / %d", sess.CorrectAnswers, sess.TotalQuestions),
		fmt.Sprintf("Prosječno vrijeme: %.1f s", sess.AverageTime),
	}
	statCard := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(stats, "\n")))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statCard))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.button.View()))

	return b.String()
}
