package character

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog"

	"github.com/abhisek/satko/internal/game"
	"github.com/abhisek/satko/internal/questions"
	"github.com/abhisek/satko/internal/router"
	"github.com/abhisek/satko/internal/screen"
	"github.com/abhisek/satko/internal/screens/nameinput"
	"github.com/abhisek/satko/internal/store"
	"github.com/abhisek/satko/internal/ui/layout"
	"github.com/abhisek/satko/internal/ui/theme"
)

const boyArt = `   ╭─────╮
   │ ◉ ◉ │
   │  ◡  │
   ╰─┬─┬─╯
    ╱│ │╲
     │ │
     ╯ ╰`

const girlArt = ` ∿ ╭─────╮ ∿
   │ ◉ ◉ │
   │  ◡  │
   ╰─┬─┬─╯
    ╱│ │╲
     ╱ ╲
    ╱   ╲`

// CharacterScreen is the opening screen where the player picks who
// they play as.
type CharacterScreen struct {
	engine   *game.Engine
	st       *store.Store
	log      zerolog.Logger
	selected int
}

var _ screen.Screen = (*CharacterScreen)(nil)

// New creates a new CharacterScreen.
func New(engine *game.Engine, st *store.Store, log zerolog.Logger) *CharacterScreen {
	return &CharacterScreen{
		engine: engine,
		st:     st,
		log:    log,
	}
}

func (c *CharacterScreen) Title() string {
	return "Odaberi lik"
}

func (c *CharacterScreen) Init() tea.Cmd {
	return nil
}

func (c *CharacterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Odaberi"},
		{Key: "Enter", Description: "Potvrdi"},
		{Key: "Ctrl+C", Description: "Izlaz"},
	}
}

func (c *CharacterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h", "up", "k":
		c.selected = 0
	case "right", "l", "down", "j":
		c.selected = 1
	case "enter":
		char := questions.CharacterBoy
		if c.selected == 1 {
			char = questions.CharacterGirl
		}
		c.engine.SetIdentity(char, "")
		c.log.Info().Str("character", string(char)).Msg("character selected")
		next := nameinput.New(c.engine, c.st, c.log)
		return c, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	return c, nil
}

func (c *CharacterScreen) View(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("\nTko si ti danas?")
	b.WriteString(title)
	b.WriteString("\n\n")

	boy := renderCard(boyArt, "Dječak", c.selected == 0)
	girl := renderCard(girlArt, "Djevojčica", c.selected == 1)

	row := lipgloss.JoinHorizontal(lipgloss.Top, boy, "    ", girl)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))

	return b.String()
}

func renderCard(art, label string, selected bool) string {
	borderColor := theme.Border
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		borderColor = theme.Primary
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	content := lipgloss.NewStyle().Foreground(theme.Text).Render(art) +
		"\n\n" + lipgloss.PlaceHorizontal(13, lipgloss.Center, labelStyle.Render(label))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Render(content)
}
