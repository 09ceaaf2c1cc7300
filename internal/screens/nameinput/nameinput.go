package nameinput

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog"

	"github.com/abhisek/satko/internal/game"
	"github.com/abhisek/satko/internal/questions"
	"github.com/abhisek/satko/internal/router"
	"github.com/abhisek/satko/internal/screen"
	"github.com/abhisek/satko/internal/screens/home"
	"github.com/abhisek/satko/internal/store"
	"github.com/abhisek/satko/internal/ui/components"
	"github.com/abhisek/satko/internal/ui/layout"
	"github.com/abhisek/satko/internal/ui/theme"
)

const maxNameLen = 20

// NameScreen asks for the player's name. Leaving it empty keeps the
// character's default name.
type NameScreen struct {
	engine *game.Engine
	st     *store.Store
	log    zerolog.Logger
	input  components.TextInput
}

var _ screen.Screen = (*NameScreen)(nil)

// New creates a new NameScreen.
func New(engine *game.Engine, st *store.Store, log zerolog.Logger) *NameScreen {
	placeholder := game.DefaultBoyName
	if engine.Session().Character == questions.CharacterGirl {
		placeholder = game.DefaultGirlName
	}
	return &NameScreen{
		engine: engine,
		st:     st,
		log:    log,
		input:  components.NewTextInput(placeholder, maxNameLen),
	}
}

func (n *NameScreen) Title() string {
	return "Tvoje ime"
}

func (n *NameScreen) Init() tea.Cmd {
	return n.input.Init()
}

func (n *NameScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Nastavi"},
		{Key: "Ctrl+C", Description: "Izlaz"},
	}
}

func (n *NameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(n.input.Value())
		n.engine.SetIdentity(n.engine.Session().Character, name)
		n.log.Info().Str("player", n.engine.CharacterName()).Msg("player named")

		next := home.New(n.engine, n.st, n.log)
		return n, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

func (n *NameScreen) View(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("\nKako se zoveš?")
	b.WriteString(title)
	b.WriteString("\n\n")

	inputLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(n.input.View())
	b.WriteString(inputLine)
	b.WriteString("\n\n")

	hint := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Pritisni Enter bez imena za " + placeholderName(n.engine))
	b.WriteString(hint)

	return b.String()
}

func placeholderName(engine *game.Engine) string {
	if engine.Session().Character == questions.CharacterGirl {
		return game.DefaultGirlName
	}
	return game.DefaultBoyName
}
