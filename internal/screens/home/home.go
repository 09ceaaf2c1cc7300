package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog"

	"github.com/abhisek/satko/internal/game"
	"github.com/abhisek/satko/internal/router"
	"github.com/abhisek/satko/internal/screen"
	"github.com/abhisek/satko/internal/screens/play"
	"github.com/abhisek/satko/internal/screens/scoreboard"
	"github.com/abhisek/satko/internal/screens/settings"
	"github.com/abhisek/satko/internal/store"
	"github.com/abhisek/satko/internal/ui/components"
	"github.com/abhisek/satko/internal/ui/theme"
)

const clockArt = `    ╭───────╮
   ╱  12     ╲
  │ 9    ◦  3 │
   ╲    ╱    ╱
    ╰──6────╯`

// HomeScreen is the main menu.
type HomeScreen struct {
	engine  *game.Engine
	st      *store.Store
	log     zerolog.Logger
	menu    components.Menu
	hasSave bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(engine *game.Engine, st *store.Store, log zerolog.Logger) *HomeScreen {
	h := &HomeScreen{
		engine: engine,
		st:     st,
		log:    log,
	}
	h.refresh()
	return h
}

// refresh recomputes the menu from the saved-session state.
func (h *HomeScreen) refresh() {
	rec, err := h.st.SessionRepo().Load(context.Background())
	h.hasSave = err == nil && rec != nil

	items := []components.MenuItem{
		{Label: "NOVA IGRA", Action: func() tea.Cmd {
			h.engine.StartGame()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(h.engine, h.log)}
			}
		}},
		{Label: "NASTAVI", Disabled: !h.hasSave, Action: func() tea.Cmd {
			saved, err := h.st.SessionRepo().Load(context.Background())
			if err != nil {
				h.log.Error().Err(err).Msg("load saved session")
				return nil
			}
			h.engine.Resume(saved)
			if h.engine.Session().Phase == game.PhasePlaying {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: play.New(h.engine, h.log)}
				}
			}
			return nil
		}},
		{Label: "REZULTATI", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: scoreboard.New(h.st.ScoreRepo(), h.log)}
			}
		}},
		{Label: "POSTAVKE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(h.engine, h.st.SettingsRepo(), h.log)}
			}
		}},
		{Label: "IZLAZ", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) Title() string {
	return "Izbornik"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.RefreshMsg); ok {
		h.refresh()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render("\n" + clockArt))
	b.WriteString("\n\n")

	greeting := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Bok, " + h.engine.CharacterName() + "!")
	b.WriteString(greeting)
	b.WriteString("\n")

	sub := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Spreman za avanturu s vremenom?")
	b.WriteString(sub)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
