package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog"

	"github.com/abhisek/satko/internal/game"
	"github.com/abhisek/satko/internal/router"
	"github.com/abhisek/satko/internal/screens/character"
	"github.com/abhisek/satko/internal/screens/home"
	"github.com/abhisek/satko/internal/screens/play"
	"github.com/abhisek/satko/internal/store"
	"github.com/abhisek/satko/internal/ui/layout"
)

// Options carries the wired collaborators into the TUI.
type Options struct {
	Engine *game.Engine
	Store  *store.Store
	Log    zerolog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts    Options
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel picks the initial screen from the engine's phase. A
// fresh install starts at character selection; a restored save lands
// on the menu, and a save left mid-game goes straight back into play.
func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts}

	switch opts.Engine.Session().Phase {
	case game.PhaseMenu:
		m.router = router.New(home.New(opts.Engine, opts.Store, opts.Log))
	case game.PhasePlaying:
		m.router = router.New(home.New(opts.Engine, opts.Store, opts.Log))
		m.initCmd = m.router.Push(play.New(opts.Engine, opts.Log))
	default:
		m.router = router.New(character.New(opts.Engine, opts.Store, opts.Log))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens like play run their own esc dialog.
			if h, ok := m.router.Active().(escHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escHandler marks screens that consume esc themselves instead of the
// default stack pop.
type escHandler interface {
	HandlesEsc() bool
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	sess := m.opts.Engine.Session()
	header := layout.RenderHeader(title, sess.Score, sess.Level, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(keyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Natrag"},
				{Key: "Ctrl+C", Description: "Izlaz"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Kretanje"},
				{Key: "Enter", Description: "Odaberi"},
				{Key: "Ctrl+C", Description: "Izlaz"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

type keyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
