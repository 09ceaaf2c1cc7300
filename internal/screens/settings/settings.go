package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog"

	"github.com/abhisek/satko/internal/game"
	"github.com/abhisek/satko/internal/router"
	"github.com/abhisek/satko/internal/screen"
	"github.com/abhisek/satko/internal/store"
	"github.com/abhisek/satko/internal/ui/components"
	"github.com/abhisek/satko/internal/ui/layout"
	"github.com/abhisek/satko/internal/ui/theme"
)

// Field indices, top to bottom.
const (
	fieldThreshold = iota
	fieldQuestions
	fieldTimeLimit
	fieldSounds
	fieldVolume
	fieldName
	fieldCount
)

// SettingsScreen edits the game configuration. Changes apply and
// persist on save; invalid values surface their message inline.
type SettingsScreen struct {
	engine *game.Engine
	repo   store.SettingsRepo
	log    zerolog.Logger

	draft    game.Settings
	selected int
	name     components.TextInput
	errMsg   string
	saved    bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen editing a copy of the active settings.
func New(engine *game.Engine, repo store.SettingsRepo, log zerolog.Logger) *SettingsScreen {
	draft := engine.Settings()
	name := components.NewTextInput("ime igrača", 20)
	name.Model.SetValue(draft.PlayerName)
	return &SettingsScreen{
		engine: engine,
		repo:   repo,
		log:    log,
		draft:  draft,
		name:   name,
	}
}

func (s *SettingsScreen) Title() string {
	return "Postavke"
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Polje"},
		{Key: "←→", Description: "Promijeni"},
		{Key: "Enter", Description: "Spremi"},
		{Key: "Esc", Description: "Natrag"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.selected == fieldName {
			var cmd tea.Cmd
			s.name, cmd = s.name.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down":
		if s.selected < fieldCount-1 {
			s.selected++
		}
		return s, nil
	case "left":
		s.adjust(-1)
		return s, nil
	case "right":
		s.adjust(1)
		return s, nil
	case "enter":
		return s.save()
	}

	// Free-text typing only applies to the name field.
	if s.selected == fieldName {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}

	return s, nil
}

// adjust steps the selected numeric field by its increment.
func (s *SettingsScreen) adjust(dir int) {
	s.saved = false
	switch s.selected {
	case fieldThreshold:
		s.draft.LevelCompletionThreshold += dir * 5
	case fieldQuestions:
		s.draft.QuestionsPerLevel += dir
	case fieldTimeLimit:
		s.draft.TimeLimit += dir * 5
	case fieldSounds:
		s.draft.SoundsEnabled = !s.draft.SoundsEnabled
	case fieldVolume:
		s.draft.SoundsVolume += dir * 10
	}
}

func (s *SettingsScreen) save() (screen.Screen, tea.Cmd) {
	s.draft.PlayerName = strings.TrimSpace(s.name.Value())

	if err := s.engine.ApplySettings(s.draft); err != nil {
		s.errMsg = err.Error()
		s.saved = false
		return s, nil
	}

	if err := s.repo.Save(context.Background(), s.draft.Record()); err != nil {
		s.log.Error().Err(err).Msg("persist settings")
		s.errMsg = "Ne mogu spremiti postavke."
		return s, nil
	}

	s.errMsg = ""
	s.saved = true
	s.log.Info().Msg("settings saved")
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *SettingsScreen) View(width, height int) string {
	rows := []struct {
		label string
		value string
	}{
		{"Prag za razinu", fmt.Sprintf("%d %%", s.draft.LevelCompletionThreshold)},
		{"Pitanja po razini", fmt.Sprintf("%d", s.draft.QuestionsPerLevel)},
		{"Vrijeme po pitanju", fmt.Sprintf("%d s", s.draft.TimeLimit)},
		{"Zvukovi", onOff(s.draft.SoundsEnabled)},
		{"Glasnoća", fmt.Sprintf("%d %%", s.draft.SoundsVolume)},
		{"Ime igrača", s.name.View()},
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, row := range rows {
		label := fmt.Sprintf("%-22s", row.label)
		line := label + row.value
		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line))
		}
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func onOff(v bool) string {
	if v {
		return "uključeni"
	}
	return "isključeni"
}
