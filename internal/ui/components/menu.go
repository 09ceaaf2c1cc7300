package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/satko/internal/ui/theme"
)

// MenuItem is a single entry in the main menu. Disabled entries stay
// visible but cannot be selected; NASTAVI without a saved game is the
// typical case.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu with wraparound movement and
// number-key shortcuts.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if len(m.Items) > 0 && m.Items[0].Disabled {
		m.Selected = m.nextEnabled(0, 1)
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// nextEnabled walks from the current position in the given direction,
// wrapping around and skipping disabled items. When every item is
// disabled it returns from unchanged.
func (m Menu) nextEnabled(from, dir int) int {
	n := len(m.Items)
	for i := 1; i <= n; i++ {
		idx := ((from+dir*i)%n + n) % n
		if !m.Items[idx].Disabled {
			return idx
		}
	}
	return from
}

func (m Menu) activate(idx int) (Menu, tea.Cmd) {
	item := m.Items[idx]
	if item.Disabled || item.Action == nil {
		return m, nil
	}
	m.Selected = idx
	return m, item.Action()
}

// Update handles arrow, vi and number-key navigation. Pressing a
// number both selects and activates that entry.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = m.nextEnabled(m.Selected, -1)
	case "down", "j":
		m.Selected = m.nextEnabled(m.Selected, 1)
	case "enter":
		return m.activate(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(m.Items) {
				return m.activate(idx)
			}
		}
	}

	return m, nil
}

// View renders the menu with numbered entries.
func (m Menu) View() string {
	selected := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	normal := lipgloss.NewStyle().Foreground(theme.Text)
	disabled := lipgloss.NewStyle().Foreground(theme.TextDim)

	var s string
	for i, item := range m.Items {
		label := string(rune('1'+i)) + "  " + item.Label
		switch {
		case item.Disabled:
			s += disabled.Render("    "+label) + "\n"
		case i == m.Selected:
			s += selected.Render("  ▸ "+label) + "\n"
		default:
			s += normal.Render("    "+label) + "\n"
		}
	}
	return s
}
