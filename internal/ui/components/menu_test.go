package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testMenu(fired *string) Menu {
	action := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			*fired = label
			return nil
		}
	}
	return NewMenu([]MenuItem{
		{Label: "NOVA IGRA", Action: action("nova")},
		{Label: "NASTAVI", Disabled: true, Action: action("nastavi")},
		{Label: "IZLAZ", Action: action("izlaz")},
	})
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	var fired string
	m := testMenu(&fired)
	require.Equal(t, 0, m.Selected)

	m, _ = m.Update(keyPress('j'))
	assert.Equal(t, 2, m.Selected, "move down skips the disabled item")

	m, _ = m.Update(keyPress('k'))
	assert.Equal(t, 0, m.Selected)
}

func TestMenuWrapsAround(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	m, _ = m.Update(keyPress('k'))
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(keyPress('j'))
	assert.Equal(t, 0, m.Selected)
}

func TestMenuStartsOnFirstEnabledItem(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "NASTAVI", Disabled: true},
		{Label: "NOVA IGRA"},
	})
	assert.Equal(t, 1, m.Selected)
}

func TestMenuNumberKeyActivates(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	m, _ = m.Update(keyPress('3'))
	assert.Equal(t, "izlaz", fired)
	assert.Equal(t, 2, m.Selected)
}

func TestMenuNumberKeyIgnoresDisabledAndOutOfRange(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	m, _ = m.Update(keyPress('2'))
	assert.Empty(t, fired, "disabled item does not fire")

	m, _ = m.Update(keyPress('9'))
	assert.Empty(t, fired)
	assert.Equal(t, 0, m.Selected)
}

func TestMenuEnterRunsSelectedAction(t *testing.T) {
	var fired string
	m := testMenu(&fired)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "nova", fired)
}
