package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/satko/internal/ui/components"
	"github.com/abhisek/satko/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.showingExitConfirm {
		return s.renderExitConfirm(width, height)
	}
	if s.showingFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *PlayScreen) renderQuestion(width, height int) string {
	sess := s.engine.Session()
	q := sess.Current
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Pripremam zadatak...")
	}

	var b strings.Builder

	// Status line: level and progress left, countdown right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Razina %d", sess.Level)) +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  zadatak %d/%d", sess.LevelProgress+1, s.engine.Settings().QuestionsPerLevel))

	timerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if sess.TimeLeft <= 5 {
		timerStyle = theme.Urgent
	}
	infoRight := timerStyle.Render(fmt.Sprintf("⏱ %d s", sess.TimeLeft))
	if s.paused {
		infoRight = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render("PAUZA  ") + infoRight
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Level progress with the pass mark drawn on the bar.
	cfg := s.engine.Settings()
	pct := float64(sess.LevelProgress) / float64(cfg.QuestionsPerLevel)
	bar := components.NewProgressBar("", pct, float64(cfg.LevelCompletionThreshold)/100, 32)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	if sess.HintShown && q.Data.Hint != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Hint.Render("Pomoć: " + q.Data.Hint)))
		b.WriteString("\n\n")
	}

	if s.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Odgovor: " + s.input.View()))
	}

	if s.inlineErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Incorrect.Render(s.inlineErr)))
	}

	return b.String()
}

func (s *PlayScreen) renderFeedback(width, height int) string {
	style := theme.Correct
	if !s.feedbackGood {
		style = theme.Incorrect
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(style.Render(s.feedback))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *PlayScreen) renderExitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Želiš li izaći iz igre?"))
	b.WriteString("\n\n")

	for i, choice := range exitChoices {
		if i == s.exitChoice {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + choice))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + choice))
		}
		b.WriteString("\n")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
