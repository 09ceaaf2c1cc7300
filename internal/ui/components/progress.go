package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/satko/internal/ui/theme"
)

// ProgressBar shows progress through a level's questions. Threshold,
// as a fraction of the bar, marks how far the player must get for the
// level to count as passed; zero hides the marker.
type ProgressBar struct {
	Label     string
	Percent   float64
	Threshold float64
	Width     int
}

// NewProgressBar creates a progress bar.
func NewProgressBar(label string, percent, threshold float64, width int) ProgressBar {
	return ProgressBar{
		Label:     label,
		Percent:   percent,
		Threshold: threshold,
		Width:     width,
	}
}

// View renders the bar cell by cell so the pass marker can sit inside
// the filled or the empty region.
func (p ProgressBar) View() string {
	var out string
	if p.Label != "" {
		out = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	barWidth := p.Width - lipgloss.Width(out)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	marker := -1
	if p.Threshold > 0 && p.Threshold <= 1 {
		marker = int(float64(barWidth) * p.Threshold)
		if marker >= barWidth {
			marker = barWidth - 1
		}
	}

	filledStyle := lipgloss.NewStyle().Background(theme.Secondary)
	emptyStyle := lipgloss.NewStyle().Background(theme.Border)
	markerStyle := lipgloss.NewStyle().Foreground(theme.Accent)

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case i == marker:
			if i < filled {
				bar.WriteString(markerStyle.Background(theme.Secondary).Render("▎"))
			} else {
				bar.WriteString(markerStyle.Background(theme.Border).Render("▎"))
			}
		case i < filled:
			bar.WriteString(filledStyle.Render(" "))
		default:
			bar.WriteString(emptyStyle.Render(" "))
		}
	}

	return out + bar.String()
}
