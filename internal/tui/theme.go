package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so everything below uses lipgloss.AdaptiveColor; "faint" styling is only
// applied on dark backgrounds (faint text on light terminals often becomes
// illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorSurfaceBg lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorControlBg lipgloss.TerminalColor = ac("252", "238")

	colorAccent lipgloss.TerminalColor = ac("26", "75")

	// Urgency colors for due-date annotations.
	colorDueOverdue lipgloss.TerminalColor = ac("124", "196")
	colorDueToday   lipgloss.TerminalColor = ac("130", "208")
	colorDueSoon    lipgloss.TerminalColor = ac("100", "185")
	colorDueLater   lipgloss.TerminalColor = ac("240", "245")

	// Status glyph colors.
	colorStatusTodo       lipgloss.TerminalColor = ac("240", "245")
	colorStatusInProgress lipgloss.TerminalColor = ac("26", "75")
	colorStatusCompleted  lipgloss.TerminalColor = ac("28", "77")
	colorStatusDeprecated lipgloss.TerminalColor = ac("244", "240")

	colorArchivedFg lipgloss.TerminalColor = ac("244", "242")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
}

func styleTabActive() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true)
}

func styleTabInactive() lipgloss.Style {
	return styleMuted()
}

// markdownStyle picks the glamour style matching the terminal background.
// Background detection goes through termenv once; lipgloss caches its own
// answer and the two can disagree after redirection, so ask termenv directly.
func markdownStyle() string {
	if termenv.NewOutput(os.Stdout).HasDarkBackground() {
		return "dark"
	}
	return "light"
}
