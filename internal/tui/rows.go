package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"burrow/internal/dates"
	"burrow/internal/model"
	"burrow/internal/store"
)

// Status glyphs. The ascii set is for terminals without decent unicode
// coverage, selectable via config (tui.glyphs = "ascii").
var unicodeGlyphs = map[model.Status]string{
	model.StatusTodo:       "○",
	model.StatusInProgress: "◐",
	model.StatusCompleted:  "●",
	model.StatusDeprecated: "✗",
}

var asciiGlyphs = map[model.Status]string{
	model.StatusTodo:       "[ ]",
	model.StatusInProgress: "[~]",
	model.StatusCompleted:  "[x]",
	model.StatusDeprecated: "[-]",
}

func (m *appModel) statusGlyph(s model.Status) string {
	if m.cfg.TUI != nil && strings.EqualFold(m.cfg.TUI.Glyphs, "ascii") {
		return asciiGlyphs[s]
	}
	return unicodeGlyphs[s]
}

func statusColor(s model.Status) lipgloss.TerminalColor {
	switch s {
	case model.StatusInProgress:
		return colorStatusInProgress
	case model.StatusCompleted:
		return colorStatusCompleted
	case model.StatusDeprecated:
		return colorStatusDeprecated
	}
	return colorStatusTodo
}

func urgencyColor(u dates.Urgency) lipgloss.TerminalColor {
	switch u {
	case dates.UrgencyOverdue:
		return colorDueOverdue
	case dates.UrgencyToday, dates.UrgencyImminent:
		return colorDueToday
	case dates.UrgencySoon:
		return colorDueSoon
	}
	return colorDueLater
}

// renderRow renders one traversal entry at the given width. The selected
// row carries the selection background across its full width.
func (m *appModel) renderRow(e store.Entry, selected bool, width int) string {
	indent := strings.Repeat("  ", e.Depth)

	var b strings.Builder
	b.WriteString(indent)

	switch e.Node.Kind {
	case model.KindTask:
		glyph := m.statusGlyph(e.Node.Status)
		if selected {
			b.WriteString(glyph)
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(statusColor(e.Node.Status)).Render(glyph))
		}
		b.WriteString(" ")
	case model.KindWorkspace:
		if e.Node.Archived {
			b.WriteString("▣ ")
		} else {
			b.WriteString("▸ ")
		}
	}

	title := e.Node.Title
	switch {
	case e.Node.Kind == model.KindTask && e.Node.Status == model.StatusDeprecated:
		title = lipgloss.NewStyle().Strikethrough(true).Render(title)
	case e.Node.Kind == model.KindWorkspace && e.Node.Archived && !selected:
		title = lipgloss.NewStyle().Foreground(colorArchivedFg).Render(title)
	}
	b.WriteString(title)

	if e.Node.Kind == model.KindTask && e.Node.Due != "" {
		if due, err := dates.Parse(e.Node.Due); err == nil {
			_, u := dates.Distance(time.Now(), due)
			label := "  " + dates.DistanceLabel(time.Now(), due)
			if selected {
				b.WriteString(label)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(urgencyColor(u)).Render(label))
			}
		}
	}

	line := truncateRow(b.String(), width)
	if selected {
		return styleSelected().Width(width).Render(line)
	}
	return line
}

// renderBreadcrumb shows the ancestor chain for archive/search context rows.
func renderBreadcrumb(parents []*model.Node) string {
	if len(parents) == 0 {
		return ""
	}
	names := make([]string, 0, len(parents))
	for _, p := range parents {
		names = append(names, p.Title)
	}
	return styleMuted().Render("  " + strings.Join(names, " › "))
}

func truncateRow(s string, w int) string {
	if w <= 0 || xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}
