package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"burrow/internal/model"
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}

	if m.nav.mode == modeHelp {
		return renderHelp(width)
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	listHeight := height - 5 // tabs, blank, status line, input line
	b.WriteString(m.renderList(width, listHeight))

	b.WriteString("\n")
	b.WriteString(m.renderInputLine(width))
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine(width))

	if m.nav.mode == modeConfirmDelete {
		return m.renderDeleteModal(width, height)
	}
	return b.String()
}

func (m appModel) renderTabs() string {
	type tab struct {
		n     int
		label string
		v     view
	}
	tabs := []tab{
		{1, "Workspaces", viewWorkspaces},
		{2, "Archived", viewArchived},
		{3, "Tasks", viewTasks},
	}

	current := m.nav.view
	if m.nav.mode == modeSearching {
		current = m.nav.prevView
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := fmt.Sprintf("[%d] %s", t.n, t.label)
		if t.v == viewTasks {
			if ws, ok := m.db.FindNode(m.nav.wsID); ok && ws.Kind == model.KindWorkspace {
				label = fmt.Sprintf("[%d] %s: %s", t.n, t.label, ws.Title)
			}
		}
		if t.v == current {
			parts = append(parts, styleTabActive().Render(label))
		} else {
			parts = append(parts, styleTabInactive().Render(label))
		}
	}
	return " " + strings.Join(parts, "   ")
}

func (m appModel) renderList(width, height int) string {
	if len(m.rows) == 0 {
		return styleMuted().Render("  " + m.emptyMessage())
	}

	// Keep the cursor inside the rendered window.
	start := 0
	if height > 0 && m.nav.cursor >= height {
		start = m.nav.cursor - height + 1
	}
	end := len(m.rows)
	if height > 0 && start+height < end {
		end = start + height
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := m.rows[i]
		line := m.renderRow(e, i == m.nav.cursor, width-2)
		if m.nav.view == viewArchived && len(e.Parents) > 0 && i != m.nav.cursor {
			line += renderBreadcrumb(e.Parents)
		}
		lines = append(lines, " "+line)
	}
	return strings.Join(lines, "\n")
}

func (m appModel) emptyMessage() string {
	if m.nav.mode == modeSearching {
		return "no matches"
	}
	switch m.nav.view {
	case viewArchived:
		return "no archived workspaces"
	case viewTasks:
		return "no tasks yet — press a to add one"
	}
	return "no workspaces yet — press a to add one"
}

func (m appModel) renderInputLine(width int) string {
	switch {
	case m.promptMode != promptNone:
		label := map[promptKind]string{
			promptAdd:      "add",
			promptAddChild: "add child",
			promptRename:   "rename",
			promptDue:      "due (YYYY-MM-DD or \"3 days\")",
		}[m.promptMode]
		return " " + styleMuted().Render(label+":") + " " + m.prompt.View()
	case m.nav.mode == modeSearching:
		return " " + m.searchInput.View()
	}
	return ""
}

func (m appModel) renderStatusLine(width int) string {
	left := " ? help   / search   q quit"
	if m.lastOutcome != "" {
		left = " " + lipgloss.NewStyle().Foreground(colorDueOverdue).Render(m.lastOutcome)
	}
	return styleMuted().Render(truncateRow(left, width))
}

func (m appModel) renderDeleteModal(width, height int) string {
	target, ok := m.db.FindNode(m.nav.deleteTarget)
	body := "Delete this entity?"
	if ok {
		n := target.SubtreeSize()
		if n > 1 {
			body = fmt.Sprintf("Delete %q and %d nested entities?", target.Title, n-1)
		} else {
			body = fmt.Sprintf("Delete %q?", target.Title)
		}
	}
	modal := renderConfirmModal(width, "Confirm delete", body, "Delete", "Cancel", m.confirmFoc)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
