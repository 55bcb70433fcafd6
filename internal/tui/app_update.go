package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/model"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(10, m.width-4)
		m.searchInput.Width = max(10, m.width-4)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey maps keys to intents and runs them through the reducer. Text
// entry (prompt, search) is handled here so the reducer only ever sees
// decoded intents.
func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.promptMode != promptNone {
		return m.handlePromptKey(msg)
	}

	switch m.nav.mode {
	case modeHelp:
		return m.dispatch(IntentBack{})

	case modeSearching:
		return m.handleSearchKey(msg)

	case modeConfirmDelete:
		switch msg.String() {
		case "y":
			return m.dispatch(IntentConfirmDelete{})
		case "n", "esc", "ctrl+g":
			return m.dispatch(IntentCancelDelete{})
		case "tab", "left", "right", "h", "l":
			if m.confirmFoc == confirmFocusConfirm {
				m.confirmFoc = confirmFocusCancel
			} else {
				m.confirmFoc = confirmFocusConfirm
			}
			return m, nil
		case "enter":
			if m.confirmFoc == confirmFocusConfirm {
				return m.dispatch(IntentConfirmDelete{})
			}
			return m.dispatch(IntentCancelDelete{})
		}
		return m, nil
	}

	return m.handleListKey(msg)
}

func (m appModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.selected()

	switch msg.String() {
	case "ctrl+c", "q":
		return m.dispatch(IntentQuit{})
	case "1":
		return m.dispatch(IntentSwitchPanel{N: 1})
	case "2":
		return m.dispatch(IntentSwitchPanel{N: 2})
	case "3":
		return m.dispatch(IntentSwitchPanel{N: 3})
	case "j", "down":
		return m.dispatch(IntentMoveCursor{Delta: 1})
	case "k", "up":
		return m.dispatch(IntentMoveCursor{Delta: -1})
	case "g", "home":
		return m.dispatch(IntentMoveCursor{Delta: -len(m.rows)})
	case "G", "end":
		return m.dispatch(IntentMoveCursor{Delta: len(m.rows)})
	case "esc", "backspace":
		return m.dispatch(IntentBack{})
	case "/":
		mm, cmd := m.dispatch(IntentOpenSearch{})
		if am, ok := mm.(appModel); ok && am.nav.mode == modeSearching {
			am.searchInput.SetValue("")
			am.searchInput.Focus()
			return am, cmd
		}
		return mm, cmd
	case "?":
		return m.dispatch(IntentOpenHelp{})
	case "ctrl+s", "w":
		return m.dispatch(IntentSave{})

	case "enter":
		if sel == nil {
			return m, nil
		}
		if m.nav.view == viewWorkspaces && sel.Kind == model.KindWorkspace {
			return m.dispatch(IntentEnter{ID: sel.ID})
		}
		if m.nav.view == viewTasks && sel.Kind == model.KindTask {
			return m.dispatch(IntentCycleStatus{ID: sel.ID})
		}
		return m, nil

	case "a":
		if m.nav.view == viewArchived {
			return m, nil
		}
		return m.openPrompt(promptAdd, ""), nil
	case "i":
		if m.nav.view == viewArchived || sel == nil {
			return m, nil
		}
		return m.openPrompt(promptAddChild, ""), nil
	case "r":
		if sel == nil {
			return m, nil
		}
		return m.openPrompt(promptRename, sel.Title), nil
	case "d":
		if sel == nil {
			return m, nil
		}
		return m.dispatch(IntentRequestDelete{ID: sel.ID})

	case "x":
		if sel == nil || m.nav.view != viewWorkspaces {
			return m, nil
		}
		return m.dispatch(IntentArchive{ID: sel.ID})
	case "u":
		if sel == nil || m.nav.view != viewArchived {
			return m, nil
		}
		return m.dispatch(IntentRecover{ID: sel.ID})

	case " ":
		if sel == nil || m.nav.view != viewTasks {
			return m, nil
		}
		return m.dispatch(IntentCycleStatus{ID: sel.ID})
	case "t":
		if sel == nil || m.nav.view != viewTasks {
			return m, nil
		}
		return m.openPrompt(promptDue, sel.Due), nil
	case "T":
		if sel == nil || m.nav.view != viewTasks {
			return m, nil
		}
		return m.dispatch(IntentClearDueDate{ID: sel.ID})
	}
	return m, nil
}

func (m appModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g", "enter":
		m.searchInput.Blur()
		return m.dispatch(IntentBack{})
	case "down", "ctrl+n":
		return m.dispatch(IntentMoveCursor{Delta: 1})
	case "up", "ctrl+p":
		return m.dispatch(IntentMoveCursor{Delta: -1})
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if q := m.searchInput.Value(); q != m.nav.query {
		mm, _ := m.dispatch(IntentUpdateQuery{Query: q})
		if am, ok := mm.(appModel); ok {
			return am, cmd
		}
	}
	return m, cmd
}

func (m appModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.promptMode = promptNone
		m.prompt.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.prompt.Value())
		kind := m.promptMode
		m.promptMode = promptNone
		m.prompt.Blur()
		return m.dispatchPromptResult(kind, value)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m appModel) dispatchPromptResult(kind promptKind, value string) (tea.Model, tea.Cmd) {
	sel := m.selected()
	switch kind {
	case promptAdd:
		return m.dispatch(IntentAddItem{Title: value})
	case promptAddChild:
		return m.dispatch(IntentAddChildItem{Title: value})
	case promptRename:
		if sel == nil {
			return m, nil
		}
		return m.dispatch(IntentRename{ID: sel.ID, Title: value})
	case promptDue:
		if sel == nil {
			return m, nil
		}
		return m.dispatch(IntentSetDueDate{ID: sel.ID, Raw: value})
	}
	return m, nil
}

func (m appModel) openPrompt(kind promptKind, initial string) appModel {
	m.promptMode = kind
	m.prompt.SetValue(initial)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	return m
}

// dispatch runs one intent through the reducer and performs its effect.
// Persistence failures are surfaced on the status line and never crash the
// loop; the in-memory forest stays valid for a later retry.
func (m appModel) dispatch(it Intent) (tea.Model, tea.Cmd) {
	eff := m.apply(it)
	switch eff {
	case effSave:
		if err := m.store.Save(m.db); err != nil {
			m.lastOutcome = "IoFailure"
			m.log.Error().Err(err).Msg("save failed")
		}
	case effSaveAndQuit:
		if err := m.store.Save(m.db); err != nil {
			// Refuse to lose data silently: stay alive and show the failure.
			m.lastOutcome = "IoFailure"
			m.quitting = false
			m.log.Error().Err(err).Msg("save on quit failed")
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}
