package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"

	"burrow/internal/model"
	"burrow/internal/search"
	"burrow/internal/store"
)

type appModel struct {
	store store.Store
	db    *store.DB
	cfg   *store.GlobalConfig
	log   zerolog.Logger

	width  int
	height int

	nav  navState
	rows []store.Entry

	prompt      textinput.Model
	promptMode  promptKind
	confirmFoc  confirmFocus
	searchInput textinput.Model

	// lastOutcome describes the result of the last intent for the status
	// line: empty on success, an error kind otherwise.
	lastOutcome string
	quitting    bool
}

func newAppModel(s store.Store, db *store.DB, cfg *store.GlobalConfig) appModel {
	if cfg == nil {
		cfg = &store.GlobalConfig{}
	}
	m := appModel{
		store: s,
		db:    db,
		cfg:   cfg,
		log:   newDebugLogger(),
		nav:   navState{view: viewWorkspaces},
	}

	m.prompt = textinput.New()
	m.prompt.CharLimit = 200
	m.prompt.Prompt = "> "

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "/ "
	m.searchInput.Placeholder = "search"

	m.refreshRows()
	return m
}

// activeWalkOptions apply the configured archived-descendant policy to the
// active workspace traversal.
func (m *appModel) activeWalkOptions(skipTasks bool) store.WalkOptions {
	return store.WalkOptions{
		SkipArchived: true,
		Policy:       m.cfg.ArchivedPolicy(),
		SkipTasks:    skipTasks,
	}
}

// refreshRows recomputes the visible sequence for the current navigation
// state. The filtered view is rebuilt from scratch on every call.
func (m *appModel) refreshRows() {
	query := ""
	scope := m.nav.view
	if m.nav.mode == modeSearching {
		query = m.nav.query
		scope = m.nav.prevView
	}

	switch scope {
	case viewWorkspaces:
		if m.nav.mode == modeSearching {
			// Forest-wide search: tasks included so a deep hit surfaces
			// its workspace chain.
			m.rows = search.Filter(m.db.Workspaces, query, m.activeWalkOptions(false))
		} else {
			m.rows = search.Filter(m.db.Workspaces, "", m.activeWalkOptions(true))
		}
	case viewArchived:
		m.rows = m.archivedRows(query)
	case viewTasks:
		ws, ok := m.db.FindNode(m.nav.wsID)
		if !ok || ws.Kind != model.KindWorkspace {
			m.rows = nil
			return
		}
		m.rows = search.Filter(ws.Tasks, query, store.WalkOptions{})
	}
	m.clampCursor()
}

// archivedRows lists workspaces whose own archived flag is set, as a flat
// list (the subtree comes back on recover).
func (m *appModel) archivedRows(query string) []store.Entry {
	var out []store.Entry
	for _, ws := range m.db.ArchivedWorkspaces() {
		if query != "" && !titleMatches(ws.Title, query) {
			continue
		}
		out = append(out, store.Entry{Node: ws, Parents: m.db.Ancestors(ws.ID)})
	}
	return out
}

func (m *appModel) clampCursor() {
	if len(m.rows) == 0 {
		m.nav.cursor = 0
		return
	}
	if m.nav.cursor >= len(m.rows) {
		m.nav.cursor = len(m.rows) - 1
	}
	if m.nav.cursor < 0 {
		m.nav.cursor = 0
	}
}

// selected returns the entity under the cursor, or nil for an empty list.
func (m *appModel) selected() *model.Node {
	if m.nav.cursor < 0 || m.nav.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.nav.cursor].Node
}
