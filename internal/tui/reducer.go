package tui

import (
	"errors"
	"strings"
	"time"

	"burrow/internal/dates"
	"burrow/internal/model"
	"burrow/internal/mutate"
)

// effect is what the reducer asks the outer loop to do after a transition.
// The reducer itself never touches the file system.
type effect int

const (
	effNone effect = iota
	effSave
	effSaveAndQuit
)

// apply is the navigation state machine: one intent in, state transition
// plus any delegated mutation, one effect out. Mutation failures are
// recovered here: the error kind lands in lastOutcome and the forest stays
// as it was.
func (m *appModel) apply(it Intent) effect {
	m.lastOutcome = ""
	m.log.Debug().Str("view", viewToString(m.nav.view)).Type("intent", it).Msg("intent")

	// Deletion confirmation must be resolved before anything else, Quit
	// included.
	if m.nav.mode == modeConfirmDelete {
		switch it.(type) {
		case IntentConfirmDelete:
			return m.applyConfirmDelete()
		case IntentCancelDelete, IntentBack:
			m.nav.mode = modeList
			m.nav.deleteTarget = 0
			m.restorePrev()
			return effNone
		}
		return effNone
	}

	switch it := it.(type) {
	case IntentMoveCursor:
		m.nav.cursor += it.Delta
		m.clampCursor()

	case IntentSwitchPanel:
		if m.nav.mode != modeList {
			return effNone
		}
		m.switchPanel(it.N)

	case IntentEnter:
		if m.nav.mode != modeList || m.nav.view != viewWorkspaces {
			return effNone
		}
		ws, ok := m.db.FindNode(it.ID)
		if !ok || ws.Kind != model.KindWorkspace || ws.Archived {
			return effNone
		}
		m.nav.view = viewTasks
		m.nav.wsID = it.ID
		m.nav.cursor = 0
		m.refreshRows()

	case IntentBack:
		switch m.nav.mode {
		case modeSearching, modeHelp:
			m.nav.mode = modeList
			m.nav.query = ""
			m.restorePrev()
		default:
			if m.nav.view == viewTasks {
				m.nav.view = viewWorkspaces
				m.nav.cursor = 0
				m.refreshRows()
			}
		}

	case IntentOpenSearch:
		if m.nav.mode != modeList {
			return effNone
		}
		m.pushPrev()
		m.nav.mode = modeSearching
		m.nav.query = ""
		m.nav.cursor = 0
		m.refreshRows()

	case IntentUpdateQuery:
		if m.nav.mode != modeSearching {
			return effNone
		}
		m.nav.query = it.Query
		m.nav.cursor = 0
		m.refreshRows()

	case IntentOpenHelp:
		if m.nav.mode != modeList {
			return effNone
		}
		m.pushPrev()
		m.nav.mode = modeHelp

	case IntentRequestDelete:
		if m.nav.mode != modeList {
			return effNone
		}
		if _, ok := m.db.FindNode(it.ID); !ok {
			m.lastOutcome = kindNotFound
			return effNone
		}
		m.pushPrev()
		m.nav.mode = modeConfirmDelete
		m.nav.deleteTarget = it.ID
		m.confirmFoc = confirmFocusCancel

	case IntentAddItem:
		return m.applyAdd(it.Title, false)

	case IntentAddChildItem:
		return m.applyAdd(it.Title, true)

	case IntentRename:
		if err := mutate.Rename(m.db, it.ID, it.Title); err != nil {
			m.fail(err)
			return effNone
		}
		m.refreshRows()
		return effSave

	case IntentSetStatus:
		if err := mutate.SetStatus(m.db, it.ID, it.Status); err != nil {
			m.fail(err)
			return effNone
		}
		return effSave

	case IntentCycleStatus:
		if _, err := mutate.CycleStatus(m.db, it.ID); err != nil {
			m.fail(err)
			return effNone
		}
		return effSave

	case IntentSetDueDate:
		if _, err := mutate.SetDueDate(m.db, it.ID, it.Raw, time.Now()); err != nil {
			m.fail(err)
			return effNone
		}
		return effSave

	case IntentClearDueDate:
		if err := mutate.ClearDueDate(m.db, it.ID); err != nil {
			m.fail(err)
			return effNone
		}
		return effSave

	case IntentArchive:
		res, err := mutate.Archive(m.db, it.ID)
		if err != nil {
			m.fail(err)
			return effNone
		}
		m.refreshRows()
		if !res.Changed {
			return effNone
		}
		return effSave

	case IntentRecover:
		res, err := mutate.Recover(m.db, it.ID)
		if err != nil {
			m.fail(err)
			return effNone
		}
		m.refreshRows()
		if !res.Changed {
			return effNone
		}
		return effSave

	case IntentSave:
		return effSave

	case IntentQuit:
		m.quitting = true
		return effSaveAndQuit
	}
	return effNone
}

func (m *appModel) pushPrev() {
	m.nav.prevView = m.nav.view
	m.nav.prevWS = m.nav.wsID
}

func (m *appModel) restorePrev() {
	m.nav.view = m.nav.prevView
	m.nav.wsID = m.nav.prevWS
	m.nav.cursor = 0
	m.refreshRows()
}

func (m *appModel) switchPanel(n int) {
	switch n {
	case 1:
		m.nav.view = viewWorkspaces
	case 2:
		m.nav.view = viewArchived
	case 3:
		ws, ok := m.db.FindNode(m.nav.wsID)
		if !ok || ws.Kind != model.KindWorkspace || ws.Archived {
			return
		}
		m.nav.view = viewTasks
	default:
		return
	}
	m.nav.cursor = 0
	m.refreshRows()
}

// applyAdd creates a workspace or task appropriate to the current view:
// top-level workspaces (or sub-workspaces of the selection as a child) in
// the workspace panel, tasks of the entered workspace (or subtasks of the
// selection) in the task panel.
func (m *appModel) applyAdd(title string, child bool) effect {
	var parentID int64
	kind := model.KindWorkspace

	switch m.nav.view {
	case viewWorkspaces:
		if child {
			sel := m.selected()
			if sel == nil {
				m.lastOutcome = kindInvalidParent
				return effNone
			}
			parentID = sel.ID
		}
	case viewTasks:
		kind = model.KindTask
		parentID = m.nav.wsID
		if child {
			sel := m.selected()
			if sel == nil {
				m.lastOutcome = kindInvalidParent
				return effNone
			}
			parentID = sel.ID
		}
	default:
		return effNone
	}

	n, err := mutate.Create(m.db, parentID, kind, title)
	if err != nil {
		m.fail(err)
		return effNone
	}
	m.refreshRows()
	m.moveCursorTo(n.ID)
	return effSave
}

func (m *appModel) applyConfirmDelete() effect {
	id := m.nav.deleteTarget
	m.nav.mode = modeList
	m.nav.deleteTarget = 0
	m.restorePrev()

	deletedIndex := m.rowIndexOf(id)
	removed, err := mutate.Delete(m.db, id)
	if err != nil {
		m.fail(err)
		return effNone
	}
	m.log.Debug().Int64("id", id).Int("subtree", removed.SubtreeSize()).Msg("deleted")

	// If the entered workspace went away, the task view has nothing to
	// show; fall back to the workspace panel.
	if m.nav.view == viewTasks {
		if _, ok := m.db.FindNode(m.nav.wsID); !ok {
			m.nav.view = viewWorkspaces
			m.nav.wsID = 0
		}
	}
	m.refreshRows()

	// Reposition onto the previous row (previous sibling, else parent in
	// depth-first order), else the top of the list.
	if deletedIndex > 0 {
		m.nav.cursor = deletedIndex - 1
	} else {
		m.nav.cursor = 0
	}
	m.clampCursor()
	return effSave
}

func (m *appModel) rowIndexOf(id int64) int {
	for i, e := range m.rows {
		if e.Node.ID == id {
			return i
		}
	}
	return -1
}

func (m *appModel) moveCursorTo(id int64) {
	if i := m.rowIndexOf(id); i >= 0 {
		m.nav.cursor = i
	}
}

// Error kinds surfaced on the status line.
const (
	kindInvalidParent  = "InvalidParent"
	kindEmptyTitle     = "EmptyTitle"
	kindNotFound       = "NotFound"
	kindNotATask       = "NotATask"
	kindNotAWorkspace  = "NotAWorkspace"
	kindInvalidDate    = "InvalidDate"
	kindInvalidStatus  = "InvalidStatus"
	kindUnknownFailure = "Error"
)

func (m *appModel) fail(err error) {
	m.lastOutcome = errorKind(err)
	m.log.Debug().Err(err).Str("kind", m.lastOutcome).Msg("intent failed")
}

func errorKind(err error) string {
	var (
		nfe mutate.NotFoundError
		ipe mutate.InvalidParentError
		nte mutate.NotATaskError
		nwe mutate.NotAWorkspaceError
	)
	switch {
	case errors.Is(err, mutate.ErrEmptyTitle):
		return kindEmptyTitle
	case errors.Is(err, mutate.ErrInvalidStatus):
		return kindInvalidStatus
	case errors.Is(err, dates.ErrInvalidDate):
		return kindInvalidDate
	case errors.As(err, &ipe):
		return kindInvalidParent
	case errors.As(err, &nte):
		return kindNotATask
	case errors.As(err, &nwe):
		return kindNotAWorkspace
	case errors.As(err, &nfe):
		return kindNotFound
	}
	return kindUnknownFailure
}

func titleMatches(title, query string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(strings.TrimSpace(query)))
}
