package tui

import (
	"testing"

	"burrow/internal/model"
	"burrow/internal/mutate"
	"burrow/internal/store"
)

// newTestModel builds an app model over an in-memory forest:
//
//	Q3 Planning (ws)
//	  Write report (task)
//	    Draft outline (task)
//	  Review budget (task)
//	Home (ws)
//	Old stuff (ws, archived)
func newTestModel(t *testing.T) (appModel, map[string]int64) {
	t.Helper()
	db := store.NewDB()
	ids := map[string]int64{}

	add := func(name string, parent int64, kind model.Kind) int64 {
		n, err := mutate.Create(db, parent, kind, name)
		if err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
		ids[name] = n.ID
		return n.ID
	}

	q3 := add("Q3 Planning", mutate.RootParent, model.KindWorkspace)
	report := add("Write report", q3, model.KindTask)
	add("Draft outline", report, model.KindTask)
	add("Review budget", q3, model.KindTask)
	add("Home", mutate.RootParent, model.KindWorkspace)
	old := add("Old stuff", mutate.RootParent, model.KindWorkspace)
	if _, err := mutate.Archive(db, old); err != nil {
		t.Fatalf("archive: %v", err)
	}

	m := newAppModel(store.Store{Dir: t.TempDir()}, db, &store.GlobalConfig{})
	return m, ids
}

func rowTitles(m appModel) []string {
	out := make([]string, 0, len(m.rows))
	for _, e := range m.rows {
		out = append(out, e.Node.Title)
	}
	return out
}

func assertTitles(t *testing.T, m appModel, want ...string) {
	t.Helper()
	got := rowTitles(m)
	if len(got) != len(want) {
		t.Fatalf("expected rows %v; got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected rows %v; got %v", want, got)
		}
	}
}

func TestInitialState(t *testing.T) {
	m, _ := newTestModel(t)
	if m.nav.view != viewWorkspaces || m.nav.mode != modeList {
		t.Fatalf("expected initial ViewingWorkspaces; got view=%d mode=%d", m.nav.view, m.nav.mode)
	}
	// Archived workspaces are excluded from the active panel.
	assertTitles(t, m, "Q3 Planning", "Home")
}

func TestEnterWorkspace(t *testing.T) {
	m, ids := newTestModel(t)

	// Entering an archived workspace is ignored.
	m.apply(IntentEnter{ID: ids["Old stuff"]})
	if m.nav.view != viewWorkspaces {
		t.Fatalf("enter on archived workspace must be ignored")
	}
	// So is an absent id.
	m.apply(IntentEnter{ID: 9999})
	if m.nav.view != viewWorkspaces {
		t.Fatalf("enter on missing id must be ignored")
	}

	m.apply(IntentEnter{ID: ids["Q3 Planning"]})
	if m.nav.view != viewTasks || m.nav.wsID != ids["Q3 Planning"] {
		t.Fatalf("expected ViewingTasks(Q3 Planning)")
	}
	assertTitles(t, m, "Write report", "Draft outline", "Review budget")

	m.apply(IntentBack{})
	if m.nav.view != viewWorkspaces {
		t.Fatalf("expected Back to restore ViewingWorkspaces")
	}
}

func TestSwitchPanel(t *testing.T) {
	m, ids := newTestModel(t)

	// Panel 3 without an entered workspace is ignored.
	m.apply(IntentSwitchPanel{N: 3})
	if m.nav.view != viewWorkspaces {
		t.Fatalf("panel 3 must be ignored before any Enter")
	}

	m.apply(IntentSwitchPanel{N: 2})
	if m.nav.view != viewArchived {
		t.Fatalf("expected archived panel")
	}
	assertTitles(t, m, "Old stuff")

	m.apply(IntentSwitchPanel{N: 1})
	if m.nav.view != viewWorkspaces {
		t.Fatalf("expected workspaces panel")
	}

	// After entering a workspace once, panel 3 returns to its tasks.
	m.apply(IntentEnter{ID: ids["Q3 Planning"]})
	m.apply(IntentSwitchPanel{N: 1})
	m.apply(IntentSwitchPanel{N: 3})
	if m.nav.view != viewTasks || m.nav.wsID != ids["Q3 Planning"] {
		t.Fatalf("expected panel 3 to restore ViewingTasks(Q3 Planning)")
	}
}

func TestSearchFlow(t *testing.T) {
	m, _ := newTestModel(t)
	m.apply(IntentOpenSearch{})
	if m.nav.mode != modeSearching {
		t.Fatalf("expected Searching mode")
	}

	m.nav.cursor = 1
	m.apply(IntentUpdateQuery{Query: "report"})
	if m.nav.cursor != 0 {
		t.Fatalf("query change must reset the cursor; got %d", m.nav.cursor)
	}
	// The deep task match keeps its ancestor chain visible, in
	// depth-first order.
	assertTitles(t, m, "Q3 Planning", "Write report")

	m.apply(IntentBack{})
	if m.nav.mode != modeList || m.nav.view != viewWorkspaces {
		t.Fatalf("expected Back to restore ViewingWorkspaces")
	}
	if m.nav.query != "" {
		t.Fatalf("expected query cleared")
	}
	assertTitles(t, m, "Q3 Planning", "Home")
}

func TestSearchEmptyQueryIsFullTraversal(t *testing.T) {
	m, _ := newTestModel(t)
	m.apply(IntentOpenSearch{})
	// Empty query: full active traversal, tasks included.
	assertTitles(t, m, "Q3 Planning", "Write report", "Draft outline", "Review budget", "Home")
}

func TestHelpFlow(t *testing.T) {
	m, ids := newTestModel(t)
	m.apply(IntentEnter{ID: ids["Q3 Planning"]})
	m.apply(IntentOpenHelp{})
	if m.nav.mode != modeHelp {
		t.Fatalf("expected Help mode")
	}
	m.apply(IntentBack{})
	if m.nav.mode != modeList || m.nav.view != viewTasks {
		t.Fatalf("expected Back to restore ViewingTasks")
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	m, ids := newTestModel(t)
	m.apply(IntentEnter{ID: ids["Q3 Planning"]})
	before := m.db.CountNodes()

	m.apply(IntentRequestDelete{ID: ids["Write report"]})
	if m.nav.mode != modeConfirmDelete {
		t.Fatalf("expected ConfirmingDelete")
	}

	// Quit must be ignored while the confirmation is open.
	if eff := m.apply(IntentQuit{}); eff != effNone || m.quitting {
		t.Fatalf("quit must be ignored during ConfirmingDelete")
	}

	// Cancel leaves the forest untouched.
	m.apply(IntentCancelDelete{})
	if m.nav.mode != modeList {
		t.Fatalf("expected cancel to restore list mode")
	}
	if got := m.db.CountNodes(); got != before {
		t.Fatalf("cancel mutated the forest: %d -> %d", before, got)
	}

	// Confirm removes the subtree (task + subtask).
	m.apply(IntentRequestDelete{ID: ids["Write report"]})
	if eff := m.apply(IntentConfirmDelete{}); eff != effSave {
		t.Fatalf("expected save effect after delete")
	}
	if got := m.db.CountNodes(); got != before-2 {
		t.Fatalf("expected %d nodes; got %d", before-2, got)
	}
	assertTitles(t, m, "Review budget")
}

func TestCursorClampOnDelete(t *testing.T) {
	m, ids := newTestModel(t)
	m.apply(IntentEnter{ID: ids["Q3 Planning"]})
	assertTitles(t, m, "Write report", "Draft outline", "Review budget")

	// Delete the selected middle entity: cursor moves to the previous row
	// (its parent in depth-first order).
	m.nav.cursor = 1
	m.apply(IntentRequestDelete{ID: ids["Draft outline"]})
	m.apply(IntentConfirmDelete{})
	if m.nav.cursor != 0 {
		t.Fatalf("expected cursor 0 after deleting row 1; got %d", m.nav.cursor)
	}
	assertTitles(t, m, "Write report", "Review budget")

	// Deleting the first row keeps the cursor at the top.
	m.nav.cursor = 0
	m.apply(IntentRequestDelete{ID: ids["Write report"]})
	m.apply(IntentConfirmDelete{})
	if m.nav.cursor != 0 {
		t.Fatalf("expected cursor 0 after deleting row 0; got %d", m.nav.cursor)
	}
	assertTitles(t, m, "Review budget")
}

func TestDeleteEnteredWorkspaceFallsBack(t *testing.T) {
	m, ids := newTestModel(t)
	m.apply(IntentEnter{ID: ids["Q3 Planning"]})
	m.apply(IntentRequestDelete{ID: ids["Q3 Planning"]})
	m.apply(IntentConfirmDelete{})
	if m.nav.view != viewWorkspaces {
		t.Fatalf("expected fallback to ViewingWorkspaces after deleting the entered workspace")
	}
	assertTitles(t, m, "Home")
}

func TestAddItem(t *testing.T) {
	m, ids := newTestModel(t)

	if eff := m.apply(IntentAddItem{Title: "Errands"}); eff != effSave {
		t.Fatalf("expected save effect")
	}
	assertTitles(t, m, "Q3 Planning", "Home", "Errands")
	if sel := m.selected(); sel == nil || sel.Title != "Errands" {
		t.Fatalf("expected cursor on the new workspace")
	}

	// Empty titles are rejected without mutating.
	before := m.db.CountNodes()
	if eff := m.apply(IntentAddItem{Title: "  "}); eff != effNone {
		t.Fatalf("expected no effect for empty title")
	}
	if m.lastOutcome != kindEmptyTitle {
		t.Fatalf("expected EmptyTitle outcome; got %q", m.lastOutcome)
	}
	if m.db.CountNodes() != before {
		t.Fatalf("empty-title add mutated the forest")
	}

	// Tasks panel: AddItem adds a top-level task, AddChildItem nests
	// under the selection.
	m.apply(IntentEnter{ID: ids["Q3 Planning"]})
	m.apply(IntentAddItem{Title: "File expenses"})
	assertTitles(t, m, "Write report", "Draft outline", "Review budget", "File expenses")

	m.nav.cursor = 2 // Review budget
	m.apply(IntentAddChildItem{Title: "Collect receipts"})
	assertTitles(t, m, "Write report", "Draft outline", "Review budget", "Collect receipts", "File expenses")
	if m.rows[3].Depth != 1 {
		t.Fatalf("expected nested task at depth 1; got %d", m.rows[3].Depth)
	}
}

func TestArchiveRecoverFlow(t *testing.T) {
	m, ids := newTestModel(t)

	if eff := m.apply(IntentArchive{ID: ids["Q3 Planning"]}); eff != effSave {
		t.Fatalf("expected save effect")
	}
	assertTitles(t, m, "Home")

	// Archiving again is a no-op: no save needed.
	if eff := m.apply(IntentArchive{ID: ids["Q3 Planning"]}); eff != effNone {
		t.Fatalf("expected no-op archive")
	}

	m.apply(IntentSwitchPanel{N: 2})
	assertTitles(t, m, "Q3 Planning", "Old stuff")

	m.apply(IntentRecover{ID: ids["Q3 Planning"]})
	assertTitles(t, m, "Old stuff")

	m.apply(IntentSwitchPanel{N: 1})
	assertTitles(t, m, "Q3 Planning", "Home")
}

func TestStatusIntents(t *testing.T) {
	m, ids := newTestModel(t)
	m.apply(IntentEnter{ID: ids["Q3 Planning"]})

	m.apply(IntentSetStatus{ID: ids["Write report"], Status: model.StatusDeprecated})
	n, _ := m.db.FindNode(ids["Write report"])
	if n.Status != model.StatusDeprecated {
		t.Fatalf("expected deprecated; got %q", n.Status)
	}

	m.apply(IntentCycleStatus{ID: ids["Write report"]})
	if n.Status != model.StatusTodo {
		t.Fatalf("expected cycle to wrap to todo; got %q", n.Status)
	}

	// Status intents against a workspace surface NotATask and change
	// nothing.
	m.apply(IntentSetStatus{ID: ids["Q3 Planning"], Status: model.StatusTodo})
	if m.lastOutcome != kindNotATask {
		t.Fatalf("expected NotATask outcome; got %q", m.lastOutcome)
	}
}

func TestDueDateIntents(t *testing.T) {
	m, ids := newTestModel(t)
	m.apply(IntentEnter{ID: ids["Q3 Planning"]})

	m.apply(IntentSetDueDate{ID: ids["Write report"], Raw: "2025-12-24"})
	n, _ := m.db.FindNode(ids["Write report"])
	if n.Due != "2025-12-24" {
		t.Fatalf("expected due 2025-12-24; got %q", n.Due)
	}

	m.apply(IntentSetDueDate{ID: ids["Write report"], Raw: "not a date"})
	if m.lastOutcome != kindInvalidDate {
		t.Fatalf("expected InvalidDate outcome; got %q", m.lastOutcome)
	}
	if n.Due != "2025-12-24" {
		t.Fatalf("failed parse must keep the prior due date; got %q", n.Due)
	}

	m.apply(IntentClearDueDate{ID: ids["Write report"]})
	if n.Due != "" {
		t.Fatalf("expected cleared due date; got %q", n.Due)
	}
}

func TestQuitSavesAndTerminates(t *testing.T) {
	m, _ := newTestModel(t)
	if eff := m.apply(IntentQuit{}); eff != effSaveAndQuit {
		t.Fatalf("expected save-and-quit effect")
	}
	if !m.quitting {
		t.Fatalf("expected quitting state")
	}
}

func TestMoveCursorClamps(t *testing.T) {
	m, _ := newTestModel(t)
	m.apply(IntentMoveCursor{Delta: -1})
	if m.nav.cursor != 0 {
		t.Fatalf("expected clamp at 0; got %d", m.nav.cursor)
	}
	m.apply(IntentMoveCursor{Delta: 99})
	if m.nav.cursor != len(m.rows)-1 {
		t.Fatalf("expected clamp at %d; got %d", len(m.rows)-1, m.nav.cursor)
	}
}

func TestArchivedDescendantsPolicy(t *testing.T) {
	m, ids := newTestModel(t)
	// Nest a workspace under Q3 Planning, then archive the parent.
	sub, err := mutate.Create(m.db, ids["Q3 Planning"], model.KindWorkspace, "Subteam")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := mutate.Archive(m.db, ids["Q3 Planning"]); err != nil {
		t.Fatalf("archive: %v", err)
	}

	// Default policy hides the whole subtree.
	m.refreshRows()
	assertTitles(t, m, "Home")

	// "show" keeps non-archived descendants in the active view.
	m.cfg.ArchivedDescendants = "show"
	m.refreshRows()
	assertTitles(t, m, "Subteam", "Home")
	_ = sub
}
