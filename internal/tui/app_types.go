package tui

type view int

const (
	viewWorkspaces view = iota
	viewArchived
	viewTasks
)

func viewToString(v view) string {
	switch v {
	case viewWorkspaces:
		return "workspaces"
	case viewArchived:
		return "archived"
	case viewTasks:
		return "tasks"
	}
	return "?"
}

// mode overlays the current view. modeList is the plain list; the others
// remember the state they were entered from and restore it on Back.
type mode int

const (
	modeList mode = iota
	modeSearching
	modeHelp
	modeConfirmDelete
)

// navState is the navigation state machine's full state. It is mutated only
// by the reducer (reducer.go), never by rendering code.
type navState struct {
	view view
	mode mode

	// wsID is the workspace whose tasks are shown in viewTasks. It is
	// remembered across panel switches so SwitchPanel(3) can return to it.
	wsID int64

	// prevView/prevWS snapshot the state pushed when entering
	// searching/help/confirm; Back restores them.
	prevView view
	prevWS   int64

	query        string
	deleteTarget int64
	cursor       int
}

// promptKind says what the bottom-line text prompt is collecting. Prompt
// handling is input-layer concern and deliberately not part of navState.
type promptKind int

const (
	promptNone promptKind = iota
	promptAdd
	promptAddChild
	promptRename
	promptDue
)

type confirmFocus int

const (
	confirmFocusConfirm confirmFocus = iota
	confirmFocusCancel
)
