package tui

import "burrow/internal/model"

// Intent is a decoded user action, independent of the key that produced it.
// The key-to-intent mapping lives in app_update.go; everything below is
// consumed by the reducer in reducer.go.
type Intent interface{ intent() }

type IntentSwitchPanel struct{ N int }
type IntentMoveCursor struct{ Delta int }
type IntentEnter struct{ ID int64 }
type IntentBack struct{}
type IntentAddItem struct{ Title string }
type IntentAddChildItem struct{ Title string }
type IntentRequestDelete struct{ ID int64 }
type IntentConfirmDelete struct{}
type IntentCancelDelete struct{}
type IntentRename struct {
	ID    int64
	Title string
}
type IntentSetStatus struct {
	ID     int64
	Status model.Status
}
type IntentCycleStatus struct{ ID int64 }
type IntentSetDueDate struct {
	ID  int64
	Raw string
}
type IntentClearDueDate struct{ ID int64 }
type IntentArchive struct{ ID int64 }
type IntentRecover struct{ ID int64 }
type IntentOpenSearch struct{}
type IntentUpdateQuery struct{ Query string }
type IntentOpenHelp struct{}
type IntentSave struct{}
type IntentQuit struct{}

func (IntentSwitchPanel) intent()   {}
func (IntentMoveCursor) intent()    {}
func (IntentEnter) intent()         {}
func (IntentBack) intent()          {}
func (IntentAddItem) intent()       {}
func (IntentAddChildItem) intent()  {}
func (IntentRequestDelete) intent() {}
func (IntentConfirmDelete) intent() {}
func (IntentCancelDelete) intent()  {}
func (IntentRename) intent()        {}
func (IntentSetStatus) intent()     {}
func (IntentCycleStatus) intent()   {}
func (IntentSetDueDate) intent()    {}
func (IntentClearDueDate) intent()  {}
func (IntentArchive) intent()       {}
func (IntentRecover) intent()       {}
func (IntentOpenSearch) intent()    {}
func (IntentUpdateQuery) intent()   {}
func (IntentOpenHelp) intent()      {}
func (IntentSave) intent()          {}
func (IntentQuit) intent()          {}
