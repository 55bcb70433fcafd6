package mutate

import (
	"strings"
	"time"

	"burrow/internal/model"
	"burrow/internal/store"
)

// RootParent creates under the top-level forest (workspaces only).
const RootParent int64 = 0

// Create appends a new node under parentID and returns it. Validation runs
// before any state changes, so a failed create leaves the forest and the id
// counter untouched.
//
// Accepted parent/kind pairs: root/workspace, workspace/workspace,
// workspace/task, task/task. Everything else is an invalid parent.
func Create(db *store.DB, parentID int64, kind model.Kind, title string) (*model.Node, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if kind != model.KindWorkspace && kind != model.KindTask {
		return nil, InvalidParentError{ParentID: parentID, Reason: "unknown kind"}
	}

	var parent *model.Node
	if parentID != RootParent {
		p, ok := db.FindNode(parentID)
		if !ok {
			return nil, InvalidParentError{ParentID: parentID, Reason: "no such entity"}
		}
		parent = p
	}

	switch {
	case parent == nil && kind != model.KindWorkspace:
		return nil, InvalidParentError{ParentID: parentID, Reason: "only workspaces at top level"}
	case parent != nil && parent.Kind == model.KindTask && kind == model.KindWorkspace:
		return nil, InvalidParentError{ParentID: parentID, Reason: "tasks nest only tasks"}
	}

	n := &model.Node{
		ID:        db.AllocID(),
		Kind:      kind,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if kind == model.KindTask {
		n.Status = model.StatusTodo
	}

	switch {
	case parent == nil:
		db.Workspaces = append(db.Workspaces, n)
	case parent.Kind == model.KindWorkspace && kind == model.KindTask:
		parent.Tasks = append(parent.Tasks, n)
	default:
		parent.Children = append(parent.Children, n)
	}
	db.InvalidateIndexes()
	return n, nil
}

// Rename replaces a node's title. Empty input is rejected without touching
// the node.
func Rename(db *store.DB, id int64, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return ErrEmptyTitle
	}
	n, ok := db.FindNode(id)
	if !ok {
		return NotFoundError{ID: id}
	}
	n.Title = newTitle
	return nil
}
