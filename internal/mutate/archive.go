package mutate

import (
	"burrow/internal/model"
	"burrow/internal/store"
)

type ArchiveResult struct {
	Node    *model.Node
	Changed bool
}

// Archive sets the archived flag on a workspace. Archiving an already
// archived workspace is a no-op, not an error. Descendants keep their ids,
// statuses, and their own (unset) archived flags.
func Archive(db *store.DB, id int64) (ArchiveResult, error) {
	return setArchived(db, id, true)
}

// Recover clears the archived flag, restoring the workspace to the active
// set with its subtree untouched. Recovering an active workspace is a no-op.
func Recover(db *store.DB, id int64) (ArchiveResult, error) {
	return setArchived(db, id, false)
}

func setArchived(db *store.DB, id int64, archived bool) (ArchiveResult, error) {
	n, ok := db.FindNode(id)
	if !ok {
		return ArchiveResult{}, NotFoundError{ID: id}
	}
	if n.Kind != model.KindWorkspace {
		return ArchiveResult{}, NotAWorkspaceError{ID: id}
	}
	if n.Archived == archived {
		return ArchiveResult{Node: n, Changed: false}, nil
	}
	n.Archived = archived
	return ArchiveResult{Node: n, Changed: true}, nil
}
