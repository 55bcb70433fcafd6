package mutate

import (
	"burrow/internal/model"
	"burrow/internal/store"
)

// SetStatus overwrites a task's status. Any status is reachable from any
// other, including itself; children are untouched.
func SetStatus(db *store.DB, id int64, status model.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	n, ok := db.FindNode(id)
	if !ok {
		return NotFoundError{ID: id}
	}
	if n.Kind != model.KindTask {
		return NotATaskError{ID: id}
	}
	n.Status = status
	return nil
}

// CycleStatus advances a task's status one step along model.StatusCycle.
func CycleStatus(db *store.DB, id int64) (model.Status, error) {
	n, ok := db.FindNode(id)
	if !ok {
		return "", NotFoundError{ID: id}
	}
	if n.Kind != model.KindTask {
		return "", NotATaskError{ID: id}
	}
	n.Status = n.Status.Next()
	return n.Status, nil
}
