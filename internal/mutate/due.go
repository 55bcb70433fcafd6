package mutate

import (
	"time"

	"burrow/internal/dates"
	"burrow/internal/model"
	"burrow/internal/store"
)

// SetDueDate resolves raw through the date grammar and stores the result on
// the task. A parse failure leaves the prior due date unchanged; the caller
// sees dates.ErrInvalidDate via errors.Is.
func SetDueDate(db *store.DB, id int64, raw string, now time.Time) (time.Time, error) {
	n, ok := db.FindNode(id)
	if !ok {
		return time.Time{}, NotFoundError{ID: id}
	}
	if n.Kind != model.KindTask {
		return time.Time{}, NotATaskError{ID: id}
	}
	due, err := dates.Resolve(raw, now)
	if err != nil {
		return time.Time{}, err
	}
	n.Due = dates.Format(due)
	return due, nil
}

// ClearDueDate removes a task's due date.
func ClearDueDate(db *store.DB, id int64) error {
	n, ok := db.FindNode(id)
	if !ok {
		return NotFoundError{ID: id}
	}
	if n.Kind != model.KindTask {
		return NotATaskError{ID: id}
	}
	n.Due = ""
	return nil
}
