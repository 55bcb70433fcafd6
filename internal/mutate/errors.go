package mutate

import (
	"errors"
	"fmt"
)

var ErrEmptyTitle = errors.New("empty title")
var ErrInvalidStatus = errors.New("invalid status")

type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("entity not found: %d", e.ID)
}

type InvalidParentError struct {
	ParentID int64
	Reason   string
}

func (e InvalidParentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid parent %d: %s", e.ParentID, e.Reason)
	}
	return fmt.Sprintf("invalid parent: %d", e.ParentID)
}

type NotATaskError struct {
	ID int64
}

func (e NotATaskError) Error() string {
	return fmt.Sprintf("not a task: %d", e.ID)
}

type NotAWorkspaceError struct {
	ID int64
}

func (e NotAWorkspaceError) Error() string {
	return fmt.Sprintf("not a workspace: %d", e.ID)
}
