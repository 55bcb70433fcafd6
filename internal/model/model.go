package model

import "time"

// Kind discriminates workspaces from tasks. Both share the same node shape;
// a node's kind decides which children it accepts (see Node).
type Kind string

const (
	KindWorkspace Kind = "workspace"
	KindTask      Kind = "task"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDeprecated Status = "deprecated"
)

// StatusCycle is the order used when cycling a task's status in the TUI.
var StatusCycle = []Status{StatusTodo, StatusInProgress, StatusCompleted, StatusDeprecated}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusDeprecated:
		return true
	}
	return false
}

// Next returns the status that follows s in StatusCycle (wrapping).
func (s Status) Next() Status {
	for i, st := range StatusCycle {
		if st == s {
			return StatusCycle[(i+1)%len(StatusCycle)]
		}
	}
	return StatusTodo
}

// Node is a single workspace or task.
//
// Workspaces nest sub-workspaces in Children and hold their top-level tasks
// in Tasks. Tasks nest subtasks in Children and never use Tasks.
//
// IDs are process-unique and never reused; the high-water mark lives in the
// persisted document alongside the forest (store.DB.NextID).
type Node struct {
	ID    int64  `json:"id"`
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`

	// Status is set for tasks only.
	Status Status `json:"status,omitempty"`

	// Due is the task's optional due date in YYYY-MM-DD form (tasks only).
	Due string `json:"due,omitempty"`

	// Archived is set for workspaces only. The flag is not recursive: a
	// workspace under an archived ancestor does not carry it; visibility
	// follows the ancestor chain.
	Archived bool `json:"archived,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	Children []*Node `json:"children,omitempty"`
	Tasks    []*Node `json:"tasks,omitempty"`
}

// SubtreeSize counts n and every node below it (both Children and Tasks).
func (n *Node) SubtreeSize() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.SubtreeSize()
	}
	for _, t := range n.Tasks {
		total += t.SubtreeSize()
	}
	return total
}
