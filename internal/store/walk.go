package store

import "burrow/internal/model"

// Entry is one row of a depth-first traversal: the node, its depth, and its
// parent chain (outermost first). Parents is shared between calls; callers
// that retain it must copy.
type Entry struct {
	Node    *model.Node
	Depth   int
	Parents []*model.Node
}

// ArchivedPolicy decides how the active traversal treats the subtree of an
// archived workspace (the flag is only set on the top archived node).
type ArchivedPolicy int

const (
	// ArchivedHideSubtree prunes the whole subtree of an archived workspace.
	ArchivedHideSubtree ArchivedPolicy = iota
	// ArchivedShowDescendants skips the archived node itself but keeps
	// walking into its children at the same depth.
	ArchivedShowDescendants
)

// WalkOptions shape a traversal. The zero value visits everything.
type WalkOptions struct {
	// SkipArchived applies ArchivedPolicy to archived workspaces.
	SkipArchived bool
	Policy       ArchivedPolicy
	// SkipTasks restricts the walk to workspace nodes.
	SkipTasks bool
}

// WalkNodes traverses roots depth-first, visiting each node's sub-workspaces
// before its tasks. fn returning false stops the traversal.
func WalkNodes(roots []*model.Node, opts WalkOptions, fn func(Entry) bool) {
	parents := make([]*model.Node, 0, 8)
	var walk func(n *model.Node, depth int) bool
	walk = func(n *model.Node, depth int) bool {
		visitSelf := true
		if n.Kind == model.KindWorkspace && n.Archived && opts.SkipArchived {
			if opts.Policy == ArchivedHideSubtree {
				return true
			}
			visitSelf = false
			depth-- // children take the archived node's place
		}
		if visitSelf {
			if !fn(Entry{Node: n, Depth: depth, Parents: parents}) {
				return false
			}
			parents = append(parents, n)
		}
		for _, c := range n.Children {
			if !walk(c, depth+1) {
				return false
			}
		}
		if !opts.SkipTasks {
			for _, t := range n.Tasks {
				if !walk(t, depth+1) {
					return false
				}
			}
		}
		if visitSelf {
			parents = parents[:len(parents)-1]
		}
		return true
	}
	for _, r := range roots {
		if !walk(r, 0) {
			return
		}
	}
}

// Walk traverses the whole forest.
func (db *DB) Walk(opts WalkOptions, fn func(Entry) bool) {
	WalkNodes(db.Workspaces, opts, fn)
}

// Collect runs a traversal eagerly into a slice, copying each parent chain
// so entries stay valid after the walk.
func Collect(roots []*model.Node, opts WalkOptions) []Entry {
	var out []Entry
	WalkNodes(roots, opts, func(e Entry) bool {
		e.Parents = append([]*model.Node(nil), e.Parents...)
		out = append(out, e)
		return true
	})
	return out
}
