package mutate

import (
	"burrow/internal/model"
	"burrow/internal/store"
)

// Delete removes id and its whole subtree in one step and returns the
// severed subtree (callers use it for confirmation summaries). Any cursor
// referencing a removed id is the navigation layer's problem; the forest
// itself never holds orphans.
func Delete(db *store.DB, id int64) (*model.Node, error) {
	n, ok := db.FindNode(id)
	if !ok {
		return nil, NotFoundError{ID: id}
	}
	parent, _ := db.ParentOf(id)
	if parent == nil {
		db.Workspaces = removeNode(db.Workspaces, id)
	} else {
		parent.Children = removeNode(parent.Children, id)
		parent.Tasks = removeNode(parent.Tasks, id)
	}
	db.InvalidateIndexes()
	return n, nil
}

func removeNode(nodes []*model.Node, id int64) []*model.Node {
	for i, n := range nodes {
		if n.ID == id {
			return append(nodes[:i], nodes[i+1:]...)
		}
	}
	return nodes
}
