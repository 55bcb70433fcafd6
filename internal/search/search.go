// Package search produces filtered views of the forest for display.
package search

import (
	"strings"

	"burrow/internal/model"
	"burrow/internal/store"
)

// Filter walks roots depth-first and keeps every entity whose title matches
// the query, plus the ancestor chain above any match (so a deep hit stays
// visible in context). Matching is a case-insensitive substring test. An
// empty query is the identity: the full traversal, same order, same members.
//
// The result is recomputed from scratch on every call; trees are small
// enough that caching would not pay for itself.
func Filter(roots []*model.Node, query string, opts store.WalkOptions) []store.Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	entries := store.Collect(roots, opts)
	if query == "" {
		return entries
	}

	// A direct hit keeps the entity and its whole ancestor chain. Only
	// entities visible under opts count: a match inside a pruned archived
	// subtree does not resurrect its ancestors.
	keep := map[*model.Node]bool{}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Node.Title), query) {
			keep[e.Node] = true
			for _, p := range e.Parents {
				keep[p] = true
			}
		}
	}

	out := entries[:0]
	for _, e := range entries {
		if keep[e.Node] {
			out = append(out, e)
		}
	}
	return out
}
