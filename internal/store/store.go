package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"burrow/internal/model"
)

const (
	dataFileName   = "data.json"
	CurrentVersion = 1
)

// DB is the persisted document: the id high-water mark plus the full forest
// of workspaces. Derived indexes are rebuilt on demand and never persisted.
type DB struct {
	Version int   `json:"version"`
	NextID  int64 `json:"nextId"`

	Workspaces []*model.Node `json:"workspaces"`

	idxBuilt  bool
	idxByID   map[int64]*model.Node
	idxParent map[int64]*model.Node // absent entry under an existing id = top-level
}

func NewDB() *DB {
	return &DB{Version: CurrentVersion}
}

// AllocID hands out the next process-unique id. NextID is the high-water
// mark of assigned ids; ids are never reused, even across save/load cycles.
func (db *DB) AllocID() int64 {
	db.NextID++
	return db.NextID
}

// InvalidateIndexes must be called after any structural mutation (create,
// delete). In-place field edits (rename, status, due, archived) do not
// change the id or parent maps.
func (db *DB) InvalidateIndexes() {
	db.idxBuilt = false
	db.idxByID = nil
	db.idxParent = nil
}

func (db *DB) ensureIndexes() {
	if db.idxBuilt {
		return
	}
	db.idxByID = map[int64]*model.Node{}
	db.idxParent = map[int64]*model.Node{}
	var index func(n, parent *model.Node)
	index = func(n, parent *model.Node) {
		db.idxByID[n.ID] = n
		if parent != nil {
			db.idxParent[n.ID] = parent
		}
		for _, c := range n.Children {
			index(c, n)
		}
		for _, t := range n.Tasks {
			index(t, n)
		}
	}
	for _, ws := range db.Workspaces {
		index(ws, nil)
	}
	db.idxBuilt = true
}

// FindNode looks up a node anywhere in the forest.
func (db *DB) FindNode(id int64) (*model.Node, bool) {
	db.ensureIndexes()
	n, ok := db.idxByID[id]
	return n, ok
}

// ParentOf returns the parent of id, or nil for top-level workspaces.
// The second return is false when id itself is unknown.
func (db *DB) ParentOf(id int64) (*model.Node, bool) {
	db.ensureIndexes()
	if _, ok := db.idxByID[id]; !ok {
		return nil, false
	}
	return db.idxParent[id], true
}

// Ancestors returns the parent chain of id, outermost first.
func (db *DB) Ancestors(id int64) []*model.Node {
	db.ensureIndexes()
	var chain []*model.Node
	for p := db.idxParent[id]; p != nil; p = db.idxParent[p.ID] {
		chain = append([]*model.Node{p}, chain...)
	}
	return chain
}

// HasArchivedAncestor reports whether any workspace above id carries the
// archived flag (the flag itself is not recursive).
func (db *DB) HasArchivedAncestor(id int64) bool {
	for _, a := range db.Ancestors(id) {
		if a.Archived {
			return true
		}
	}
	return false
}

// CountNodes returns the total number of entities in the forest.
func (db *DB) CountNodes() int {
	total := 0
	for _, ws := range db.Workspaces {
		total += ws.SubtreeSize()
	}
	return total
}

// ArchivedWorkspaces lists every workspace whose own archived flag is set,
// in depth-first order. Nested archived workspaces are included even when an
// ancestor is archived too: recover operates on the flagged node only.
func (db *DB) ArchivedWorkspaces() []*model.Node {
	var out []*model.Node
	var visit func(n *model.Node)
	visit = func(n *model.Node) {
		if n.Archived {
			out = append(out, n)
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, ws := range db.Workspaces {
		visit(ws)
	}
	return out
}

// Store reads and writes the document under a directory.
type Store struct {
	Dir string
}

// CorruptDataError reports a document that exists but cannot be decoded
// into the expected shape. Recovery policy (abort vs. empty forest) belongs
// to the caller.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data file %s: %v", e.Path, e.Err)
}

func (e CorruptDataError) Unwrap() error { return e.Err }

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) DataPath() string {
	return filepath.Join(s.Dir, dataFileName)
}

// Load reads the document. A missing file is not an error: it yields an
// empty forest, matching first-run behavior.
func (s Store) Load() (*DB, error) {
	b, err := os.ReadFile(s.DataPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDB(), nil
		}
		return nil, err
	}
	var db DB
	if err := json.Unmarshal(b, &db); err != nil {
		return nil, CorruptDataError{Path: s.DataPath(), Err: err}
	}
	if db.Version == 0 {
		db.Version = CurrentVersion
	}
	if db.Version != CurrentVersion {
		return nil, CorruptDataError{Path: s.DataPath(), Err: fmt.Errorf("unsupported version %d", db.Version)}
	}
	normalizeNextID(&db)
	return &db, nil
}

// normalizeNextID repairs a stale high-water mark so freshly allocated ids
// can never collide with ids already present in the forest.
func normalizeNextID(db *DB) {
	var scan func(n *model.Node)
	scan = func(n *model.Node) {
		if n.ID > db.NextID {
			db.NextID = n.ID
		}
		for _, c := range n.Children {
			scan(c)
		}
		for _, t := range n.Tasks {
			scan(t)
		}
	}
	for _, ws := range db.Workspaces {
		scan(ws)
	}
}

// Save writes the full document atomically: the bytes land in a temp file
// in the same directory and replace the target with a rename, so a reader
// never observes a truncated document.
func (s Store) Save(db *DB) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	if db.Version == 0 {
		db.Version = CurrentVersion
	}
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(s.Dir, "data-*.json.tmp", s.DataPath(), b, 0o644)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
