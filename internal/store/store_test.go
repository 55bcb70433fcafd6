package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"burrow/internal/model"
)

func sampleDB() *DB {
	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	return &DB{
		Version: CurrentVersion,
		NextID:  6,
		Workspaces: []*model.Node{
			{
				ID: 1, Kind: model.KindWorkspace, Title: "Q3 Planning", CreatedAt: now,
				Children: []*model.Node{
					{ID: 2, Kind: model.KindWorkspace, Title: "Subteam", Archived: true, CreatedAt: now},
				},
				Tasks: []*model.Node{
					{
						ID: 3, Kind: model.KindTask, Title: "Write report",
						Status: model.StatusInProgress, Due: "2025-08-19", CreatedAt: now,
						Children: []*model.Node{
							{ID: 4, Kind: model.KindTask, Title: "Draft outline", Status: model.StatusCompleted, CreatedAt: now},
						},
					},
				},
			},
			{ID: 5, Kind: model.KindWorkspace, Title: "Home", CreatedAt: now},
			{ID: 6, Kind: model.KindWorkspace, Title: "Old stuff", Archived: true, CreatedAt: now},
		},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	db := sampleDB()
	if err := s.Save(db); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.NextID != db.NextID {
		t.Fatalf("expected nextId %d; got %d", db.NextID, loaded.NextID)
	}
	if !reflect.DeepEqual(db.Workspaces, loaded.Workspaces) {
		t.Fatalf("forest did not round-trip")
	}
}

func TestLoad_MissingFileYieldsEmptyForest(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	db, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(db.Workspaces) != 0 || db.NextID != 0 {
		t.Fatalf("expected empty forest; got %d workspaces, nextId %d", len(db.Workspaces), db.NextID)
	}
}

func TestLoad_CorruptData(t *testing.T) {
	dir := t.TempDir()
	s := Store{Dir: dir}
	if err := os.WriteFile(s.DataPath(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := s.Load()
	var cde CorruptDataError
	if !errors.As(err, &cde) {
		t.Fatalf("expected CorruptDataError; got %v", err)
	}
}

func TestLoad_UnsupportedVersionIsCorrupt(t *testing.T) {
	dir := t.TempDir()
	s := Store{Dir: dir}
	if err := os.WriteFile(s.DataPath(), []byte(`{"version": 99, "workspaces": []}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var cde CorruptDataError
	if _, err := s.Load(); !errors.As(err, &cde) {
		t.Fatalf("expected CorruptDataError; got %v", err)
	}
}

func TestLoad_RepairsStaleHighWaterMark(t *testing.T) {
	dir := t.TempDir()
	s := Store{Dir: dir}
	doc := `{"version":1,"nextId":1,"workspaces":[{"id":7,"kind":"workspace","title":"ws","createdAt":"2025-07-01T12:00:00Z"}]}`
	if err := os.WriteFile(s.DataPath(), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	db, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if id := db.AllocID(); id <= 7 {
		t.Fatalf("allocated id %d collides with existing ids", id)
	}
}

func TestSave_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	s := Store{Dir: dir}
	if err := s.Save(sampleDB()); err != nil {
		t.Fatalf("save: %v", err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
}

func TestFindNodeAndParents(t *testing.T) {
	db := sampleDB()
	n, ok := db.FindNode(4)
	if !ok || n.Title != "Draft outline" {
		t.Fatalf("FindNode(4): got %v, %v", n, ok)
	}
	p, ok := db.ParentOf(4)
	if !ok || p == nil || p.ID != 3 {
		t.Fatalf("ParentOf(4): got %v, %v", p, ok)
	}
	p, ok = db.ParentOf(1)
	if !ok || p != nil {
		t.Fatalf("ParentOf(1): expected top-level; got %v, %v", p, ok)
	}
	if _, ok := db.ParentOf(99); ok {
		t.Fatalf("ParentOf(99): expected miss")
	}

	chain := db.Ancestors(4)
	if len(chain) != 2 || chain[0].ID != 1 || chain[1].ID != 3 {
		t.Fatalf("Ancestors(4): got %v", chain)
	}
}

func TestWalk_Order(t *testing.T) {
	db := sampleDB()
	var ids []int64
	db.Walk(WalkOptions{}, func(e Entry) bool {
		ids = append(ids, e.Node.ID)
		return true
	})
	want := []int64{1, 2, 3, 4, 5, 6}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected %v; got %v", want, ids)
	}
}

func TestWalk_HideArchivedSubtree(t *testing.T) {
	db := sampleDB()
	var ids []int64
	db.Walk(WalkOptions{SkipArchived: true, Policy: ArchivedHideSubtree}, func(e Entry) bool {
		ids = append(ids, e.Node.ID)
		return true
	})
	want := []int64{1, 3, 4, 5}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected %v; got %v", want, ids)
	}
}

func TestWalk_Depths(t *testing.T) {
	db := sampleDB()
	depths := map[int64]int{}
	db.Walk(WalkOptions{}, func(e Entry) bool {
		depths[e.Node.ID] = e.Depth
		return true
	})
	want := map[int64]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 0, 6: 0}
	if !reflect.DeepEqual(depths, want) {
		t.Fatalf("expected %v; got %v", want, depths)
	}
}

func TestArchivedWorkspaces(t *testing.T) {
	db := sampleDB()
	got := db.ArchivedWorkspaces()
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 6 {
		t.Fatalf("expected archived [2 6]; got %v", got)
	}
}

func TestCountNodes(t *testing.T) {
	db := sampleDB()
	if got := db.CountNodes(); got != 6 {
		t.Fatalf("expected 6; got %d", got)
	}
}
