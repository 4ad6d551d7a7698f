package store

import (
	"testing"
	"time"

	"github.com/sdiallo/avicoach/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='progress'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "progress" {
		t.Errorf("table name = %q, want 'progress'", name)
	}
}

func TestProgressLoadEmptyReturnsDefault(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	st, err := repo.Load()
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if st.LessonsCompleted != 0 || len(st.ScoreHistory) != 0 {
		t.Fatalf("state = %+v, want fresh default", st)
	}
	if st.TotalLessonsTarget != progress.DefaultState().TotalLessonsTarget {
		t.Errorf("target = %d", st.TotalLessonsTarget)
	}
}

func TestProgressSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	want := progress.State{
		TotalLessonsTarget: 500,
		LessonsCompleted:   12,
		ScoreHistory: []progress.ScoreEvent{
			{Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), Topic: "Practice Quiz", ScorePercent: 80},
		},
	}
	if err := repo.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LessonsCompleted != 12 || got.TotalLessonsTarget != 500 {
		t.Errorf("state = %+v", got)
	}
	if len(got.ScoreHistory) != 1 || got.ScoreHistory[0].ScorePercent != 80 {
		t.Errorf("history = %+v", got.ScoreHistory)
	}
}

func TestProgressSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	for i := 1; i <= 3; i++ {
		if err := repo.Save(progress.State{TotalLessonsTarget: 500, LessonsCompleted: i}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LessonsCompleted != 3 {
		t.Errorf("LessonsCompleted = %d, want 3", got.LessonsCompleted)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM progress").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

func TestProgressCorruptRecordDegradesToDefault(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	_, err := s.DB().Exec(
		`INSERT INTO progress (key, value) VALUES (?, ?)`,
		progressKey, []byte("{not json"),
	)
	if err != nil {
		t.Fatalf("plant corrupt row: %v", err)
	}

	st, err := repo.Load()
	if err != nil {
		t.Fatalf("load corrupt: %v", err)
	}
	if st.LessonsCompleted != 0 || len(st.ScoreHistory) != 0 {
		t.Fatalf("state = %+v, want fresh default", st)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	want := t.TempDir() + "/custom/avi.db"
	t.Setenv("AVICOACH_DB", want)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p != want {
		t.Errorf("path = %q, want %q", p, want)
	}
}
