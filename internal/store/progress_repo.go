package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sdiallo/avicoach/internal/progress"
)

const progressKey = "learning_record"

// ProgressRepo is the SQLite-backed progress.Repo. A missing or corrupt
// record degrades to the fresh-install default instead of failing: losing a
// score history must never lock the farmer out of the app.
type ProgressRepo struct {
	db *sql.DB
}

// ProgressRepo returns a progress repository backed by this store.
func (s *Store) ProgressRepo() *ProgressRepo {
	return &ProgressRepo{db: s.db}
}

// Load reads the learning record. Absent or undecodable rows return the
// default state; only infrastructure failures surface as errors.
func (r *ProgressRepo) Load() (progress.State, error) {
	var raw []byte
	err := r.db.QueryRow(`SELECT value FROM progress WHERE key = ?`, progressKey).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return progress.DefaultState(), nil
	case err != nil:
		return progress.State{}, fmt.Errorf("load record: %w", err)
	}

	var st progress.State
	if err := json.Unmarshal(raw, &st); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt learning record, starting fresh: %v\n", err)
		return progress.DefaultState(), nil
	}
	return st, nil
}

// Save writes the full record.
func (r *ProgressRepo) Save(st progress.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO progress (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		progressKey, raw,
	)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}
