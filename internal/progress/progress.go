// Package progress holds the farmer's learning record: lessons viewed and
// the full quiz score history. Statistics are never stored; they are
// recomputed from the history on every read, so the two can never drift
// apart.
package progress

import (
	"time"

	"github.com/sdiallo/avicoach/internal/content"
)

// ScoreEvent is one terminal quiz or game result.
type ScoreEvent struct {
	Timestamp    time.Time `json:"timestamp"`
	Topic        string    `json:"topic"`
	ScorePercent int       `json:"scorePercent"`
}

// State is the persisted learning record. It is a plain value; the Recorder
// owns mutation and the Repo owns durability.
type State struct {
	TotalLessonsTarget int          `json:"totalLessonsTarget"`
	LessonsCompleted   int          `json:"lessonsCompleted"`
	ScoreHistory       []ScoreEvent `json:"scoreHistory"`
}

// DefaultState returns the fresh-install record.
func DefaultState() State {
	return State{TotalLessonsTarget: content.TotalLessons()}
}

// Repo loads and saves the learning record. The SQLite-backed implementation
// lives in the store package; tests use an in-memory one.
type Repo interface {
	Load() (State, error)
	Save(State) error
}
