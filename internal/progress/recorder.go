package progress

import (
	"fmt"
	"time"
)

// Recorder is the single mutation point for the learning record. Every write
// goes through to the repo immediately, so a crash loses at most the event in
// flight.
type Recorder struct {
	repo  Repo
	state State
	now   func() time.Time
}

// NewRecorder loads the current record from repo. A repo that cannot produce
// a state fails the whole constructor; degraded repos are expected to return
// the default state instead of an error.
func NewRecorder(repo Repo) (*Recorder, error) {
	st, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if st.TotalLessonsTarget <= 0 {
		st.TotalLessonsTarget = DefaultState().TotalLessonsTarget
	}
	return &Recorder{repo: repo, state: st, now: time.Now}, nil
}

// State returns a copy of the current record. The history slice is cloned so
// callers cannot mutate the recorder's copy.
func (r *Recorder) State() State {
	st := r.state
	st.ScoreHistory = append([]ScoreEvent(nil), r.state.ScoreHistory...)
	return st
}

// RecordLessonViewed bumps the completed-lesson counter. The counter is
// monotonic and capped at the target: re-reading a lesson past the cap keeps
// the rate at 100%, never beyond.
func (r *Recorder) RecordLessonViewed() error {
	if r.state.LessonsCompleted >= r.state.TotalLessonsTarget {
		return nil
	}
	r.state.LessonsCompleted++
	return r.repo.Save(r.state)
}

// RecordScore appends one terminal score event and persists. It implements
// the quiz package's ScoreSink.
func (r *Recorder) RecordScore(topic string, scorePercent int) error {
	r.state.ScoreHistory = append(r.state.ScoreHistory, ScoreEvent{
		Timestamp:    r.now(),
		Topic:        topic,
		ScorePercent: scorePercent,
	})
	return r.repo.Save(r.state)
}

// Reset wipes the record back to the fresh-install state.
func (r *Recorder) Reset() error {
	r.state = DefaultState()
	return r.repo.Save(r.state)
}
