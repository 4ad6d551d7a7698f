package progress

import (
	"math"
	"sort"
)

// Stats are the aggregates shown on the dashboard. Always derived, never
// stored.
type Stats struct {
	LessonsCompleted   int
	TotalLessonsTarget int
	CompletionRate     int // percent, rounded
	AverageScore       int // percent, rounded mean; 0 with no history
	PassCount          int // number of completed quizzes and games
}

// Compute derives the aggregates from a record.
func Compute(st State) Stats {
	s := Stats{
		LessonsCompleted:   st.LessonsCompleted,
		TotalLessonsTarget: st.TotalLessonsTarget,
		PassCount:          len(st.ScoreHistory),
	}
	if st.TotalLessonsTarget > 0 {
		s.CompletionRate = int(math.Round(float64(st.LessonsCompleted) / float64(st.TotalLessonsTarget) * 100))
	}
	if len(st.ScoreHistory) > 0 {
		sum := 0
		for _, ev := range st.ScoreHistory {
			sum += ev.ScorePercent
		}
		s.AverageScore = int(math.Round(float64(sum) / float64(len(st.ScoreHistory))))
	}
	return s
}

// RecentHistory returns up to limit events, newest first. The sort is stable
// so same-timestamp events keep their insertion order.
func RecentHistory(st State, limit int) []ScoreEvent {
	events := append([]ScoreEvent(nil), st.ScoreHistory...)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}
