// Package quiz holds the session state machines: the fixed-length practice
// quiz and the countdown-bound diagnostic game. Sessions are explicit values
// owned by exactly one caller; there is no package-level session state.
package quiz

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"

	"github.com/sdiallo/avicoach/internal/content"
	"github.com/sdiallo/avicoach/internal/sampler"
)

// QuestionsPerSession is the default sample size for a practice quiz.
const QuestionsPerSession = 10

// QuizTopic labels practice-quiz score events in the history.
const QuizTopic = "Practice Quiz"

var (
	// ErrNotInProgress signals a submit against a session that never started
	// or was already torn down. It marks a caller bug, not user input.
	ErrNotInProgress = errors.New("quiz: session not in progress")

	// ErrAlreadyComplete signals a submit after the terminal question.
	ErrAlreadyComplete = errors.New("quiz: session already completed")

	// ErrEmptyBank signals a session start against an empty question pool.
	ErrEmptyBank = errors.New("quiz: question bank is empty")
)

// Phase is the lifecycle position of a session.
type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseCompleted
)

// ScoreSink receives the single terminal score event of a session. The
// progress recorder implements it; tests substitute their own.
type ScoreSink interface {
	RecordScore(topic string, scorePercent int) error
}

// Feedback describes the outcome of one submitted answer.
type Feedback struct {
	Correct       bool
	CorrectAnswer string
	Explanation   string

	// Completed is true when this answer was the session's last; ScorePercent
	// is only meaningful then.
	Completed    bool
	ScorePercent int
}

// Session runs one practice quiz: a fixed random sample of mixed-kind
// questions, answered in order, scored once at the end.
type Session struct {
	id      string
	pool    []content.Question
	index   int
	correct int
	phase   Phase
	sink    ScoreSink
	rng     *rand.Rand
	score   int
}

// NewSession draws a sample of up to n questions from bank and starts the
// session. The sample is immutable once drawn and contains no duplicates.
func NewSession(bank []content.Question, n int, sink ScoreSink, rng *rand.Rand) (*Session, error) {
	if len(bank) == 0 {
		return nil, ErrEmptyBank
	}
	if rng == nil {
		rng = sampler.New()
	}
	return &Session{
		id:    uuid.New().String(),
		pool:  sampler.Sample(rng, bank, n),
		phase: PhaseInProgress,
		sink:  sink,
		rng:   rng,
	}, nil
}

// ID returns the session's unique identifier. Scheduled continuations carry
// it so a stale callback against a discarded session can be detected.
func (s *Session) ID() string { return s.id }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Len returns the number of questions in the drawn sample.
func (s *Session) Len() int { return len(s.pool) }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// CorrectCount returns the number of correct answers so far.
func (s *Session) CorrectCount() int { return s.correct }

// Current returns the active question, or nil once the session completed.
func (s *Session) Current() *content.Question {
	if s.phase != PhaseInProgress || s.index >= len(s.pool) {
		return nil
	}
	return &s.pool[s.index]
}

// PresentOptions returns a freshly shuffled copy of the current question's
// option set. Each presentation shuffles independently, so option position
// never correlates with correctness across plays.
func (s *Session) PresentOptions() []string {
	q := s.Current()
	if q == nil || q.Kind != content.KindMultipleChoice {
		return nil
	}
	return sampler.Shuffle(s.rng, q.Options)
}

// SubmitAnswer evaluates raw against the current question and advances the
// session. Empty or malformed input scores as incorrect; it is never an
// error. Submitting after completion is a caller bug and returns
// ErrAlreadyComplete without touching any state.
func (s *Session) SubmitAnswer(raw string) (Feedback, error) {
	if s.phase == PhaseCompleted {
		return Feedback{}, ErrAlreadyComplete
	}
	q := s.Current()
	if q == nil {
		return Feedback{}, ErrNotInProgress
	}

	fb := Feedback{
		Correct:       Check(*q, raw),
		CorrectAnswer: CorrectAnswerText(*q),
		Explanation:   q.Explanation,
	}
	if fb.Correct {
		s.correct++
	}
	s.index++

	if s.index == len(s.pool) {
		s.phase = PhaseCompleted
		s.score = scorePercent(s.correct, len(s.pool))
		emitScore(s.sink, QuizTopic, s.score)
		fb.Completed = true
		fb.ScorePercent = s.score
	}
	return fb, nil
}

// FinalScorePercent returns the terminal score. Only meaningful once the
// session has completed.
func (s *Session) FinalScorePercent() int { return s.score }

// Summary returns the completed session's result for display.
func (s *Session) Summary() Summary {
	return Summary{
		Topic:        QuizTopic,
		Correct:      s.correct,
		Total:        len(s.pool),
		ScorePercent: s.score,
	}
}

// emitScore sends a terminal score event. Persistence failures are logged
// and swallowed: the session result is always shown, only future durability
// is at risk.
func emitScore(sink ScoreSink, topic string, percent int) {
	if sink == nil {
		return
	}
	if err := sink.RecordScore(topic, percent); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record score: %v\n", err)
	}
}

// Summary holds a finished session's result.
type Summary struct {
	Topic        string
	Correct      int
	Total        int
	ScorePercent int
}

func scorePercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
