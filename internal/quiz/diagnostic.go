package quiz

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/sdiallo/avicoach/internal/content"
	"github.com/sdiallo/avicoach/internal/sampler"
)

// GameSeconds is the default countdown for a diagnostic game.
const GameSeconds = 30

// PointsPerDiagnosis is the fixed score increment per correct diagnosis.
const PointsPerDiagnosis = 10

// GameTopic labels diagnostic-game score events in the history.
const GameTopic = "Chrono Diagnostic"

// DiagnosticSession is the timed variant of a quiz: a shuffled pool of
// symptom cards played against a countdown. It terminates on whichever comes
// first, countdown expiry or pool exhaustion, and termination is idempotent:
// the timer tick and the last answer may fire in the same instant, but only
// one score event is ever emitted.
type DiagnosticSession struct {
	id        string
	pool      []content.DiagnosticCard
	index     int
	points    int
	remaining int
	active    bool
	sink      ScoreSink
	rng       *rand.Rand
	score     int
}

// NewDiagnosticSession shuffles the cards and starts the countdown at
// seconds.
func NewDiagnosticSession(cards []content.DiagnosticCard, seconds int, sink ScoreSink, rng *rand.Rand) (*DiagnosticSession, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyBank
	}
	if seconds <= 0 {
		seconds = GameSeconds
	}
	if rng == nil {
		rng = sampler.New()
	}
	return &DiagnosticSession{
		id:        uuid.New().String(),
		pool:      sampler.Shuffle(rng, cards),
		remaining: seconds,
		active:    true,
		sink:      sink,
		rng:       rng,
	}, nil
}

// ID returns the session's unique identifier.
func (d *DiagnosticSession) ID() string { return d.id }

// Active reports whether the session is still running.
func (d *DiagnosticSession) Active() bool { return d.active }

// Remaining returns the seconds left on the countdown.
func (d *DiagnosticSession) Remaining() int { return d.remaining }

// Points returns the raw points accumulated so far.
func (d *DiagnosticSession) Points() int { return d.points }

// MaxPoints returns the highest attainable raw score for the drawn pool.
func (d *DiagnosticSession) MaxPoints() int { return len(d.pool) * PointsPerDiagnosis }

// Current returns the card being diagnosed, or nil once terminated or
// exhausted.
func (d *DiagnosticSession) Current() *content.DiagnosticCard {
	if !d.active || d.index >= len(d.pool) {
		return nil
	}
	return &d.pool[d.index]
}

// PresentOptions returns a freshly shuffled copy of the current card's
// option set.
func (d *DiagnosticSession) PresentOptions() []string {
	c := d.Current()
	if c == nil {
		return nil
	}
	return sampler.Shuffle(d.rng, c.Options)
}

// Tick advances the countdown by one second. It returns false once the
// session has terminated, either by this tick or earlier.
func (d *DiagnosticSession) Tick() bool {
	if !d.active {
		return false
	}
	d.remaining--
	if d.remaining <= 0 {
		d.remaining = 0
		d.terminate()
		return false
	}
	return true
}

// Submit evaluates a chosen diagnosis against the current card. It returns
// ErrAlreadyComplete after termination, which marks a caller bug: the tick
// guard should have stopped routing input here.
func (d *DiagnosticSession) Submit(choice string) (Feedback, error) {
	c := d.Current()
	if c == nil {
		if !d.active {
			return Feedback{}, ErrAlreadyComplete
		}
		return Feedback{}, ErrNotInProgress
	}

	fb := Feedback{
		Correct:       choice == c.Answer,
		CorrectAnswer: c.Answer,
	}
	if fb.Correct {
		d.points += PointsPerDiagnosis
	}
	d.index++

	if d.index == len(d.pool) {
		d.terminate()
		fb.Completed = true
		fb.ScorePercent = d.score
	}
	return fb, nil
}

// FinalScorePercent returns the terminal percentage, meaningful once
// terminated.
func (d *DiagnosticSession) FinalScorePercent() int { return d.score }

// Summary returns the finished game's result for display.
func (d *DiagnosticSession) Summary() Summary {
	return Summary{
		Topic:        GameTopic,
		Correct:      d.points / PointsPerDiagnosis,
		Total:        len(d.pool),
		ScorePercent: d.score,
	}
}

// terminate ends the session and emits the single score event. Safe to call
// from both the countdown path and the exhaustion path; only the first call
// has any effect.
func (d *DiagnosticSession) terminate() {
	if !d.active {
		return
	}
	d.active = false

	// Denominator is the full pool, so unreached cards count against the
	// score when time expires early.
	max := d.MaxPoints()
	if max > 0 {
		d.score = int(math.Round(float64(d.points) / float64(max) * 100))
	}
	emitScore(d.sink, GameTopic, d.score)
}
