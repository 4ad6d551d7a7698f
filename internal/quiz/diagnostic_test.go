package quiz

import (
	"errors"
	"testing"

	"github.com/sdiallo/avicoach/internal/content"
)

func testCards(n int) []content.DiagnosticCard {
	cards := make([]content.DiagnosticCard, n)
	for i := range cards {
		cards[i] = content.DiagnosticCard{
			Symptom: "s",
			Answer:  "right",
			Options: []string{"right", "wrong", "also wrong"},
		}
	}
	return cards
}

func TestNewDiagnosticSessionEmptyPool(t *testing.T) {
	if _, err := NewDiagnosticSession(nil, 30, nil, fixedRand()); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("err = %v, want ErrEmptyBank", err)
	}
}

func TestDiagnosticExhaustionTerminates(t *testing.T) {
	sink := &fakeSink{}
	d, err := NewDiagnosticSession(testCards(3), 30, sink, fixedRand())
	if err != nil {
		t.Fatal(err)
	}

	var last Feedback
	for d.Active() {
		last, err = d.Submit("right")
		if err != nil {
			t.Fatal(err)
		}
	}

	if !last.Completed {
		t.Fatal("final feedback should be marked Completed")
	}
	if got := d.FinalScorePercent(); got != 100 {
		t.Fatalf("FinalScorePercent() = %d, want 100", got)
	}
	if d.Points() != 3*PointsPerDiagnosis {
		t.Fatalf("Points() = %d", d.Points())
	}
	if len(sink.events) != 1 {
		t.Fatalf("got %d score events, want exactly 1", len(sink.events))
	}
	if sink.events[0] != (recordedScore{GameTopic, 100}) {
		t.Fatalf("event = %+v", sink.events[0])
	}
}

func TestDiagnosticCountdownTerminates(t *testing.T) {
	sink := &fakeSink{}
	d, err := NewDiagnosticSession(testCards(4), 3, sink, fixedRand())
	if err != nil {
		t.Fatal(err)
	}

	// One correct diagnosis, then the clock runs out.
	if _, err := d.Submit("right"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		d.Tick()
	}

	if d.Active() {
		t.Fatal("session should have terminated at zero")
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", d.Remaining())
	}
	// 10 of a possible 40 points: unreached cards count against the score.
	if got := d.FinalScorePercent(); got != 25 {
		t.Fatalf("FinalScorePercent() = %d, want 25", got)
	}
	if len(sink.events) != 1 {
		t.Fatalf("got %d score events, want exactly 1", len(sink.events))
	}
}

func TestDiagnosticTerminationIsIdempotent(t *testing.T) {
	sink := &fakeSink{}
	d, err := NewDiagnosticSession(testCards(2), 1, sink, fixedRand())
	if err != nil {
		t.Fatal(err)
	}

	// Expire the clock, then keep ticking and submitting past the end.
	d.Tick()
	d.Tick()
	d.Tick()
	if _, err := d.Submit("right"); !errors.Is(err, ErrAlreadyComplete) {
		t.Fatalf("err = %v, want ErrAlreadyComplete", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("got %d score events, want exactly 1", len(sink.events))
	}
}

func TestDiagnosticWrongAnswerScoresZeroPoints(t *testing.T) {
	d, err := NewDiagnosticSession(testCards(2), 30, nil, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	fb, err := d.Submit("wrong")
	if err != nil {
		t.Fatal(err)
	}
	if fb.Correct {
		t.Fatal("wrong diagnosis marked correct")
	}
	if fb.CorrectAnswer != "right" {
		t.Fatalf("CorrectAnswer = %q", fb.CorrectAnswer)
	}
	if d.Points() != 0 {
		t.Fatalf("Points() = %d, want 0", d.Points())
	}
}

func TestDiagnosticTickReturnsFalseOnceTerminated(t *testing.T) {
	d, err := NewDiagnosticSession(testCards(1), 2, nil, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	if !d.Tick() {
		t.Fatal("first tick should keep the session alive")
	}
	if d.Tick() {
		t.Fatal("second tick should terminate")
	}
	if d.Tick() {
		t.Fatal("ticks after termination must report false")
	}
}

func TestDiagnosticSummary(t *testing.T) {
	d, err := NewDiagnosticSession(testCards(2), 30, nil, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	d.Submit("right")
	d.Submit("wrong")

	got := d.Summary()
	want := Summary{Topic: GameTopic, Correct: 1, Total: 2, ScorePercent: 50}
	if got != want {
		t.Fatalf("Summary() = %+v, want %+v", got, want)
	}
}

func TestDiagnosticPresentOptions(t *testing.T) {
	d, err := NewDiagnosticSession(testCards(1), 30, nil, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	opts := d.PresentOptions()
	if len(opts) != 3 {
		t.Fatalf("PresentOptions() returned %d options", len(opts))
	}
	d.Submit("right")
	if opts := d.PresentOptions(); opts != nil {
		t.Fatalf("PresentOptions() after termination = %v, want nil", opts)
	}
}
