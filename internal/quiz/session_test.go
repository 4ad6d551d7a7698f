package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/sdiallo/avicoach/internal/content"
)

type recordedScore struct {
	topic   string
	percent int
}

// fakeSink captures score events and optionally fails, standing in for the
// progress recorder.
type fakeSink struct {
	events []recordedScore
	err    error
}

func (f *fakeSink) RecordScore(topic string, scorePercent int) error {
	f.events = append(f.events, recordedScore{topic, scorePercent})
	return f.err
}

func fixedRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testBank(n int) []content.Question {
	bank := make([]content.Question, n)
	for i := range bank {
		bank[i] = content.Question{
			Kind:   content.KindFreeText,
			Prompt: "q",
			Answer: "yes",
		}
	}
	return bank
}

func playThrough(t *testing.T, s *Session, answers func(i int) string) Feedback {
	t.Helper()
	var last Feedback
	for i := 0; s.Phase() == PhaseInProgress; i++ {
		fb, err := s.SubmitAnswer(answers(i))
		if err != nil {
			t.Fatalf("SubmitAnswer(%d): %v", i, err)
		}
		last = fb
	}
	return last
}

func TestNewSessionEmptyBank(t *testing.T) {
	if _, err := NewSession(nil, 10, nil, fixedRand()); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("err = %v, want ErrEmptyBank", err)
	}
}

func TestNewSessionSamplesWithoutDuplicates(t *testing.T) {
	bank := make([]content.Question, 30)
	for i := range bank {
		bank[i] = content.Question{Kind: content.KindFreeText, Prompt: string(rune('a' + i)), Answer: "x"}
	}
	s, err := NewSession(bank, QuestionsPerSession, nil, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != QuestionsPerSession {
		t.Fatalf("Len() = %d, want %d", s.Len(), QuestionsPerSession)
	}
	seen := map[string]bool{}
	for _, q := range s.pool {
		if seen[q.Prompt] {
			t.Fatalf("duplicate question %q in sample", q.Prompt)
		}
		seen[q.Prompt] = true
	}
}

func TestNewSessionSmallBankUsesWholeBank(t *testing.T) {
	s, err := NewSession(testBank(4), 10, nil, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
}

func TestSessionScoringAndCompletion(t *testing.T) {
	sink := &fakeSink{}
	s, err := NewSession(testBank(4), 4, sink, fixedRand())
	if err != nil {
		t.Fatal(err)
	}

	// Two right, two wrong.
	last := playThrough(t, s, func(i int) string {
		if i < 2 {
			return "yes"
		}
		return "no"
	})

	if !last.Completed {
		t.Fatal("final feedback should be marked Completed")
	}
	if s.Phase() != PhaseCompleted {
		t.Fatalf("Phase() = %v, want PhaseCompleted", s.Phase())
	}
	if got := s.FinalScorePercent(); got != 50 {
		t.Fatalf("FinalScorePercent() = %d, want 50", got)
	}
	if last.ScorePercent != 50 {
		t.Fatalf("feedback ScorePercent = %d, want 50", last.ScorePercent)
	}

	if len(sink.events) != 1 {
		t.Fatalf("got %d score events, want exactly 1", len(sink.events))
	}
	if sink.events[0] != (recordedScore{QuizTopic, 50}) {
		t.Fatalf("event = %+v", sink.events[0])
	}
}

func TestSessionScoreRounding(t *testing.T) {
	// 1 of 3 correct rounds 33.33 down to 33; 2 of 3 rounds 66.67 up to 67.
	cases := []struct {
		correct int
		want    int
	}{
		{0, 0},
		{1, 33},
		{2, 67},
		{3, 100},
	}
	for _, c := range cases {
		s, err := NewSession(testBank(3), 3, nil, fixedRand())
		if err != nil {
			t.Fatal(err)
		}
		playThrough(t, s, func(i int) string {
			if i < c.correct {
				return "yes"
			}
			return "no"
		})
		if got := s.FinalScorePercent(); got != c.want {
			t.Errorf("%d/3 correct: score = %d, want %d", c.correct, got, c.want)
		}
	}
}

func TestSubmitAfterCompletion(t *testing.T) {
	sink := &fakeSink{}
	s, err := NewSession(testBank(2), 2, sink, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	playThrough(t, s, func(int) string { return "yes" })

	if _, err := s.SubmitAnswer("yes"); !errors.Is(err, ErrAlreadyComplete) {
		t.Fatalf("err = %v, want ErrAlreadyComplete", err)
	}
	if len(sink.events) != 1 {
		t.Fatalf("late submit must not re-emit: got %d events", len(sink.events))
	}
	if s.CorrectCount() != 2 {
		t.Fatalf("late submit must not touch state: correct = %d", s.CorrectCount())
	}
}

func TestEmptyInputScoresIncorrectNotError(t *testing.T) {
	s, err := NewSession(testBank(2), 2, nil, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	fb, err := s.SubmitAnswer("")
	if err != nil {
		t.Fatalf("empty input must not error: %v", err)
	}
	if fb.Correct {
		t.Fatal("empty input must score incorrect")
	}
	if s.Index() != 1 {
		t.Fatalf("session should advance past incorrect answer, index = %d", s.Index())
	}
}

func TestSinkFailureDoesNotBlockCompletion(t *testing.T) {
	sink := &fakeSink{err: errors.New("disk full")}
	s, err := NewSession(testBank(1), 1, sink, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	fb, err := s.SubmitAnswer("yes")
	if err != nil {
		t.Fatalf("sink failure must be swallowed: %v", err)
	}
	if !fb.Completed || fb.ScorePercent != 100 {
		t.Fatalf("feedback = %+v, want completed at 100", fb)
	}
}

func TestPresentOptionsReshuffles(t *testing.T) {
	q := content.Question{
		Kind:    content.KindMultipleChoice,
		Options: []string{"a", "b", "c", "d", "e", "f"},
		Answer:  "a",
	}
	s, err := NewSession([]content.Question{q}, 1, nil, fixedRand())
	if err != nil {
		t.Fatal(err)
	}

	distinct := map[string]bool{}
	for i := 0; i < 50; i++ {
		opts := s.PresentOptions()
		if len(opts) != len(q.Options) {
			t.Fatalf("PresentOptions() returned %d options", len(opts))
		}
		key := ""
		for _, o := range opts {
			key += o
		}
		distinct[key] = true
	}
	if len(distinct) < 2 {
		t.Error("repeated presentations never varied option order")
	}
	// The stored question must keep its original order.
	if s.pool[0].Options[0] != "a" {
		t.Error("presentation shuffle mutated the stored question")
	}
}

func TestPresentOptionsNilForNonChoice(t *testing.T) {
	s, err := NewSession(testBank(1), 1, nil, fixedRand())
	if err != nil {
		t.Fatal(err)
	}
	if opts := s.PresentOptions(); opts != nil {
		t.Fatalf("PresentOptions() = %v for a free-text question, want nil", opts)
	}
}
