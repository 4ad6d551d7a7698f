package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionBankWellFormed(t *testing.T) {
	bank := QuestionBank()
	require.NotEmpty(t, bank)

	for i, q := range bank {
		assert.NotEmpty(t, q.Prompt, "question %d has empty prompt", i)
		assert.NotEmpty(t, q.Topic, "question %d has empty topic", i)

		switch q.Kind {
		case KindTrueFalse:
			// Nothing beyond prompt/topic required.
		case KindMultipleChoice:
			require.GreaterOrEqual(t, len(q.Options), 2, "question %d needs at least 2 options", i)
			seen := make(map[string]bool)
			found := false
			for _, opt := range q.Options {
				assert.False(t, seen[opt], "question %d has duplicate option %q", i, opt)
				seen[opt] = true
				if opt == q.Answer {
					found = true
				}
			}
			assert.True(t, found, "question %d answer %q not among options", i, q.Answer)
		case KindFreeText:
			assert.NotEmpty(t, q.Answer, "question %d has empty expected answer", i)
		default:
			t.Errorf("question %d has unknown kind %d", i, q.Kind)
		}
	}
}

func TestQuestionBankMixesAllKinds(t *testing.T) {
	counts := make(map[Kind]int)
	for _, q := range QuestionBank() {
		counts[q.Kind]++
	}
	for _, k := range []Kind{KindTrueFalse, KindMultipleChoice, KindFreeText} {
		assert.Positive(t, counts[k], "bank has no %s questions", k)
	}
}

func TestDiagnosticCardsWellFormed(t *testing.T) {
	for i, c := range DiagnosticCards() {
		require.GreaterOrEqual(t, len(c.Options), 2, "card %d needs at least 2 options", i)
		found := false
		for _, opt := range c.Options {
			if opt == c.Answer {
				found = true
			}
		}
		assert.True(t, found, "card %d answer %q not among options", i, c.Answer)
	}
}

func TestSearchTerms(t *testing.T) {
	// Known term, case-insensitive.
	hits := SearchTerms("fcr", 10)
	require.NotEmpty(t, hits)
	assert.Equal(t, "FCR", hits[0].Term)

	// Matches inside definitions too.
	hits = SearchTerms("gumboro", 10)
	assert.NotEmpty(t, hits)

	// Empty query matches nothing.
	assert.Empty(t, SearchTerms("   ", 10))

	// Limit is respected.
	hits = SearchTerms("e", 3)
	assert.LessOrEqual(t, len(hits), 3)
}

func TestTotalLessons(t *testing.T) {
	n := 0
	for _, m := range Modules() {
		n += len(m.Lessons)
	}
	assert.Equal(t, n, TotalLessons())
	assert.Positive(t, n)
}
