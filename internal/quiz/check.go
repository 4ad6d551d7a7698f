package quiz

import (
	"strconv"
	"strings"

	"github.com/sdiallo/avicoach/internal/content"
)

// Check evaluates a raw submitted answer against a question. Malformed or
// empty input is never an error; it simply scores as incorrect.
//
// The rules differ per kind:
//   - TrueFalse: the input must parse as a boolean matching the expected
//     judgement.
//   - MultipleChoice: exact, case-sensitive match, since options are drawn
//     verbatim from the corpus.
//   - FreeText: both sides are trimmed and lowercased before comparing.
//     Internal whitespace is deliberately left alone, so "I C" does not
//     match "IC".
func Check(q content.Question, raw string) bool {
	switch q.Kind {
	case content.KindTrueFalse:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		return v == q.Truth
	case content.KindMultipleChoice:
		return raw == q.Answer
	case content.KindFreeText:
		return normalize(raw) == normalize(q.Answer)
	default:
		// Unknown kind fails closed rather than panicking.
		return false
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CorrectAnswerText returns the display form of a question's expected answer
// for feedback after a wrong submission.
func CorrectAnswerText(q content.Question) string {
	switch q.Kind {
	case content.KindTrueFalse:
		if q.Truth {
			return "True"
		}
		return "False"
	default:
		return q.Answer
	}
}
