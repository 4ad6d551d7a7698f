// Package content is the static read-only corpus the rest of the app draws
// from: lesson modules, disease reference cards, dictionary terms,
// finance/marketing concepts, the mixed question bank, diagnostic cards and
// calendar reminders. Everything here is immutable for the process lifetime.
package content

// Kind tags the shape of a question. It is a closed set: answer evaluation
// and rendering switch exhaustively over it.
type Kind int

const (
	// KindTrueFalse is a statement judged true or false.
	KindTrueFalse Kind = iota
	// KindMultipleChoice has a fixed option set with exactly one correct option.
	KindMultipleChoice
	// KindFreeText expects a short typed answer, compared leniently.
	KindFreeText
)

// String returns a short label for the kind, used in question headers.
func (k Kind) String() string {
	switch k {
	case KindTrueFalse:
		return "True/False"
	case KindMultipleChoice:
		return "Multiple Choice"
	case KindFreeText:
		return "Free Answer"
	default:
		return "Unknown"
	}
}

// Question is one entry in the question bank. Which fields are meaningful
// depends on Kind:
//
//   - KindTrueFalse: Truth holds the expected judgement, Explanation is
//     optional feedback shown on a wrong answer.
//   - KindMultipleChoice: Options holds the verbatim option set (len >= 2,
//     unique) and Answer must equal one of them.
//   - KindFreeText: Answer holds the expected text, compared after trimming
//     and lowercasing.
//
// Topic is a display and history grouping label only; it never influences
// scoring.
type Question struct {
	Kind        Kind
	Prompt      string
	Topic       string
	Truth       bool
	Explanation string
	Options     []string
	Answer      string
}

// Lesson is a single lesson within a module.
type Lesson struct {
	Title string
	Body  string
}

// Module groups lessons under a course heading.
type Module struct {
	Title   string
	Lessons []Lesson
}

// Disease is one reference card in the pathology database.
type Disease struct {
	Name       string
	Type       string // Viral, Bacterial, Parasitic, Fungal, Metabolic
	Symptoms   string
	Cause      string
	Remedy     string
	Prevention string
}

// Term is a dictionary entry.
type Term struct {
	Term       string
	Domain     string
	Definition string
}

// Concept is a finance/marketing concept card.
type Concept struct {
	Term       string
	Domain     string
	Definition string
	KPI        bool
}

// DiagnosticCard pairs an observed symptom with the correct diagnosis and a
// distractor option set for the timed diagnostic game. Answer always appears
// in Options.
type DiagnosticCard struct {
	Symptom string
	Answer  string
	Options []string
}

// Reminder is a fixed calendar entry keyed by day of month.
type Reminder struct {
	Day   int
	Event string
}
