package quizscreen

// feedbackDoneMsg ends the feedback pause for one specific session. The
// session ID guards against a stale timer firing after the screen was left
// and re-entered.
type feedbackDoneMsg struct {
	SessionID string
}
