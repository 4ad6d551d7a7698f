// Package narrate is the voice-guidance boundary. The app narrates key
// moments (welcome, quiz results) through a Speaker; what a Speaker does
// with the text is its own business.
package narrate

import (
	"fmt"
	"os"
	"os/exec"
)

// Speaker voices a line of guidance. Implementations must be non-blocking
// from the caller's perspective; narration never holds up the interface.
type Speaker interface {
	Say(text string)
}

// Noop discards all narration. Used when no speech engine is available or
// the farmer turned narration off.
type Noop struct{}

func (Noop) Say(string) {}

// Command narrates by handing each line to an external speech program such
// as espeak or say. Failures are logged once and the speaker degrades to a
// no-op for the rest of the run.
type Command struct {
	program string
	args    []string
	broken  bool
}

// NewCommand returns a Command speaker, or nil if the program is not on
// PATH.
func NewCommand(program string, args ...string) *Command {
	if _, err := exec.LookPath(program); err != nil {
		return nil
	}
	return &Command{program: program, args: args}
}

func (c *Command) Say(text string) {
	if c.broken || text == "" {
		return
	}
	cmd := exec.Command(c.program, append(c.args, text)...)
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: narration disabled: %v\n", err)
		c.broken = true
		return
	}
	// Reap in the background so finished processes don't linger.
	go func() { _ = cmd.Wait() }()
}

// Detect picks the best available Speaker for this machine: say on macOS,
// espeak elsewhere, Noop when neither exists.
func Detect() Speaker {
	for _, candidate := range []string{"say", "espeak"} {
		if s := NewCommand(candidate); s != nil {
			return s
		}
	}
	return Noop{}
}
