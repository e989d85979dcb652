package git

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports a branch name rejected before any process was
// spawned.
type ValidationError struct {
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid branch name %q: %s", e.Name, e.Reason)
}

// ProcessError reports a git invocation that exited non-zero. It carries the
// captured stderr so failures surface verbatim in summaries.
type ProcessError struct {
	Args   []string
	Stderr string
}

func (e *ProcessError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "exited with an error"
	}
	return "git " + strings.Join(e.Args, " ") + ": " + msg
}

// TimeoutError reports a git invocation that was killed after exceeding its
// time bound.
type TimeoutError struct {
	Args    []string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("git %s timed out after %s", strings.Join(e.Args, " "), e.Timeout)
}
