package models

import "time"

// UpdateOutcome represents how an update attempt for a single repo ended
type UpdateOutcome interface {
	isUpdateOutcome()
}

type outcomeSuccess struct {
	head       OriginalHead
	mainBranch string
	hadStash   bool
}

type outcomeFailed struct {
	step    UpdateStep
	message string
}

func (outcomeSuccess) isUpdateOutcome() {}
func (outcomeFailed) isUpdateOutcome()  {}

// Success creates the outcome of a completed update: the head that was
// restored, the main branch that was pulled, and whether a stash entry was
// actually created and popped.
func Success(head OriginalHead, mainBranch string, hadStash bool) UpdateOutcome {
	return outcomeSuccess{head: head, mainBranch: mainBranch, hadStash: hadStash}
}

// Failed creates the outcome of an update that stopped at the given step.
// The message is kept verbatim for the summary.
func Failed(step UpdateStep, message string) UpdateOutcome {
	return outcomeFailed{step: step, message: message}
}

// IsSuccess returns true if the outcome is a Success
func IsSuccess(o UpdateOutcome) bool {
	_, ok := o.(outcomeSuccess)
	return ok
}

// Head returns the captured original head for a Success outcome
func Head(o UpdateOutcome) (OriginalHead, bool) {
	if s, ok := o.(outcomeSuccess); ok {
		return s.head, true
	}
	return nil, false
}

// MainBranch returns the resolved main branch name for a Success outcome
func MainBranch(o UpdateOutcome) (string, bool) {
	if s, ok := o.(outcomeSuccess); ok {
		return s.mainBranch, true
	}
	return "", false
}

// HadStash returns true if the outcome is a Success that created a stash
func HadStash(o UpdateOutcome) bool {
	if s, ok := o.(outcomeSuccess); ok {
		return s.hadStash
	}
	return false
}

// FailedStep returns the step a Failed outcome stopped at
func FailedStep(o UpdateOutcome) (UpdateStep, bool) {
	if f, ok := o.(outcomeFailed); ok {
		return f.step, true
	}
	return 0, false
}

// FailureMessage returns the error message of a Failed outcome, "" otherwise
func FailureMessage(o UpdateOutcome) string {
	if f, ok := o.(outcomeFailed); ok {
		return f.message
	}
	return ""
}

// UpdateResult is the immutable record of one update attempt for one
// repository. Exactly one is produced per repository per attempt.
type UpdateResult struct {
	// Path of the repository that was updated
	Path string
	// Outcome of the attempt
	Outcome UpdateOutcome
	// Duration of the whole attempt
	Duration time.Duration
}
