package updater

import "github.com/wahlandcase/attuned.gitdaily/internal/models"

// Callbacks receives lifecycle events from an update. Implementations are
// presentation concerns; the updater and the workspace scheduler depend only
// on this interface and never on a concrete renderer.
//
// OnStep and OnComplete are the required hooks. The remaining hooks are
// optional: embed BaseCallbacks to get no-op defaults for them.
type Callbacks interface {
	// OnStep is invoked as each step of the update sequence begins.
	OnStep(step models.UpdateStep)
	// OnComplete is invoked exactly once with the final result.
	OnComplete(result models.UpdateResult)
	// OnUpdateStart is invoked before the first step with the repo name.
	OnUpdateStart(name string)
	// OnStepExecute receives verbose command traces: once with the argument
	// vector before a git process starts, once with args == nil and the
	// captured output after it exits.
	OnStepExecute(args []string, output string)
	// OnCompletionStatus is invoked after OnComplete with a compact
	// success flag and error message for aggregate displays.
	OnCompletionStatus(success bool, errMessage string)
}

// BaseCallbacks provides no-op defaults for the optional hooks. Embed it and
// implement OnStep and OnComplete.
type BaseCallbacks struct{}

func (BaseCallbacks) OnUpdateStart(string)            {}
func (BaseCallbacks) OnStepExecute([]string, string)  {}
func (BaseCallbacks) OnCompletionStatus(bool, string) {}

// NoopCallbacks ignores every event. Used in quiet mode and in tests.
type NoopCallbacks struct {
	BaseCallbacks
}

func (NoopCallbacks) OnStep(models.UpdateStep)       {}
func (NoopCallbacks) OnComplete(models.UpdateResult) {}
