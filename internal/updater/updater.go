// Package updater drives the fixed per-repository update sequence:
//
//	Started -> DetectingBranch -> CheckingChanges -> Fetching
//	  -> Stashing(if dirty) -> CheckingOut -> Pulling
//	  -> RestoringBranch -> PoppingStash(if stash created) -> Completed
//
// Any step may exit to Failed; that is the only non-linear transition. The
// machine is fail-fast: no compensating stash-pop or branch restore runs
// after a failure, because recovery layered on a partial failure risks
// compounding it. The user resolves manually with full context.
package updater

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/wahlandcase/attuned.gitdaily/internal/config"
	"github.com/wahlandcase/attuned.gitdaily/internal/git"
	"github.com/wahlandcase/attuned.gitdaily/internal/models"
)

// Updater runs the update sequence for single repositories.
type Updater struct {
	cfg *config.Config
}

// New creates an Updater bound to the runtime config.
func New(cfg *config.Config) *Updater {
	return &Updater{cfg: cfg}
}

// Update runs the full sequence against the repository at path. A result is
// always produced; any error becomes that repository's Failed outcome.
func (u *Updater) Update(ctx context.Context, path string, cb Callbacks) models.UpdateResult {
	start := time.Now()

	cb.OnUpdateStart(filepath.Base(path))
	outcome := u.run(ctx, path, cb)

	result := models.UpdateResult{
		Path:     path,
		Outcome:  outcome,
		Duration: time.Since(start),
	}

	cb.OnComplete(result)
	cb.OnCompletionStatus(models.IsSuccess(outcome), models.FailureMessage(outcome))
	return result
}

func (u *Updater) run(ctx context.Context, path string, cb Callbacks) models.UpdateOutcome {
	r := git.NewRunner(path, u.cfg.ProcessTimeout, echo(cb))

	cb.OnStep(models.StepStarted)

	cb.OnStep(models.StepDetectingBranch)
	branch, err := r.CurrentBranch(ctx)
	if err != nil {
		return failed(models.StepDetectingBranch, err)
	}

	head := models.Branch(branch)
	if branch == "HEAD" {
		// Not on a branch: capture the commit so restoration returns to
		// the identical hash instead of inventing a branch.
		commit, err := r.CurrentCommit(ctx)
		if err != nil {
			return failed(models.StepDetectingBranch, err)
		}
		head = models.DetachedAt(commit)
	}

	cb.OnStep(models.StepCheckingChanges)
	dirty, err := r.HasUncommittedChanges(ctx)
	if err != nil {
		return failed(models.StepCheckingChanges, err)
	}

	// Fetch before any working-tree mutation: if it fails, the repository
	// is left exactly as found.
	cb.OnStep(models.StepFetching)
	if !git.HasRemote(path) {
		return models.Failed(models.StepFetching, "no remote configured")
	}
	if err := r.FetchPrune(ctx); err != nil {
		return failed(models.StepFetching, err)
	}

	hadStash := false
	if dirty {
		cb.OnStep(models.StepStashing)
		hadStash, err = r.Stash(ctx)
		if err != nil {
			return failed(models.StepStashing, err)
		}
	}

	cb.OnStep(models.StepCheckingOut)
	mainBranch, err := checkoutMain(ctx, r, git.MainBranchCandidates(path))
	if err != nil {
		return failed(models.StepCheckingOut, err)
	}

	cb.OnStep(models.StepPulling)
	if err := r.PullFFOnly(ctx, mainBranch); err != nil {
		return failed(models.StepPulling, err)
	}

	cb.OnStep(models.StepRestoringBranch)
	if err := restoreHead(ctx, r, head); err != nil {
		return failed(models.StepRestoringBranch, err)
	}

	if hadStash {
		cb.OnStep(models.StepPoppingStash)
		if err := r.StashPop(ctx); err != nil {
			return failed(models.StepPoppingStash, err)
		}
	}

	cb.OnStep(models.StepCompleted)
	return models.Success(head, mainBranch, hadStash)
}

// checkoutMain tries the candidates in order; both failing is a single
// CheckingOut failure.
func checkoutMain(ctx context.Context, r *git.Runner, candidates [2]string) (string, error) {
	if err := r.Checkout(ctx, candidates[0]); err == nil {
		return candidates[0], nil
	}
	if err := r.Checkout(ctx, candidates[1]); err != nil {
		return "", fmt.Errorf("neither %q nor %q could be checked out: %w",
			candidates[0], candidates[1], err)
	}
	return candidates[1], nil
}

func restoreHead(ctx context.Context, r *git.Runner, head models.OriginalHead) error {
	if models.IsDetached(head) {
		return r.CheckoutDetached(ctx, head.Ref())
	}
	return r.Checkout(ctx, head.Ref())
}

func failed(step models.UpdateStep, err error) models.UpdateOutcome {
	return models.Failed(step, err.Error())
}

// echo forwards the runner's verbose traces to the callbacks.
func echo(cb Callbacks) git.Echo {
	return git.Echo{
		Command: func(args []string) { cb.OnStepExecute(args, "") },
		Output:  func(text string) { cb.OnStepExecute(nil, text) },
	}
}
