package git

import (
	"context"
	"fmt"
	"strings"
)

// Porcelain wrappers over Runner. Each maps to exactly one git invocation
// with a fixed argument vector; branch names pass validation first.

// CurrentBranch returns the abbreviated HEAD ref, or "HEAD" when detached.
func (r *Runner) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return out, nil
}

// CurrentCommit returns the full commit hash HEAD points at.
func (r *Runner) CurrentCommit(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current commit: %w", err)
	}
	return out, nil
}

// HasUncommittedChanges reports whether the working tree has any changes,
// including untracked files.
func (r *Runner) HasUncommittedChanges(ctx context.Context) (bool, error) {
	out, err := r.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check for uncommitted changes: %w", err)
	}
	return out != "", nil
}

// FetchPrune refreshes remote-tracking refs, dropping refs deleted upstream.
// It never touches the working tree.
func (r *Runner) FetchPrune(ctx context.Context) error {
	if _, err := r.Run(ctx, "fetch", "--prune"); err != nil {
		return fmt.Errorf("failed to fetch from remote: %w", err)
	}
	return nil
}

// Stash saves modifications to tracked files and reports whether an entry was
// actually created. A tree whose only changes are untracked files produces no
// entry, so the caller must not pop later.
func (r *Runner) Stash(ctx context.Context) (bool, error) {
	out, err := r.Run(ctx, "stash", "push")
	if err != nil {
		return false, fmt.Errorf("failed to stash changes: %w", err)
	}
	return !strings.Contains(out, "No local changes to save"), nil
}

// StashPop restores the most recent stash entry.
func (r *Runner) StashPop(ctx context.Context) error {
	if _, err := r.Run(ctx, "stash", "pop"); err != nil {
		return fmt.Errorf("failed to pop stash: %w", err)
	}
	return nil
}

// Checkout switches to the named branch.
func (r *Runner) Checkout(ctx context.Context, branch string) error {
	if err := ValidateBranchName(branch); err != nil {
		return err
	}
	if _, err := r.Run(ctx, "checkout", branch); err != nil {
		return fmt.Errorf("failed to checkout branch %q: %w", branch, err)
	}
	return nil
}

// CheckoutDetached checks out the given commit directly, leaving the working
// copy detached. Used to restore a head that was detached before the update.
func (r *Runner) CheckoutDetached(ctx context.Context, commit string) error {
	if err := ValidateBranchName(commit); err != nil {
		return err
	}
	if _, err := r.Run(ctx, "checkout", "--detach", commit); err != nil {
		return fmt.Errorf("failed to checkout commit %q: %w", commit, err)
	}
	return nil
}

// PullFFOnly fast-forwards the named branch from origin. A diverged branch
// fails rather than creating a merge commit; unattended merges are never
// acceptable here.
func (r *Runner) PullFFOnly(ctx context.Context, branch string) error {
	if err := ValidateBranchName(branch); err != nil {
		return err
	}
	if _, err := r.Run(ctx, "pull", "--ff-only", "origin", branch); err != nil {
		return fmt.Errorf("failed to pull %q from origin: %w", branch, err)
	}
	return nil
}
