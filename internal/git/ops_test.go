package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.gitdaily/internal/config"
	"github.com/wahlandcase/attuned.gitdaily/internal/git"
	"github.com/wahlandcase/attuned.gitdaily/internal/gittest"
)

func newRunner(repo *gittest.Repo) *git.Runner {
	return git.NewRunner(repo.Dir, config.DefaultTimeout, git.Echo{})
}

func TestCurrentBranchAndCommit(t *testing.T) {
	repo := gittest.NewRepo(t, "master")
	r := newRunner(repo)
	ctx := context.Background()

	branch, err := r.CurrentBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "master", branch)

	commit, err := r.CurrentCommit(ctx)
	require.NoError(t, err)
	assert.Equal(t, repo.CurrentCommit(), commit)
}

func TestCurrentBranchReportsDetachedHead(t *testing.T) {
	repo := gittest.NewRepo(t, "master")
	repo.Detach()
	r := newRunner(repo)

	branch, err := r.CurrentBranch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "HEAD", branch)
}

func TestHasUncommittedChanges(t *testing.T) {
	repo := gittest.NewRepo(t, "master")
	r := newRunner(repo)
	ctx := context.Background()

	dirty, err := r.HasUncommittedChanges(ctx)
	require.NoError(t, err)
	assert.False(t, dirty)

	repo.WriteFile("untracked.txt", "untracked\n")
	dirty, err = r.HasUncommittedChanges(ctx)
	require.NoError(t, err)
	assert.True(t, dirty, "untracked files count as changes")

	repo.Git("clean", "-f")
	repo.WriteFile("README.md", "# Modified\n")
	dirty, err = r.HasUncommittedChanges(ctx)
	require.NoError(t, err)
	assert.True(t, dirty, "modified tracked files count as changes")
}

func TestStashReportsCreatedEntry(t *testing.T) {
	repo := gittest.NewRepo(t, "master")
	repo.WriteFile("README.md", "# Modified\n")
	r := newRunner(repo)

	created, err := r.Stash(context.Background())

	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, repo.HasStash())
	assert.Equal(t, "# Test Repo\n", repo.ReadFile("README.md"))
}

func TestStashUntrackedOnlyCreatesNothing(t *testing.T) {
	repo := gittest.NewRepo(t, "master")
	repo.WriteFile("untracked.txt", "untracked content\n")
	r := newRunner(repo)

	created, err := r.Stash(context.Background())

	require.NoError(t, err)
	assert.False(t, created, "plain stash ignores untracked files")
	assert.False(t, repo.HasStash())
	assert.Equal(t, "untracked content\n", repo.ReadFile("untracked.txt"))
}

func TestStashPopRestoresChanges(t *testing.T) {
	repo := gittest.NewRepo(t, "master")
	repo.WriteFile("README.md", "# Modified\n")
	r := newRunner(repo)
	ctx := context.Background()

	_, err := r.Stash(ctx)
	require.NoError(t, err)
	require.NoError(t, r.StashPop(ctx))

	assert.Equal(t, "# Modified\n", repo.ReadFile("README.md"))
	assert.False(t, repo.HasStash())
}

func TestCheckoutRejectsUnsafeNameBeforeSpawning(t *testing.T) {
	repo := gittest.NewRepo(t, "master")
	r := newRunner(repo)

	err := r.Checkout(context.Background(), "-unsafe")

	var validationErr *git.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "master", repo.CurrentBranch())
}

func TestPullFFOnlyFastForwards(t *testing.T) {
	repo := gittest.NewRepo(t, "master")
	repo.AdvanceOrigin("master")
	r := newRunner(repo)
	ctx := context.Background()

	require.NoError(t, r.FetchPrune(ctx))
	require.NoError(t, r.PullFFOnly(ctx, "master"))

	assert.Equal(t, repo.OriginHead("master"), repo.CurrentCommit())
}

func TestFetchPruneFailsWithoutRemote(t *testing.T) {
	repo := gittest.NewRepo(t, "master")
	repo.RemoveRemote()
	r := newRunner(repo)

	err := r.FetchPrune(context.Background())

	require.Error(t, err)
	var processErr *git.ProcessError
	assert.True(t, errors.As(err, &processErr))
}
