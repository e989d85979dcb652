package workspace_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.gitdaily/internal/config"
	"github.com/wahlandcase/attuned.gitdaily/internal/gittest"
	"github.com/wahlandcase/attuned.gitdaily/internal/models"
	"github.com/wahlandcase/attuned.gitdaily/internal/updater"
	"github.com/wahlandcase/attuned.gitdaily/internal/workspace"
)

func noopFactory(string) updater.Callbacks {
	return updater.NoopCallbacks{}
}

// buildWorkspace creates clean repos plus one without a remote, which fails
// at the fetch step.
func buildWorkspace(t *testing.T, clean int) (string, []string) {
	t.Helper()
	root := t.TempDir()

	names := []string{"alpha", "bravo", "charlie", "delta"}[:clean]
	for _, name := range names {
		gittest.NewWorkspaceRepo(t, root, name, "master")
	}
	broken := gittest.NewWorkspaceRepo(t, root, "zz-broken", "master")
	broken.RemoveRemote()

	paths, err := workspace.FindRepos(root)
	require.NoError(t, err)
	require.Len(t, paths, clean+1)
	return root, paths
}

func outcomesByPath(results []models.UpdateResult) map[string]bool {
	m := make(map[string]bool, len(results))
	for _, r := range results {
		m[r.Path] = models.IsSuccess(r.Outcome)
	}
	return m
}

func TestUpdateAllResultsMatchInputOrder(t *testing.T) {
	_, paths := buildWorkspace(t, 3)
	cfg := &config.Config{ProcessTimeout: config.DefaultTimeout, PoolSize: 4}

	results := workspace.NewScheduler(cfg).UpdateAll(context.Background(), paths, noopFactory)

	require.Len(t, results, len(paths))
	for i, result := range results {
		assert.Equal(t, paths[i], result.Path)
	}
}

func TestUpdateAllOutcomeSetIndependentOfPoolSize(t *testing.T) {
	_, paths := buildWorkspace(t, 4)

	serial := &config.Config{ProcessTimeout: config.DefaultTimeout, PoolSize: 1}
	pooled := &config.Config{ProcessTimeout: config.DefaultTimeout, PoolSize: 8}

	serialResults := workspace.NewScheduler(serial).UpdateAll(context.Background(), paths, noopFactory)
	pooledResults := workspace.NewScheduler(pooled).UpdateAll(context.Background(), paths, noopFactory)

	assert.Equal(t, outcomesByPath(serialResults), outcomesByPath(pooledResults))

	byPath := outcomesByPath(pooledResults)
	for path, success := range byPath {
		if path == paths[len(paths)-1] {
			assert.False(t, success, "remote-less repo must fail")
		} else {
			assert.True(t, success, "clean repo %s must succeed", path)
		}
	}
}

func TestUpdateAllFailureDoesNotAbortSiblings(t *testing.T) {
	_, paths := buildWorkspace(t, 2)
	cfg := &config.Config{ProcessTimeout: config.DefaultTimeout, PoolSize: 2}

	results := workspace.NewScheduler(cfg).UpdateAll(context.Background(), paths, noopFactory)

	report := outcomesByPath(results)
	succeeded := 0
	for _, ok := range report {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 2, succeeded)
}

// concurrencyCallbacks tracks how many updates run at once.
type concurrencyCallbacks struct {
	updater.BaseCallbacks
	active    *atomic.Int32
	maxActive *atomic.Int32
	mu        *sync.Mutex
	completed *int
}

func (c *concurrencyCallbacks) OnUpdateStart(string) {
	now := c.active.Add(1)
	for {
		max := c.maxActive.Load()
		if now <= max || c.maxActive.CompareAndSwap(max, now) {
			break
		}
	}
	// Hold the slot long enough for overlap to be observable.
	time.Sleep(20 * time.Millisecond)
}

func (c *concurrencyCallbacks) OnStep(models.UpdateStep) {}

func (c *concurrencyCallbacks) OnComplete(models.UpdateResult) {
	c.active.Add(-1)
	c.mu.Lock()
	*c.completed++
	c.mu.Unlock()
}

func TestUpdateAllVerboseModeRunsSequentially(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"one", "two", "three"} {
		gittest.NewWorkspaceRepo(t, root, name, "master")
	}
	paths, err := workspace.FindRepos(root)
	require.NoError(t, err)

	var active, maxActive atomic.Int32
	var mu sync.Mutex
	completed := 0
	factory := func(string) updater.Callbacks {
		return &concurrencyCallbacks{
			active:    &active,
			maxActive: &maxActive,
			mu:        &mu,
			completed: &completed,
		}
	}

	cfg := &config.Config{
		Verbosity:      config.Verbose,
		ProcessTimeout: config.DefaultTimeout,
		PoolSize:       8,
	}
	results := workspace.NewScheduler(cfg).UpdateAll(context.Background(), paths, factory)

	require.Len(t, results, 3)
	assert.Equal(t, int32(1), maxActive.Load(), "verbose mode must never overlap updates")
	assert.Equal(t, 3, completed)
}

func TestUpdateAllInvokesFactoryPerRepository(t *testing.T) {
	_, paths := buildWorkspace(t, 2)
	cfg := &config.Config{ProcessTimeout: config.DefaultTimeout, PoolSize: 2}

	var mu sync.Mutex
	seen := make(map[string]int)
	factory := func(path string) updater.Callbacks {
		mu.Lock()
		seen[path]++
		mu.Unlock()
		return updater.NoopCallbacks{}
	}

	workspace.NewScheduler(cfg).UpdateAll(context.Background(), paths, factory)

	require.Len(t, seen, len(paths))
	for path, count := range seen {
		assert.Equal(t, 1, count, "factory called once for %s", path)
	}
}
