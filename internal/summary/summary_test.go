package summary_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wahlandcase/attuned.gitdaily/internal/models"
	"github.com/wahlandcase/attuned.gitdaily/internal/summary"
)

func successResult(path string, hadStash bool) models.UpdateResult {
	return models.UpdateResult{
		Path:     path,
		Outcome:  models.Success(models.Branch("feature"), "main", hadStash),
		Duration: 1250 * time.Millisecond,
	}
}

func failedResult(path string, step models.UpdateStep, msg string) models.UpdateResult {
	return models.UpdateResult{
		Path:     path,
		Outcome:  models.Failed(step, msg),
		Duration: 300 * time.Millisecond,
	}
}

func TestExitCodeAllSucceeded(t *testing.T) {
	report := summary.Build([]models.UpdateResult{
		successResult("/ws/alpha", false),
		successResult("/ws/bravo", true),
	}, time.Second)

	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 0, report.ExitCode())
}

func TestExitCodeEmptyWorkspace(t *testing.T) {
	report := summary.Build(nil, 0)

	assert.Equal(t, 0, report.ExitCode())
}

func TestExitCodePartialFailure(t *testing.T) {
	report := summary.Build([]models.UpdateResult{
		successResult("/ws/alpha", false),
		failedResult("/ws/bravo", models.StepFetching, "no remote"),
	}, time.Second)

	assert.Equal(t, 1, report.ExitCode())
}

func TestExitCodeTotalFailure(t *testing.T) {
	report := summary.Build([]models.UpdateResult{
		failedResult("/ws/alpha", models.StepFetching, "no remote"),
		failedResult("/ws/bravo", models.StepCheckingOut, "no main branch"),
	}, time.Second)

	assert.Equal(t, 2, report.ExitCode())
}

func TestRenderListsSuccessesAndFailures(t *testing.T) {
	report := summary.Build([]models.UpdateResult{
		successResult("/ws/alpha", true),
		failedResult("/ws/bravo", models.StepPulling, "non-fast-forward"),
	}, 3*time.Second)

	out := report.Render()

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Succeeded (1):")
	assert.Contains(t, out, "/ws/alpha")
	assert.Contains(t, out, "[feature]")
	assert.Contains(t, out, "(stash restored)")

	assert.Contains(t, out, "Failed (1):")
	assert.Contains(t, out, "/ws/bravo")
	assert.Contains(t, out, "at Pulling: non-fast-forward")

	assert.Contains(t, out, "1/2 repos in 3.00s")
}

func TestRenderOmitsEmptySections(t *testing.T) {
	report := summary.Build([]models.UpdateResult{
		successResult("/ws/alpha", false),
	}, time.Second)

	out := report.Render()

	assert.NotContains(t, out, "Failed (")
	assert.NotContains(t, out, "(stash restored)")
	assert.Contains(t, out, "1/1 repos")
}

func TestRenderDetachedHeadDescription(t *testing.T) {
	report := summary.Build([]models.UpdateResult{
		{
			Path:     "/ws/alpha",
			Outcome:  models.Success(models.DetachedAt("abc123def4567890"), "master", false),
			Duration: time.Second,
		},
	}, time.Second)

	assert.Contains(t, report.Render(), "[detached @ abc123d]")
}
