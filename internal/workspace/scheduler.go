// Package workspace discovers repositories under a working directory and
// schedules updates across them.
package workspace

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wahlandcase/attuned.gitdaily/internal/config"
	"github.com/wahlandcase/attuned.gitdaily/internal/models"
	"github.com/wahlandcase/attuned.gitdaily/internal/updater"
)

// CallbacksFactory builds the Callbacks instance used for one repository.
// A factory may return a fresh instance per path or a single shared one.
type CallbacksFactory func(path string) updater.Callbacks

// Scheduler runs updates over a set of repositories.
type Scheduler struct {
	cfg *config.Config
	upd *updater.Updater
}

// NewScheduler creates a Scheduler bound to the runtime config.
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{cfg: cfg, upd: updater.New(cfg)}
}

// UpdateAll updates every repository and returns one result per path, in
// input order. Each worker owns its repository exclusively, so results are an
// order-independent multiset regardless of pool scheduling.
//
// Verbose mode runs strictly sequentially so per-command traces from
// different repositories do not interleave; otherwise repositories run
// concurrently on a pool bounded by the configured size. A failing
// repository never aborts its siblings, and there is no mid-run
// cancellation: every unit runs to completion.
func (s *Scheduler) UpdateAll(ctx context.Context, paths []string, factory CallbacksFactory) []models.UpdateResult {
	results := make([]models.UpdateResult, len(paths))

	if s.cfg.IsVerbose() {
		for i, path := range paths {
			results[i] = s.upd.Update(ctx, path, factory(path))
		}
		return results
	}

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.PoolSize)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = s.upd.Update(ctx, path, factory(path))
			return nil
		})
	}
	// Workers never return errors; failures live in the results themselves.
	_ = g.Wait()

	return results
}
