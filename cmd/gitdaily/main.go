package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.gitdaily/internal/termfix"

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/attuned.gitdaily/internal/config"
	"github.com/wahlandcase/attuned.gitdaily/internal/git"
	"github.com/wahlandcase/attuned.gitdaily/internal/models"
	"github.com/wahlandcase/attuned.gitdaily/internal/selfupdate"
	"github.com/wahlandcase/attuned.gitdaily/internal/summary"
	"github.com/wahlandcase/attuned.gitdaily/internal/ui"
	"github.com/wahlandcase/attuned.gitdaily/internal/updater"
	"github.com/wahlandcase/attuned.gitdaily/internal/workspace"
)

// version is injected at build time via -ldflags
var version = "dev"

var (
	quiet   bool
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "gitdaily",
		Short:        "Update git working copies to the latest state of their main branch",
		Version:      version,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output, print only the summary")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "echo every git command and its output")
	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
	rootCmd.AddCommand(updateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.New(flagVerbosity())
	ctx := context.Background()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	var results []models.UpdateResult

	start := time.Now()
	if git.IsRepo(cwd) {
		result, err := updateSingle(ctx, cfg, cwd)
		if err != nil {
			return err
		}
		results = []models.UpdateResult{result}
	} else {
		results, err = updateWorkspace(ctx, cfg, cwd)
		if err != nil {
			return err
		}
	}

	report := summary.Build(results, time.Since(start))
	printSummary(cfg, report, os.Stdout)

	os.Exit(report.ExitCode())
	return nil
}

// printSummary writes the final report. Quiet suppresses the progress UI and
// the update notice, never the summary itself.
func printSummary(cfg *config.Config, report summary.Report, out io.Writer) {
	fmt.Fprint(out, report.Render())
	if !cfg.IsQuiet() {
		maybePrintUpdateNotice(out)
	}
}

func flagVerbosity() config.Verbosity {
	switch {
	case quiet:
		return config.Quiet
	case verbose:
		return config.Verbose
	default:
		return config.Normal
	}
}

func updateSingle(ctx context.Context, cfg *config.Config, path string) (models.UpdateResult, error) {
	upd := updater.New(cfg)
	switch {
	case cfg.IsQuiet():
		return upd.Update(ctx, path, updater.NoopCallbacks{}), nil
	case cfg.IsVerbose():
		return upd.Update(ctx, path, ui.NewVerboseCallbacks(os.Stderr)), nil
	default:
		return ui.RunSingle(ctx, cfg, path)
	}
}

func updateWorkspace(ctx context.Context, cfg *config.Config, root string) ([]models.UpdateResult, error) {
	if !cfg.IsQuiet() {
		fmt.Printf("%s %s\n", ui.StyleAccent.Render("Working in:"), ui.StyleBold.Render(root))
	}

	paths, err := workspace.FindRepos(root)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		if !cfg.IsQuiet() {
			fmt.Println(ui.StyleWarning.Render("No git repositories found"))
		}
		return nil, nil
	}
	if !cfg.IsQuiet() {
		fmt.Println(ui.StyleDim.Render(fmt.Sprintf("Starting in workspace mode with %d repositories", len(paths))))
	}

	sched := workspace.NewScheduler(cfg)
	switch {
	case cfg.IsQuiet():
		return sched.UpdateAll(ctx, paths, func(string) updater.Callbacks {
			return updater.NoopCallbacks{}
		}), nil
	case cfg.IsVerbose():
		callbacks := ui.NewVerboseCallbacks(os.Stderr)
		return sched.UpdateAll(ctx, paths, func(string) updater.Callbacks {
			return callbacks
		}), nil
	default:
		return ui.RunWorkspace(ctx, cfg, paths)
	}
}

// maybePrintUpdateNotice checks for a newer release at most once per day.
func maybePrintUpdateNotice(out io.Writer) {
	settings, err := config.LoadSettings()
	if err != nil || !settings.ShouldCheckForUpdate() {
		return
	}
	settings.RecordUpdateCheck()
	_ = settings.Save() // Best effort save

	release, err := selfupdate.CheckForUpdate(version, settings.Update.Repo)
	if err != nil || release == nil {
		return
	}
	fmt.Fprintf(out, "\n%s gitdaily %s is available, run 'gitdaily update' to install\n",
		ui.StyleWarning.Render("↑"), selfupdate.NormalizeVersion(release.TagName))
}

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update gitdaily to the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			release, err := selfupdate.CheckForUpdate(version, settings.Update.Repo)
			if err != nil {
				return err
			}
			if release == nil {
				fmt.Println("gitdaily is already up to date")
				return nil
			}
			fmt.Printf("Updating to %s...\n", selfupdate.NormalizeVersion(release.TagName))
			if err := selfupdate.DownloadAndInstall(release, settings.Update.Repo); err != nil {
				return err
			}
			fmt.Println("Updated successfully")
			return nil
		},
	}
}
