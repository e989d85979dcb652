// Package summary turns update results into counts, an exit code, and the
// printed report.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/wahlandcase/attuned.gitdaily/internal/models"
	"github.com/wahlandcase/attuned.gitdaily/internal/ui"
)

// Report aggregates update results for presentation and exit-code mapping.
type Report struct {
	Results   []models.UpdateResult
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// Build counts successes and failures across results.
func Build(results []models.UpdateResult, elapsed time.Duration) Report {
	r := Report{Results: results, Elapsed: elapsed}
	for _, result := range results {
		if models.IsSuccess(result.Outcome) {
			r.Succeeded++
		} else {
			r.Failed++
		}
	}
	return r
}

// ExitCode maps the aggregate to the process exit status: 0 when everything
// succeeded (or the workspace was empty), 1 for a partial failure, 2 when
// every repository failed.
func (r Report) ExitCode() int {
	switch {
	case r.Failed == 0:
		return 0
	case r.Succeeded == 0:
		return 2
	default:
		return 1
	}
}

const sectionWidth = 50

// Render formats the report with succeeded and failed sections. Failed
// entries carry the failing step and the error message verbatim.
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString(section("Summary"))

	successes, failures := r.partition()
	renderSuccesses(&b, successes)
	renderFailures(&b, failures)

	fmt.Fprintf(&b, "%s: %d/%d repos in %s\n",
		ui.StyleBold.Render("Total"),
		r.Succeeded, len(r.Results),
		formatDuration(r.Elapsed),
	)

	return b.String()
}

func (r Report) partition() (successes, failures []models.UpdateResult) {
	for _, result := range r.Results {
		if models.IsSuccess(result.Outcome) {
			successes = append(successes, result)
		} else {
			failures = append(failures, result)
		}
	}
	return successes, failures
}

func section(title string) string {
	line := ui.StyleDim.Render(strings.Repeat("=", sectionWidth))
	padding := (sectionWidth - len(title)) / 2
	centered := strings.Repeat(" ", padding) + ui.StyleHeader.Render(title)
	return fmt.Sprintf("\n%s\n%s\n%s\n\n", line, centered, line)
}

func renderSuccesses(b *strings.Builder, successes []models.UpdateResult) {
	if len(successes) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n", ui.StyleSuccess.Render(fmt.Sprintf("Succeeded (%d):", len(successes))))

	for _, result := range successes {
		head, _ := models.Head(result.Outcome)
		stashNote := ""
		if models.HadStash(result.Outcome) {
			stashNote = " " + ui.StyleWarning.Render("(stash restored)")
		}
		fmt.Fprintf(b, "  %s %s %s%s in %s\n",
			ui.StyleSuccess.Render("OK"),
			result.Path,
			ui.StyleAccent.Render("["+models.DescribeHead(head)+"]"),
			stashNote,
			ui.StyleDim.Render(formatDuration(result.Duration)),
		)
	}
	b.WriteString("\n")
}

func renderFailures(b *strings.Builder, failures []models.UpdateResult) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n", ui.StyleFailure.Render(fmt.Sprintf("Failed (%d):", len(failures))))

	for _, result := range failures {
		step, _ := models.FailedStep(result.Outcome)
		fmt.Fprintf(b, "  %s %s %s in %s\n",
			ui.StyleFailure.Render("FAIL"),
			result.Path,
			ui.StyleFailure.Render(fmt.Sprintf("at %s: %s", step, models.FailureMessage(result.Outcome))),
			ui.StyleDim.Render(formatDuration(result.Duration)),
		)
	}
	b.WriteString("\n")
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
