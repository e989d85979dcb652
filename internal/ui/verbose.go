package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/wahlandcase/attuned.gitdaily/internal/models"
)

// VerboseCallbacks prints every git invocation and its captured output as
// plain lines. Used in verbose mode, where updates run sequentially.
type VerboseCallbacks struct {
	out io.Writer
}

// NewVerboseCallbacks creates callbacks writing to out.
func NewVerboseCallbacks(out io.Writer) *VerboseCallbacks {
	return &VerboseCallbacks{out: out}
}

func (c *VerboseCallbacks) OnUpdateStart(name string) {
	fmt.Fprintln(c.out, StyleHeader.Render("Updating "+name))
}

func (c *VerboseCallbacks) OnStep(step models.UpdateStep) {
	fmt.Fprintln(c.out, StyleDim.Render(step.Message()))
}

func (c *VerboseCallbacks) OnStepExecute(args []string, output string) {
	if len(args) > 0 {
		fmt.Fprintf(c.out, "  %s git %s\n", StyleAccent.Render("→"), strings.Join(args, " "))
		return
	}
	if output == "" {
		return
	}
	for _, line := range strings.Split(output, "\n") {
		fmt.Fprintln(c.out, "    "+StyleDim.Render(line))
	}
}

func (c *VerboseCallbacks) OnComplete(result models.UpdateResult) {
	name := repoName(result.Path)
	if models.IsSuccess(result.Outcome) {
		fmt.Fprintf(c.out, "%s %s updated successfully\n", StyleSuccess.Render("✓"), name)
		return
	}
	fmt.Fprintf(c.out, "%s %s failed: %s\n",
		StyleFailure.Render("✗"), name, models.FailureMessage(result.Outcome))
}

func (c *VerboseCallbacks) OnCompletionStatus(bool, string) {}
