package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wahlandcase/attuned.gitdaily/internal/config"
	"github.com/wahlandcase/attuned.gitdaily/internal/models"
	"github.com/wahlandcase/attuned.gitdaily/internal/updater"
)

// singleModel shows one repository's progress behind a spinner.
type singleModel struct {
	name   string
	events chan tea.Msg
	start  tea.Cmd
	frame  int
	step   models.UpdateStep
	done   bool
	result models.UpdateResult
}

func (m singleModel) Init() tea.Cmd {
	return tea.Batch(m.start, listenForEvents(m.events), tick())
}

func (m singleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.frame++
		return m, tick()
	case stepMsg:
		m.step = models.UpdateStep(msg)
		return m, listenForEvents(m.events)
	case completedMsg:
		return m, listenForEvents(m.events)
	case resultMsg:
		m.done = true
		m.result = models.UpdateResult(msg)
		return m, tea.Quit
	}
	return m, nil
}

func (m singleModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s %s\n", StyleAccent.Render(Spinner(m.frame)), m.step.Message())
	}
	if models.IsSuccess(m.result.Outcome) {
		return fmt.Sprintf("%s %s updated successfully\n", StyleSuccess.Render("✓"), m.name)
	}
	return fmt.Sprintf("%s %s failed: %s\n",
		StyleFailure.Render("✗"), m.name, models.FailureMessage(m.result.Outcome))
}

// RunSingle updates one repository behind an animated spinner and returns its
// result. Progress renders on stderr so stdout stays clean for the summary.
func RunSingle(ctx context.Context, cfg *config.Config, path string) (models.UpdateResult, error) {
	events := make(chan tea.Msg, 64)
	upd := updater.New(cfg)

	start := func() tea.Msg {
		result := upd.Update(ctx, path, &eventCallbacks{name: repoName(path), ch: events, steps: true})
		return resultMsg(result)
	}

	m := singleModel{
		name:   repoName(path),
		events: events,
		start:  start,
		step:   models.StepStarted,
	}

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return models.UpdateResult{}, err
	}

	fm := final.(singleModel)
	if !fm.done {
		return models.UpdateResult{}, fmt.Errorf("update interrupted")
	}
	return fm.result, nil
}
