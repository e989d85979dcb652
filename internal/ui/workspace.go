package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wahlandcase/attuned.gitdaily/internal/config"
	"github.com/wahlandcase/attuned.gitdaily/internal/models"
	"github.com/wahlandcase/attuned.gitdaily/internal/updater"
	"github.com/wahlandcase/attuned.gitdaily/internal/workspace"
)

// maxVisibleCompletions bounds the rolling window of recently finished repos.
const maxVisibleCompletions = 5

const barWidth = 40

type completion struct {
	name    string
	success bool
}

// completionWindow keeps the most recent completions for display. Purely a
// presentation detail: dropping it entirely would not change domain behavior.
type completionWindow struct {
	entries []completion
	total   int
}

func (w *completionWindow) push(name string, success bool) {
	w.total++
	w.entries = append(w.entries, completion{name: name, success: success})
	if len(w.entries) > maxVisibleCompletions {
		w.entries = w.entries[1:]
	}
}

func (w *completionWindow) overflowed() bool {
	return w.total > maxVisibleCompletions
}

// workspaceModel shows aggregate progress for a whole workspace: a bar, a
// failure count, and the rolling window of completions.
type workspaceModel struct {
	total   int
	events  chan tea.Msg
	start   tea.Cmd
	frame   int
	failed  int
	window  completionWindow
	done    bool
	results []models.UpdateResult
}

func (m workspaceModel) Init() tea.Cmd {
	return tea.Batch(m.start, listenForEvents(m.events), tick())
}

func (m workspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.frame++
		return m, tick()
	case completedMsg:
		m.window.push(msg.name, msg.success)
		if !msg.success {
			m.failed++
		}
		return m, listenForEvents(m.events)
	case resultsMsg:
		m.done = true
		m.results = msg
		return m, tea.Quit
	}
	return m, nil
}

func (m workspaceModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d/%d completed %s",
		ProgressBar(m.window.total, m.total, barWidth),
		m.window.total, m.total,
		StyleAccent.Render(Spinner(m.frame)),
	)
	if m.failed > 0 {
		fmt.Fprintf(&b, " %s", StyleFailure.Render(fmt.Sprintf("│ %d failed", m.failed)))
	}
	b.WriteString("\n")

	if m.window.overflowed() {
		b.WriteString("  " + StyleDim.Render("...") + "\n")
	}
	for _, c := range m.window.entries {
		symbol := StyleSuccess.Render("✓")
		if !c.success {
			symbol = StyleFailure.Render("✗")
		}
		fmt.Fprintf(&b, "  %s %s\n", symbol, c.name)
	}

	return b.String()
}

// RunWorkspace updates every repository through the scheduler behind an
// aggregate progress display and returns all results.
func RunWorkspace(ctx context.Context, cfg *config.Config, paths []string) ([]models.UpdateResult, error) {
	events := make(chan tea.Msg, len(paths)+1)
	sched := workspace.NewScheduler(cfg)

	start := func() tea.Msg {
		results := sched.UpdateAll(ctx, paths, func(path string) updater.Callbacks {
			return &eventCallbacks{name: repoName(path), ch: events}
		})
		return resultsMsg(results)
	}

	m := workspaceModel{
		total:  len(paths),
		events: events,
		start:  start,
	}

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm := final.(workspaceModel)
	if !fm.done {
		return nil, fmt.Errorf("workspace update interrupted")
	}
	return fm.results, nil
}
