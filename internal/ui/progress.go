package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wahlandcase/attuned.gitdaily/internal/models"
	"github.com/wahlandcase/attuned.gitdaily/internal/updater"
)

// Messages for async progress updates

type stepMsg models.UpdateStep

type completedMsg struct {
	name    string
	success bool
}

type resultMsg models.UpdateResult

type resultsMsg []models.UpdateResult

type tickMsg time.Time

// tickInterval controls how often the spinner animates.
const tickInterval = 80 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenForEvents creates a subscription that listens to the event channel
func listenForEvents(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// eventCallbacks bridges updater events into bubbletea messages. The channel
// is buffered generously by the caller, so sends never block the workers.
type eventCallbacks struct {
	updater.BaseCallbacks
	name  string
	ch    chan tea.Msg
	steps bool
}

func (c *eventCallbacks) OnStep(step models.UpdateStep) {
	if c.steps {
		c.ch <- stepMsg(step)
	}
}

func (c *eventCallbacks) OnComplete(models.UpdateResult) {}

func (c *eventCallbacks) OnCompletionStatus(success bool, _ string) {
	c.ch <- completedMsg{name: c.name, success: success}
}

// SpinnerFrames using braille characters
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// ProgressBar renders a fixed-width bar filled in proportion to current/total.
func ProgressBar(current, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("%s%s",
		StyleAccent.Render(strings.Repeat("█", filled)),
		StyleDim.Render(strings.Repeat("░", width-filled)),
	)
}

func repoName(path string) string {
	return filepath.Base(path)
}
