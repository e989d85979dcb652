package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/wahlandcase/attuned.gitdaily/internal/config"
)

// Echo receives verbose command traces from a Runner. Command is called with
// the argument vector before the process starts; Output is called with the
// captured stdout after a successful exit. The zero value is silent.
type Echo struct {
	Command func(args []string)
	Output  func(text string)
}

// Runner executes git commands in one repository's working directory.
//
// Every command runs as a direct process with a bound timeout; a shell is
// never involved, so arguments cannot be reinterpreted. A process still
// running when the timeout expires is forcibly killed.
type Runner struct {
	dir     string
	timeout time.Duration
	echo    Echo
}

// NewRunner creates a Runner for the repository at dir. A non-positive
// timeout falls back to the default.
func NewRunner(dir string, timeout time.Duration, echo Echo) *Runner {
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return &Runner{dir: dir, timeout: timeout, echo: echo}
}

// Run executes git with the given argument vector and returns trimmed stdout.
// A non-zero exit becomes a ProcessError carrying stderr; exceeding the
// timeout becomes a TimeoutError.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	if r.echo.Command != nil {
		r.echo.Command(args)
	}

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, "git", args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if cctx.Err() == context.DeadlineExceeded {
		return "", &TimeoutError{Args: args, Timeout: r.timeout}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ProcessError{Args: args, Stderr: stderr.String()}
		}
		return "", fmt.Errorf("failed to spawn git %s: %w", strings.Join(args, " "), err)
	}

	out := strings.TrimSpace(stdout.String())
	if r.echo.Output != nil {
		r.echo.Output(out)
	}
	return out, nil
}
